package domain

import "fmt"

// IDScheme selects how order identifiers are generated.
type IDScheme string

const (
	// IDSchemeRandom produces "ORD" plus four random decimal digits with
	// no collision check against existing orders.
	IDSchemeRandom IDScheme = "random"
	// IDSchemeUUID produces "ORD-" plus a UUID. Opt-in hardening: ids are
	// unique but no longer match the four-digit format.
	IDSchemeUUID IDScheme = "uuid"
)

// ValidIDSchemes enumerates all recognized id schemes.
var ValidIDSchemes = []IDScheme{IDSchemeRandom, IDSchemeUUID}

// ShopConfig holds shop-level configuration loaded from .scoopctl.yaml.
type ShopConfig struct {
	ShopName string   `yaml:"shop_name" json:"shop_name"`
	DataDir  string   `yaml:"data_dir"  json:"data_dir"`
	Currency string   `yaml:"currency"  json:"currency"`
	IDScheme IDScheme `yaml:"id_scheme" json:"id_scheme"`
	Audit    bool     `yaml:"audit"     json:"audit"`
}

// DefaultShopConfig returns the configuration used when no
// .scoopctl.yaml exists.
func DefaultShopConfig() ShopConfig {
	return ShopConfig{
		ShopName: "Ice Cream Shop",
		DataDir:  "data",
		Currency: "$",
		IDScheme: IDSchemeRandom,
	}
}

// Validate catches typos in user-supplied configuration.
func (c ShopConfig) Validate() error {
	if c.IDScheme == "" {
		return nil
	}
	for _, s := range ValidIDSchemes {
		if c.IDScheme == s {
			return nil
		}
	}
	return fmt.Errorf("unknown id_scheme %q (valid: random, uuid)", c.IDScheme)
}
