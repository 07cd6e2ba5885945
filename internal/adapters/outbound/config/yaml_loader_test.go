package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	shopconfig "github.com/scoopctl/scoopctl/internal/adapters/outbound/config"
	"github.com/scoopctl/scoopctl/internal/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".scoopctl.yaml"), []byte(content), 0644))
}

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	loader := shopconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultShopConfig(), cfg)
}

func TestYAMLLoader_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
shop_name: Polar Scoops
currency: "€"
id_scheme: uuid
audit: true
`)
	loader := shopconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "Polar Scoops", cfg.ShopName)
	assert.Equal(t, "€", cfg.Currency)
	assert.Equal(t, domain.IDSchemeUUID, cfg.IDScheme)
	assert.True(t, cfg.Audit)
	assert.Equal(t, "data", cfg.DataDir, "unset fields fall back to defaults")
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{{{invalid yaml`)
	loader := shopconfig.New()

	_, err := loader.Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .scoopctl.yaml")
}

func TestYAMLLoader_UnknownIDScheme(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `id_scheme: sequential`)
	loader := shopconfig.New()

	_, err := loader.Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "id_scheme")
}
