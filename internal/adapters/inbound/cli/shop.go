package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scoopctl/scoopctl/internal/adapters/outbound/audit"
	"github.com/scoopctl/scoopctl/internal/adapters/outbound/blobstore"
	"github.com/scoopctl/scoopctl/internal/adapters/outbound/config"
	"github.com/scoopctl/scoopctl/internal/application"
	"github.com/scoopctl/scoopctl/internal/domain"
)

// shop bundles the configuration and wired services for one command
// invocation.
type shop struct {
	cfg       domain.ShopConfig
	menu      *application.MenuService
	customers *application.CustomerService
	orders    *application.OrderService
	journal   domain.ChangeJournal
}

// openShop loads .scoopctl.yaml from the working directory, applies the
// --data override, and wires the services onto the blob store.
func openShop(cmd *cobra.Command) (*shop, error) {
	cfg, err := config.New().Load(".")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if dataDir, _ := cmd.Flags().GetString("data"); dataDir != "" {
		cfg.DataDir = dataDir
	}

	var journal domain.ChangeJournal
	if cfg.Audit {
		j, err := audit.Open(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("opening audit journal: %w", err)
		}
		journal = j
	}

	store := blobstore.New(cfg.DataDir)
	menu := application.NewMenuService(store, journal)
	customers := application.NewCustomerService(store, journal)
	orders := application.NewOrderService(store, menu, customers,
		application.WithIDScheme(cfg.IDScheme),
		application.WithJournal(journal),
	)

	return &shop{
		cfg:       cfg,
		menu:      menu,
		customers: customers,
		orders:    orders,
		journal:   journal,
	}, nil
}
