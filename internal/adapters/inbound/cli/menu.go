package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scoopctl/scoopctl/internal/adapters/outbound/tui"
	"github.com/scoopctl/scoopctl/internal/domain"
)

func newMenuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Manage the menu catalog",
	}
	cmd.AddCommand(newMenuListCmd())
	cmd.AddCommand(newMenuAddCmd())
	return cmd
}

func newMenuListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the full menu grouped by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openShop(cmd)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderMenu(s.cfg.ShopName, s.menu.Items(), s.cfg.Currency))
			return nil
		},
	}
}

func newMenuAddCmd() *cobra.Command {
	var (
		itemID   string
		name     string
		price    float64
		category string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new item to the menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := domain.Category(category)
			valid := false
			for _, c := range domain.Categories {
				if cat == c {
					valid = true
					break
				}
			}
			if !valid {
				return fmt.Errorf("unknown category %q (valid: flavor, topping, container)", category)
			}

			s, err := openShop(cmd)
			if err != nil {
				return err
			}
			if !s.menu.AddItem(itemID, name, price, cat) {
				return fmt.Errorf("saving menu failed")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", name, itemID)
			return nil
		},
	}

	cmd.Flags().StringVar(&itemID, "id", "", "Item id (e.g. F04)")
	cmd.Flags().StringVar(&name, "name", "", "Item name")
	cmd.Flags().Float64Var(&price, "price", 0, "Unit price")
	cmd.Flags().StringVar(&category, "category", "", "Category (flavor, topping, container)")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
