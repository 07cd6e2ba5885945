package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const configFileName = ".scoopctl.yaml"

func newInitCmd() *cobra.Command {
	var (
		force bool
		seed  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .scoopctl.yaml configuration file",
		Long:  "Create a .scoopctl.yaml with sensible defaults in the working directory, optionally seeding the sample menu.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				if _, err := os.Stat(configFileName); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
				}
			}

			if err := os.WriteFile(configFileName, []byte(defaultConfigFile), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)

			if seed {
				s, err := openShop(cmd)
				if err != nil {
					return err
				}
				if !s.menu.Seed() {
					return fmt.Errorf("seeding menu failed")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Seeded sample menu (%d items)\n", len(s.menu.Items()))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .scoopctl.yaml")
	cmd.Flags().BoolVar(&seed, "seed", false, "Load the sample menu into an empty catalog")

	return cmd
}

const defaultConfigFile = `# scoopctl configuration

shop_name: Ice Cream Shop
data_dir: data
currency: "$"

# Order id generation: random (ORD + 4 digits, no uniqueness guarantee)
# or uuid (ORD- prefix, collision-free).
id_scheme: random

# Keep a git-backed change journal of the data directory.
audit: false
`
