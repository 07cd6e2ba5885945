package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scoopctl/scoopctl/internal/adapters/outbound/audit"
	"github.com/scoopctl/scoopctl/internal/adapters/outbound/tui"
)

func newAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Inspect the data change journal",
	}
	cmd.AddCommand(newAuditLogCmd())
	return cmd
}

func newAuditLogCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show journal entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openShop(cmd)
			if err != nil {
				return err
			}

			// The journal can be read even when auditing is currently
			// switched off, as long as one exists.
			journal := s.journal
			if journal == nil {
				j, err := audit.Open(s.cfg.DataDir)
				if err != nil {
					return fmt.Errorf("opening audit journal: %w", err)
				}
				journal = j
			}

			entries, err := journal.Entries(limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderAuditLog(entries))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries to show (0 for all)")

	return cmd
}
