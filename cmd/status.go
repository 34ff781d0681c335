package cmd

import (
	"fmt"

	"github.com/bnema/vpnc/internal/adapters/render/screen"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the subscription status and locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.startSession(cmd, !asJSON)
			if err != nil {
				return err
			}
			defer s.Close()

			// Locations load in the background after bootstrap.
			s.controller.Wait()
			snapshot := s.controller.Snapshot()

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), toStatusView(*snapshot.Status))
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), screen.RenderSnapshot(snapshot, 0))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
