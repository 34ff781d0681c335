package cmd

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newLocationsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "locations",
		Short: "List VPN locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.startSession(cmd, !asJSON)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.controller.RefreshLocations(cmd.Context()); err != nil {
				return actionError(s.controller.Snapshot(), err)
			}
			snapshot := s.controller.Snapshot()

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), toLocationViews(snapshot.Locations))
			}

			if len(snapshot.Locations) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "No locations available.")
				return err
			}

			rows := make([][]string, 0, len(snapshot.Locations))
			for i, location := range snapshot.Locations {
				free := "-"
				if location.FreeSlots != nil {
					free = humanize.Comma(int64(*location.FreeSlots))
				}
				recommended := ""
				if location.IsRecommended() {
					recommended = "yes"
				}
				rows = append(rows, []string{strconv.Itoa(i + 1), location.ID, location.Name, free, recommended})
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"#", "ID", "NAME", "FREE", "RECOMMENDED"}, rows))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.AddCommand(newLocationsActivateCmd(app))

	return cmd
}

func newLocationsActivateCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "activate <location-id>",
		Short: "Move the subscription to another location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.startSession(cmd, true)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.controller.ActivateLocation(cmd.Context(), args[0]); err != nil {
				return actionError(s.controller.Snapshot(), err)
			}

			return writeNotice(cmd, s.controller.Snapshot())
		},
	}
}
