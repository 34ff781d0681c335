package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/vpnc/internal/application"
	"github.com/spf13/cobra"
)

func newPlansCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "plans",
		Short: "List purchasable plans with their prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.startSession(cmd, !asJSON)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.controller.OpenPlans(cmd.Context()); err != nil {
				return actionError(s.controller.Snapshot(), err)
			}
			snapshot := s.controller.Snapshot()

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), toPlanViews(snapshot.Plans))
			}

			if len(snapshot.Plans) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "No plans available.")
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderPlansTable(snapshot.Plans))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func renderPlansTable(offers []application.PlanOffer) string {
	rows := make([][]string, 0, len(offers))
	for _, offer := range offers {
		name := offer.Group.DisplayName
		if offer.Group.IsTop {
			name += " ★"
		}
		methods := make([]string, 0, len(offer.Methods))
		for _, method := range offer.Methods {
			methods = append(methods, string(method))
		}
		rows = append(rows, []string{
			offer.Group.Key,
			name,
			strconv.Itoa(offer.Group.PeriodDays),
			offer.DisplayPrice,
			strings.Join(methods, ", "),
		})
	}

	return renderTable([]string{"KEY", "PLAN", "DAYS", "PRICE", "METHODS"}, rows)
}
