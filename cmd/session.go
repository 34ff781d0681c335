package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bnema/vpnc/internal/adapters/render/screen"
	"github.com/bnema/vpnc/internal/application"
	"github.com/bnema/vpnc/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// startSession wires a session and runs the bootstrap. It only returns a
// session that reached the home screen.
func (a *app) startSession(cmd *cobra.Command, spin bool) (*session, error) {
	s, err := a.openSession(sessionOptions{
		logOutput: cmd.ErrOrStderr(),
		clipboard: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}

	start := func(ctx context.Context) error {
		return s.controller.Start(ctx)
	}
	if spin {
		err = screen.RunTask(cmd.Context(), cmd.ErrOrStderr(), "Connecting...", start)
	} else {
		err = start(cmd.Context())
	}

	snapshot := s.controller.Snapshot()
	if snapshot.Screen.Kind != domain.ScreenHome {
		s.Close()
		return nil, bootstrapError(snapshot, err)
	}

	return s, nil
}

type statusView struct {
	State       string       `json:"state"`
	ExpiresAt   *time.Time   `json:"expires_at,omitempty"`
	DaysLeft    *int         `json:"days_left,omitempty"`
	Progress    *int         `json:"progress,omitempty"`
	Servers     []serverView `json:"servers"`
	DisplayName string       `json:"display_name,omitempty"`
}

type serverView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type locationView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	FreeSlots   *int   `json:"free_slots,omitempty"`
	Recommended bool   `json:"recommended"`
}

type planView struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	PeriodDays  int      `json:"period_days"`
	Description string   `json:"description,omitempty"`
	Top         bool     `json:"top"`
	Price       string   `json:"price"`
	Methods     []string `json:"methods"`
}

func toStatusView(status domain.SubscriptionStatus) statusView {
	servers := make([]serverView, 0, len(status.AssignedServers))
	for _, server := range status.AssignedServers {
		servers = append(servers, serverView{ID: server.ID, Name: server.Name})
	}

	return statusView{
		State:       strings.ToLower(string(status.State)),
		ExpiresAt:   status.ExpiresAt,
		DaysLeft:    status.DaysLeft,
		Progress:    status.ProgressPct,
		Servers:     servers,
		DisplayName: status.DisplayName,
	}
}

func toLocationViews(locations []domain.Location) []locationView {
	views := make([]locationView, 0, len(locations))
	for _, location := range locations {
		views = append(views, locationView{
			ID:          location.ID,
			Name:        location.Name,
			FreeSlots:   location.FreeSlots,
			Recommended: location.IsRecommended(),
		})
	}
	return views
}

func toPlanViews(offers []application.PlanOffer) []planView {
	views := make([]planView, 0, len(offers))
	for _, offer := range offers {
		methods := make([]string, 0, len(offer.Methods))
		for _, method := range offer.Methods {
			methods = append(methods, string(method))
		}
		views = append(views, planView{
			Key:         offer.Group.Key,
			Name:        offer.Group.DisplayName,
			PeriodDays:  offer.Group.PeriodDays,
			Description: offer.Group.Description,
			Top:         offer.Group.IsTop,
			Price:       offer.DisplayPrice,
			Methods:     methods,
		})
	}
	return views
}

func writeJSON(out io.Writer, value any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("238"))).
		Headers(headers...).
		Rows(rows...).
		String()
}

func writeNotice(cmd *cobra.Command, snapshot application.Snapshot) error {
	if snapshot.Notice == nil || snapshot.Notice.Message == "" {
		return nil
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), snapshot.Notice.Message)
	return err
}
