package screen

import (
	"fmt"
	"strings"

	"github.com/bnema/vpnc/internal/application"
	"github.com/bnema/vpnc/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const progressWidth = 24

// RenderSnapshot draws one snapshot. It has no side effects; width <= 0
// disables wrapping.
func RenderSnapshot(snapshot application.Snapshot, width int) string {
	return renderView(snapshot, width, newStyles())
}

func renderView(snapshot application.Snapshot, width int, s styles) string {
	var lines []string
	switch snapshot.Screen.Kind {
	case domain.ScreenLoading:
		lines = []string{s.faint.Render("Connecting...")}
	case domain.ScreenFatalError:
		lines = renderFatal(snapshot, s)
	case domain.ScreenStandaloneGate:
		lines = renderStandalone(snapshot, s)
	case domain.ScreenBrowserLoginGate:
		lines = renderBrowserLogin(snapshot, s)
	case domain.ScreenHome:
		lines = renderHome(snapshot, s)
	case domain.ScreenConfig:
		lines = renderConfig(snapshot, s)
	case domain.ScreenPlans:
		lines = renderPlans(snapshot, s)
	case domain.ScreenHelp:
		lines = renderHelp(s)
	default:
		lines = []string{s.faint.Render(string(snapshot.Screen.Kind))}
	}

	if notice := renderNotice(snapshot.Notice, s); notice != "" {
		lines = append(lines, s.section.Render(notice))
	}

	view := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if width > 0 {
		view = lipgloss.NewStyle().Width(width).Render(view)
	}
	return view
}

func renderFatal(snapshot application.Snapshot, s styles) []string {
	return []string{
		s.fatal.Render("Something went wrong"),
		s.detail.Render(snapshot.Screen.Message),
		hints(s, "r retry", "q quit"),
	}
}

func renderStandalone(snapshot application.Snapshot, s styles) []string {
	return []string{
		s.title.Render("Sign in required"),
		s.detail.Render(snapshot.Screen.Message),
		hints(s, "b sign in with the bot", "r retry", "q quit"),
	}
}

func renderBrowserLogin(snapshot application.Snapshot, s styles) []string {
	lines := []string{s.title.Render("Sign in with the bot")}

	login := snapshot.Screen.Login
	if login == nil {
		return append(lines, hints(s, "b start", "r retry", "q quit"))
	}

	if login.BotURL != "" {
		lines = append(lines, s.detail.Render("open: ")+s.accent.Render(login.BotURL))
	}
	switch login.Status {
	case domain.BrowserLoginExpired:
		lines = append(lines, s.errNotice.Render("link expired"))
		lines = append(lines, hints(s, "b new link", "r retry", "q quit"))
	default:
		lines = append(lines, s.header.Render(fmt.Sprintf("waiting for confirmation until %s", login.ExpiresAt.Format("15:04:05"))))
		lines = append(lines, hints(s, "r restart", "q quit"))
	}
	return lines
}

func renderHome(snapshot application.Snapshot, s styles) []string {
	lines := []string{s.title.Render("VPN subscription")}

	status := snapshot.Status
	if status == nil {
		lines = append(lines, s.faint.Render("status unavailable"))
	} else {
		if status.DisplayName != "" {
			lines = append(lines, s.accent.Render(status.DisplayName))
		}
		lines = append(lines, s.detail.Render("status: "+stateLabel(status.State)))
		if expiry := expiryLine(*status); expiry != "" {
			lines = append(lines, s.detail.Render(expiry))
		}
		if status.ProgressPct != nil {
			pct := domain.ClampPercent(*status.ProgressPct)
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, renderProgressBar(pct, progressWidth, s), " ", s.detail.Render(fmt.Sprintf("%d%%", pct))))
		}
		if status.HasAssignedServer() {
			names := make([]string, 0, len(status.AssignedServers))
			for _, server := range status.AssignedServers {
				names = append(names, serverLabel(server))
			}
			lines = append(lines, s.detail.Render("server: "+strings.Join(names, ", ")))
		} else {
			lines = append(lines, s.faint.Render("no server assigned"))
		}
	}

	lines = append(lines, s.section.Render(renderLocations(snapshot, s)))

	keys := []string{"p plans"}
	if status != nil && status.HasAssignedServer() {
		keys = append(keys, "c config")
	}
	keys = append(keys, "1-9 activate", "l refresh", "r reload", "h help", "q quit")
	return append(lines, hints(s, keys...))
}

func renderLocations(snapshot application.Snapshot, s styles) string {
	header := "Locations"
	if snapshot.Busy.Locations {
		header += " " + s.faint.Render("(refreshing)")
	}
	lines := []string{s.title.Render(header)}

	if len(snapshot.Locations) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(lines, s.faint.Render("No locations loaded."))...)
	}

	for i, location := range snapshot.Locations {
		line := fmt.Sprintf("%d. %s", i+1, location.Name)
		if location.FreeSlots != nil {
			line += s.header.Render(fmt.Sprintf("  %s free", humanize.Comma(int64(*location.FreeSlots))))
		}
		if location.IsRecommended() {
			line += " " + s.badge.Render("recommended")
		}
		if snapshot.Busy.IsActivating(location.ID) {
			line += " " + s.faint.Render("(activating)")
		}
		lines = append(lines, s.detail.Render(line))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderConfig(snapshot application.Snapshot, s styles) []string {
	lines := []string{s.title.Render("Connection config")}

	switch {
	case snapshot.Connection != nil:
		if snapshot.Connection.ServerName != "" {
			lines = append(lines, s.accent.Render(snapshot.Connection.ServerName))
		}
		lines = append(lines, s.payload.Render(snapshot.Connection.Payload))
	case snapshot.Busy.Config:
		lines = append(lines, s.faint.Render("Loading config..."))
	default:
		lines = append(lines, s.faint.Render("Config not loaded."))
	}

	return append(lines, hints(s, "x copy", "esc back", "h help", "q quit"))
}

func renderPlans(snapshot application.Snapshot, s styles) []string {
	header := "Plans"
	if snapshot.Busy.Plans {
		header += " " + s.faint.Render("(refreshing)")
	}
	lines := []string{s.title.Render(header)}

	if len(snapshot.Plans) == 0 {
		lines = append(lines, s.faint.Render("No plans available."))
	}

	for i, offer := range snapshot.Plans {
		selected := offer.Group.Key == snapshot.SelectedPlan
		line := fmt.Sprintf("%d. %s · %s", i+1, offer.Group.DisplayName, daysLabel(offer.Group.PeriodDays))
		if offer.DisplayPrice != "" {
			line += "  " + offer.DisplayPrice
		}
		style := s.detail
		if selected {
			line = "> " + line
			style = s.selected
		} else {
			line = "  " + line
		}
		if offer.Group.IsTop {
			line += " " + s.badge.Render("★ top")
		}
		lines = append(lines, style.Render(line))

		if !selected {
			continue
		}
		if offer.Group.Description != "" {
			lines = append(lines, s.faint.Render("    "+offer.Group.Description))
		}
		if offer.Paying {
			lines = append(lines, s.faint.Render("    payment in progress..."))
		} else if len(offer.Methods) > 0 {
			lines = append(lines, s.header.Render("    pay with: "+methodKeys(offer.Methods)))
		} else {
			lines = append(lines, s.faint.Render("    no payment method available"))
		}
	}

	if continuation := renderContinuation(snapshot.Continuation, s); continuation != "" {
		lines = append(lines, s.section.Render(continuation))
	}

	return append(lines, hints(s, "1-9 select", "k card", "y crypto", "s stars", "esc back", "q quit"))
}

func renderContinuation(continuation *domain.PaymentContinuation, s styles) string {
	if continuation == nil {
		return ""
	}
	switch continuation.Kind {
	case domain.ContinuationInvoice:
		return s.detail.Render("invoice: ") + s.accent.Render(continuation.Invoice)
	case domain.ContinuationCheckoutURL:
		return s.detail.Render("complete payment: ") + s.accent.Render(continuation.URL)
	default:
		return ""
	}
}

func renderHelp(s styles) []string {
	rows := [][2]string{
		{"r", "retry or reload status"},
		{"esc", "back to home"},
		{"c", "connection config"},
		{"p", "plans"},
		{"l", "refresh locations"},
		{"1-9", "activate location / select plan"},
		{"k y s", "pay by card / crypto / stars"},
		{"x", "copy config"},
		{"b", "sign in with the bot"},
		{"d", "dismiss notice"},
		{"q", "quit"},
	}

	lines := []string{s.title.Render("Keys")}
	for _, row := range rows {
		lines = append(lines, s.accent.Render(fmt.Sprintf("%-6s", row[0]))+s.detail.Render(row[1]))
	}
	return append(lines, hints(s, "esc back"))
}

func renderNotice(notice *domain.Notice, s styles) string {
	if notice == nil || notice.Message == "" {
		return ""
	}
	if notice.Kind == domain.NoticeSuccess {
		return s.okNotice.Render(notice.Message)
	}
	return s.errNotice.Render(notice.Message)
}

func renderProgressBar(percent int, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := width * domain.ClampPercent(percent) / 100
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func hints(s styles, keys ...string) string {
	return s.hint.Render(strings.Join(keys, " · "))
}

func stateLabel(state domain.SubscriptionState) string {
	switch state {
	case domain.SubscriptionActive:
		return "active"
	case domain.SubscriptionBlocked:
		return "blocked"
	case domain.SubscriptionExpired:
		return "expired"
	default:
		return "new"
	}
}

func expiryLine(status domain.SubscriptionStatus) string {
	var parts []string
	if status.ExpiresAt != nil {
		parts = append(parts, "expires "+status.ExpiresAt.Format("2006-01-02"))
	}
	if status.DaysLeft != nil {
		parts = append(parts, daysLabel(*status.DaysLeft)+" left")
	}
	return strings.Join(parts, ", ")
}

func serverLabel(server domain.AssignedServer) string {
	if server.Name != "" {
		return server.Name
	}
	return server.ID
}

func daysLabel(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%s days", humanize.Comma(int64(days)))
}

func methodKeys(methods []domain.Provider) string {
	keys := make([]string, 0, len(methods))
	for _, method := range methods {
		if key, ok := providerKeys[method]; ok {
			keys = append(keys, key+" "+string(method))
		}
	}
	return strings.Join(keys, ", ")
}
