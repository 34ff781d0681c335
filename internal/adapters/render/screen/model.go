package screen

import (
	"context"
	"errors"
	"io"
	"strconv"

	"github.com/bnema/vpnc/internal/application"
	"github.com/bnema/vpnc/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Controller is the part of the session controller the screen drives.
type Controller interface {
	Start(ctx context.Context) error
	Dispatch(ctx context.Context, cmd application.Command) error
	Snapshot() application.Snapshot
	Changes() <-chan struct{}
}

type RunOptions struct {
	Input     io.Reader
	Output    io.Writer
	AltScreen bool
}

var providerKeys = map[domain.Provider]string{
	domain.ProviderCard:   "k",
	domain.ProviderCrypto: "y",
	domain.ProviderStars:  "s",
}

type changedMsg struct{}

type actionDoneMsg struct {
	action application.Action
	err    error
}

type model struct {
	ctx        context.Context
	controller Controller
	snapshot   application.Snapshot
	spinner    spinner.Model
	styles     styles
	width      int
	lastErr    error
	quitting   bool
}

func newModel(ctx context.Context, controller Controller) model {
	s := newStyles()
	return model{
		ctx:        ctx,
		controller: controller,
		snapshot:   controller.Snapshot(),
		spinner:    newSpinner(s),
		styles:     s,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.start(), m.waitForChange())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case changedMsg:
		m.snapshot = m.controller.Snapshot()
		return m, m.waitForChange()
	case actionDoneMsg:
		m.lastErr = msg.err
		m.snapshot = m.controller.Snapshot()
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		key := msg.String()
		if key == "q" || key == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		m.lastErr = nil
		if command, ok := commandFor(key, m.snapshot); ok {
			return m, m.dispatch(command)
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	view := renderView(m.snapshot, m.width, m.styles)
	if reason := ignoredReason(m.lastErr); reason != "" && m.snapshot.Notice == nil {
		view += "\n" + m.styles.faint.Render(reason)
	}
	if m.snapshot.Screen.Kind == domain.ScreenLoading {
		return m.spinner.View() + " " + view
	}
	return view
}

// ignoredReason explains actions the controller turned down without a notice.
func ignoredReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrActionInProgress), errors.Is(err, domain.ErrPaymentInProgress):
		return "already in progress"
	case errors.Is(err, domain.ErrNoAssignedLocation):
		return "no server assigned yet"
	default:
		return ""
	}
}

func (m model) start() tea.Cmd {
	ctx, controller := m.ctx, m.controller
	return func() tea.Msg {
		return actionDoneMsg{err: controller.Start(ctx)}
	}
}

func (m model) dispatch(command application.Command) tea.Cmd {
	ctx, controller := m.ctx, m.controller
	return func() tea.Msg {
		return actionDoneMsg{action: command.Action, err: controller.Dispatch(ctx, command)}
	}
}

func (m model) waitForChange() tea.Cmd {
	ctx, changes := m.ctx, m.controller.Changes()
	return func() tea.Msg {
		select {
		case <-changes:
			return changedMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}

// commandFor maps a key press on the current screen onto a controller action.
func commandFor(key string, snapshot application.Snapshot) (application.Command, bool) {
	kind := snapshot.Screen.Kind

	switch key {
	case "r":
		switch kind {
		case domain.ScreenFatalError, domain.ScreenStandaloneGate, domain.ScreenBrowserLoginGate:
			return application.Command{Action: application.ActionRetry}, true
		case domain.ScreenHome:
			return application.Command{Action: application.ActionRefreshStatus}, true
		}
	case "esc", "backspace":
		if snapshot.BackVisible {
			return application.Command{Action: application.ActionGoHome}, true
		}
	case "c":
		return application.Command{Action: application.ActionOpenConfig}, true
	case "p":
		return application.Command{Action: application.ActionOpenPlans}, true
	case "h", "?":
		return application.Command{Action: application.ActionOpenHelp}, true
	case "l":
		if kind == domain.ScreenHome {
			return application.Command{Action: application.ActionRefreshLocations}, true
		}
	case "x":
		if kind == domain.ScreenConfig {
			return application.Command{Action: application.ActionCopyConfig}, true
		}
	case "b":
		if kind == domain.ScreenStandaloneGate || kind == domain.ScreenBrowserLoginGate {
			return application.Command{Action: application.ActionStartBrowserLogin}, true
		}
	case "d":
		if snapshot.Notice != nil {
			return application.Command{Action: application.ActionClearNotice}, true
		}
	case "k", "y", "s":
		if kind == domain.ScreenPlans && snapshot.SelectedPlan != "" {
			for provider, providerKey := range providerKeys {
				if providerKey == key {
					return application.Command{
						Action:   application.ActionChoosePaymentMethod,
						PlanKey:  snapshot.SelectedPlan,
						Provider: provider,
					}, true
				}
			}
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		index, _ := strconv.Atoi(key)
		index--
		switch kind {
		case domain.ScreenHome:
			if index < len(snapshot.Locations) {
				return application.Command{Action: application.ActionActivateLocation, LocationID: snapshot.Locations[index].ID}, true
			}
		case domain.ScreenPlans:
			if index < len(snapshot.Plans) {
				return application.Command{Action: application.ActionSelectPlan, PlanKey: snapshot.Plans[index].Group.Key}, true
			}
		}
	}

	return application.Command{}, false
}

// Run drives controller from an interactive terminal until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, controller Controller, opts RunOptions) error {
	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	_, err := tea.NewProgram(newModel(ctx, controller), programOpts...).Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
