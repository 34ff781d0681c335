package screen

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func newSpinner(s styles) spinner.Model {
	return spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(s.spinner))
}

// taskModel shows the loading line of the full screen while one task runs.
type taskModel struct {
	spinner spinner.Model
	styles  styles
	label   string
	run     tea.Cmd
	result  *actionDoneMsg
}

func (m taskModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run)
}

func (m taskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case actionDoneMsg:
		m.result = &msg
		return m, tea.Quit
	}
	return m, nil
}

func (m taskModel) View() string {
	if m.result != nil {
		return ""
	}
	return m.spinner.View() + " " + m.styles.header.Render(m.label) + "\n"
}

// RunTask runs task with a labelled spinner on output and returns the task's
// error. Cancelling ctx stops the spinner and returns ctx's error.
func RunTask(ctx context.Context, output io.Writer, label string, task func(context.Context) error) error {
	s := newStyles()
	m := taskModel{
		spinner: newSpinner(s),
		styles:  s,
		label:   label,
		run: func() tea.Msg {
			return actionDoneMsg{err: task(ctx)}
		},
	}

	final, err := tea.NewProgram(m, tea.WithInput(nil), tea.WithOutput(output), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	if done, ok := final.(taskModel); ok && done.result != nil {
		return done.result.err
	}
	return ctx.Err()
}
