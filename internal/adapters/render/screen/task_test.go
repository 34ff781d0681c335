package screen

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTaskReturnsTaskResult(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	tests := []struct {
		name    string
		taskErr error
	}{
		{name: "success", taskErr: nil},
		{name: "failure", taskErr: boom},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			ran := false
			err := RunTask(context.Background(), &out, "Connecting...", func(context.Context) error {
				ran = true
				return tc.taskErr
			})

			assert.True(t, ran)
			if tc.taskErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, boom)
		})
	}
}

func TestTaskModelViewHidesAfterDone(t *testing.T) {
	t.Parallel()

	s := newStyles()
	m := taskModel{spinner: newSpinner(s), styles: s, label: "Connecting..."}
	assert.Contains(t, m.View(), "Connecting...")

	updated, cmd := m.Update(actionDoneMsg{err: errors.New("boom")})
	require.NotNil(t, cmd)
	assert.Empty(t, updated.View())
	assert.EqualError(t, updated.(taskModel).result.err, "boom")
}
