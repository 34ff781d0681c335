package platform

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/vpnc/internal/domain"
	portmocks "github.com/bnema/vpnc/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEnvSource(t *testing.T) {
	t.Parallel()

	env := map[string]string{"HOST_INIT": " query_id=1 ", "EMPTY_INIT": ""}
	lookup := func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}

	tests := []struct {
		name     string
		variable string
		want     string
		wantErr  error
	}{
		{name: "set", variable: "HOST_INIT", want: "query_id=1"},
		{name: "set but empty", variable: "EMPTY_INIT", want: ""},
		{name: "unset", variable: "MISSING_INIT", wantErr: domain.ErrPlatformUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := &EnvSource{variable: tt.variable, lookup: lookup}
			value, err := source.InitData(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, value)
		})
	}

	assert.Equal(t, "env:"+DefaultInitDataEnv, NewEnvSource("").Name())
}

func TestFileSourceReadsLateFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "init_data")
	source := NewFileSource(path)

	value, err := source.InitData(context.Background())
	require.NoError(t, err)
	assert.Empty(t, value)

	require.NoError(t, os.WriteFile(path, []byte("query_id=2&hash=x\n"), 0o600))

	value, err = source.InitData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "query_id=2&hash=x", value)
}

func TestFileSourceWithoutPathIsUnavailable(t *testing.T) {
	t.Parallel()

	_, err := NewFileSource(" ").InitData(context.Background())
	require.ErrorIs(t, err, domain.ErrPlatformUnavailable)
}

func TestFileSourceHonorsCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileSource(filepath.Join(t.TempDir(), "x")).InitData(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRelaySource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		launchURL string
		want      string
		wantErr   error
	}{
		{
			name:      "query string",
			launchURL: "https://app.example/?tgWebAppData=query_id%3D1%26hash%3Dabc",
			want:      "query_id=1&hash=abc",
		},
		{
			name:      "fragment",
			launchURL: "https://app.example/#tgWebAppData=query_id%3D1%26user%3D%257B%2522id%2522%253A1%257D%26hash%3Dabc&tgWebAppVersion=7.0",
			want:      "query_id=1&user=%7B%22id%22%3A1%7D&hash=abc",
		},
		{
			name:      "launch url without data",
			launchURL: "https://app.example/#tgWebAppVersion=7.0",
			want:      "",
		},
		{
			name:      "no launch url",
			launchURL: "",
			wantErr:   domain.ErrPlatformUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			value, err := NewRelaySource(tt.launchURL).InitData(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, value)
		})
	}
}

func newNamedSource(t *testing.T, name string) *portmocks.MockSessionSource {
	source := portmocks.NewMockSessionSource(t)
	source.EXPECT().Name().Return(name).Maybe()
	return source
}

func TestChainUsesPrimaryWhenItHasValue(t *testing.T) {
	t.Parallel()

	primary := newNamedSource(t, "env")
	fallback := newNamedSource(t, "file")
	chain := NewChain(primary, fallback)

	primary.EXPECT().InitData(mock.Anything).Return("from-env", nil).Once()

	value, err := chain.InitData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "from-env", value)
}

func TestChainFallsBackWhenPrimaryIsEmptyOrFails(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		primaryErr error
	}{
		{name: "empty primary"},
		{name: "unavailable primary", primaryErr: domain.ErrPlatformUnavailable},
		{name: "failing primary", primaryErr: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := newNamedSource(t, "env")
			fallback := newNamedSource(t, "file")
			chain := NewChain(primary, fallback)

			primary.EXPECT().InitData(mock.Anything).Return("", tt.primaryErr).Once()
			fallback.EXPECT().InitData(mock.Anything).Return("from-file", nil).Once()

			value, err := chain.InitData(context.Background())
			require.NoError(t, err)
			assert.Equal(t, "from-file", value)
		})
	}
}

func TestChainReportsUnavailableOnlyWhenBothAre(t *testing.T) {
	t.Parallel()

	primary := newNamedSource(t, "env")
	fallback := newNamedSource(t, "file")
	chain := NewChain(primary, fallback)

	primary.EXPECT().InitData(mock.Anything).Return("", domain.ErrPlatformUnavailable).Once()
	fallback.EXPECT().InitData(mock.Anything).Return("", domain.ErrPlatformUnavailable).Once()

	_, err := chain.InitData(context.Background())
	require.ErrorIs(t, err, domain.ErrPlatformUnavailable)
	assert.ErrorContains(t, err, "primary source env")
	assert.ErrorContains(t, err, "fallback source file")
}

func TestChainPresentPrimaryMasksUnavailableFallback(t *testing.T) {
	t.Parallel()

	primary := newNamedSource(t, "env")
	fallback := newNamedSource(t, "file")
	chain := NewChain(primary, fallback)

	primary.EXPECT().InitData(mock.Anything).Return("", nil).Once()
	fallback.EXPECT().InitData(mock.Anything).Return("", domain.ErrPlatformUnavailable).Once()

	value, err := chain.InitData(context.Background())
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestChainReturnsRealFailureOverUnavailable(t *testing.T) {
	t.Parallel()

	primary := newNamedSource(t, "env")
	fallback := newNamedSource(t, "file")
	chain := NewChain(primary, fallback)

	readErr := errors.New("permission denied")
	primary.EXPECT().InitData(mock.Anything).Return("", domain.ErrPlatformUnavailable).Once()
	fallback.EXPECT().InitData(mock.Anything).Return("", readErr).Once()

	_, err := chain.InitData(context.Background())
	require.ErrorIs(t, err, readErr)
	assert.False(t, errors.Is(err, domain.ErrPlatformUnavailable))
}

func TestChainDoesNotFallBackOnCancellation(t *testing.T) {
	t.Parallel()

	primary := newNamedSource(t, "env")
	fallback := newNamedSource(t, "file")
	chain := NewChain(primary, fallback)

	primary.EXPECT().InitData(mock.Anything).Return("", context.Canceled).Once()

	_, err := chain.InitData(context.Background())
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewChainCheckedRejectsNilSources(t *testing.T) {
	t.Parallel()

	_, err := NewChainChecked(nil, NewFileSource(""))
	require.ErrorIs(t, err, errNilPrimarySource)

	_, err = NewChainChecked(NewFileSource(""), nil)
	require.ErrorIs(t, err, errNilFallbackSource)
}
