package application

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/vpnc/internal/domain"
	"github.com/bnema/vpnc/internal/ports/mocks"
	"github.com/filecoin-project/go-clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func namedSource(t *testing.T, name string) *mocks.MockSessionSource {
	source := mocks.NewMockSessionSource(t)
	source.EXPECT().Name().Return(name).Maybe()
	return source
}

// resolveWithClock runs Resolve while advancing clk until it returns.
func resolveWithClock(t *testing.T, resolver *CredentialResolver, clk *clock.Mock) (domain.Credential, error) {
	t.Helper()

	type result struct {
		credential domain.Credential
		err        error
	}
	done := make(chan result, 1)
	go func() {
		credential, err := resolver.Resolve(context.Background())
		done <- result{credential: credential, err: err}
	}()

	var got result
	require.Eventually(t, func() bool {
		select {
		case got = <-done:
			return true
		default:
			clk.Add(DefaultPollInterval)
			return false
		}
	}, 5*time.Second, time.Millisecond)

	return got.credential, got.err
}

func TestCredentialResolverReadsAccessorExactlyFiveTimes(t *testing.T) {
	t.Parallel()

	clk := clock.NewMock()
	start := clk.Now()
	var reads atomic.Int32

	accessor := namedSource(t, "env")
	accessor.EXPECT().InitData(mock.Anything).RunAndReturn(func(context.Context) (string, error) {
		reads.Add(1)
		return "", nil
	}).Times(5)
	relay := namedSource(t, "relay")
	relay.EXPECT().InitData(mock.Anything).Return("", nil).Once()

	resolver := NewCredentialResolver(accessor, relay, DefaultRetryPolicy(), clk, zaptest.NewLogger(t))

	credential, err := resolveWithClock(t, resolver, clk)
	require.ErrorIs(t, err, domain.ErrCredentialUnavailable)
	assert.True(t, credential.IsEmpty())
	assert.Equal(t, int32(5), reads.Load())
	assert.GreaterOrEqual(t, clk.Since(start), 4*DefaultPollInterval)
}

func TestCredentialResolverPicksUpLateCredential(t *testing.T) {
	t.Parallel()

	clk := clock.NewMock()
	accessor := namedSource(t, "file")
	accessor.EXPECT().InitData(mock.Anything).Return("", nil).Twice()
	accessor.EXPECT().InitData(mock.Anything).Return(" query_id=1&hash=abc ", nil).Once()

	resolver := NewCredentialResolver(accessor, nil, DefaultRetryPolicy(), clk, zaptest.NewLogger(t))

	credential, err := resolveWithClock(t, resolver, clk)
	require.NoError(t, err)
	assert.Equal(t, domain.Credential("query_id=1&hash=abc"), credential)
}

func TestCredentialResolverFallsBackToRelay(t *testing.T) {
	t.Parallel()

	clk := clock.NewMock()
	accessor := namedSource(t, "env")
	accessor.EXPECT().InitData(mock.Anything).Return("", nil).Times(5)
	relay := namedSource(t, "relay")
	relay.EXPECT().InitData(mock.Anything).Return("relayed", nil).Once()

	resolver := NewCredentialResolver(accessor, relay, DefaultRetryPolicy(), clk, zaptest.NewLogger(t))

	credential, err := resolveWithClock(t, resolver, clk)
	require.NoError(t, err)
	assert.Equal(t, domain.Credential("relayed"), credential)
}

func TestCredentialResolverDetectsStandaloneAccess(t *testing.T) {
	t.Parallel()

	accessor := namedSource(t, "env")
	accessor.EXPECT().InitData(mock.Anything).Return("", domain.ErrPlatformUnavailable).Once()
	relay := namedSource(t, "relay")
	relay.EXPECT().InitData(mock.Anything).Return("", domain.ErrPlatformUnavailable).Once()

	resolver := NewCredentialResolver(accessor, relay, DefaultRetryPolicy(), clock.NewMock(), zaptest.NewLogger(t))

	_, err := resolver.Resolve(context.Background())
	require.ErrorIs(t, err, domain.ErrStandaloneAccess)
}

func TestCredentialResolverHostWithoutCredentialIsNotStandalone(t *testing.T) {
	t.Parallel()

	accessor := namedSource(t, "env")
	accessor.EXPECT().InitData(mock.Anything).Return("", domain.ErrPlatformUnavailable).Once()
	relay := namedSource(t, "relay")
	relay.EXPECT().InitData(mock.Anything).Return("", nil).Once()

	resolver := NewCredentialResolver(accessor, relay, DefaultRetryPolicy(), clock.NewMock(), zaptest.NewLogger(t))

	_, err := resolver.Resolve(context.Background())
	require.ErrorIs(t, err, domain.ErrCredentialUnavailable)
}

func TestCredentialResolverFirstReadWins(t *testing.T) {
	t.Parallel()

	accessor := namedSource(t, "env")
	accessor.EXPECT().InitData(mock.Anything).Return("token", nil).Once()
	relay := namedSource(t, "relay")

	resolver := NewCredentialResolver(accessor, relay, DefaultRetryPolicy(), clock.NewMock(), zaptest.NewLogger(t))

	credential, err := resolver.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Credential("token"), credential)
}

func TestCredentialResolverStopsOnCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	accessor := namedSource(t, "env")
	accessor.EXPECT().InitData(mock.Anything).Return("", nil).Maybe()
	relay := namedSource(t, "relay")

	resolver := NewCredentialResolver(accessor, relay, DefaultRetryPolicy(), clock.NewMock(), zaptest.NewLogger(t))

	_, err := resolver.Resolve(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
