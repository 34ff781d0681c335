package application

import (
	"context"
	"time"

	"github.com/bnema/vpnc/internal/ports"
	"github.com/cenkalti/backoff/v4"
	"github.com/filecoin-project/go-clock"
)

const (
	DefaultPollAttempts = 5
	DefaultPollInterval = 200 * time.Millisecond
)

// RetryPolicy bounds how long the client waits for the host to publish the
// credential.
type RetryPolicy struct {
	MaxAttempts int
	Interval    time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: DefaultPollAttempts, Interval: DefaultPollInterval}
}

func (p RetryPolicy) backOff(ctx context.Context) backoff.BackOff {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	return backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(p.Interval), uint64(attempts-1)),
		ctx,
	)
}

// clockTimer runs backoff waits on a ports.Clock.
type clockTimer struct {
	clock ports.Clock
	timer *clock.Timer
}

func newClockTimer(c ports.Clock) *clockTimer {
	return &clockTimer{clock: c}
}

func (t *clockTimer) Start(d time.Duration) {
	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = t.clock.Timer(d)
}

func (t *clockTimer) Stop() {
	if t.timer != nil {
		t.timer.Stop()
	}
}

func (t *clockTimer) C() <-chan time.Time {
	return t.timer.C
}
