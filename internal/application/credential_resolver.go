package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/vpnc/internal/domain"
	"github.com/bnema/vpnc/internal/ports"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

var errCredentialPending = errors.New("credential not published yet")

// CredentialResolver acquires the platform credential. The accessor is read
// repeatedly under the retry policy; the relay is consulted once afterwards.
type CredentialResolver struct {
	accessor ports.SessionSource
	relay    ports.SessionSource
	policy   RetryPolicy
	clock    ports.Clock
	logger   *zap.Logger
}

func NewCredentialResolver(accessor, relay ports.SessionSource, policy RetryPolicy, clock ports.Clock, logger *zap.Logger) *CredentialResolver {
	if clock == nil {
		clock = ports.NewSystemClock()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CredentialResolver{
		accessor: accessor,
		relay:    relay,
		policy:   policy,
		clock:    clock,
		logger:   logger,
	}
}

func (r *CredentialResolver) Resolve(ctx context.Context) (domain.Credential, error) {
	sources, unavailable := 0, 0

	if r.accessor != nil {
		sources++
		credential, err := r.poll(ctx)
		switch {
		case err == nil:
			return credential, nil
		case ctx.Err() != nil:
			return "", ctx.Err()
		case errors.Is(err, domain.ErrPlatformUnavailable):
			unavailable++
		case !errors.Is(err, errCredentialPending):
			r.logger.Debug("credential accessor failed", zap.String("source", r.accessor.Name()), zap.Error(err))
		}
	}

	if r.relay != nil {
		sources++
		raw, err := r.relay.InitData(ctx)
		switch {
		case err == nil && strings.TrimSpace(raw) != "":
			r.logger.Debug("credential taken from relay", zap.String("source", r.relay.Name()))
			return domain.Credential(strings.TrimSpace(raw)), nil
		case errors.Is(err, domain.ErrPlatformUnavailable):
			unavailable++
		case err != nil:
			r.logger.Debug("credential relay failed", zap.String("source", r.relay.Name()), zap.Error(err))
		}
	}

	if sources == unavailable {
		return "", domain.ErrStandaloneAccess
	}
	return "", domain.ErrCredentialUnavailable
}

func (r *CredentialResolver) poll(ctx context.Context) (domain.Credential, error) {
	attempts := 0
	var credential domain.Credential

	operation := func() error {
		attempts++
		raw, err := r.accessor.InitData(ctx)
		if err != nil {
			if errors.Is(err, domain.ErrPlatformUnavailable) {
				return backoff.Permanent(err)
			}
			return err
		}
		if strings.TrimSpace(raw) == "" {
			return errCredentialPending
		}
		credential = domain.Credential(strings.TrimSpace(raw))
		return nil
	}

	err := backoff.RetryNotifyWithTimer(operation, r.policy.backOff(ctx), nil, newClockTimer(r.clock))
	if err != nil {
		r.logger.Debug("credential poll gave up", zap.String("source", r.accessor.Name()), zap.Int("attempts", attempts), zap.Error(err))
		return "", fmt.Errorf("poll %s: %w", r.accessor.Name(), err)
	}

	return credential, nil
}
