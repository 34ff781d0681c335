package platform

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/vpnc/internal/domain"
	"github.com/bnema/vpnc/internal/ports"
)

// Chain asks the primary source first and the fallback when the primary has
// nothing to offer.
type Chain struct {
	primary  ports.SessionSource
	fallback ports.SessionSource
}

var _ ports.SessionSource = (*Chain)(nil)

var (
	errNilPrimarySource  = errors.New("primary session source is nil")
	errNilFallbackSource = errors.New("fallback session source is nil")
)

func NewChain(primary ports.SessionSource, fallback ports.SessionSource) *Chain {
	chain, err := NewChainChecked(primary, fallback)
	if err != nil {
		panic(err)
	}

	return chain
}

func NewChainChecked(primary ports.SessionSource, fallback ports.SessionSource) (*Chain, error) {
	if primary == nil {
		return nil, errNilPrimarySource
	}
	if fallback == nil {
		return nil, errNilFallbackSource
	}

	return &Chain{primary: primary, fallback: fallback}, nil
}

func (c *Chain) Name() string {
	return fmt.Sprintf("chain(%s, %s)", c.primary.Name(), c.fallback.Name())
}

func (c *Chain) InitData(ctx context.Context) (string, error) {
	value, err := c.primary.InitData(ctx)
	if err == nil && value != "" {
		return value, nil
	}
	if err != nil && shouldSkipFallback(err) {
		return "", err
	}

	fallbackValue, fallbackErr := c.fallback.InitData(ctx)
	switch {
	case fallbackErr == nil:
		return fallbackValue, nil
	case err == nil:
		// The primary host exists but has not published anything yet.
		return "", nil
	case unavailable(err) && !unavailable(fallbackErr):
		return "", fallbackErr
	case unavailable(fallbackErr) && !unavailable(err):
		return "", err
	default:
		return "", fmt.Errorf("primary source %s failed: %w; fallback source %s failed: %w",
			c.primary.Name(), err, c.fallback.Name(), fallbackErr)
	}
}

func unavailable(err error) bool {
	return errors.Is(err, domain.ErrPlatformUnavailable)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
