package platform

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/bnema/vpnc/internal/domain"
	"github.com/bnema/vpnc/internal/ports"
)

const launchParam = "tgWebAppData"

// RelaySource extracts the credential the host relays through the launch
// URL, either in the query string or in the fragment.
type RelaySource struct {
	launchURL string
}

var _ ports.SessionSource = (*RelaySource)(nil)

func NewRelaySource(launchURL string) *RelaySource {
	return &RelaySource{launchURL: strings.TrimSpace(launchURL)}
}

func (s *RelaySource) Name() string {
	return "relay"
}

func (s *RelaySource) InitData(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.launchURL == "" {
		return "", domain.ErrPlatformUnavailable
	}

	parsed, err := url.Parse(s.launchURL)
	if err != nil {
		return "", fmt.Errorf("parse launch url: %w", err)
	}

	if value := parsed.Query().Get(launchParam); value != "" {
		return strings.TrimSpace(value), nil
	}

	fragment, err := url.ParseQuery(parsed.EscapedFragment())
	if err != nil {
		return "", fmt.Errorf("parse launch url fragment: %w", err)
	}
	return strings.TrimSpace(fragment.Get(launchParam)), nil
}
