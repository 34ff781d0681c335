package platform

import (
	"context"
	"os"
	"strings"

	"github.com/bnema/vpnc/internal/domain"
	"github.com/bnema/vpnc/internal/ports"
)

const DefaultInitDataEnv = "VPNC_INIT_DATA"

// EnvSource reads the credential from an environment variable exported by
// the host. An unset variable means there is no host.
type EnvSource struct {
	variable string
	lookup   func(string) (string, bool)
}

var _ ports.SessionSource = (*EnvSource)(nil)

func NewEnvSource(variable string) *EnvSource {
	if strings.TrimSpace(variable) == "" {
		variable = DefaultInitDataEnv
	}
	return &EnvSource{variable: variable, lookup: os.LookupEnv}
}

func (s *EnvSource) Name() string {
	return "env:" + s.variable
}

func (s *EnvSource) InitData(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	value, ok := s.lookup(s.variable)
	if !ok {
		return "", domain.ErrPlatformUnavailable
	}
	return strings.TrimSpace(value), nil
}
