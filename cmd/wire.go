package cmd

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/bnema/vpnc/internal/adapters/api"
	"github.com/bnema/vpnc/internal/adapters/clipboard"
	"github.com/bnema/vpnc/internal/adapters/platform"
	"github.com/bnema/vpnc/internal/application"
	"github.com/bnema/vpnc/internal/config"
	"github.com/bnema/vpnc/internal/domain"
	"github.com/bnema/vpnc/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	config     *viper.Viper
	launchURL  string
	httpClient *http.Client
	clock      ports.Clock
}

func newApp() *app {
	return &app{
		config:     viper.New(),
		httpClient: http.DefaultClient,
		clock:      ports.NewSystemClock(),
	}
}

// session is one wired controller plus the resources it holds.
type session struct {
	settings   config.Settings
	logger     *zap.Logger
	controller *application.Controller
	closers    []func()
}

func (s *session) Close() {
	s.controller.Close()
	s.closeResources()
}

type sessionOptions struct {
	// logOutput receives JSON log lines; nil means log.file or nowhere.
	logOutput io.Writer
	clipboard io.Writer
}

func (a *app) openSession(opts sessionOptions) (*session, error) {
	settings, err := config.Load(a.config)
	if err != nil {
		return nil, err
	}

	s := &session{settings: settings}

	logger, closeLog, err := newLogger(settings.Log, opts.logOutput)
	if err != nil {
		return nil, err
	}
	s.logger = logger
	if closeLog != nil {
		s.closers = append(s.closers, closeLog)
	}

	providers, err := settings.EnabledProviders()
	if err != nil {
		s.closeResources()
		return nil, err
	}

	accessor, err := platform.NewChainChecked(
		platform.NewEnvSource(settings.Platform.InitDataEnv),
		platform.NewFileSource(settings.Platform.InitDataFile),
	)
	if err != nil {
		s.closeResources()
		return nil, fmt.Errorf("wire credential accessor: %w", err)
	}

	resolver := application.NewCredentialResolver(
		accessor,
		platform.NewRelaySource(a.launchURL),
		application.RetryPolicy{
			MaxAttempts: settings.Bootstrap.PollAttempts,
			Interval:    settings.Bootstrap.PollInterval,
		},
		a.clock,
		logger,
	)

	client := api.Client{
		BaseURL:        settings.API.BaseURL,
		HTTPClient:     a.httpClient,
		RequestTimeout: settings.API.Timeout,
		Logger:         logger,
	}

	s.controller = application.NewController(
		resolver,
		client,
		clipboard.NewTerminal(opts.clipboard),
		a.clock,
		application.ControllerOptions{
			Language:       settings.UI.Language,
			Providers:      providers,
			Policy:         settings.CurrencyPolicy(),
			BrowserLogin:   settings.Bootstrap.BrowserLogin,
			ReconcileDelay: settings.Payments.ReconcileDelay,
		},
		logger,
	)

	logger.Debug("session wired",
		zap.String("config", settings.Path),
		zap.String("api", settings.API.BaseURL),
		zap.Bool("launch_url", a.launchURL != ""),
	)

	return s, nil
}

func (s *session) closeResources() {
	_ = s.logger.Sync()
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// newLogger writes JSON lines at the configured level to out. With no out the
// lines go to log.file when set and are dropped otherwise.
func newLogger(settings config.LogSettings, out io.Writer) (*zap.Logger, func(), error) {
	level, err := zapcore.ParseLevel(settings.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}

	var closeFn func()
	if out == nil {
		if settings.File == "" {
			return zap.NewNop(), nil, nil
		}
		file, err := os.OpenFile(settings.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = file
		closeFn = func() { _ = file.Close() }
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(out), level)

	return zap.New(core), closeFn, nil
}

// bootstrapError explains why the session could not reach the home screen.
func bootstrapError(snapshot application.Snapshot, err error) error {
	switch snapshot.Screen.Kind {
	case domain.ScreenStandaloneGate:
		return fmt.Errorf("%s (run `vpnc ui` to sign in with the bot): %w", snapshot.Screen.Message, domain.ErrStandaloneAccess)
	case domain.ScreenFatalError:
		if err == nil {
			err = errors.New("bootstrap failed")
		}
		return &commandError{message: snapshot.Screen.Message, err: err}
	}
	if err != nil {
		return err
	}
	return fmt.Errorf("session stopped on %s screen", snapshot.Screen.Kind)
}

// commandError carries the localized message the controller published while
// keeping the underlying error for errors.Is.
type commandError struct {
	message string
	err     error
}

func (e *commandError) Error() string {
	if e.message == "" {
		return e.err.Error()
	}
	return e.message
}

func (e *commandError) Unwrap() error {
	return e.err
}

func actionError(snapshot application.Snapshot, err error) error {
	if err == nil {
		return nil
	}
	if snapshot.Notice != nil && snapshot.Notice.Kind == domain.NoticeError {
		return &commandError{message: snapshot.Notice.Message, err: err}
	}
	return err
}
