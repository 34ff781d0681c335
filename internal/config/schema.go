package config

import (
	"fmt"
	"time"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version   int             `toml:"version"`
	API       apiSchema       `toml:"api"`
	Platform  platformSchema  `toml:"platform"`
	Bootstrap bootstrapSchema `toml:"bootstrap"`
	Payments  paymentsSchema  `toml:"payments"`
	Pricing   pricingSchema   `toml:"pricing"`
	UI        uiSchema        `toml:"ui"`
	Log       logSchema       `toml:"log"`
}

type apiSchema struct {
	BaseURL string `toml:"base_url"`
	Timeout string `toml:"timeout"`
}

type platformSchema struct {
	InitDataEnv  string `toml:"init_data_env"`
	InitDataFile string `toml:"init_data_file,omitempty"`
}

type bootstrapSchema struct {
	PollAttempts int    `toml:"poll_attempts"`
	PollInterval string `toml:"poll_interval"`
	BrowserLogin *bool  `toml:"browser_login"`
}

type paymentsSchema struct {
	Providers      []string `toml:"providers"`
	ReconcileDelay string   `toml:"reconcile_delay"`
}

type pricingSchema struct {
	NativeCurrency        string              `toml:"native_currency"`
	CardCurrency          string              `toml:"card_currency"`
	CryptoPriority        map[string][]string `toml:"crypto_priority"`
	DefaultCryptoPriority []string            `toml:"default_crypto_priority"`
}

type uiSchema struct {
	Language string `toml:"language,omitempty"`
}

type logSchema struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
}

func defaultSchema() fileSchema {
	var s fileSchema
	s.applyDefaults()
	return s
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
	if s.API.BaseURL == "" {
		s.API.BaseURL = DefaultBaseURL
	}
	if s.API.Timeout == "" {
		s.API.Timeout = "15s"
	}
	if s.Platform.InitDataEnv == "" {
		s.Platform.InitDataEnv = "VPNC_INIT_DATA"
	}
	if s.Bootstrap.PollAttempts == 0 {
		s.Bootstrap.PollAttempts = 5
	}
	if s.Bootstrap.PollInterval == "" {
		s.Bootstrap.PollInterval = "200ms"
	}
	if s.Bootstrap.BrowserLogin == nil {
		enabled := true
		s.Bootstrap.BrowserLogin = &enabled
	}
	if len(s.Payments.Providers) == 0 {
		s.Payments.Providers = []string{"card", "crypto", "stars"}
	}
	if s.Payments.ReconcileDelay == "" {
		s.Payments.ReconcileDelay = "3s"
	}
	if s.Pricing.NativeCurrency == "" {
		s.Pricing.NativeCurrency = "XTR"
	}
	if s.Pricing.CardCurrency == "" {
		s.Pricing.CardCurrency = "RUB"
	}
	if s.Pricing.CryptoPriority == nil {
		s.Pricing.CryptoPriority = map[string][]string{"uk": {"UAH", "USD", "RUB"}}
	}
	if len(s.Pricing.DefaultCryptoPriority) == 0 {
		s.Pricing.DefaultCryptoPriority = []string{"USD", "RUB", "UAH"}
	}
	if s.Log.Level == "" {
		s.Log.Level = "warn"
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported config schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

func (s fileSchema) toSettings() (Settings, error) {
	timeout, err := parseDuration("api.timeout", s.API.Timeout)
	if err != nil {
		return Settings{}, err
	}
	pollInterval, err := parseDuration("bootstrap.poll_interval", s.Bootstrap.PollInterval)
	if err != nil {
		return Settings{}, err
	}
	reconcileDelay, err := parseDuration("payments.reconcile_delay", s.Payments.ReconcileDelay)
	if err != nil {
		return Settings{}, err
	}

	browserLogin := true
	if s.Bootstrap.BrowserLogin != nil {
		browserLogin = *s.Bootstrap.BrowserLogin
	}

	return Settings{
		API: APISettings{
			BaseURL: s.API.BaseURL,
			Timeout: timeout,
		},
		Platform: PlatformSettings{
			InitDataEnv:  s.Platform.InitDataEnv,
			InitDataFile: s.Platform.InitDataFile,
		},
		Bootstrap: BootstrapSettings{
			PollAttempts: s.Bootstrap.PollAttempts,
			PollInterval: pollInterval,
			BrowserLogin: browserLogin,
		},
		Payments: PaymentSettings{
			Providers:      append([]string(nil), s.Payments.Providers...),
			ReconcileDelay: reconcileDelay,
		},
		Pricing: PricingSettings{
			NativeCurrency:        s.Pricing.NativeCurrency,
			CardCurrency:          s.Pricing.CardCurrency,
			CryptoPriority:        s.Pricing.CryptoPriority,
			DefaultCryptoPriority: append([]string(nil), s.Pricing.DefaultCryptoPriority...),
		},
		UI:  UISettings{Language: s.UI.Language},
		Log: LogSettings{Level: s.Log.Level, File: s.Log.File},
	}, nil
}

func parseDuration(key, raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}
