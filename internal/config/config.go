package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/vpnc/internal/domain"
	"github.com/go-playground/validator"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName      = "config"
	configType      = "toml"
	configDirName   = "vpnc"
	configFileName  = "config.toml"
	configFileMode  = 0o600
	configDirMode   = 0o700
	tempFilePattern = ".config-*.toml.tmp"

	// PathKey holds an explicit config file path, usually bound to --config.
	PathKey = "config"

	DefaultBaseURL = "http://127.0.0.1:8000"
)

var ErrConfigExists = errors.New("config file already exists")

// Keys that may be overridden from the environment or from bound flags.
var overrideEnv = map[string]string{
	"api.base_url":            "VPNC_API_BASE_URL",
	"ui.language":             "VPNC_LANGUAGE",
	"log.level":               "VPNC_LOG_LEVEL",
	"platform.init_data_file": "VPNC_INIT_DATA_FILE",
}

type Settings struct {
	API       APISettings
	Platform  PlatformSettings
	Bootstrap BootstrapSettings
	Payments  PaymentSettings
	Pricing   PricingSettings
	UI        UISettings
	Log       LogSettings

	// Path is the file the settings were read from, empty when none exists.
	Path string `validate:"-"`
}

type APISettings struct {
	BaseURL string        `validate:"required,url"`
	Timeout time.Duration `validate:"gt=0"`
}

type PlatformSettings struct {
	InitDataEnv  string `validate:"required"`
	InitDataFile string
}

type BootstrapSettings struct {
	PollAttempts int           `validate:"min=1,max=50"`
	PollInterval time.Duration `validate:"gt=0"`
	BrowserLogin bool
}

type PaymentSettings struct {
	Providers      []string      `validate:"required,min=1,dive,oneof=card crypto stars"`
	ReconcileDelay time.Duration `validate:"gt=0"`
}

type PricingSettings struct {
	NativeCurrency        string `validate:"required,len=3"`
	CardCurrency          string `validate:"required,len=3"`
	CryptoPriority        map[string][]string
	DefaultCryptoPriority []string `validate:"required,min=1,dive,len=3"`
}

type UISettings struct {
	Language string `validate:"omitempty,oneof=en ru uk"`
}

type LogSettings struct {
	Level string `validate:"oneof=debug info warn error"`
	File  string
}

// Default returns the settings used when no config file exists.
func Default() Settings {
	settings, err := defaultSchema().toSettings()
	if err != nil {
		panic(err)
	}
	return settings
}

// Load locates the config file through cfg, decodes it and layers environment
// and flag overrides on top. A missing file yields the defaults.
func Load(cfg *viper.Viper) (Settings, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	explicit := strings.TrimSpace(cfg.GetString(PathKey))
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return Settings{}, fmt.Errorf("read config file: %w", err)
		}
		cfg.SetConfigFile(explicit)
	} else {
		dir, err := DefaultDir()
		if err != nil {
			return Settings{}, err
		}
		cfg.SetConfigName(configName)
		cfg.SetConfigType(configType)
		cfg.AddConfigPath(dir)
	}

	for key, env := range overrideEnv {
		if err := cfg.BindEnv(key, env); err != nil {
			return Settings{}, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	path := ""
	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Settings{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		path = cfg.ConfigFileUsed()
	}

	file, err := readSchema(path)
	if err != nil {
		return Settings{}, err
	}
	for key := range overrideEnv {
		if value := strings.TrimSpace(cfg.GetString(key)); value != "" {
			file.override(key, value)
		}
	}

	settings, err := file.toSettings()
	if err != nil {
		return Settings{}, err
	}
	settings.Path = path

	if err := Validate(settings); err != nil {
		return Settings{}, err
	}

	return settings, nil
}

func Validate(settings Settings) error {
	if err := validator.New().Struct(settings); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// DefaultDir is $XDG_CONFIG_HOME/vpnc, falling back to ~/.config/vpnc.
func DefaultDir() (string, error) {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, configDirName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", configDirName), nil
}

func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// WriteDefault writes the default config file to path. An existing file is
// only replaced when force is set.
func WriteDefault(path string, force bool) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	path = filepath.Clean(absPath)

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat config file: %w", err)
		}
	}

	return writeSchema(path, defaultSchema())
}

func readSchema(path string) (fileSchema, error) {
	if path == "" {
		return defaultSchema(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fileSchema{}, fmt.Errorf("read config file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode config file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func writeSchema(path string, file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}
	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}
	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}
	cleanup = false

	return nil
}

func (s *fileSchema) override(key, value string) {
	switch key {
	case "api.base_url":
		s.API.BaseURL = value
	case "ui.language":
		s.UI.Language = strings.ToLower(value)
	case "log.level":
		s.Log.Level = strings.ToLower(value)
	case "platform.init_data_file":
		s.Platform.InitDataFile = value
	}
}

// CurrencyPolicy maps the pricing section onto the domain policy.
func (s Settings) CurrencyPolicy() domain.CurrencyPolicy {
	priority := make(map[string][]string, len(s.Pricing.CryptoPriority))
	for lang, currencies := range s.Pricing.CryptoPriority {
		priority[strings.ToLower(lang)] = upperAll(currencies)
	}

	return domain.CurrencyPolicy{
		NativeCurrency:        strings.ToUpper(s.Pricing.NativeCurrency),
		CardCurrency:          strings.ToUpper(s.Pricing.CardCurrency),
		CryptoPriority:        priority,
		DefaultCryptoPriority: upperAll(s.Pricing.DefaultCryptoPriority),
	}
}

func (s Settings) EnabledProviders() ([]domain.Provider, error) {
	providers := make([]domain.Provider, 0, len(s.Payments.Providers))
	for _, raw := range s.Payments.Providers {
		provider, err := domain.ParseProvider(raw)
		if err != nil {
			return nil, err
		}
		providers = append(providers, provider)
	}
	return providers, nil
}

func upperAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		out = append(out, strings.ToUpper(strings.TrimSpace(value)))
	}
	return out
}
