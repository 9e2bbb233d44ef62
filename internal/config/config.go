package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"ghsearch/internal/eventbus"
)

// FileName is the config file name inside the ghsearch config directory
const FileName = "config.toml"

// TokenEnv supplies the API token when the file leaves it empty
const TokenEnv = "GITHUB_TOKEN"

// Config represents the application configuration
type Config struct {
	Version    int           `toml:"version"`
	API        APIConfig     `toml:"api"`
	Search     SearchConfig  `toml:"search"`
	UISettings UISettings    `toml:"ui"`
	Logging    LoggingConfig `toml:"logging"`
}

// APIConfig describes the search endpoint and how to talk to it
type APIConfig struct {
	BaseURL   string `toml:"base_url" validate:"required,url"`
	Token     string `toml:"token,omitempty"`
	UserAgent string `toml:"user_agent" validate:"required"`
	TimeoutMs int    `toml:"timeout_ms" validate:"gt=0"`
	// RequestsPerMinute caps outgoing searches (0 disables the limiter)
	RequestsPerMinute int `toml:"requests_per_minute" validate:"gte=0"`
}

// SearchConfig controls query construction and the event pipeline
type SearchConfig struct {
	Language   string `toml:"language" validate:"required"`
	Sort       string `toml:"sort" validate:"oneof=stars forks help-wanted-issues updated"`
	DebounceMs int    `toml:"debounce_ms" validate:"gt=0"`
	// SearchOnBlur lets a focus-lost event trigger a search with the current text
	SearchOnBlur bool `toml:"search_on_blur"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowOwner    bool `toml:"show_owner"`
	ReportFocus  bool `toml:"report_focus"`
	AltScreen    bool `toml:"alt_screen"`
	MaxListItems int  `toml:"max_list_items" validate:"gte=0"`
}

// LoggingConfig controls the diagnostic log
type LoggingConfig struct {
	Level  string `toml:"level" validate:"oneof=trace debug info warn error off"`
	Format string `toml:"format" validate:"oneof=json console"`
	File   string `toml:"file"`
}

// Timeout returns the per-request timeout
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// Debounce returns the quiet period before an event is dispatched
func (c SearchConfig) Debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service for the default location
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceAt creates a config service for an explicit file path
func NewConfigServiceAt(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigServiceAt(path).(*configService)
	cs.bus = bus
	return cs
}

// DefaultPath returns the user-level config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "ghsearch", FileName)
}

// Path returns the file this service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
		applyEnv(cfg)
		err = nil
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path.
// Missing keys keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	applyEnv(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := Validate(config); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := Marshal(config)
	if err != nil {
		return err
	}

	// The token may be a secret, keep the file private
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// LoadOrCreate loads the config at the service path, writing defaults first if none exists
func LoadOrCreate(cs ConfigService) (*Config, bool, error) {
	if _, err := os.Stat(cs.Path()); errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		if err := cs.Save(cfg); err != nil {
			return nil, false, err
		}
		applyEnv(cfg)
		return cfg, true, nil
	}

	cfg, err := cs.Load()
	if err != nil {
		return nil, false, err
	}
	return cfg, false, nil
}

// Marshal renders the config as TOML
func Marshal(config *Config) ([]byte, error) {
	data, err := toml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints
func Validate(config *Config) error {
	if config == nil {
		return errors.New("config is nil")
	}
	if err := validate.Struct(config); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if cfg.API.Token == "" {
		cfg.API.Token = os.Getenv(TokenEnv)
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		API: APIConfig{
			BaseURL:           "https://api.github.com/search/repositories",
			UserAgent:         "ghsearch",
			TimeoutMs:         10000,
			RequestsPerMinute: 30,
		},
		Search: SearchConfig{
			Language:     "javascript",
			Sort:         "stars",
			DebounceMs:   400,
			SearchOnBlur: true,
		},
		UISettings: UISettings{
			ShowOwner:   true,
			ReportFocus: true,
			AltScreen:   true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			File:   "ghsearch.log",
		},
	}
}
