// Package config loads the debrief service configuration from defaults, an
// optional YAML file and DEBRIEF_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goliatone/go-theme"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, with dots replaced by
// underscores: server.addr becomes DEBRIEF_SERVER_ADDR.
const EnvPrefix = "DEBRIEF"

// Environment selects logger presets.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
	EnvTest        Environment = "test"
)

// ServerConfig holds HTTP settings.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr" yaml:"addr" validate:"required,hostname_port"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins" yaml:"allowed_origins" validate:"dive,required"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" yaml:"read_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" validate:"gt=0"`
}

// FormConfig points at operator overrides for copy and templates.
type FormConfig struct {
	// CopyFile replaces the embedded labels when set.
	CopyFile string `mapstructure:"copy_file" yaml:"copy_file" validate:"omitempty,file"`
	// TemplatesDir replaces the embedded HTML templates when set.
	TemplatesDir string `mapstructure:"templates_dir" yaml:"templates_dir" validate:"omitempty,dir"`
	Endpoint     string `mapstructure:"endpoint" yaml:"endpoint" validate:"omitempty,startswith=/"`
	// MaxAttempts caps terminal prompt rounds; zero is unlimited.
	MaxAttempts int `mapstructure:"max_attempts" yaml:"max_attempts" validate:"gte=0"`
}

// ThemeConfig feeds the HTML renderer.
type ThemeConfig struct {
	Name         string            `mapstructure:"name" yaml:"name"`
	Variant      string            `mapstructure:"variant" yaml:"variant" validate:"omitempty,oneof=light dark"`
	Tokens       map[string]string `mapstructure:"tokens" yaml:"tokens"`
	AssetBaseURL string            `mapstructure:"asset_base_url" yaml:"asset_base_url"`
}

// LoggerConfig selects the zap preset and level.
type LoggerConfig struct {
	Environment Environment `mapstructure:"environment" yaml:"environment" validate:"oneof=development production test"`
	Level       string      `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
}

// Config aggregates all sections.
type Config struct {
	Server ServerConfig `mapstructure:"server" yaml:"server"`
	Form   FormConfig   `mapstructure:"form" yaml:"form"`
	Theme  ThemeConfig  `mapstructure:"theme" yaml:"theme"`
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("form.copy_file", "")
	v.SetDefault("form.templates_dir", "")
	v.SetDefault("form.endpoint", "")
	v.SetDefault("form.max_attempts", 0)
	v.SetDefault("theme.name", "")
	v.SetDefault("theme.variant", "")
	v.SetDefault("theme.asset_base_url", "")
	v.SetDefault("logger.environment", string(EnvDevelopment))
	v.SetDefault("logger.level", "info")
}

// Load reads configuration. path may be empty, in which case only defaults
// and environment variables apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path = strings.TrimSpace(path); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration Load produces with no file and no
// environment overrides.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			AllowedOrigins:  []string{"*"},
			ReadTimeout:     10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Logger: LoggerConfig{
			Environment: EnvDevelopment,
			Level:       "info",
		},
	}
}

// Validate checks struct tags and reports every failing key.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("config: validate: %w", err)
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("config: invalid: %s", strings.Join(parts, ", "))
}

// RendererConfig converts the theme section for the HTML renderer. Tokens
// become CSS custom properties; an asset base URL switches the stylesheet
// from inline to linked. Returns nil when nothing is configured.
func (t ThemeConfig) RendererConfig() *theme.RendererConfig {
	if t.Name == "" && t.Variant == "" && len(t.Tokens) == 0 && t.AssetBaseURL == "" {
		return nil
	}
	cfg := &theme.RendererConfig{
		Theme:   t.Name,
		Variant: t.Variant,
	}
	if len(t.Tokens) > 0 {
		cfg.Tokens = make(map[string]string, len(t.Tokens))
		cfg.CSSVars = make(map[string]string, len(t.Tokens))
		for key, value := range t.Tokens {
			cfg.Tokens[key] = value
			cfg.CSSVars["--"+strings.TrimPrefix(key, "--")] = value
		}
	}
	if base := strings.TrimRight(strings.TrimSpace(t.AssetBaseURL), "/"); base != "" {
		cfg.AssetURL = func(key string) string {
			if key == "" {
				return ""
			}
			return base + "/" + strings.TrimLeft(key, "/")
		}
	}
	return cfg
}
