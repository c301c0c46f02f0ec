package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. TD_TODOIST_TIMEOUT.
const EnvPrefix = "TD"

// Config holds all CLI configuration.
type Config struct {
	Logger     LoggerConfig
	Todoist    TodoistConfig
	Credential CredentialConfig

	// Timezone decides where "today" starts. "Local" uses the machine's zone.
	Timezone string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type TodoistConfig struct {
	RESTURL           string
	SyncURL           string
	TokenEnv          string
	Timeout           time.Duration
	RequestsPerMinute int
}

type CredentialConfig struct {
	LeaseCommand string
	LeaseTimeout time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in $XDG_CONFIG_HOME/td, $HOME/.config/td and .
func Load() (*Config, error) {
	return load(searchPaths()...)
}

func searchPaths() []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "td"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "td"))
	}
	return append(paths, ".")
}

func load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.Todoist.RESTURL = strings.TrimRight(v.GetString("todoist.rest_url"), "/")
	cfg.Todoist.SyncURL = strings.TrimRight(v.GetString("todoist.sync_url"), "/")
	cfg.Todoist.TokenEnv = v.GetString("todoist.token_env")
	cfg.Todoist.Timeout = v.GetDuration("todoist.timeout")
	cfg.Todoist.RequestsPerMinute = v.GetInt("todoist.requests_per_minute")

	cfg.Credential.LeaseCommand = expandEnvVar(v.GetString("credential.lease_command"))
	cfg.Credential.LeaseTimeout = v.GetDuration("credential.lease_timeout")

	cfg.Timezone = v.GetString("timezone")

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.mode", "production")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", false)

	v.SetDefault("todoist.rest_url", "https://api.todoist.com/rest/v2")
	v.SetDefault("todoist.sync_url", "https://api.todoist.com/sync/v9")
	v.SetDefault("todoist.token_env", "TODOIST_API_TOKEN")
	v.SetDefault("todoist.timeout", "15s")
	v.SetDefault("todoist.requests_per_minute", 0)

	v.SetDefault("credential.lease_command", "secret-lease get todoist")
	v.SetDefault("credential.lease_timeout", "5s")

	v.SetDefault("timezone", "Local")
}

func validate(cfg *Config) error {
	if cfg.Todoist.RESTURL == "" || cfg.Todoist.SyncURL == "" {
		return fmt.Errorf("todoist.rest_url and todoist.sync_url must be set")
	}
	if cfg.Todoist.TokenEnv == "" {
		return fmt.Errorf("todoist.token_env must name an environment variable")
	}
	if cfg.Todoist.Timeout <= 0 {
		return fmt.Errorf("todoist.timeout must be positive, got %s", cfg.Todoist.Timeout)
	}
	if cfg.Todoist.RequestsPerMinute < 0 {
		return fmt.Errorf("todoist.requests_per_minute must not be negative")
	}
	if cfg.Credential.LeaseTimeout <= 0 {
		return fmt.Errorf("credential.lease_timeout must be positive, got %s", cfg.Credential.LeaseTimeout)
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if !strings.Contains(value, "${") {
		return value
	}
	return os.Expand(value, os.Getenv)
}
