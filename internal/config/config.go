package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	appDirName   = "reddypet"
	configName   = "config"
	envPrefix    = "REDDYPET"
	StoreFile    = "file"
	StoreSQLite  = "sqlite"
	snapshotFile = "reddi.pet.json"
	dbFile       = "reddypet.db"
	logFile      = "reddypet.log"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
	Pet      PetConfig      `mapstructure:"pet" yaml:"pet"`
	UI       UIConfig       `mapstructure:"ui" yaml:"ui"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Platform PlatformConfig `mapstructure:"platform" yaml:"platform"`
}

type ServerConfig struct {
	Port string `mapstructure:"port" yaml:"port"`
}

type PetConfig struct {
	Store        string        `mapstructure:"store" yaml:"store"` // "file" or "sqlite"
	StatePath    string        `mapstructure:"state_path" yaml:"state_path"`
	DBPath       string        `mapstructure:"db_path" yaml:"db_path"`
	TickInterval time.Duration `mapstructure:"tick_interval" yaml:"tick_interval"`
}

type UIConfig struct {
	Sound bool `mapstructure:"sound" yaml:"sound"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

type PlatformConfig struct {
	BaseURL        string        `mapstructure:"base_url" yaml:"base_url"`
	Token          string        `mapstructure:"token" yaml:"token"`
	Subreddit      string        `mapstructure:"subreddit" yaml:"subreddit"`
	AppDisplayName string        `mapstructure:"app_display_name" yaml:"app_display_name"`
	Timeout        time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// Default returns the configuration used when no file or env overrides exist.
func Default() *Config {
	dir := DefaultDir()
	return &Config{
		Server: ServerConfig{Port: "8080"},
		Pet: PetConfig{
			Store:        StoreFile,
			StatePath:    filepath.Join(dir, snapshotFile),
			DBPath:       filepath.Join(dir, dbFile),
			TickInterval: time.Second,
		},
		UI:  UIConfig{Sound: true},
		Log: LogConfig{Level: "info", File: filepath.Join(dir, logFile)},
		Platform: PlatformConfig{
			BaseURL:        "https://devvit.reddit.com",
			AppDisplayName: "reddy-pet",
			Timeout:        12 * time.Second,
		},
	}
}

// DefaultDir is the per-user directory holding state and logs.
func DefaultDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(base, appDirName)
}

// Load reads config.yml from path (or the default search locations) and
// applies REDDYPET_* environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath("configs")
		v.AddConfigPath(DefaultDir())
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !(path != "" && os.IsNotExist(err)) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// Write renders cfg as YAML to path, creating parent directories.
func Write(cfg *Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("pet.store", d.Pet.Store)
	v.SetDefault("pet.state_path", d.Pet.StatePath)
	v.SetDefault("pet.db_path", d.Pet.DBPath)
	v.SetDefault("pet.tick_interval", d.Pet.TickInterval)
	v.SetDefault("ui.sound", d.UI.Sound)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("platform.base_url", d.Platform.BaseURL)
	v.SetDefault("platform.token", d.Platform.Token)
	v.SetDefault("platform.subreddit", d.Platform.Subreddit)
	v.SetDefault("platform.app_display_name", d.Platform.AppDisplayName)
	v.SetDefault("platform.timeout", d.Platform.Timeout)
}

func validate(cfg *Config) error {
	switch cfg.Pet.Store {
	case StoreFile, StoreSQLite:
	default:
		return fmt.Errorf("unknown pet.store %q (want %q or %q)", cfg.Pet.Store, StoreFile, StoreSQLite)
	}
	if cfg.Pet.TickInterval <= 0 {
		return fmt.Errorf("pet.tick_interval must be > 0")
	}
	return nil
}
