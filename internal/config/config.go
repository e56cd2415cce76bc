package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	LogMode bool   `mapstructure:"log_mode"`
}

// StorageConfig names the three persisted domains.
type StorageConfig struct {
	AppKey     string `mapstructure:"app_key"`
	FinanceKey string `mapstructure:"finance_key"`
	ThemeKey   string `mapstructure:"theme_key"`
}

type SecurityConfig struct {
	EncryptionKey string `mapstructure:"encryption_key"`
}

// AuthConfig enables the optional access lock. An empty PassphraseHash
// leaves the API open.
type AuthConfig struct {
	JWTSecret      string `mapstructure:"jwt_secret"`
	PassphraseHash string `mapstructure:"passphrase_hash"`
	ExpireHours    int    `mapstructure:"expire_hours"`
}

type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

type BackupConfig struct {
	Dir string `mapstructure:"dir"`
}

// RemoteConfig configures the hosted Datastore variant. It stays disabled
// while ProjectID is empty.
type RemoteConfig struct {
	ProjectID   string `mapstructure:"project_id"`
	HouseholdID string `mapstructure:"household_id"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Security SecurityConfig `mapstructure:"security"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Log      LogConfig      `mapstructure:"log"`
	Backup   BackupConfig   `mapstructure:"backup"`
	Remote   RemoteConfig   `mapstructure:"remote"`
}

var (
	appConfig *Config
	mu        sync.RWMutex
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("database.path", "data/household.db")
	v.SetDefault("database.log_mode", false)
	v.SetDefault("storage.app_key", "cia-app-store")
	v.SetDefault("storage.finance_key", "finance-storage")
	v.SetDefault("storage.theme_key", "theme-storage")
	v.SetDefault("security.encryption_key", "")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.passphrase_hash", "")
	v.SetDefault("auth.expire_hours", 24)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("backup.dir", "data/backups")
	v.SetDefault("remote.project_id", "")
	v.SetDefault("remote.household_id", "default")
}

// Load loads configuration from given file path (e.g. "config.yaml").
// If path is empty, "config.yaml" in the working directory is used when present;
// a missing default file is not an error, defaults and environment apply.
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if path == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	// environment overrides, e.g. HHL_SERVER_PORT=9000
	v.SetEnvPrefix("HHL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	mu.Lock()
	appConfig = &c
	mu.Unlock()
	return &c, nil
}

// Get returns the last loaded configuration.
// Call Load() once at application startup.
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return appConfig
}

// AuthEnabled reports whether requests must carry a token.
func (c *Config) AuthEnabled() bool {
	return c.Auth.PassphraseHash != ""
}
