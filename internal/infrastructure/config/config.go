package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/texnokross/texnokross/internal/shared/config"
)

type Config struct {
	Server   sharedConfig.ServerConfig   `mapstructure:"server"`
	Logger   sharedConfig.LoggerConfig   `mapstructure:"logger"`
	Storage  sharedConfig.StorageConfig  `mapstructure:"storage"`
	Database sharedConfig.DatabaseConfig `mapstructure:"database"`
	Redis    sharedConfig.RedisConfig    `mapstructure:"redis"`
	Payme    sharedConfig.PaymeConfig    `mapstructure:"payme"`
	Telegram sharedConfig.TelegramConfig `mapstructure:"telegram"`
	Email    sharedConfig.EmailConfig    `mapstructure:"email"`
	Business sharedConfig.BusinessConfig `mapstructure:"business"`

	RateLimit sharedConfig.RateLimitConfig `mapstructure:"rate_limit"`
}

const envPrefix = "TEXNOKROSS"

// legacyEnv maps keys to the unprefixed variable names older deployments set.
var legacyEnv = map[string]string{
	"server.port":           "PORT",
	"server.frontend_url":   "FRONTEND_URL",
	"storage.data_dir":      "DATA_DIR",
	"payme.merchant_id":     "PAYME_MERCHANT_ID",
	"payme.secret_key":      "PAYME_SECRET_KEY",
	"payme.secret_key_test": "PAYME_SECRET_KEY_TEST",
	"payme.test_mode":       "PAYME_TEST_MODE",
	"telegram.bot_token":    "TELEGRAM_BOT_TOKEN",
	"telegram.chat_id":      "TELEGRAM_CHAT_ID",
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configs/config.yaml when present, then applies TEXNOKROSS_*
// environment overrides. A missing file is not an error.
func Load(env string) (*Config, error) {
	return LoadFrom(env, "./configs", "../configs", "../../configs")
}

func LoadFrom(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, legacy := range legacyEnv {
		prefixed := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, legacy); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the last loaded configuration.
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case "memory", "file", "sqlite", "mysql", "redis":
	default:
		return fmt.Errorf("unsupported storage driver %q", c.Storage.Driver)
	}
	if c.RateLimit.Enabled && (c.RateLimit.Requests <= 0 || c.RateLimit.WindowSeconds <= 0) {
		return fmt.Errorf("rate_limit.requests and rate_limit.window_seconds must be positive")
	}
	if c.Payme.OrderTTLHours <= 0 {
		return fmt.Errorf("payme.order_ttl_hours must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3001)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.frontend_url", "http://localhost:5173")
	v.SetDefault("server.allowed_origins", []string{})

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("storage.driver", "file")
	v.SetDefault("storage.data_dir", "./data")
	v.SetDefault("storage.sqlite_path", "./data/texnokross.db")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "texnokross")
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.conn_max_lifetime", 60)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "texnokross:")

	v.SetDefault("payme.merchant_id", "")
	v.SetDefault("payme.secret_key", "")
	v.SetDefault("payme.secret_key_test", "")
	v.SetDefault("payme.test_mode", false)
	v.SetDefault("payme.checkout_url", "https://checkout.paycom.uz")
	v.SetDefault("payme.checkout_url_test", "https://test.paycom.uz")
	v.SetDefault("payme.order_ttl_hours", 12)

	v.SetDefault("telegram.bot_token", "")
	v.SetDefault("telegram.chat_id", 0)

	v.SetDefault("email.smtp_host", "")
	v.SetDefault("email.smtp_port", 587)
	v.SetDefault("email.smtp_user", "")
	v.SetDefault("email.smtp_password", "")
	v.SetDefault("email.from_address", "noreply@texnokross.uz")
	v.SetDefault("email.from_name", "Texnokross")
	v.SetDefault("email.to_address", "")

	v.SetDefault("business.timezone", "Asia/Tashkent")

	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.requests", 30)
	v.SetDefault("rate_limit.window_seconds", 60)
}
