package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	FrontendURL    string   `mapstructure:"frontend_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// RateLimitConfig caps public order and payment-link requests per client IP.
// It needs Redis.
type RateLimitConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	Requests      int  `mapstructure:"requests"`
	WindowSeconds int  `mapstructure:"window_seconds"`
}

func (r *RateLimitConfig) Window() time.Duration {
	return time.Duration(r.WindowSeconds) * time.Second
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// StorageConfig selects the record store backend.
// Driver is one of: memory, file, sqlite, mysql, redis.
type StorageConfig struct {
	Driver     string `mapstructure:"driver"`
	DataDir    string `mapstructure:"data_dir"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type RedisConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// PaymeConfig holds the merchant credentials issued by Payme Business.
type PaymeConfig struct {
	MerchantID      string `mapstructure:"merchant_id"`
	SecretKey       string `mapstructure:"secret_key"`
	SecretKeyTest   string `mapstructure:"secret_key_test"`
	TestMode        bool   `mapstructure:"test_mode"`
	CheckoutURL     string `mapstructure:"checkout_url"`
	CheckoutURLTest string `mapstructure:"checkout_url_test"`
	OrderTTLHours   int    `mapstructure:"order_ttl_hours"`
}

// ActiveSecret returns the key Payme signs requests with in the current mode.
func (p *PaymeConfig) ActiveSecret() string {
	if p.TestMode {
		return p.SecretKeyTest
	}
	return p.SecretKey
}

// ActiveCheckoutURL returns the checkout host for the current mode.
func (p *PaymeConfig) ActiveCheckoutURL() string {
	if p.TestMode {
		return p.CheckoutURLTest
	}
	return p.CheckoutURL
}

func (p *PaymeConfig) OrderTTL() time.Duration {
	return time.Duration(p.OrderTTLHours) * time.Hour
}

type TelegramConfig struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

func (t *TelegramConfig) Enabled() bool {
	return t.BotToken != "" && t.ChatID != 0
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
	ToAddress    string `mapstructure:"to_address"`
}

func (e *EmailConfig) Enabled() bool {
	return e.SMTPHost != "" && e.ToAddress != ""
}

type BusinessConfig struct {
	Timezone string `mapstructure:"timezone"`
}
