package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Dashboard specifics
	TaskStore TaskStoreConfig
	Tier      TierConfig
	Payment   PaymentConfig
	Postgres  PostgresConfig
	Calendar  CalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
	// AllowedOrigins restricts CORS; empty means all origins are allowed.
	AllowedOrigins []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// TaskStoreConfig points at the external task store the todo module talks to.
type TaskStoreConfig struct {
	URL    string
	APIKey string
}

// TierConfig carries the subscription limits as plain data plus the path of
// the persisted tier state document.
type TierConfig struct {
	StatePath    string
	StarterTasks int
	ProTasks     int // -1 means unlimited
}

// PaymentConfig configures the mocked regional gateways.
type PaymentConfig struct {
	SimulatedDelayMS int
	FailureRate      float64
	RateLimitPerMin  int

	JazzCash  JazzCashConfig
	EasyPaisa EasyPaisaConfig
}

type JazzCashConfig struct {
	BaseURL    string
	MerchantID string
	Password   string
	ReturnURL  string
}

type EasyPaisaConfig struct {
	BaseURL   string
	StoreID   string
	ReturnURL string
}

// PostgresConfig enables the optional database-backed budget/project
// repositories. When disabled the in-memory repositories are used.
type PostgresConfig struct {
	Enabled bool
	DSN     string
}

// CalendarConfig enables the optional due-date sync to Google Calendar.
type CalendarConfig struct {
	CredentialsPath string
	CalendarID      string
	Timezone        string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	// Best-effort .env preload for local development.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.AllowedOrigins = viper.GetStringSlice("http_server.allowed_origins")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Task store
	cfg.TaskStore.URL = viper.GetString("task_store.url")
	cfg.TaskStore.APIKey = viper.GetString("task_store.api_key")
	if storeURL := viper.GetString("task_store_url"); storeURL != "" {
		cfg.TaskStore.URL = storeURL
	}
	if storeKey := viper.GetString("task_store_api_key"); storeKey != "" {
		cfg.TaskStore.APIKey = storeKey
	}

	// Tier limits
	cfg.Tier.StatePath = viper.GetString("tier.state_path")
	cfg.Tier.StarterTasks = viper.GetInt("tier.limits.starter.tasks")
	cfg.Tier.ProTasks = viper.GetInt("tier.limits.professional.tasks")

	// Payment
	cfg.Payment.SimulatedDelayMS = viper.GetInt("payment.simulated_delay_ms")
	cfg.Payment.FailureRate = viper.GetFloat64("payment.failure_rate")
	cfg.Payment.RateLimitPerMin = viper.GetInt("payment.rate_limit_per_min")
	cfg.Payment.JazzCash.BaseURL = viper.GetString("payment.jazzcash.base_url")
	cfg.Payment.JazzCash.MerchantID = viper.GetString("payment.jazzcash.merchant_id")
	cfg.Payment.JazzCash.Password = viper.GetString("payment.jazzcash.password")
	cfg.Payment.JazzCash.ReturnURL = viper.GetString("payment.jazzcash.return_url")
	cfg.Payment.EasyPaisa.BaseURL = viper.GetString("payment.easypaisa.base_url")
	cfg.Payment.EasyPaisa.StoreID = viper.GetString("payment.easypaisa.store_id")
	cfg.Payment.EasyPaisa.ReturnURL = viper.GetString("payment.easypaisa.return_url")

	// Postgres (optional)
	cfg.Postgres.Enabled = viper.GetBool("postgres.enabled")
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
		cfg.Postgres.Enabled = true
	}

	// Google Calendar (optional)
	cfg.Calendar.CredentialsPath = viper.GetString("calendar.credentials_path")
	cfg.Calendar.CalendarID = viper.GetString("calendar.calendar_id")
	cfg.Calendar.Timezone = viper.GetString("calendar.timezone")
	if creds := viper.GetString("google_calendar_credentials"); creds != "" {
		cfg.Calendar.CredentialsPath = creds
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("tier.state_path", "tier_state.json")
	viper.SetDefault("tier.limits.starter.tasks", 10)
	viper.SetDefault("tier.limits.professional.tasks", -1)

	viper.SetDefault("payment.simulated_delay_ms", 2000)
	viper.SetDefault("payment.failure_rate", 0.1)
	viper.SetDefault("payment.rate_limit_per_min", 30)
	viper.SetDefault("payment.jazzcash.base_url", "https://sandbox.jazzcash.com.pk/CustomerPortal/transactionmanagement/merchantform")
	viper.SetDefault("payment.jazzcash.return_url", "http://localhost:8080/payment/return")
	viper.SetDefault("payment.easypaisa.base_url", "https://easypay.easypaisa.com.pk/easypay/Index.jsf")
	viper.SetDefault("payment.easypaisa.return_url", "http://localhost:8080/payment/return")

	viper.SetDefault("calendar.timezone", "Asia/Karachi")
}
