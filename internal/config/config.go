package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	Razorpay    RazorpayConfig
	SMTP        SMTPConfig
	Sheets      SheetsConfig
	Capacity    CapacityConfig
	DatabaseURL string
	LogLevel    string
}

type RazorpayConfig struct {
	BaseURL   string
	KeyID     string
	KeySecret string
}

type SMTPConfig struct {
	Host       string
	Port       string
	Username   string
	Password   string
	FromEmail  string
	AdminEmail string
}

type SheetsConfig struct {
	CredentialsFile string
	SpreadsheetID   string
	Range           string
}

type CapacityConfig struct {
	MaxOrdersPerDay int
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SMTP_PORT", "465")
	viper.SetDefault("SHEETS_RANGE", "Orders!A:L")
	viper.SetDefault("MAX_ORDERS_PER_DAY", 10)

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Razorpay: RazorpayConfig{
			BaseURL:   getEnvOrViper("RAZORPAY_BASE_URL", ""),
			KeyID:     getEnvOrViper("RAZORPAY_KEY_ID", ""),
			KeySecret: getEnvOrViper("RAZORPAY_KEY_SECRET", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnvOrViper("SMTP_HOST", ""),
			Port:       getEnvOrViper("SMTP_PORT", "465"),
			Username:   getEnvOrViper("SMTP_USER", ""),
			Password:   getEnvOrViper("SMTP_PASS", ""),
			FromEmail:  getEnvOrViper("FROM_EMAIL", ""),
			AdminEmail: getEnvOrViper("ADMIN_EMAIL", ""),
		},
		Sheets: SheetsConfig{
			CredentialsFile: getEnvOrViper("SHEETS_CREDENTIALS_FILE", ""),
			SpreadsheetID:   getEnvOrViper("SHEETS_SPREADSHEET_ID", ""),
			Range:           getEnvOrViper("SHEETS_RANGE", "Orders!A:L"),
		},
		Capacity: CapacityConfig{
			MaxOrdersPerDay: viper.GetInt("MAX_ORDERS_PER_DAY"),
		},
		DatabaseURL: getEnvOrViper("DATABASE_URL", ""),
		LogLevel:    getEnvOrViper("LOG_LEVEL", "info"),
	}

	// Validate required fields. Gateway credentials are non-negotiable: the
	// service must not boot in a state where it cannot verify payments.
	if cfg.Razorpay.KeyID == "" {
		return nil, fmt.Errorf("RAZORPAY_KEY_ID is required")
	}
	if cfg.Razorpay.KeySecret == "" {
		return nil, fmt.Errorf("RAZORPAY_KEY_SECRET is required")
	}
	if cfg.Capacity.MaxOrdersPerDay < 1 {
		return nil, fmt.Errorf("MAX_ORDERS_PER_DAY must be at least 1")
	}

	if cfg.SMTP.FromEmail == "" {
		cfg.SMTP.FromEmail = cfg.SMTP.Username
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}

// MailConfigured reports whether the SMTP relay has enough configuration to
// attempt delivery.
func (c *Config) MailConfigured() bool {
	return c.SMTP.Host != "" && c.SMTP.Username != "" && c.SMTP.Password != ""
}

// LedgerConfigured reports whether the spreadsheet ledger can be used.
func (c *Config) LedgerConfigured() bool {
	return c.Sheets.CredentialsFile != "" && c.Sheets.SpreadsheetID != ""
}
