package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	SMTP     SMTPConfig
	Report   ReportConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// SMTPConfig holds outgoing mail configuration. An empty Host disables
// delivery: reports are still computed, sends are skipped with a warning.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	ReportTo string
}

// ReportConfig holds the scheduled report delivery times, expressed in the
// business timezone (UTC-3).
type ReportConfig struct {
	DailySendHour  int
	WeeklySendDay  int // 0 = Sunday ... 6 = Saturday
	WeeklySendHour int
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "fichadas"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "3001"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// SMTP configuration
	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", "admin@empresa.com"),
		FromName: getEnv("SMTP_FROM_NAME", "Fichadas"),
		ReportTo: getEnv("REPORT_EMAIL_TO", "admin@empresa.com"),
	}

	// Report schedule configuration
	dailyHour, err := strconv.Atoi(getEnv("REPORT_DAILY_HOUR", "20"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_DAILY_HOUR: %w", err)
	}

	weeklyDay, err := strconv.Atoi(getEnv("REPORT_WEEKLY_DAY", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_WEEKLY_DAY: %w", err)
	}

	weeklyHour, err := strconv.Atoi(getEnv("REPORT_WEEKLY_HOUR", "9"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_WEEKLY_HOUR: %w", err)
	}

	config.Report = ReportConfig{
		DailySendHour:  dailyHour,
		WeeklySendDay:  weeklyDay,
		WeeklySendHour: weeklyHour,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Report.DailySendHour < 0 || c.Report.DailySendHour > 23 {
		return fmt.Errorf("REPORT_DAILY_HOUR must be between 0 and 23")
	}
	if c.Report.WeeklySendDay < 0 || c.Report.WeeklySendDay > 6 {
		return fmt.Errorf("REPORT_WEEKLY_DAY must be between 0 and 6")
	}
	if c.Report.WeeklySendHour < 0 || c.Report.WeeklySendHour > 23 {
		return fmt.Errorf("REPORT_WEEKLY_HOUR must be between 0 and 23")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
