package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"printshop/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort string
	DB       postgres.ConnectionConfig

	NotifyQueue   string
	NotifyWorkers int
	RabbitMQURL   string
	RabbitMQQueue string

	TelegramAPIURL   string
	TelegramBotToken string
	TelegramChatID   string

	DeadlineReminderSchedule string

	SheetsCredentialsFile string
	SheetsSpreadsheetID   string
	SheetsExportSchedule  string

	TracingEnabled bool
}

const (
	QueueMemory   = "memory"
	QueueRabbitMQ = "rabbitmq"
)

// LoadConfig reads the environment, preceded by an optional .env file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "printshop")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("NOTIFY_QUEUE", QueueMemory)
	v.SetDefault("NOTIFY_WORKERS", 2)
	v.SetDefault("RABBITMQ_QUEUE", "printshop.notifications")
	v.SetDefault("TELEGRAM_API_URL", "https://api.telegram.org")
	v.SetDefault("DEADLINE_REMINDER_SCHEDULE", "0 0 9 * * *")
	v.SetDefault("SHEETS_EXPORT_SCHEDULE", "0 0 * * * *")

	config := Config{
		HTTPPort: v.GetString("HTTP_PORT"),
		DB: postgres.ConnectionConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		NotifyQueue:              v.GetString("NOTIFY_QUEUE"),
		NotifyWorkers:            v.GetInt("NOTIFY_WORKERS"),
		RabbitMQURL:              v.GetString("RABBITMQ_URL"),
		RabbitMQQueue:            v.GetString("RABBITMQ_QUEUE"),
		TelegramAPIURL:           v.GetString("TELEGRAM_API_URL"),
		TelegramBotToken:         v.GetString("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:           v.GetString("TELEGRAM_CHAT_ID"),
		DeadlineReminderSchedule: v.GetString("DEADLINE_REMINDER_SCHEDULE"),
		SheetsCredentialsFile:    v.GetString("SHEETS_CREDENTIALS_FILE"),
		SheetsSpreadsheetID:      v.GetString("SHEETS_SPREADSHEET_ID"),
		SheetsExportSchedule:     v.GetString("SHEETS_EXPORT_SCHEDULE"),
		TracingEnabled:           v.GetBool("TRACING_ENABLED"),
	}

	return config, config.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.HTTPPort == "" {
		errs = append(errs, errors.New("HTTP_PORT is required"))
	}
	switch c.NotifyQueue {
	case QueueMemory:
	case QueueRabbitMQ:
		if c.RabbitMQURL == "" {
			errs = append(errs, errors.New("RABBITMQ_URL is required for the rabbitmq queue"))
		}
	default:
		errs = append(errs, fmt.Errorf("NOTIFY_QUEUE must be %q or %q, got %q", QueueMemory, QueueRabbitMQ, c.NotifyQueue))
	}
	if c.NotifyWorkers < 1 {
		errs = append(errs, errors.New("NOTIFY_WORKERS must be positive"))
	}
	return errors.Join(errs...)
}

// SheetsEnabled reports whether the Google Sheets export is configured.
func (c Config) SheetsEnabled() bool {
	return c.SheetsCredentialsFile != "" && c.SheetsSpreadsheetID != ""
}
