package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultAutoBumpSchedule = "*/5 * * * * *"

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	LogLevel               string
	KafkaHost              string
	KafkaConsumerGroup     string
	KafkaSaleCreatedTopic  string
	KafkaOrderChangedTopic string
	AutoBumpSchedule       string
}

// LoadConfig reads the configuration from the environment after loading the
// given .env files. Missing files are skipped.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	config := Config{
		HTTPPort:               os.Getenv("HTTP_PORT"),
		DBHost:                 os.Getenv("DB_HOST"),
		DBPort:                 os.Getenv("DB_PORT"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              os.Getenv("DB_SSLMODE"),
		LogLevel:               os.Getenv("LOG_LEVEL"),
		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaConsumerGroup:     os.Getenv("KAFKA_CONSUMER_GROUP"),
		KafkaSaleCreatedTopic:  os.Getenv("KAFKA_SALE_CREATED_TOPIC"),
		KafkaOrderChangedTopic: os.Getenv("KAFKA_ORDER_CHANGED_TOPIC"),
		AutoBumpSchedule:       os.Getenv("AUTO_BUMP_SCHEDULE"),
	}
	if config.HTTPPort == "" {
		config.HTTPPort = "8080"
	}
	if config.DBSslMode == "" {
		config.DBSslMode = "disable"
	}
	if config.AutoBumpSchedule == "" {
		config.AutoBumpSchedule = defaultAutoBumpSchedule
	}
	return config, nil
}

// DSN is the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaEnabled reports whether a broker is configured.
func (c Config) KafkaEnabled() bool {
	return strings.TrimSpace(c.KafkaHost) != ""
}

// SlogLevel maps LOG_LEVEL to a slog level, info when unset or unknown.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
