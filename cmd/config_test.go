package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HTTP_PORT", "")
	t.Setenv("DB_SSLMODE", "")
	t.Setenv("AUTO_BUMP_SCHEDULE", "")
	t.Setenv("KAFKA_HOST", "")

	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, "disable", config.DBSslMode)
	assert.Equal(t, defaultAutoBumpSchedule, config.AutoBumpSchedule)
	assert.False(t, config.KafkaEnabled())
}

func TestLoadConfig_EnvFile(t *testing.T) {
	t.Setenv("KAFKA_SALE_CREATED_TOPIC", "")
	os.Unsetenv("KAFKA_SALE_CREATED_TOPIC")
	t.Setenv("DB_HOST", "db.internal")

	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("KAFKA_SALE_CREATED_TOPIC=sales.created\nDB_HOST=ignored\n"), 0o600))

	config, err := LoadConfig(file)
	require.NoError(t, err)

	assert.Equal(t, "sales.created", config.KafkaSaleCreatedTopic)
	// variables already set win over the file
	assert.Equal(t, "db.internal", config.DBHost)
}

func TestConfig_DSN(t *testing.T) {
	config := Config{DBHost: "localhost", DBPort: "5432", DBUser: "kds", DBPassword: "secret", DBName: "kds", DBSslMode: "disable"}
	assert.Equal(t, "host=localhost port=5432 user=kds password=secret dbname=kds sslmode=disable", config.DSN())
}

func TestConfig_SlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for raw, want := range cases {
		assert.Equal(t, want, Config{LogLevel: raw}.SlogLevel(), raw)
	}
}
