package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func resetFlagsAndArgs() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	os.Args = []string{"cmd"}
}

func setEnv(t *testing.T) {
	t.Setenv("RUN_ADDRESS", "localhost:9000")
	t.Setenv("DATABASE_PATH", "/tmp/env.db")
	t.Setenv("REDIS_ADDRESS", "localhost:7000")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("LOG_LVL", "debug")
}

func TestNew(t *testing.T) {
	resetFlagsAndArgs()
	setEnv(t)
	os.Args = []string{
		"cmd",
		"-a", "localhost:8080",
		"-d", "/tmp/flag.db",
		"-r", "localhost:6380",
		"-l", "error",
	}
	cfg := New()

	assert.Equal(t, "localhost:8080", cfg.Address)
	assert.Equal(t, "/tmp/flag.db", cfg.DatabasePath)
	assert.Equal(t, "localhost:6380", cfg.RedisAddress)
	assert.Equal(t, "error", cfg.LogLvl)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
}

func TestEnvDefaults(t *testing.T) {
	resetFlagsAndArgs()

	cfg := New()

	assert.Equal(t, "localhost:8080", cfg.Address)
	assert.Equal(t, "/tmp/fiado.db", cfg.DatabasePath)
	assert.Equal(t, "localhost:6379", cfg.RedisAddress)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "admin", cfg.DefaultLogin)
	assert.Equal(t, "1234", cfg.DefaultPassword)
}
