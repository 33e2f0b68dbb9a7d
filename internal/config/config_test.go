package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	clear1 := setEnv("HOLDEM_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := setEnv("HOLDEM_LOG_LEVEL", "warning")
	defer clear2()

	a := assert.New(t)
	a.NoError(Load())

	cfg := Instance()
	a.Equal(":8080", cfg.Listen)
	a.Equal("warning", cfg.LogLevel)
	a.Equal(40, cfg.Blinds.Default)
	a.Equal(2000, cfg.DefaultBuyIn)

	// ensure we aren't using a pointer
	cfg.LogLevel = "bad"
	cfg = Instance()
	a.Equal("warning", cfg.LogLevel)

	byDay, err := cfg.BlindsByWeekday()
	a.NoError(err)
	a.Equal(map[time.Weekday]int{time.Saturday: 100}, byDay)
}

func TestLoad_missingFile(t *testing.T) {
	clear := setEnv("HOLDEM_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, ":5000", cfg.Listen)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 20, cfg.Blinds.Default)
	assert.Equal(t, 1000, cfg.DefaultBuyIn)
}

func TestConfig_BlindsByWeekday_badDay(t *testing.T) {
	var cfg Config
	cfg.Blinds.ByDay = map[string]int{"someday": 50}

	_, err := cfg.BlindsByWeekday()
	assert.Error(t, err)
}

func setEnv(key, val string) func() {
	orig := os.Getenv(key)
	_ = os.Setenv(key, val)
	return func() {
		if orig == "" {
			_ = os.Unsetenv(key)
		} else {
			_ = os.Setenv(key, orig)
		}
	}
}
