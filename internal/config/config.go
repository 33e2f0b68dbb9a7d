package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"holdem-engine/internal/util"
)

// Config provides configuration for the hold'em server
type Config struct {
	loaded   bool
	Listen   string `yaml:"listen" envconfig:"listen"`
	LogLevel string `yaml:"logLevel" envconfig:"log_level"`
	Blinds   struct {
		Default int            `yaml:"default" envconfig:"default"`
		ByDay   map[string]int `yaml:"byDay"`
	} `yaml:"blinds"`
	DefaultBuyIn      int  `yaml:"defaultBuyIn" envconfig:"default_buy_in"`
	DisableAccessLogs bool `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
}

var config Config

// DefaultConfig returns the configuration used when no config file exists
func DefaultConfig() Config {
	var c Config
	c.Listen = ":5000"
	c.LogLevel = "info"
	c.Blinds.Default = 20
	c.DefaultBuyIn = 1000
	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration. A missing config file is not an error;
// the defaults apply and the environment can still override them.
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("holdem", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// BlindsByWeekday converts the configured per-day blinds into a lookup
// keyed by time.Weekday
func (c Config) BlindsByWeekday() (map[time.Weekday]int, error) {
	byDay := make(map[time.Weekday]int, len(c.Blinds.ByDay))
	for name, bb := range c.Blinds.ByDay {
		day, ok := weekdays[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown weekday in blind schedule: %q", name)
		}

		byDay[day] = bb
	}

	return byDay, nil
}
