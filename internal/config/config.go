package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/rail44/lessons/internal/amortization"
	"github.com/rail44/lessons/internal/formatter"
	"github.com/rail44/lessons/internal/log"
	"github.com/rail44/lessons/internal/messages"
)

// FileName is the configuration file searched for when none is given
const FileName = "lessons.toml"

// Best-of-five modes for the rps exercise
const (
	BestOfFiveAsk    = "ask"
	BestOfFiveAlways = "always"
	BestOfFiveNever  = "never"
)

// Config represents the complete configuration for lessons
type Config struct {
	Lang     string `toml:"lang"`
	Locale   string `toml:"locale"`
	Currency string `toml:"currency"`
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`

	Mortgage MortgageConfig `toml:"mortgage"`
	RPS      RPSConfig      `toml:"rps"`

	// Path of the file the configuration was read from, empty for defaults
	Path string `toml:"-"`
}

// MortgageConfig configures the mortgage calculator
type MortgageConfig struct {
	RatePolicy string `toml:"rate_policy"`
	Schedule   bool   `toml:"schedule"`
}

// RPSConfig configures rock, paper, scissors, lizard, spock
type RPSConfig struct {
	RoundsToWin int    `toml:"rounds_to_win"`
	BestOfFive  string `toml:"best_of_five"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Lang:     string(messages.English),
		Locale:   "en-US",
		LogLevel: string(log.LevelWarn),
		Mortgage: MortgageConfig{
			RatePolicy: string(amortization.Nominal),
		},
		RPS: RPSConfig{
			RoundsToWin: 3,
			BestOfFive:  BestOfFiveAsk,
		},
	}
}

// Load loads configuration. An explicit path must exist; otherwise
// lessons.toml is searched for upward from startDir and defaults are used
// when there is none. The result is not validated, so flag and environment
// overrides can still correct it; call Validate once they are applied.
func Load(startDir, explicitPath string) (*Config, error) {
	configPath := explicitPath
	if configPath == "" {
		found, err := findConfigFile(startDir)
		if err != nil {
			return nil, err
		}
		if found == "" {
			return Default(), nil
		}
		configPath = found
	}

	// Read and parse config file
	configData, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if _, err := toml.Decode(string(configData), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}
	cfg.Path = configPath
	return cfg, nil
}

// findConfigFile searches for lessons.toml starting from the given path.
// It returns an empty path when no file exists up to the root.
func findConfigFile(startPath string) (string, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	currentDir := absPath
	for {
		configPath := filepath.Join(currentDir, FileName)
		_, err := os.Stat(configPath)
		if err == nil {
			return configPath, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("failed to check %s: %w", configPath, err)
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			return "", nil
		}
		currentDir = parentDir
	}
}

// Validate checks every field and reports all problems at once
func (c *Config) Validate() error {
	var problems []string

	if _, err := messages.ParseLang(c.Lang); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := formatter.ParseLocale(c.Locale, c.Currency); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := amortization.ParseRatePolicy(c.Mortgage.RatePolicy); err != nil {
		problems = append(problems, err.Error())
	}
	if c.RPS.RoundsToWin < 1 {
		problems = append(problems, "rps.rounds_to_win must be at least 1")
	}
	switch c.RPS.BestOfFive {
	case BestOfFiveAsk, BestOfFiveAlways, BestOfFiveNever:
	default:
		problems = append(problems, fmt.Sprintf("rps.best_of_five must be ask, always or never, got %q", c.RPS.BestOfFive))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, ", "))
	}
	return nil
}

// Language returns the configured message language
func (c *Config) Language() messages.Lang {
	lang, err := messages.ParseLang(c.Lang)
	if err != nil {
		return messages.English
	}
	return lang
}

// FormatLocale returns the configured number and currency locale
func (c *Config) FormatLocale() formatter.Locale {
	loc, err := formatter.ParseLocale(c.Locale, c.Currency)
	if err != nil {
		return formatter.DefaultLocale
	}
	return loc
}

// RatePolicy returns the configured APR interpretation
func (c *Config) RatePolicy() amortization.RatePolicy {
	policy, err := amortization.ParseRatePolicy(c.Mortgage.RatePolicy)
	if err != nil {
		return amortization.Nominal
	}
	return policy
}
