package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"
)

// FileName is the workbook configuration file.
const FileName = "ledgerlab.yaml"

// Config represents the top-level ledgerlab.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Reports  ReportsConfig  `yaml:"reports"`
	Log      LogConfig      `yaml:"log"`
}

// BusinessConfig identifies the simulated business.
type BusinessConfig struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"` // ISO 4217 code, e.g. "PEN"
}

// ReportsConfig controls report rendering.
type ReportsConfig struct {
	LedgerPageSize int  `yaml:"ledger_page_size"` // accounts shown before --all
	Color          bool `yaml:"color"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads a ledgerlab.yaml file from disk. Missing fields take their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Marshal encodes a Config as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new workbook.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name:     businessName,
			Currency: "PEN",
		},
		Reports: ReportsConfig{
			LedgerPageSize: 8,
			Color:          true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
