package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file at the root of a ledger directory.
const FileName = "homeledger.yaml"

// Config represents the top-level homeledger.yaml configuration.
type Config struct {
	Ledger     LedgerConfig     `yaml:"ledger"`
	Recurrence RecurrenceConfig `yaml:"recurrence"`
	Git        GitConfig        `yaml:"git"`
}

// LedgerConfig locates and labels the ledger data.
type LedgerConfig struct {
	Name     string `yaml:"name"`
	DataDir  string `yaml:"data_dir"`
	Currency string `yaml:"currency"` // display label only, single-currency ledger
}

// RecurrenceConfig controls the recurrence engine defaults.
type RecurrenceConfig struct {
	// CatchUp is "single" (one emission per rule per run) or "all"
	// (one per elapsed period).
	CatchUp string `yaml:"catch_up"`
}

// GitConfig controls snapshot commits of the data directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a homeledger.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new ledger.
func Default(name string) *Config {
	return &Config{
		Ledger: LedgerConfig{
			Name:     name,
			DataDir:  "data",
			Currency: "USD",
		},
		Recurrence: RecurrenceConfig{
			CatchUp: "single",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Homeledger",
			AuthorEmail: "ledger@localhost",
		},
	}
}
