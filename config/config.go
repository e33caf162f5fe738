// Package config holds conversion settings, loaded from an optional JSON
// file merged over defaults.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the root configuration structure.
type Config struct {
	Identity      IdentityConfig `json:"identity"`
	ReservedPages []string       `json:"reservedPages"`
	Filters       FilterConfig   `json:"filters"`
	Output        OutputConfig   `json:"output"`
}

// IdentityConfig controls commit authorship.
type IdentityConfig struct {
	// PlaceholderAuthor stands in for changelog entries with no username.
	PlaceholderAuthor string `json:"placeholderAuthor"`
	// ConverterName and ConverterEmail sign the initialization and
	// closing commits.
	ConverterName  string `json:"converterName"`
	ConverterEmail string `json:"converterEmail"`
	// FinalMessage is the closing commit's message.
	FinalMessage string `json:"finalMessage"`
}

// FilterConfig holds page path filtering options.
type FilterConfig struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// OutputConfig holds target repository options.
type OutputConfig struct {
	Directory string `json:"directory"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Identity: IdentityConfig{
			PlaceholderAuthor: "anonymous",
			ConverterName:     "dokugit",
			ConverterEmail:    "dokugit@localhost",
			FinalMessage:      "Convert DokuWiki history to git with dokugit",
		},
		ReservedPages: []string{"_dokuwiki", "_comments"},
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
		Output: OutputConfig{
			Directory: "gitdir",
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		candidates := []string{".dokugit.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".dokugit.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
