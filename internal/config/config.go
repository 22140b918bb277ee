// Package config loads and validates timer configuration files (YAML or
// JSON) and builds observers from them. JSON documents are additionally
// checked against an embedded JSON Schema before unmarshalling.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root of a timer configuration document.
type Config struct {
	// Timers lists the measurement sites to construct.
	Timers []TimerConfig `json:"timers" yaml:"timers"`
}

// TimerConfig describes one measurement site: which observer kind backs it
// and the knobs that kind accepts.
type TimerConfig struct {
	// Name annotates the timer's report output.
	Name string `json:"name" yaml:"name"`

	// Observer selects the kind: average, stddev, histogram, or hdr.
	// Defaults to stddev.
	Observer string `json:"observer,omitempty" yaml:"observer,omitempty"`

	// Quantiles to estimate, ascending in [0, 1]. Required for the
	// histogram and hdr kinds, rejected for the scalar kinds.
	Quantiles []float64 `json:"quantiles,omitempty" yaml:"quantiles,omitempty"`

	// Markers is the marker count per quantile for the histogram kind
	// (odd, >= 5; default 5).
	Markers int `json:"markers,omitempty" yaml:"markers,omitempty"`

	// SigFigs is the value precision for the hdr kind (1..5, default 3).
	SigFigs int `json:"sigfigs,omitempty" yaml:"sigfigs,omitempty"`

	// ThreadSafe wraps the observer in the locking decorator for sites
	// measured from multiple goroutines.
	ThreadSafe bool `json:"threadSafe,omitempty" yaml:"threadSafe,omitempty"`
}

// LoadConfig loads a timer configuration from a file.
//
// The file format is determined by extension:
//   - .yaml, .yml -> YAML
//   - .json -> JSON (schema-checked)
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseConfig(data, path)
}

// ParseConfig parses configuration data. The format is determined by the
// file extension in path, defaulting to YAML when the path is empty or has
// an unknown extension.
func ParseConfig(data []byte, path string) (*Config, error) {
	var config Config

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := ValidateSchema(data); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	}

	if errs := ValidateConfig(&config); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config: %s", errs[0])
	}

	return &config, nil
}
