// Copyright (c) 2026 Markus Weissbach.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package examsync

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ExamScale is one entry of the exam config file.
type ExamScale struct {
	Name string  `yaml:"name"`
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Step float64 `yaml:"step"`
}

// ConfigError means the exam config file is present but unusable. The caller
// must not bring up the portal when it sees one.
type ConfigError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("exam config %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("exam config %s: %s", e.Path, e.Reason)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Default entries written when no config file exists yet. The portal the
// config replaced shipped with the same two exams.
var defaultScales = []ExamScale{
	{Name: "Mathematik I", Min: 1.0, Max: 5.0, Step: 0.1},
	{Name: "Physik Prüfung", Min: 0, Max: 40, Step: 1},
}

// Load reads and validates the exam config file. If the file does not exist
// it writes a default one and returns its entries with created=true so the
// caller can surface a non-fatal warning.
func Load(path string) ([]ExamScale, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if werr := writeDefault(path); werr != nil {
			return nil, false, fmt.Errorf("write default exam config: %w", werr)
		}
		return append([]ExamScale(nil), defaultScales...), true, nil
	}
	if err != nil {
		return nil, false, &ConfigError{Path: path, Reason: "unreadable", Err: err}
	}

	var scales []ExamScale
	if err := yaml.Unmarshal(data, &scales); err != nil {
		return nil, false, &ConfigError{Path: path, Reason: "invalid YAML", Err: err}
	}

	if err := validate(path, scales); err != nil {
		return nil, false, err
	}

	return scales, false, nil
}

func validate(path string, scales []ExamScale) error {
	seen := make(map[string]bool, len(scales))
	for i, sc := range scales {
		if sc.Name == "" {
			return &ConfigError{Path: path, Reason: fmt.Sprintf("entry %d: name is required", i)}
		}
		if seen[sc.Name] {
			return &ConfigError{Path: path, Reason: fmt.Sprintf("duplicate exam name %q", sc.Name)}
		}
		seen[sc.Name] = true

		if sc.Step <= 0 {
			return &ConfigError{Path: path, Reason: fmt.Sprintf("exam %q: step must be positive", sc.Name)}
		}
		if sc.Min >= sc.Max {
			return &ConfigError{Path: path, Reason: fmt.Sprintf("exam %q: min must be below max", sc.Name)}
		}
	}
	return nil
}

func writeDefault(path string) error {
	data, err := yaml.Marshal(defaultScales)
	if err != nil {
		return fmt.Errorf("marshal default scales: %w", err)
	}
	header := []byte("# Exam grading scales. Synced into the database on every start;\n# this file is the source of truth for min/max/step.\n")
	return os.WriteFile(path, append(header, data...), 0o644)
}
