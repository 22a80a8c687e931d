// Copyright (c) 2026 Markus Weissbach.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package examsync

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exams.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, `
- name: Mathematik I
  min: 1.0
  max: 5.0
  step: 0.1
- name: Physik Prüfung
  min: 0
  max: 40
  step: 1
`)

	scales, created, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if created {
		t.Error("expected created=false for existing file")
	}
	if len(scales) != 2 {
		t.Fatalf("expected 2 scales, got %d", len(scales))
	}

	// Declared order must be preserved
	if scales[0].Name != "Mathematik I" || scales[1].Name != "Physik Prüfung" {
		t.Errorf("config order not preserved: %v", scales)
	}
	if scales[0].Step != 0.1 {
		t.Errorf("expected step 0.1, got %v", scales[0].Step)
	}
}

func TestLoadWritesDefaultWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exams.yaml")

	scales, created, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !created {
		t.Error("expected created=true when file was missing")
	}
	if len(scales) != 2 {
		t.Fatalf("expected 2 default scales, got %d", len(scales))
	}

	// The written file must round-trip
	again, created, err := Load(path)
	if err != nil {
		t.Fatalf("Load of written default failed: %v", err)
	}
	if created {
		t.Error("expected created=false on second load")
	}
	if len(again) != len(scales) || again[0] != scales[0] || again[1] != scales[1] {
		t.Errorf("default file did not round-trip: %v vs %v", again, scales)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unparsable YAML", "{{{not yaml"},
		{"wrong shape", "just a string"},
		{"missing name", "- min: 1.0\n  max: 5.0\n  step: 0.1\n"},
		{"step zero", "- name: A\n  min: 1.0\n  max: 5.0\n  step: 0\n"},
		{"step negative", "- name: A\n  min: 1.0\n  max: 5.0\n  step: -0.1\n"},
		{"min equals max", "- name: A\n  min: 5.0\n  max: 5.0\n  step: 0.1\n"},
		{"min above max", "- name: A\n  min: 6.0\n  max: 5.0\n  step: 0.1\n"},
		{"duplicate name", "- name: A\n  min: 1.0\n  max: 5.0\n  step: 0.1\n- name: A\n  min: 0\n  max: 40\n  step: 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)

			_, _, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("expected *ConfigError, got %T: %v", err, err)
			}
		})
	}
}

func TestReconcile(t *testing.T) {
	config := []ExamScale{
		{Name: "A", Min: 1, Max: 5, Step: 0.1},
		{Name: "B", Min: 0, Max: 40, Step: 1},
	}

	t.Run("all new", func(t *testing.T) {
		got := Reconcile(nil, config)
		if len(got) != 2 {
			t.Fatalf("expected 2 upserts, got %d", len(got))
		}
		if got[0].Name != "A" || got[0].Position != 0 {
			t.Errorf("unexpected first upsert: %+v", got[0])
		}
		if got[1].Name != "B" || got[1].Position != 1 {
			t.Errorf("unexpected second upsert: %+v", got[1])
		}
	})

	t.Run("unchanged config yields no writes", func(t *testing.T) {
		existing := map[string]StoredScale{
			"A": {Min: 1, Max: 5, Step: 0.1, Position: 0},
			"B": {Min: 0, Max: 40, Step: 1, Position: 1},
		}
		if got := Reconcile(existing, config); len(got) != 0 {
			t.Errorf("expected no upserts, got %v", got)
		}
	})

	t.Run("changed scale wins", func(t *testing.T) {
		existing := map[string]StoredScale{
			"A": {Min: 1, Max: 6, Step: 0.5, Position: 0},
			"B": {Min: 0, Max: 40, Step: 1, Position: 1},
		}
		got := Reconcile(existing, config)
		if len(got) != 1 || got[0].Name != "A" {
			t.Fatalf("expected one upsert for A, got %v", got)
		}
		if got[0].Max != 5 || got[0].Step != 0.1 {
			t.Errorf("config values must win: %+v", got[0])
		}
	})

	t.Run("moved position is rewritten", func(t *testing.T) {
		existing := map[string]StoredScale{
			"A": {Min: 1, Max: 5, Step: 0.1, Position: 1},
			"B": {Min: 0, Max: 40, Step: 1, Position: 1},
		}
		got := Reconcile(existing, config)
		if len(got) != 1 || got[0].Name != "A" || got[0].Position != 0 {
			t.Errorf("expected position rewrite for A, got %v", got)
		}
	})
}
