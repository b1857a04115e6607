package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Missing file gave %+v, want defaults", cfg)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
grid_size = 2.5
zoom = 2
undo_levels = 10
log_level = "debug"
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.GridSize != 2.5 || cfg.Zoom != 2 || cfg.UndoLevels != 10 {
		t.Errorf("Parsed %+v", cfg)
	}
	if cfg.DoubleClickMillis != 400 {
		t.Errorf("Unset field lost its default: %d", cfg.DoubleClickMillis)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Errorf("Level = %v, want debug", cfg.Level())
	}
}

func TestParseInvalidValues(t *testing.T) {
	cfg, err := Parse([]byte("zoom = -1\nundo_levels = 0\ngrid_size = -4\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Zoom != 1 || cfg.UndoLevels != 50 || cfg.GridSize != 1 {
		t.Errorf("Invalid values not reset: %+v", cfg)
	}
}

func TestParseError(t *testing.T) {
	if _, err := Parse([]byte("zoom = = 3")); err == nil {
		t.Error("Expected error for malformed TOML")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	cfg := Default()
	cfg.GridSize = 4
	cfg.LogFile = "/tmp/diagedit.log"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Errorf("Loaded %+v, want %+v", got, cfg)
	}
}

func TestLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for name, want := range tests {
		if got := (Config{LogLevel: name}).Level(); got != want {
			t.Errorf("Level(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("zoom = 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan Config, 16)
	go Watch(ctx, path, func(cfg Config, err error) {
		if err == nil {
			got <- cfg
		}
	})

	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case cfg := <-got:
			if cfg.Zoom == 3 {
				return
			}
		case <-tick.C:
			// Keep writing until the watcher is registered and reports
			if err := os.WriteFile(path, []byte("zoom = 3\n"), 0644); err != nil {
				t.Fatal(err)
			}
		case <-deadline:
			t.Fatal("Timed out waiting for config reload")
		}
	}
}
