package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Lesson != "riemann" {
		t.Errorf("expected lesson riemann, got %s", cfg.Lesson)
	}
	if cfg.FPS <= 0 {
		t.Error("fps should be positive")
	}
	if cfg.Params == nil {
		t.Error("params map should be initialized")
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "explorables.yaml")

	cfg := DefaultConfig()
	cfg.Lesson = "fourier"
	cfg.Mode = "triangle"
	cfg.Params["harmonics"] = 12

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Lesson != "fourier" {
		t.Errorf("expected lesson fourier, got %s", loaded.Lesson)
	}
	if loaded.Mode != "triangle" {
		t.Errorf("expected mode triangle, got %s", loaded.Mode)
	}
	if loaded.Params["harmonics"] != 12 {
		t.Errorf("expected harmonics 12, got %v", loaded.Params["harmonics"])
	}
	if loaded.Theme != DefaultTheme {
		t.Errorf("unset theme should default, got %s", loaded.Theme)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("lesson: eigen\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Lesson != "eigen" {
		t.Errorf("expected lesson eigen, got %s", cfg.Lesson)
	}
	if cfg.FPS != DefaultFPS {
		t.Errorf("expected default fps, got %d", cfg.FPS)
	}
	if cfg.Params == nil {
		t.Error("params should never be nil after load")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/no/such/file.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("riemann", "fine")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Params["n"] != 64 {
		t.Errorf("expected n 64, got %v", cfg.Params["n"])
	}

	if GetPreset("riemann", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "fine") != nil {
		t.Error("expected nil for nonexistent lesson")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets("fourier")) == 0 {
		t.Error("expected presets for fourier")
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent lesson")
	}
}

func TestEveryPresetNamesItsLesson(t *testing.T) {
	for lessonID, presets := range Presets {
		for name, cfg := range presets {
			if cfg.Lesson != lessonID {
				t.Errorf("preset %s/%s names lesson %q", lessonID, name, cfg.Lesson)
			}
		}
	}
}
