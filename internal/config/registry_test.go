package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestPathEndsWithConfigYaml(t *testing.T) {
	path, err := Path()
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}
	if filepath.Base(path) != "config.yaml" {
		t.Errorf("Path() should end with 'config.yaml', got: %v", path)
	}
	if !strings.Contains(path, "fdtool") {
		t.Errorf("Path() = %v, should contain 'fdtool'", path)
	}
}

func TestNewRegistryDefaults(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != 1 {
		t.Errorf("Version = %v, want 1", reg.Version)
	}
	if reg.Output == nil {
		t.Fatal("Output is nil")
	}
	if reg.Output.Format != "text" {
		t.Errorf("Output.Format = %q, want \"text\"", reg.Output.Format)
	}
	if reg.Output.Color != "auto" {
		t.Errorf("Output.Color = %q, want \"auto\"", reg.Output.Color)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	reg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if reg.Output == nil || reg.Output.Format != "text" {
		t.Error("missing file did not yield default registry")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	reg := NewRegistry()
	reg.Output.Format = "json"
	reg.Output.MaxValueBytes = 128
	reg.Touch("a.dtb", time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))

	if err := reg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want \"json\"", got.Output.Format)
	}
	if got.Output.MaxValueBytes != 128 {
		t.Errorf("Output.MaxValueBytes = %d, want 128", got.Output.MaxValueBytes)
	}
	if len(got.RecentFiles) != 1 || got.RecentFiles[0].Path != "a.dtb" {
		t.Errorf("RecentFiles = %+v", got.RecentFiles)
	}
}

func TestTouch(t *testing.T) {
	reg := NewRegistry()
	now := time.Now()

	reg.Touch("a.dtb", now)
	reg.Touch("b.dtb", now)
	reg.RecentFiles[1].Note = "lab board" // a.dtb
	reg.Touch("a.dtb", now.Add(time.Minute))

	if reg.RecentFiles[0].Path != "a.dtb" {
		t.Errorf("most recent = %q, want a.dtb", reg.RecentFiles[0].Path)
	}
	if reg.RecentFiles[0].Note != "lab board" {
		t.Error("Touch dropped the existing note")
	}
	if len(reg.RecentFiles) != 2 {
		t.Errorf("len(RecentFiles) = %d, want 2", len(reg.RecentFiles))
	}

	// History stays bounded.
	for i := 0; i < 30; i++ {
		reg.Touch(filepath.Join("blobs", time.Duration(i).String()+".dtb"), now)
	}
	if len(reg.RecentFiles) != maxRecent {
		t.Errorf("len(RecentFiles) = %d, want %d", len(reg.RecentFiles), maxRecent)
	}
}
