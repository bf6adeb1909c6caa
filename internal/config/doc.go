// Package config provides user configuration management for fdtool.
//
// This package manages a YAML-based configuration file holding rendering
// preferences (default output format, color mode, payload truncation) and a
// short history of recently inspected blobs with optional per-file notes.
// The configuration follows OS-specific conventions for storage location.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/fdtool/config.yaml or $HOME/.config/fdtool/config.yaml
//   - macOS: $HOME/.config/fdtool/config.yaml
//   - Windows: %LOCALAPPDATA%\fdtool\config.yaml
//
// # Usage Example
//
//	registry, err := config.LoadDefault()
//	if err != nil {
//	    return err
//	}
//
//	registry.Touch("board.dtb", time.Now())
//
//	if err := registry.SaveDefault(); err != nil {
//	    return err
//	}
//
// Saves are atomic (temp file + rename), so a crash mid-write never corrupts
// an existing config.
package config
