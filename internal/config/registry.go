package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "fdtool"
	configFile = "config.yaml"
)

// Dir returns the OS-appropriate configuration directory:
//   - Linux: $XDG_CONFIG_HOME/fdtool or $HOME/.config/fdtool
//   - macOS: $HOME/.config/fdtool (following XDG convention)
//   - Windows: %LOCALAPPDATA%\fdtool
func Dir() (string, error) {
	if runtime.GOOS == "windows" {
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, appName), nil
		}
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" && runtime.GOOS != "windows" {
		return filepath.Join(xdg, appName), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", appName), nil
}

// Path returns the full path to the configuration file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load reads the registry from the given path. A missing file is not an
// error: a fresh default registry is returned instead.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewRegistry(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	reg := NewRegistry()
	if err := yaml.Unmarshal(data, reg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if reg.Output == nil {
		reg.Output = NewRegistry().Output
	}
	return reg, nil
}

// LoadDefault loads the registry from the default location.
func LoadDefault() (*Registry, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Save writes the registry to the given path, creating the directory with
// user-only permissions. The write goes through a temp file and rename so a
// crash never leaves a half-written config behind.
func (r *Registry) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace config: %w", err)
	}
	return nil
}

// SaveDefault writes the registry to the default location.
func (r *Registry) SaveDefault() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return r.Save(path)
}
