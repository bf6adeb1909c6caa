package config

import "time"

// Registry is the entire user configuration file: rendering preferences and
// a small history of inspected blobs.
type Registry struct {
	Version     int          `yaml:"version"`
	Output      *OutputPrefs `yaml:"output,omitempty"`
	RecentFiles []*Recent    `yaml:"recent_files,omitempty"`
}

// OutputPrefs holds defaults for the rendering flags. Command-line flags
// override these per invocation.
type OutputPrefs struct {
	Format        string `yaml:"format"`                    // "text" or "json"
	Color         string `yaml:"color"`                     // "auto", "always", "never"
	MaxValueBytes int    `yaml:"max_value_bytes,omitempty"` // truncate long payloads in text output
}

// Recent records one previously inspected blob, most recent first.
type Recent struct {
	Path     string    `yaml:"path"`
	LastOpen time.Time `yaml:"last_open"`
	Note     string    `yaml:"note,omitempty"` // free-form user annotation
}

// maxRecent caps the history length.
const maxRecent = 10

// NewRegistry creates a Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version: 1,
		Output: &OutputPrefs{
			Format:        "text",
			Color:         "auto",
			MaxValueBytes: 64,
		},
	}
}

// Touch moves path to the front of the recent-file list, preserving any
// existing note, and trims the list.
func (r *Registry) Touch(path string, now time.Time) {
	entry := &Recent{Path: path, LastOpen: now}
	rest := make([]*Recent, 0, len(r.RecentFiles))
	for _, f := range r.RecentFiles {
		if f.Path == path {
			entry.Note = f.Note
			continue
		}
		rest = append(rest, f)
	}
	r.RecentFiles = append([]*Recent{entry}, rest...)
	if len(r.RecentFiles) > maxRecent {
		r.RecentFiles = r.RecentFiles[:maxRecent]
	}
}
