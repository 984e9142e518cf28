package tab

import (
	"path/filepath"
	"time"
)

// Config holds configuration for the tab feature.
type Config struct {
	// DataDir is the directory holding the configuration file.
	DataDir string `mapstructure:"data_dir" default:"plugins/speedtab"`
	// File is the configuration file name inside DataDir.
	File string `mapstructure:"file" default:"config.yml"`
	// Source selects where the configuration is read from (file, storage).
	Source string `mapstructure:"source" default:"file"`
	// Object is the object name used when Source is storage.
	Object string `mapstructure:"object" default:"speedtab/config.yml"`
	// Watch enables automatic reload when the configuration file changes.
	Watch bool `mapstructure:"watch" default:"true"`
	// WatchDebounceMs groups file changes closer together than this into one reload.
	WatchDebounceMs int `mapstructure:"watch_debounce_ms" default:"250"`
}

const (
	SourceFile    = "file"
	SourceStorage = "storage"
)

// IsValidSource checks if the configured source is supported.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceFile, SourceStorage:
		return true
	default:
		return false
	}
}

// Path returns the path of the configuration file.
func (c Config) Path() string {
	return filepath.Join(c.DataDir, c.File)
}

// WatchDebounce returns the debounce interval of the file watcher.
func (c Config) WatchDebounce() time.Duration {
	return time.Duration(c.WatchDebounceMs) * time.Millisecond
}
