package tabconfig

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Template is the configuration written into place when none exists.
//
//go:embed config.yml
var Template []byte

// ErrLoadFailure wraps every error that prevented a configuration from loading.
var ErrLoadFailure = errors.New("failed to load tab configuration")

type document struct {
	Default entry            `yaml:"default"`
	Servers map[string]entry `yaml:"servers"`
}

type entry struct {
	TabTitle  *string `yaml:"tabTitle"`
	TabFooter *string `yaml:"tabFooter"`
}

// Parse builds a snapshot from a YAML document.
//
// A server entry without tabTitle or tabFooter gets the default value read
// from the same document. The fallback is copied into the snapshot at parse
// time, so it does not follow later changes to the default section.
func Parse(raw []byte) (*Snapshot, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse tab configuration: %w", err)
	}

	defaultTitle := valueOr(doc.Default.TabTitle, BuiltinTitle)
	defaultFooter := valueOr(doc.Default.TabFooter, BuiltinFooter)

	titles := make(map[string]string, len(doc.Servers))
	footers := make(map[string]string, len(doc.Servers))
	for name, e := range doc.Servers {
		if name == "" {
			continue
		}
		titles[name] = valueOr(e.TabTitle, defaultTitle)
		footers[name] = valueOr(e.TabFooter, defaultFooter)
	}

	return NewSnapshot(defaultTitle, defaultFooter, titles, footers), nil
}

// Load reads and parses the configuration from src. On failure it returns
// the built-in Defaults together with an error wrapping ErrLoadFailure, so
// the caller always has a complete snapshot to install.
func Load(ctx context.Context, src Source) (*Snapshot, error) {
	raw, err := src.Read(ctx)
	if err != nil {
		return Defaults(), fmt.Errorf("%w from %s: %w", ErrLoadFailure, src, err)
	}

	snap, err := Parse(raw)
	if err != nil {
		return Defaults(), fmt.Errorf("%w from %s: %w", ErrLoadFailure, src, err)
	}
	return snap, nil
}

func valueOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
