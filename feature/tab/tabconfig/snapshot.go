package tabconfig

import "sort"

// Built-in values used when the configuration has no default section or
// could not be loaded.
const (
	BuiltinTitle  = "Default Tab Title"
	BuiltinFooter = "Default Tab Footer"
)

// Snapshot is one immutable version of the tab configuration.
// A Snapshot is never modified after it is built.
type Snapshot struct {
	defaultTitle  string
	defaultFooter string
	titles        map[string]string
	footers       map[string]string
}

// NewSnapshot builds a snapshot. The maps are copied and entries with an
// empty server name are dropped.
func NewSnapshot(defaultTitle, defaultFooter string, titles, footers map[string]string) *Snapshot {
	return &Snapshot{
		defaultTitle:  defaultTitle,
		defaultFooter: defaultFooter,
		titles:        copyEntries(titles),
		footers:       copyEntries(footers),
	}
}

// Defaults returns the snapshot served when no configuration is available.
func Defaults() *Snapshot {
	return NewSnapshot(BuiltinTitle, BuiltinFooter, nil, nil)
}

// DefaultTitle returns the title used for servers without an entry.
func (s *Snapshot) DefaultTitle() string { return s.defaultTitle }

// DefaultFooter returns the footer used for servers without an entry.
func (s *Snapshot) DefaultFooter() string { return s.defaultFooter }

// Title returns the raw title for server, or the default title.
func (s *Snapshot) Title(server string) string {
	if t, ok := s.titles[server]; ok {
		return t
	}
	return s.defaultTitle
}

// Footer returns the raw footer for server, or the default footer.
func (s *Snapshot) Footer(server string) string {
	if f, ok := s.footers[server]; ok {
		return f
	}
	return s.defaultFooter
}

// HasServer reports whether server has its own entry.
func (s *Snapshot) HasServer(server string) bool {
	_, t := s.titles[server]
	_, f := s.footers[server]
	return t || f
}

// Servers returns the names of all servers with an entry, sorted.
func (s *Snapshot) Servers() []string {
	seen := make(map[string]struct{}, len(s.titles))
	for name := range s.titles {
		seen[name] = struct{}{}
	}
	for name := range s.footers {
		seen[name] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func copyEntries(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		if k == "" {
			continue
		}
		out[k] = v
	}
	return out
}
