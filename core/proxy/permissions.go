package proxy

import "strings"

// PermissionChecker answers whether a requester holds a permission.
type PermissionChecker interface {
	HasPermission(requester, permission string) bool
}

// Config holds the permission settings.
type Config struct {
	// Operators is a comma-separated list of requesters holding every permission.
	Operators string `mapstructure:"operators" default:""`
}

// StaticPermissions grants every permission to the console and a fixed set
// of operators, and nothing to anyone else.
type StaticPermissions struct {
	operators map[string]struct{}
}

// NewStaticPermissions builds the checker from the configuration.
func NewStaticPermissions(cfg Config) *StaticPermissions {
	ops := make(map[string]struct{})
	for _, name := range strings.Split(cfg.Operators, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			ops[name] = struct{}{}
		}
	}
	return &StaticPermissions{operators: ops}
}

// HasPermission implements PermissionChecker.
func (p *StaticPermissions) HasPermission(requester, permission string) bool {
	requester = strings.ToLower(strings.TrimSpace(requester))
	if requester == ConsoleName {
		return true
	}
	_, ok := p.operators[requester]
	return ok
}
