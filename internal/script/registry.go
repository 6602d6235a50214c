package script

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/waabox/clidemo/internal/domain"
)

// ErrUnknownScript is returned by Lookup when no script has the requested name.
var ErrUnknownScript = errors.New("unknown script")

// Registry maps script names to validated scripts.
type Registry struct {
	entries []entry
}

type entry struct {
	name   string
	script domain.Script
}

// NewRegistry creates an empty script registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register validates s and stores it under s.Name, replacing any script with the same
// name.
func (r *Registry) Register(s domain.Script) error {
	if s.Name == "" {
		return fmt.Errorf("registering script: empty name: %w", domain.ErrInvalidScript)
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("registering script: %w", err)
	}
	for i, e := range r.entries {
		if e.name == s.Name {
			r.entries[i].script = s
			return nil
		}
	}
	r.entries = append(r.entries, entry{name: s.Name, script: s})
	return nil
}

// Lookup returns the script registered under name.
func (r *Registry) Lookup(name string) (domain.Script, error) {
	for _, e := range r.entries {
		if e.name == name {
			return e.script, nil
		}
	}
	return domain.Script{}, fmt.Errorf("%w %q (available: %s)", ErrUnknownScript, name, strings.Join(r.Names(), ", "))
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.name
	}
	sort.Strings(names)
	return names
}
