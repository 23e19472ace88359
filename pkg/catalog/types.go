package catalog

import (
	"sort"
)

// SlotConfig documents a slot a catalogued wrapper declares, with authoring
// metadata the scanner cannot derive from markup alone.
type SlotConfig struct {
	// Label is a human-facing name for pickers and prompts.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	// Required marks slots a composition must bind content to.
	Required bool `json:"required,omitempty" yaml:"required,omitempty"`
}

// WrapperConfig is a catalogued wrapper definition: reusable markup plus
// per-slot authoring metadata.
type WrapperConfig struct {
	ID          string                `json:"id" yaml:"id"`
	Description string                `json:"description,omitempty" yaml:"description,omitempty"`
	Markup      string                `json:"markup" yaml:"markup"`
	Slots       map[string]SlotConfig `json:"slots,omitempty" yaml:"slots,omitempty"`
}

// TemplateConfig is a catalogued template definition usable as a TemplateRef
// body.
type TemplateConfig struct {
	ID      string `json:"id" yaml:"id"`
	Var     string `json:"var,omitempty" yaml:"var,omitempty"`
	Content string `json:"content" yaml:"content"`
}

// Store indexes catalogued wrappers and templates by id.
type Store struct {
	wrappers  map[string]WrapperConfig
	templates map[string]TemplateConfig
}

// NewStore builds an empty store.
func NewStore() *Store {
	return &Store{
		wrappers:  map[string]WrapperConfig{},
		templates: map[string]TemplateConfig{},
	}
}

// Wrapper returns the wrapper registered under the given id.
func (s *Store) Wrapper(id string) (WrapperConfig, bool) {
	if s == nil {
		return WrapperConfig{}, false
	}
	cfg, ok := s.wrappers[id]
	return cfg, ok
}

// Template returns the template registered under the given id.
func (s *Store) Template(id string) (TemplateConfig, bool) {
	if s == nil {
		return TemplateConfig{}, false
	}
	cfg, ok := s.templates[id]
	return cfg, ok
}

// WrapperIDs lists registered wrapper ids in sorted order.
func (s *Store) WrapperIDs() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.wrappers))
	for id := range s.wrappers {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// TemplateIDs lists registered template ids in sorted order.
func (s *Store) TemplateIDs() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.templates))
	for id := range s.templates {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Empty reports whether the store holds no definitions.
func (s *Store) Empty() bool {
	return s == nil || (len(s.wrappers) == 0 && len(s.templates) == 0)
}

// RequiredSlots returns the selectors a wrapper marks as required, sorted.
func (c WrapperConfig) RequiredSlots() []string {
	var out []string
	for selector, slot := range c.Slots {
		if slot.Required {
			out = append(out, selector)
		}
	}
	sort.Strings(out)
	return out
}
