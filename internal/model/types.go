package model

// SlotDeclaration describes a placeholder a wrapper exposes to callers. An
// empty Selector identifies the default slot, which captures any content not
// claimed by a named slot. Position is the ordinal of the declaration within
// the wrapper's render output. Declarations are produced once per wrapper
// definition and are immutable afterwards.
type SlotDeclaration struct {
	Selector string `json:"selector,omitempty"`
	Position int    `json:"position"`
}

// IsDefault reports whether the declaration captures unclaimed content.
func (d SlotDeclaration) IsDefault() bool {
	return d.Selector == ""
}

// SlotRef marks a slot's location inside the wrapper's segment stream.
// Fallback holds markup rendered only when the slot receives no content.
// Inert flags duplicate declarations: they stay in the stream so the
// wrapper's chrome keeps its shape, but they never receive content.
type SlotRef struct {
	Selector string `json:"selector,omitempty"`
	Fallback string `json:"fallback,omitempty"`
	Inert    bool   `json:"inert,omitempty"`
}

// Segment is one run of the wrapper's render stream: either literal markup or
// a slot reference, never both.
type Segment struct {
	Markup string   `json:"markup,omitempty"`
	Slot   *SlotRef `json:"slot,omitempty"`
}

// WrapperModel is the scanned representation of a reusable wrapper: its
// ordered slot declarations plus the segment stream renderers splice content
// into. Slots holds at most one declaration per selector (first occurrence
// wins); later duplicates appear only as inert segment refs.
type WrapperModel struct {
	Name     string            `json:"name"`
	Source   string            `json:"source,omitempty"`
	Slots    []SlotDeclaration `json:"slots"`
	Segments []Segment         `json:"segments"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Slot returns the declaration registered for the given selector.
func (m WrapperModel) Slot(selector string) (SlotDeclaration, bool) {
	for _, decl := range m.Slots {
		if decl.Selector == selector {
			return decl, true
		}
	}
	return SlotDeclaration{}, false
}

// DefaultSlot returns the default declaration when the wrapper exposes one.
func (m WrapperModel) DefaultSlot() (SlotDeclaration, bool) {
	return m.Slot("")
}

// HasSlots reports whether the wrapper declares any placeholders.
func (m WrapperModel) HasSlots() bool {
	return len(m.Slots) > 0
}

// ContentBlock is a unit of content a caller supplies at a usage site. Either
// Markup carries literal (or value-bound) markup, or Template names a
// caller-owned TemplateRef resolved at render time. The block is owned by the
// caller and read-only to the wrapper.
type ContentBlock struct {
	Selector string `json:"selector,omitempty"`
	Markup   string `json:"markup,omitempty"`
	Template string `json:"template,omitempty"`
}

// IsTemplate reports whether the block defers to a TemplateRef.
func (b ContentBlock) IsTemplate() bool {
	return b.Template != ""
}

// TemplateRef is a caller-owned, parameterized block of markup with a
// declared loop variable. Wrappers look refs up by name (a weak reference,
// resolved after the caller's content set is composed); an unresolved ref
// renders nothing.
type TemplateRef struct {
	Name    string `json:"name"`
	Var     string `json:"var"`
	Content string `json:"content"`
}

// Item is one element of an identity-keyed sequence driving repeated template
// materialization. Key must be stable for the lifetime of the logical item so
// renderings can be reused across sequence changes; it is never a positional
// index.
type Item struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// KeyedItems wraps a value slice into Items using the supplied key function.
func KeyedItems[T any](values []T, key func(T) string) []Item {
	if len(values) == 0 {
		return nil
	}
	out := make([]Item, 0, len(values))
	for _, value := range values {
		out = append(out, Item{Key: key(value), Value: value})
	}
	return out
}
