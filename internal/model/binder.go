package model

// BindingSet maps a wrapper's slot declarations to the content blocks they
// claimed. Selectors iterate in declaration order, so renderers splice content
// in the wrapper's order regardless of the caller's supply order. The set is
// immutable once built.
type BindingSet struct {
	selectors []string
	blocks    map[string][]ContentBlock
}

// Selectors returns the bound selectors in slot-declaration order. The empty
// string identifies the default slot.
func (s BindingSet) Selectors() []string {
	return append([]string(nil), s.selectors...)
}

// Blocks returns the content claimed by the given selector, preserving the
// caller's supply order within the slot.
func (s BindingSet) Blocks(selector string) []ContentBlock {
	bound, ok := s.blocks[selector]
	if !ok {
		return nil
	}
	return append([]ContentBlock(nil), bound...)
}

// Bound reports whether the selector claimed at least one block.
func (s BindingSet) Bound(selector string) bool {
	return len(s.blocks[selector]) > 0
}

// Len returns the total number of bound blocks.
func (s BindingSet) Len() int {
	total := 0
	for _, bound := range s.blocks {
		total += len(bound)
	}
	return total
}

// Mapping returns a copy of the full selector to content mapping. Mainly
// useful for callers asserting binder behaviour.
func (s BindingSet) Mapping() map[string][]ContentBlock {
	out := make(map[string][]ContentBlock, len(s.blocks))
	for selector, bound := range s.blocks {
		out[selector] = append([]ContentBlock(nil), bound...)
	}
	return out
}

// Bind assigns caller-supplied content blocks to the wrapper's declarations.
// A block is claimed by the first declaration (in declaration order) whose
// selector equals the block's selector. Blocks without a matching named slot
// fall back to the default slot when one exists and are dropped otherwise.
// Each block lands in at most one slot. Bind is pure: the same inputs always
// produce an identical mapping and neither argument is mutated.
func Bind(wrapper WrapperModel, blocks []ContentBlock) BindingSet {
	set := BindingSet{
		selectors: make([]string, 0, len(wrapper.Slots)),
		blocks:    make(map[string][]ContentBlock, len(wrapper.Slots)),
	}
	for _, decl := range wrapper.Slots {
		set.selectors = append(set.selectors, decl.Selector)
	}

	_, hasDefault := wrapper.DefaultSlot()

	for _, block := range blocks {
		if decl, ok := claim(wrapper.Slots, block.Selector); ok {
			set.blocks[decl.Selector] = append(set.blocks[decl.Selector], block)
			continue
		}
		if hasDefault {
			set.blocks[""] = append(set.blocks[""], block)
		}
	}

	return set
}

// claim finds the first declaration whose selector equals the block selector.
func claim(decls []SlotDeclaration, selector string) (SlotDeclaration, bool) {
	for _, decl := range decls {
		if decl.Selector == selector {
			return decl, true
		}
	}
	return SlotDeclaration{}, false
}
