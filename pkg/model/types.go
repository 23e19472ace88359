package model

import internalmodel "github.com/goliatone/go-projection/internal/model"

// SlotDeclaration re-exports the internal slot declaration type.
type SlotDeclaration = internalmodel.SlotDeclaration

// SlotRef re-exports the internal slot reference type.
type SlotRef = internalmodel.SlotRef

// Segment re-exports the internal wrapper segment type.
type Segment = internalmodel.Segment

// WrapperModel re-exports the internal wrapper model.
type WrapperModel = internalmodel.WrapperModel

// ContentBlock re-exports the internal content block type.
type ContentBlock = internalmodel.ContentBlock

// TemplateRef re-exports the internal template reference type.
type TemplateRef = internalmodel.TemplateRef

// Item re-exports the internal identity-keyed sequence element.
type Item = internalmodel.Item

// BindingSet re-exports the internal slot to content mapping.
type BindingSet = internalmodel.BindingSet

// Bind assigns caller-supplied content blocks to the wrapper's slot
// declarations. See the internal binder for the matching rules.
func Bind(wrapper WrapperModel, blocks []ContentBlock) BindingSet {
	return internalmodel.Bind(wrapper, blocks)
}

// KeyedItems wraps a value slice into Items using the supplied key function.
func KeyedItems[T any](values []T, key func(T) string) []Item {
	return internalmodel.KeyedItems(values, key)
}
