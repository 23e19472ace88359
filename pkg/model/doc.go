// Package model exposes the public projection model: slot declarations,
// content blocks, template references, and the pure binder mapping content to
// slots. Implementations live under internal/model so the core types stay in
// one place while this package provides the stable import path.
package model
