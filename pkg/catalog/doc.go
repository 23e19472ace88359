// Package catalog loads reusable wrapper and template definitions from JSON
// or YAML documents, including a small builtin set embedded in the module.
// Catalogued wrappers carry authoring metadata (slot labels, required slots)
// that markup scanning alone cannot provide.
package catalog
