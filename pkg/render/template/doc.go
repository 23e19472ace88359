// Package template declares the engine seam used by renderers and the
// materializer. The default implementation in the gotemplate subpackage wraps
// a pongo2 template set; alternate engines only need to satisfy the
// TemplateRenderer contract.
package template
