package markup

import "errors"

// Document pairs a wrapper's raw markup bytes with their origin. The payload
// is copied on the way in and out; scanners never see caller mutations.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument validates and wraps a markup payload.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("markup: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("markup: raw markup is empty")
	}
	return Document{source: src, raw: append([]byte(nil), raw...)}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests
// and embedded fixtures.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin of the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a defensive copy of the markup bytes.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location is shorthand for the source location; empty for the zero value.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}
