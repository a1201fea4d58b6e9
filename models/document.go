// SPDX-License-Identifier: Apache-2.0

// Package models contains the domain types shared across the confeval
// application: the raw configuration document and the resolved parameter
// set derived from it.
package models

import "encoding/json"

// Document is a configuration document parsed from JSON. The underlying
// value is untyped: the file may contain any well-formed JSON value, and
// only key presence is ever inspected, never shape.
type Document struct {
	value any
}

// NewDocument wraps an already-decoded JSON value in a Document.
func NewDocument(value any) Document {
	return Document{value: value}
}

// Get looks up a top-level key in the document and reports whether it is
// present. Lookup on a non-object document (array, scalar, null) yields
// absent for every key. A key holding JSON null is present.
func (d Document) Get(key string) (any, bool) {
	obj, ok := d.value.(map[string]any)
	if !ok {
		return nil, false
	}

	v, ok := obj[key]
	return v, ok
}

// Value returns the underlying decoded JSON value.
func (d Document) Value() any {
	return d.value
}

// FormatValue renders an arbitrary JSON value for human-readable log lines.
// Strings are rendered bare (no quotes); every other value is rendered in
// its JSON form (42, true, null, {"k":"v"}).
func FormatValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	data, err := json.Marshal(v)
	if err != nil {
		return "<unprintable>"
	}

	return string(data)
}
