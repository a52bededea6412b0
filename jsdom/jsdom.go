//go:build js && wasm

// Package jsdom binds the webfolder host-platform interfaces to the real DOM
// through github.com/hack-pad/safejs.
//
// Nothing here builds or attaches DOM nodes: the caller owns the input
// element, the drop target, and the event wiring, and hands the relevant JS
// values in. This package only wraps them in the shapes the traversal engine
// consumes.
package jsdom

import (
	"github.com/hack-pad/safejs"
)

// stringProp reads a string property, returning "" when the property is
// missing or the value is not a string. Entry metadata is best-effort; a
// broken entry surfaces later as a malformed or failing entry, not a panic.
func stringProp(v safejs.Value, name string) string {
	p, err := v.Get(name)
	if err != nil {
		return ""
	}
	s, err := p.String()
	if err != nil {
		return ""
	}
	return s
}

func boolProp(v safejs.Value, name string) bool {
	p, err := v.Get(name)
	if err != nil {
		return false
	}
	b, err := p.Bool()
	if err != nil {
		return false
	}
	return b
}
