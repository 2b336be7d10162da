// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package stanza contains typed representations of the three XMPP stanza
// kinds and the mapping between them and generic XML elements.
//
// Decoding promotes the well-known stanza attributes (id, to, from, type)
// out of the generic attribute list; everything else is carried through
// untouched so that encoding a decoded stanza reproduces the original
// element's content.
package stanza // import "mellium.im/component/stanza"

import (
	"mellium.im/component/element"
)

// A Stanza is a Message, Presence, or IQ.
type Stanza interface {
	// Element converts the stanza back into its generic element form.
	// Promoted attributes are emitted first and omitted entirely when empty.
	Element() *element.Element

	stanza()
}

// UnknownStanzaError is returned by Decode when the element is not one of
// the three stanza kinds.
type UnknownStanzaError struct {
	Name string
}

func (e UnknownStanzaError) Error() string {
	return "stanza: unknown stanza " + e.Name
}

// Decode converts a generic element into a typed stanza based on the
// element name.
func Decode(el *element.Element) (Stanza, error) {
	switch el.Name {
	case "message":
		return decodeMessage(el), nil
	case "presence":
		return Presence{Attrs: el.Attrs, Children: el.Children}, nil
	case "iq":
		return decodeIQ(el), nil
	}
	return nil, UnknownStanzaError{Name: el.Name}
}

// promote removes the named attributes from attrs, returning their values
// (in the order of names, empty when absent) along with the attributes that
// remain. The last occurrence wins when an attribute is repeated.
func promote(attrs []element.Attr, names ...string) ([]string, []element.Attr) {
	vals := make([]string, len(names))
	var rest []element.Attr
attrs:
	for _, a := range attrs {
		for i, name := range names {
			if a.Name == name {
				vals[i] = a.Value
				continue attrs
			}
		}
		rest = append(rest, a)
	}
	return vals, rest
}

// promotedAttrs builds the head of an encoded attribute list, skipping any
// promoted value that is empty.
func promotedAttrs(pairs ...element.Attr) []element.Attr {
	attrs := make([]element.Attr, 0, len(pairs))
	for _, p := range pairs {
		if p.Value != "" {
			attrs = append(attrs, p)
		}
	}
	return attrs
}
