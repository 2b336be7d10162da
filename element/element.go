// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package element provides a generic tree representation of XML elements.
//
// Unlike encoding/xml struct marshaling, an Element preserves the order of
// attributes and children and can represent any stanza payload without a
// schema. It is the interchange value between the wire and the typed stanzas
// in the stanza package.
package element // import "mellium.im/component/element"

import (
	"encoding/xml"
	"strings"

	"mellium.im/xmlstream"
)

// Attr is a single name/value attribute pair.
type Attr struct {
	Name  string
	Value string
}

// Node is a child of an Element: either a nested *Element or CharData.
type Node interface {
	node()
}

// CharData is raw text content inside an element.
type CharData string

func (CharData) node() {}

// Element is a generic XML node comprising a name, an ordered attribute
// list, and an ordered child list. Elements are not safe for concurrent
// mutation; treat them as immutable once constructed.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []Node
}

func (*Element) node() {}

// New returns an element with the given name and attributes.
func New(name string, attrs ...Attr) *Element {
	return &Element{Name: name, Attrs: attrs}
}

// Attr looks up the value of the named attribute. If the attribute appears
// more than once the last value wins.
func (e *Element) Attr(name string) (value string, ok bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			value, ok = a.Value, true
		}
	}
	return value, ok
}

// Text returns the concatenation of the direct CharData children of e.
func (e *Element) Text() string {
	var b strings.Builder
	for _, c := range e.Children {
		if cd, ok := c.(CharData); ok {
			b.WriteString(string(cd))
		}
	}
	return b.String()
}

// Child returns the first child element with the given name, or nil.
func (e *Element) Child(name string) *Element {
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok && el.Name == name {
			return el
		}
	}
	return nil
}

// TokenReader satisfies the xmlstream.Marshaler interface.
func (e *Element) TokenReader() xml.TokenReader {
	attr := make([]xml.Attr, 0, len(e.Attrs))
	for _, a := range e.Attrs {
		attr = append(attr, xml.Attr{Name: xmlName(a.Name), Value: a.Value})
	}
	inner := make([]xml.TokenReader, 0, len(e.Children))
	for _, c := range e.Children {
		switch c := c.(type) {
		case *Element:
			inner = append(inner, c.TokenReader())
		case CharData:
			inner = append(inner, xmlstream.Token(xml.CharData(c)))
		}
	}
	return xmlstream.Wrap(xmlstream.MultiReader(inner...), xml.StartElement{
		Name: xmlName(e.Name),
		Attr: attr,
	})
}

// WriteXML satisfies the xmlstream.WriterTo interface.
func (e *Element) WriteXML(w xmlstream.TokenWriter) (n int, err error) {
	return xmlstream.Copy(w, e.TokenReader())
}

// MarshalXML satisfies the xml.Marshaler interface.
func (e *Element) MarshalXML(enc *xml.Encoder, _ xml.StartElement) error {
	_, err := e.WriteXML(enc)
	return err
}

// String returns the rendered XML of the element. It is intended for logging
// and tests, not for writing to the wire.
func (e *Element) String() string {
	var b strings.Builder
	enc := xml.NewEncoder(&b)
	if _, err := e.WriteXML(enc); err != nil {
		return "<!" + err.Error() + "!>"
	}
	if err := enc.Flush(); err != nil {
		return "<!" + err.Error() + "!>"
	}
	return b.String()
}

// xmlName maps an element or attribute name to an xml.Name. Prefixed names
// such as "stream:error" or "xml:lang" are kept whole in Local so that they
// render on the wire exactly as they were read; resolving prefixes against
// namespace URIs is out of scope for this representation.
func xmlName(name string) xml.Name {
	return xml.Name{Local: name}
}
