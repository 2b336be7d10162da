// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package element

import (
	"encoding/xml"
	"fmt"
)

const nsStream = "http://etherx.jabber.org/streams"

// Parse consumes tokens from d until the end of the element opened by start
// and returns the resulting tree. Comments, directives, and processing
// instructions are dropped; character data and child elements are preserved
// in document order.
func Parse(d *xml.Decoder, start xml.StartElement) (*Element, error) {
	el := &Element{
		Name:  flatName(start.Name),
		Attrs: Attrs(start.Attr),
	}

	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := Parse(d, t)
			if err != nil {
				return nil, err
			}
			el.Children = append(el.Children, child)
		case xml.CharData:
			if len(t) > 0 {
				el.Children = append(el.Children, CharData(t))
			}
		case xml.EndElement:
			return el, nil
		case xml.Comment, xml.Directive, xml.ProcInst:
			// Restricted XML, skipped rather than rejected.
		default:
			return nil, fmt.Errorf("element: unexpected token %T", tok)
		}
	}
}

// Attrs converts decoder attributes into the flat form used by Element.
func Attrs(attrs []xml.Attr) []Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]Attr, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, Attr{Name: flatName(a.Name), Value: a.Value})
	}
	return out
}

// flatName collapses a resolved xml.Name back into the single-string form
// used by Element. Names in the stream namespace keep their conventional
// prefix so that a received <stream:error> is named "stream:error".
func flatName(name xml.Name) string {
	switch name.Space {
	case "":
		return name.Local
	case nsStream, "stream":
		return "stream:" + name.Local
	case "xml":
		return "xml:" + name.Local
	case "xmlns":
		return "xmlns:" + name.Local
	default:
		// Unknown namespaces lose their prefix; the component protocol never
		// routes on them.
		return name.Local
	}
}
