// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package stanza

import (
	"mellium.im/component/element"
)

// IQ ("Information Query") is a request/response stanza. IQs are
// one-to-one, provide get and set semantics, and always require a response
// in the form of a result or an error.
type IQ struct {
	ID   string
	To   string
	From string
	Type string

	Attrs    []element.Attr
	Children []element.Node
}

func (IQ) stanza() {}

// Element converts the IQ into its generic element form.
func (iq IQ) Element() *element.Element {
	return &element.Element{
		Name: "iq",
		Attrs: append(promotedAttrs(
			element.Attr{Name: "id", Value: iq.ID},
			element.Attr{Name: "to", Value: iq.To},
			element.Attr{Name: "from", Value: iq.From},
			element.Attr{Name: "type", Value: iq.Type},
		), iq.Attrs...),
		Children: iq.Children,
	}
}

func decodeIQ(el *element.Element) IQ {
	vals, rest := promote(el.Attrs, "id", "to", "from", "type")
	return IQ{
		ID:       vals[0],
		To:       vals[1],
		From:     vals[2],
		Type:     vals[3],
		Attrs:    rest,
		Children: el.Children,
	}
}
