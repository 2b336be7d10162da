// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package stanza

import (
	"mellium.im/component/element"
)

// Presence is a broadcast-style stanza advertising availability. The
// component protocol does not route on any of its attributes, so the whole
// element is carried through untouched.
type Presence struct {
	Attrs    []element.Attr
	Children []element.Node
}

func (Presence) stanza() {}

// Element converts the presence into its generic element form.
func (p Presence) Element() *element.Element {
	return &element.Element{Name: "presence", Attrs: p.Attrs, Children: p.Children}
}
