// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package stanza

import (
	"mellium.im/component/element"
)

// Message is a push-style stanza used for instant messages and other
// one-directional payloads. Body holds the text of the first <body> child;
// when empty, no <body> child is synthesized on encode.
type Message struct {
	ID   string
	To   string
	From string
	Type string
	Body string

	Attrs    []element.Attr
	Children []element.Node
}

// NewMessage returns a chat message addressed to the given entity.
func NewMessage(to, body string) Message {
	return Message{To: to, Type: "chat", Body: body}
}

// Reply returns a message addressed back to the sender of m, carrying the
// given body.
func (m Message) Reply(body string) Message {
	return Message{To: m.From, From: m.To, Type: m.Type, Body: body}
}

func (Message) stanza() {}

// Element converts the message into its generic element form. The body, if
// any, becomes the first child and replaces any existing <body> child.
func (m Message) Element() *element.Element {
	el := &element.Element{
		Name: "message",
		Attrs: append(promotedAttrs(
			element.Attr{Name: "id", Value: m.ID},
			element.Attr{Name: "to", Value: m.To},
			element.Attr{Name: "from", Value: m.From},
			element.Attr{Name: "type", Value: m.Type},
		), m.Attrs...),
	}
	if m.Body == "" {
		el.Children = m.Children
		return el
	}
	el.Children = append(el.Children, &element.Element{
		Name:     "body",
		Children: []element.Node{element.CharData(m.Body)},
	})
	for _, c := range m.Children {
		if child, ok := c.(*element.Element); ok && child.Name == "body" {
			continue
		}
		el.Children = append(el.Children, c)
	}
	return el
}

func decodeMessage(el *element.Element) Message {
	vals, rest := promote(el.Attrs, "id", "to", "from", "type")
	m := Message{
		ID:    vals[0],
		To:    vals[1],
		From:  vals[2],
		Type:  vals[3],
		Attrs: rest,
	}
	body := el.Child("body")
	if body == nil {
		m.Children = el.Children
		return m
	}
	m.Body = body.Text()
	for _, c := range el.Children {
		if child, ok := c.(*element.Element); ok && child == body {
			continue
		}
		m.Children = append(m.Children, c)
	}
	return m
}
