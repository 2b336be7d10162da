// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package stanza_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mellium.im/component/element"
	"mellium.im/component/stanza"
)

func TestDecodeMessageBodyPromotion(t *testing.T) {
	el := &element.Element{
		Name: "message",
		Attrs: []element.Attr{
			{Name: "to", Value: "juliet@example.com"},
			{Name: "from", Value: "romeo@example.net"},
			{Name: "type", Value: "chat"},
			{Name: "xml:lang", Value: "en"},
		},
		Children: []element.Node{
			&element.Element{Name: "thread", Children: []element.Node{element.CharData("e0ffe42b")}},
			&element.Element{Name: "body", Children: []element.Node{element.CharData("hello")}},
		},
	}

	st, err := stanza.Decode(el)
	require.NoError(t, err)
	msg, ok := st.(stanza.Message)
	require.True(t, ok, "expected a message, got %T", st)

	assert.Equal(t, "juliet@example.com", msg.To)
	assert.Equal(t, "romeo@example.net", msg.From)
	assert.Equal(t, "chat", msg.Type)
	assert.Equal(t, "", msg.ID)
	assert.Equal(t, "hello", msg.Body)
	// Promoted attributes are removed; foreign ones stay.
	assert.Equal(t, []element.Attr{{Name: "xml:lang", Value: "en"}}, msg.Attrs)
	// The body child is gone, the rest of the children survive in order.
	require.Len(t, msg.Children, 1)
	assert.Equal(t, "thread", msg.Children[0].(*element.Element).Name)
}

func TestDecodeMessageWithoutBody(t *testing.T) {
	el := &element.Element{
		Name:     "message",
		Children: []element.Node{&element.Element{Name: "composing"}},
	}
	st, err := stanza.Decode(el)
	require.NoError(t, err)
	msg := st.(stanza.Message)
	assert.Equal(t, "", msg.Body)
	assert.Equal(t, el.Children, msg.Children)
}

func TestEncodeMessageBodyFirst(t *testing.T) {
	msg := stanza.Message{
		To:   "juliet@example.com",
		Type: "chat",
		Body: "hi",
		Children: []element.Node{
			&element.Element{Name: "thread"},
			// A leftover body child must be replaced, not duplicated.
			&element.Element{Name: "body", Children: []element.Node{element.CharData("stale")}},
		},
	}

	el := msg.Element()
	require.NotEmpty(t, el.Children)
	body, ok := el.Children[0].(*element.Element)
	require.True(t, ok)
	assert.Equal(t, "body", body.Name)
	assert.Equal(t, "hi", body.Text())

	var bodies int
	for _, c := range el.Children {
		if child, ok := c.(*element.Element); ok && child.Name == "body" {
			bodies++
		}
	}
	assert.Equal(t, 1, bodies)
}

func TestEncodeOmitsEmptyPromotedAttrs(t *testing.T) {
	el := stanza.Message{Type: "chat", Body: "hi"}.Element()
	_, ok := el.Attr("to")
	assert.False(t, ok, "empty to attribute must be omitted")
	_, ok = el.Attr("id")
	assert.False(t, ok, "empty id attribute must be omitted")
	v, ok := el.Attr("type")
	assert.True(t, ok)
	assert.Equal(t, "chat", v)

	el = stanza.IQ{ID: "42", Type: "get"}.Element()
	assert.Equal(t, []element.Attr{
		{Name: "id", Value: "42"},
		{Name: "type", Value: "get"},
	}, el.Attrs)
}

func TestRoundTrip(t *testing.T) {
	stanzas := map[string]stanza.Stanza{
		"message": stanza.Message{
			ID:    "a1",
			To:    "juliet@example.com",
			From:  "romeo@example.net",
			Type:  "chat",
			Body:  "wherefore art thou",
			Attrs: []element.Attr{{Name: "xml:lang", Value: "en"}},
			Children: []element.Node{
				&element.Element{Name: "thread", Children: []element.Node{element.CharData("e0ffe42b")}},
			},
		},
		"presence": stanza.Presence{
			Attrs: []element.Attr{{Name: "type", Value: "subscribe"}},
			Children: []element.Node{
				&element.Element{Name: "priority", Children: []element.Node{element.CharData("1")}},
			},
		},
		"iq": stanza.IQ{
			ID:   "b2",
			To:   "example.net",
			Type: "get",
			Children: []element.Node{
				&element.Element{Name: "query", Attrs: []element.Attr{{Name: "xmlns", Value: "jabber:iq:version"}}},
			},
		},
	}
	for name, want := range stanzas {
		t.Run(name, func(t *testing.T) {
			got, err := stanza.Decode(want.Element())
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestDecodeUnknownStanza(t *testing.T) {
	st, err := stanza.Decode(&element.Element{Name: "foo"})
	assert.Nil(t, st)
	var unknown stanza.UnknownStanzaError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "foo", unknown.Name)
}

func TestNewMessageAndReply(t *testing.T) {
	msg := stanza.NewMessage("juliet@example.com", "hello")
	assert.Equal(t, "chat", msg.Type)

	in := stanza.Message{To: "echo.example.net", From: "romeo@example.net", Type: "chat", Body: "ping"}
	out := in.Reply("pong")
	assert.Equal(t, "romeo@example.net", out.To)
	assert.Equal(t, "echo.example.net", out.From)
	assert.Equal(t, "pong", out.Body)
}
