// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package stream contains the stream-level wire details of the component
// protocol: the opening and closing stream tags and the metadata carried on
// the server's stream start.
package stream // import "mellium.im/component/stream"

import (
	"errors"
	"fmt"
	"io"

	"mellium.im/component/element"
	"mellium.im/component/jid"
)

// Namespaces used at the stream level of a component connection.
const (
	// NS is the XMPP streams namespace.
	NS = "http://etherx.jabber.org/streams"

	// NSComponent is the component accept namespace from XEP-0114.
	NSComponent = "jabber:component:accept"
)

// ErrMissingID is returned when the server's stream start carries no id
// attribute. The handshake cannot be computed without one.
var ErrMissingID = errors.New("stream: stream start missing required id attribute")

// Info contains metadata extracted from the server's stream start.
type Info struct {
	ID   string
	To   string
	From string
}

// FromAttrs extracts stream metadata from the attributes of a stream start
// event. The id attribute is required.
func FromAttrs(attrs []element.Attr) (Info, error) {
	var info Info
	for _, a := range attrs {
		switch a.Name {
		case "id":
			info.ID = a.Value
		case "to":
			info.To = a.Value
		case "from":
			info.From = a.Value
		}
	}
	if info.ID == "" {
		return info, ErrMissingID
	}
	return info, nil
}

// Send writes the component stream opening tag to w. The tag is
// deliberately left unclosed; the stream stays open for the life of the
// connection.
//
// We don't use an xml.Encoder because Go's standard library xml package
// does not cope with the namespaced stream:stream attribute, and a print
// guarantees well-formedness in this case anyway.
func Send(w io.Writer, to jid.JID) error {
	_, err := fmt.Fprintf(w, `<stream:stream xmlns:stream="%s" xmlns="%s" to="%s">`, NS, NSComponent, to)
	return err
}

// Close writes the stream closing tag to w, matching the tag written by
// Send.
func Close(w io.Writer) error {
	_, err := io.WriteString(w, `</stream:stream>`)
	return err
}
