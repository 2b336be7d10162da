// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package component

import (
	"encoding/xml"
	"errors"
	"io"

	"mellium.im/component/element"
	"mellium.im/component/stream"
)

// An event is one discrete inbound occurrence on the session mailbox:
// the server's stream start, a complete element, or loss of the transport.
type event interface {
	event()
}

// streamStart is delivered once per connection attempt, when the server
// replies to our stream open.
type streamStart struct {
	attrs []element.Attr
}

// received is delivered for every complete element after the stream start.
type received struct {
	el *element.Element
}

// transportLost is the last event of a connection attempt: the reader
// delivers it when the transport fails (or is closed), then closes the
// mailbox.
type transportLost struct {
	err error
}

func (streamStart) event()   {}
func (received) event()      {}
func (transportLost) event() {}

// errStreamEnded reports that the server closed the stream with an orderly
// </stream:stream>.
var errStreamEnded = errors.New("component: server closed the stream")

// readLoop decodes r into discrete events in transport order: exactly one
// streamStart, then received elements, and finally a single transportLost,
// after which the mailbox is closed. Failure of the transport is thereby
// observed by the session as an ordinary event rather than a stuck read.
func readLoop(r io.Reader, events chan<- event) {
	defer close(events)
	d := xml.NewDecoder(r)

	// Everything before the stream start: skip the XML declaration and any
	// whitespace, then expect <stream:stream>.
	for {
		tok, err := d.Token()
		if err != nil {
			events <- transportLost{err: err}
			return
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "stream" || t.Name.Space != stream.NS {
				events <- transportLost{err: errors.New("component: expected stream:stream from server")}
				return
			}
			events <- streamStart{attrs: element.Attrs(t.Attr)}
		case xml.ProcInst, xml.Comment, xml.Directive, xml.CharData:
			continue
		default:
			events <- transportLost{err: errors.New("component: unexpected token before stream start")}
			return
		}
		break
	}

	for {
		tok, err := d.Token()
		if err != nil {
			events <- transportLost{err: err}
			return
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el, err := element.Parse(d, t)
			if err != nil {
				events <- transportLost{err: err}
				return
			}
			events <- received{el: el}
		case xml.EndElement:
			// The only end element at this depth is </stream:stream>.
			events <- transportLost{err: errStreamEnded}
			return
		default:
			// Whitespace keepalives and other stray tokens between stanzas.
		}
	}
}
