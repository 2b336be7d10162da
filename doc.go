// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package component implements the client side of XEP-0114: Jabber
// Component Protocol.
//
// A Session is a long-lived external component connection: it opens a
// stream to the server, authenticates with the shared-secret handshake,
// then exchanges stanzas for the life of the connection, transparently
// reconnecting when the transport or the negotiation fails.
//
// Applications embed by implementing Handler (usually by embedding
// NopHandler and overriding the events they care about):
//
//	type echo struct{ component.NopHandler }
//
//	func (echo) StanzaReceived(app interface{}, st stanza.Stanza) interface{} {
//		msg, ok := st.(stanza.Message)
//		...
//		return app
//	}
//
//	s := component.New(jid.MustParse("echo.example.net"), []byte("secret"),
//		component.Handle(echo{}),
//	)
//	err := s.Run(ctx)
//
// All handler methods run on the session's own goroutine, one event at a
// time; the opaque application state value passed through them is never
// inspected or copied by the session.
package component // import "mellium.im/component"
