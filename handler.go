// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package component

import (
	"mellium.im/component/stanza"
)

// A Handler receives the lifecycle and stanza events of a Session.
//
// Every method is invoked sequentially from the session's own goroutine.
// The opaque application state value is threaded through each call: the
// handler owns it for the duration of the call, the session owns it (but
// never inspects it) in between. Panics in handler methods are not
// recovered; a broken handler crashes its session.
type Handler interface {
	// StreamStarted is called once per successful stream negotiation,
	// after the server's stream start has been received and before the
	// handshake is sent.
	StreamStarted(app interface{}) interface{}

	// Authenticated is called once per successful handshake. Returning a
	// non-nil error aborts the connection attempt and schedules a
	// reconnect; the application state is left unchanged in that case.
	Authenticated(app interface{}) (interface{}, error)

	// StanzaReceived is called for every inbound stanza once the stream is
	// authenticated.
	StanzaReceived(app interface{}, st stanza.Stanza) interface{}

	// WillTerminate is called exactly once before the session shuts down,
	// with the reason for the shutdown. ErrSessionClosed means an explicit
	// Close; a context error means the Run context was canceled.
	WillTerminate(reason error, app interface{}) interface{}
}

// NopHandler provides identity implementations of every Handler method.
// Embed it to implement only the events you care about.
type NopHandler struct{}

// StreamStarted implements Handler. It returns app unchanged.
func (NopHandler) StreamStarted(app interface{}) interface{} { return app }

// Authenticated implements Handler. It returns app unchanged.
func (NopHandler) Authenticated(app interface{}) (interface{}, error) { return app, nil }

// StanzaReceived implements Handler. It returns app unchanged.
func (NopHandler) StanzaReceived(app interface{}, _ stanza.Stanza) interface{} { return app }

// WillTerminate implements Handler. It returns app unchanged.
func (NopHandler) WillTerminate(_ error, app interface{}) interface{} { return app }
