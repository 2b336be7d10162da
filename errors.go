// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package component

import (
	"errors"

	"mellium.im/component/element"
	"mellium.im/component/stream"
)

// Errors returned by the component package.
var (
	// ErrSessionClosed is returned when operating on a session that has
	// terminated. It is also the termination reason passed to
	// Handler.WillTerminate on an explicit Close.
	ErrSessionClosed = errors.New("component: session closed")

	// ErrNotAuthenticated is returned by Send when the stream has not yet
	// completed the handshake.
	ErrNotAuthenticated = errors.New("component: stream not authenticated")
)

// TransportError wraps a failure to open, read from, or write to the
// transport. Every TransportError converts into a reconnect attempt unless
// reconnection is disabled.
type TransportError struct {
	// Op is the transport operation that failed: "open", "read", or
	// "write".
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return "component: transport " + e.Op + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// HandshakeError is returned when the server answers the handshake with
// anything but a handshake acknowledgement. Elem carries the offending
// element as diagnostic payload.
type HandshakeError struct {
	Elem *element.Element
}

func (e *HandshakeError) Error() string {
	return "component: handshake rejected with " + e.Elem.Name
}

// Unwrap exposes the stream error condition when the server rejected the
// handshake with a <stream:error>.
func (e *HandshakeError) Unwrap() error {
	if e.Elem.Name == "stream:error" {
		return stream.ErrorFromElement(e.Elem)
	}
	return nil
}
