// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package component

// State is the lifecycle state of a Session.
type State int32

const (
	// Idle indicates that Run has not been called yet.
	Idle State = iota

	// Connecting indicates that the session is opening the transport.
	Connecting

	// AwaitingStreamStart indicates that the stream open has been sent and
	// the session is waiting for the server's stream start.
	AwaitingStreamStart

	// Handshaking indicates that the handshake has been sent and the
	// session is waiting for the server's acknowledgement.
	Handshaking

	// Authenticated indicates that the stream is fully negotiated and
	// stanzas may be sent and received.
	Authenticated

	// ReconnectWait indicates that the last connection attempt failed and
	// the session is waiting out the reconnect delay.
	ReconnectWait

	// Closed indicates that the session has terminated.
	Closed
)

// String returns a short name for the state.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Connecting:
		return "connecting"
	case AwaitingStreamStart:
		return "awaiting-stream-start"
	case Handshaking:
		return "handshaking"
	case Authenticated:
		return "authenticated"
	case ReconnectWait:
		return "reconnect-wait"
	case Closed:
		return "closed"
	}
	return "unknown"
}
