// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package stream

import (
	"mellium.im/component/element"
)

// Stream errors defined in RFC 6120 §4.9.3 that a component is likely to
// see from its server.
var (
	// BadFormat is used when the entity has sent XML that cannot be
	// processed.
	BadFormat = Error{Err: "bad-format"}

	// Conflict is sent when the server is closing the stream because a new
	// stream conflicts with this one.
	Conflict = Error{Err: "conflict"}

	// ConnectionTimeout results when one party believes the other has
	// permanently lost the ability to communicate over the stream.
	ConnectionTimeout = Error{Err: "connection-timeout"}

	// HostUnknown is sent when the 'to' address of the stream open does not
	// correspond to a hostname serviced by the server.
	HostUnknown = Error{Err: "host-unknown"}

	// InvalidNamespace is sent when the stream or content namespace is not
	// one the server supports.
	InvalidNamespace = Error{Err: "invalid-namespace"}

	// NotAuthorized is sent when the entity has attempted to send data
	// before the stream has been authenticated, or when the handshake
	// secret is wrong.
	NotAuthorized = Error{Err: "not-authorized"}

	// SystemShutdown is sent when the server is being shut down and all
	// active streams are being closed.
	SystemShutdown = Error{Err: "system-shutdown"}

	// UndefinedCondition is used when the error condition is none of the
	// defined ones.
	UndefinedCondition = Error{Err: "undefined-condition"}
)

// An Error represents an unrecoverable stream-level error.
type Error struct {
	Err string
}

// Error satisfies the builtin error interface and returns the name of the
// stream error. For instance, given the error:
//
//	<stream:error>
//	  <not-authorized xmlns="urn:ietf:params:xml:ns:xmpp-streams"/>
//	</stream:error>
//
// Error() would return "not-authorized".
func (s Error) Error() string {
	return s.Err
}

// ErrorFromElement extracts the defined condition from a received
// <stream:error> element. An error element with no recognizable condition
// child maps to UndefinedCondition.
func ErrorFromElement(el *element.Element) Error {
	for _, c := range el.Children {
		if child, ok := c.(*element.Element); ok {
			return Error{Err: child.Name}
		}
	}
	return UndefinedCondition
}
