// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package jid implements XMPP addresses (JIDs) as described in RFC 7622.
//
//	jid = [ localpart "@" ] domainpart [ "/" resourcepart ]
//
// Parts are enforced with the PRECIS profiles the RFC requires, so two JIDs
// that compare equal are equal on the wire as well.
package jid // import "mellium.im/component/jid"

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"
	"golang.org/x/text/secure/precis"
)

// Errors returned when a JID cannot be parsed or constructed.
var (
	ErrNoDomain    = errors.New("jid: domainpart must not be empty")
	ErrInvalidUTF8 = errors.New("jid: JID contains invalid UTF-8")
	ErrLongPart    = errors.New("jid: part must be smaller than 1024 bytes")
)

// JID represents an XMPP address comprising a localpart, domainpart, and
// resourcepart. The zero value is an invalid, empty JID.
type JID struct {
	localpart    string
	domainpart   string
	resourcepart string
}

// Parse constructs a JID from its string representation.
func Parse(s string) (JID, error) {
	localpart, domainpart, resourcepart, err := SplitString(s)
	if err != nil {
		return JID{}, err
	}
	return New(localpart, domainpart, resourcepart)
}

// MustParse is like Parse but panics if the JID cannot be parsed.
// It simplifies safe initialization of JIDs from known-good constant
// strings.
func MustParse(s string) JID {
	j, err := Parse(s)
	if err != nil {
		if strconv.CanBackquote(s) {
			s = "`" + s + "`"
		} else {
			s = strconv.Quote(s)
		}
		panic(`jid: Parse(` + s + `): ` + err.Error())
	}
	return j
}

// New constructs a JID from the given parts, applying the PRECIS
// UsernameCaseMapped profile to the localpart, IDNA mapping to the
// domainpart, and the PRECIS OpaqueString profile to the resourcepart.
func New(localpart, domainpart, resourcepart string) (JID, error) {
	if !utf8.ValidString(localpart) || !utf8.ValidString(resourcepart) {
		return JID{}, ErrInvalidUTF8
	}

	domainpart, err := idna.ToUnicode(domainpart)
	if err != nil {
		return JID{}, err
	}
	if !utf8.ValidString(domainpart) {
		return JID{}, ErrInvalidUTF8
	}
	if domainpart == "" {
		return JID{}, ErrNoDomain
	}

	if localpart != "" {
		localpart, err = precis.UsernameCaseMapped.String(localpart)
		if err != nil {
			return JID{}, err
		}
	}
	if resourcepart != "" {
		resourcepart, err = precis.OpaqueString.String(resourcepart)
		if err != nil {
			return JID{}, err
		}
	}
	if len(localpart) > 1023 || len(domainpart) > 1023 || len(resourcepart) > 1023 {
		return JID{}, ErrLongPart
	}

	return JID{
		localpart:    localpart,
		domainpart:   domainpart,
		resourcepart: resourcepart,
	}, nil
}

// SplitString splits a string representation of a JID into its parts
// without performing any enforcement or validation on them.
func SplitString(s string) (localpart, domainpart, resourcepart string, err error) {
	domainpart = s
	if idx := strings.IndexByte(domainpart, '/'); idx >= 0 {
		domainpart, resourcepart = domainpart[:idx], domainpart[idx+1:]
		if resourcepart == "" {
			return "", "", "", errors.New("jid: resourcepart must not be empty if it exists")
		}
	}
	if idx := strings.IndexByte(domainpart, '@'); idx >= 0 {
		localpart, domainpart = domainpart[:idx], domainpart[idx+1:]
		if localpart == "" {
			return "", "", "", errors.New("jid: localpart must not be empty if it exists")
		}
	}
	return localpart, domainpart, resourcepart, nil
}

// Bare returns a copy of the JID with no resourcepart.
func (j JID) Bare() JID {
	j.resourcepart = ""
	return j
}

// Domain returns a copy of the JID with only the domainpart.
func (j JID) Domain() JID {
	return JID{domainpart: j.domainpart}
}

// Localpart returns the localpart of the JID (before the '@').
func (j JID) Localpart() string {
	return j.localpart
}

// Domainpart returns the domainpart of the JID.
func (j JID) Domainpart() string {
	return j.domainpart
}

// Resourcepart returns the resourcepart of the JID (after the '/').
func (j JID) Resourcepart() string {
	return j.resourcepart
}

// Equal reports whether j and other are equivalent JIDs.
func (j JID) Equal(other JID) bool {
	return j == other
}

// String returns the canonical string representation of the JID.
func (j JID) String() string {
	var b strings.Builder
	if j.localpart != "" {
		b.WriteString(j.localpart)
		b.WriteByte('@')
	}
	b.WriteString(j.domainpart)
	if j.resourcepart != "" {
		b.WriteByte('/')
		b.WriteString(j.resourcepart)
	}
	return b.String()
}
