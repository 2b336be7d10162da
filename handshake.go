// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package component

import (
	/* #nosec */
	"crypto/sha1"
	"encoding/hex"
)

// Handshake computes the component handshake value defined by XEP-0114:
// the lowercase hex encoding of the SHA-1 digest of the server-assigned
// stream ID concatenated with the shared secret.
func Handshake(streamID string, secret []byte) string {
	/* #nosec */
	h := sha1.New()

	// hash.Write never returns an error per the documentation.
	/* #nosec */
	_, _ = h.Write([]byte(streamID))
	/* #nosec */
	_, _ = h.Write(secret)

	return hex.EncodeToString(h.Sum(nil))
}
