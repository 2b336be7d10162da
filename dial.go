// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package component

import (
	"context"
	"net"
	"strconv"

	"mellium.im/component/jid"
)

// A ConnFactory opens the transport for a single connection attempt. The
// returned connection is owned exclusively by the session, which observes
// transport failure through read errors on it.
//
// Implementations can ignore the component address; it is provided for
// factories that multiplex or log per-route.
type ConnFactory func(ctx context.Context, host string, port uint16, addr jid.JID) (net.Conn, error)

// dialTCP is the default ConnFactory.
func dialTCP(ctx context.Context, host string, port uint16, _ jid.JID) (net.Conn, error) {
	var d net.Dialer
	return d.DialContext(ctx, "tcp", net.JoinHostPort(host, strconv.FormatUint(uint64(port), 10)))
}
