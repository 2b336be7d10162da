// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package component

import (
	"io"
	"log/slog"
	"time"
)

// An Option configures the session.
type Option func(*options)

type options struct {
	host           string
	port           uint16
	reconnectDelay time.Duration
	dialer         ConnFactory
	logger         *slog.Logger
	handler        Handler
	app            interface{}
}

func getOpts(o ...Option) (res options) {
	res.host = "localhost"
	res.port = 8888
	res.reconnectDelay = 5 * time.Second
	for _, f := range o {
		f(&res)
	}
	if res.logger == nil {
		res.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if res.handler == nil {
		res.handler = NopHandler{}
	}
	if res.dialer == nil {
		res.dialer = dialTCP
	}
	return res
}

// The Host option sets the server host to connect to. The default is
// "localhost".
func Host(host string) Option {
	return func(o *options) {
		o.host = host
	}
}

// The Port option sets the server port to connect to. The default is 8888.
func Port(port uint16) Option {
	return func(o *options) {
		o.port = port
	}
}

// The ReconnectDelay option sets the fixed delay before the session
// retries a failed or lost connection. The default is five seconds. A
// delay of zero or less disables automatic reconnection: the first failure
// ends Run.
func ReconnectDelay(d time.Duration) Option {
	return func(o *options) {
		o.reconnectDelay = d
	}
}

// The Dialer option sets the factory used to open the transport for each
// connection attempt. The default dials plain TCP to the configured host
// and port.
func Dialer(f ConnFactory) Option {
	return func(o *options) {
		o.dialer = f
	}
}

// The Logger option provides a logger for connection and negotiation
// events. By default logs are discarded.
func Logger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// The Handle option sets the handler that receives the session's
// lifecycle and stanza events. The default handler ignores everything.
func Handle(h Handler) Option {
	return func(o *options) {
		o.handler = h
	}
}

// The InitialState option seeds the opaque application state value that is
// threaded through every handler invocation. The session never inspects
// it.
func InitialState(app interface{}) Option {
	return func(o *options) {
		o.app = app
	}
}
