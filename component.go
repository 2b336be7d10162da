// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package component

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net"
	"sync/atomic"
	"time"

	"mellium.im/component/element"
	"mellium.im/component/jid"
	"mellium.im/component/stanza"
	"mellium.im/component/stream"
)

// errStopped marks an orderly shutdown internally; it never escapes Run.
var errStopped = errors.New("component: stop requested")

// A Session is a long-lived external component connection.
//
// All mutable session state is owned by the single goroutine running Run;
// other goroutines communicate with it only through Send and Close.
type Session struct {
	addr   jid.JID
	secret []byte
	opts   options

	sends chan sendReq
	stops chan stopReq
	done  chan struct{}

	state atomic.Int32

	// Owned by the Run goroutine.
	conn   net.Conn
	enc    *xml.Encoder
	events chan event
	app    interface{}
}

type sendReq struct {
	st     stanza.Stanza
	result chan error
}

type stopReq struct {
	result chan error
}

// New returns an unstarted session for the component addressed by addr,
// authenticating with secret. Only the domainpart of addr is used, per
// XEP-0114. Call Run to connect.
func New(addr jid.JID, secret []byte, opts ...Option) *Session {
	o := getOpts(opts...)
	return &Session{
		addr:   addr.Domain(),
		secret: secret,
		opts:   o,
		app:    o.app,
		sends:  make(chan sendReq),
		stops:  make(chan stopReq),
		done:   make(chan struct{}),
	}
}

// State returns the current lifecycle state of the session.
func (s *Session) State() State {
	return State(s.state.Load())
}

// Done returns a channel that is closed when the session has terminated.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Run connects to the server and drives the session lifecycle: stream
// negotiation, handshake authentication, stanza dispatch, and reconnection
// on failure. It blocks until the session terminates and must be called at
// most once.
//
// Run returns nil after an explicit Close, the context error if ctx is
// canceled, and otherwise the error that ended the session (only possible
// when reconnection is disabled, since every other failure schedules a
// retry).
func (s *Session) Run(ctx context.Context) error {
	defer close(s.done)
	defer s.setState(Closed)

	for {
		err := s.attempt(ctx)
		if errors.Is(err, errStopped) {
			return ctx.Err()
		}
		s.opts.logger.Error("connection attempt failed", "addr", s.addr, "err", err)
		if s.opts.reconnectDelay <= 0 {
			return err
		}

		s.setState(ReconnectWait)
		s.opts.logger.Info("reconnecting", "addr", s.addr, "delay", s.opts.reconnectDelay)
		timer := time.NewTimer(s.opts.reconnectDelay)
		select {
		case <-timer.C:
		case req := <-s.stops:
			timer.Stop()
			s.terminate(ErrSessionClosed, &req)
			return nil
		case <-ctx.Done():
			timer.Stop()
			s.terminate(ctx.Err(), nil)
			return ctx.Err()
		}
	}
}

// Send encodes the stanza and writes it through the session's transport.
// Sends are written in submission order. Send fails with
// ErrNotAuthenticated until the handshake has completed.
func (s *Session) Send(ctx context.Context, st stanza.Stanza) error {
	if s.State() != Authenticated {
		return ErrNotAuthenticated
	}
	req := sendReq{st: st, result: make(chan error, 1)}
	select {
	case s.sends <- req:
	case <-s.done:
		return ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-req.result:
		return err
	case <-s.done:
		return ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close requests an orderly shutdown: the handler's WillTerminate runs,
// the closing stream tag is written, and the transport is released. The
// write of the closing tag is best-effort; its error is returned but the
// shutdown proceeds regardless.
func (s *Session) Close() error {
	req := stopReq{result: make(chan error, 1)}
	select {
	case s.stops <- req:
	case <-s.done:
		return ErrSessionClosed
	}
	select {
	case err := <-req.result:
		return err
	case <-s.done:
		return nil
	}
}

func (s *Session) setState(state State) {
	s.state.Store(int32(state))
	s.opts.logger.Debug("state changed", "state", state)
}

// attempt runs one full connection cycle: open the transport, negotiate
// the stream, authenticate, then serve until something fails or a stop is
// requested.
func (s *Session) attempt(ctx context.Context) error {
	s.setState(Connecting)
	conn, err := s.opts.dialer(ctx, s.opts.host, s.opts.port, s.addr)
	if err != nil {
		return &TransportError{Op: "open", Err: err}
	}
	s.conn = conn
	s.enc = xml.NewEncoder(conn)
	s.events = make(chan event, 8)
	go readLoop(conn, s.events)
	defer s.release()

	if err = stream.Send(conn, s.addr); err != nil {
		return &TransportError{Op: "write", Err: err}
	}

	s.setState(AwaitingStreamStart)
	info, err := s.awaitStreamStart(ctx)
	if err != nil {
		return err
	}
	s.opts.logger.Debug("stream started", "id", info.ID)
	s.app = s.opts.handler.StreamStarted(s.app)

	s.setState(Handshaking)
	if _, err = fmt.Fprintf(conn, "<handshake>%s</handshake>", Handshake(info.ID, s.secret)); err != nil {
		return &TransportError{Op: "write", Err: err}
	}
	if err = s.awaitHandshakeAck(ctx); err != nil {
		return err
	}
	app, err := s.opts.handler.Authenticated(s.app)
	if err != nil {
		return fmt.Errorf("component: authentication callback: %w", err)
	}
	s.app = app

	s.setState(Authenticated)
	s.opts.logger.Info("authenticated", "addr", s.addr)
	return s.serve(ctx)
}

// release closes the transport and drains the mailbox until the reader
// exits, so that no events from a dead connection leak into the next
// attempt.
func (s *Session) release() {
	s.conn.Close()
	for range s.events {
	}
	s.conn, s.enc, s.events = nil, nil, nil
}

// awaitStreamStart blocks until the server's stream start arrives. The
// wait is restricted: any element arriving first is discarded, never
// queued. Nothing is expected before negotiation completes and anything
// that shows up anyway is dropped.
func (s *Session) awaitStreamStart(ctx context.Context) (stream.Info, error) {
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return stream.Info{}, &TransportError{Op: "read", Err: io.ErrUnexpectedEOF}
			}
			switch ev := ev.(type) {
			case streamStart:
				return stream.FromAttrs(ev.attrs)
			case transportLost:
				return stream.Info{}, &TransportError{Op: "read", Err: ev.err}
			case received:
				s.opts.logger.Debug("discarding element received before stream start", "name", ev.el.Name)
			}
		case req := <-s.stops:
			return stream.Info{}, s.terminate(ErrSessionClosed, &req)
		case <-ctx.Done():
			return stream.Info{}, s.terminate(ctx.Err(), nil)
		}
	}
}

// awaitHandshakeAck blocks until the server acknowledges the handshake.
// Only an element named "handshake" counts as success; anything else,
// notably <stream:error>, fails the attempt and carries the element as
// diagnostic payload.
func (s *Session) awaitHandshakeAck(ctx context.Context) error {
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return &TransportError{Op: "read", Err: io.ErrUnexpectedEOF}
			}
			switch ev := ev.(type) {
			case received:
				if ev.el.Name == "handshake" {
					return nil
				}
				return &HandshakeError{Elem: ev.el}
			case transportLost:
				return &TransportError{Op: "read", Err: ev.err}
			case streamStart:
				s.opts.logger.Debug("discarding duplicate stream start")
			}
		case req := <-s.stops:
			return s.terminate(ErrSessionClosed, &req)
		case <-ctx.Done():
			return s.terminate(ctx.Err(), nil)
		}
	}
}

// serve is the steady state: inbound elements are dispatched in transport
// order and outbound sends are written in submission order, one event at a
// time.
func (s *Session) serve(ctx context.Context) error {
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return &TransportError{Op: "read", Err: io.ErrUnexpectedEOF}
			}
			switch ev := ev.(type) {
			case received:
				if err := s.handleElement(ev.el); err != nil {
					return err
				}
			case transportLost:
				return &TransportError{Op: "read", Err: ev.err}
			case streamStart:
				s.opts.logger.Debug("discarding duplicate stream start")
			}
		case req := <-s.sends:
			err := s.write(req.st)
			req.result <- err
			if err != nil {
				return &TransportError{Op: "write", Err: err}
			}
		case req := <-s.stops:
			return s.terminate(ErrSessionClosed, &req)
		case <-ctx.Done():
			return s.terminate(ctx.Err(), nil)
		}
	}
}

// handleElement decodes one inbound element and hands it to the handler.
// A stream error ends the attempt; an element that is not a stanza is
// logged and dropped, since a decode failure must not abort the receive
// loop.
func (s *Session) handleElement(el *element.Element) error {
	if el.Name == "stream:error" {
		return stream.ErrorFromElement(el)
	}
	st, err := stanza.Decode(el)
	if err != nil {
		s.opts.logger.Info("dropping non-stanza element", "name", el.Name)
		return nil
	}
	s.app = s.opts.handler.StanzaReceived(s.app, st)
	return nil
}

func (s *Session) write(st stanza.Stanza) error {
	if _, err := st.Element().WriteXML(s.enc); err != nil {
		return err
	}
	return s.enc.Flush()
}

// terminate runs the shutdown sequence: notify the handler, then write the
// closing stream tag if a transport is open. The write error is reported
// to the closer, never retried.
func (s *Session) terminate(reason error, req *stopReq) error {
	s.app = s.opts.handler.WillTerminate(reason, s.app)
	var err error
	if s.conn != nil {
		err = stream.Close(s.conn)
	}
	if req != nil {
		req.result <- err
	}
	return errStopped
}
