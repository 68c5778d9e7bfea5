package codelink

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Defaults for the local runtime endpoint.
const (
	// DefaultAddr is the fixed local endpoint the runtime client listens on.
	DefaultAddr = "ws://localhost:31375"

	// DefaultResponseWindow is how long a batch collects responses after
	// its last command was written.
	DefaultResponseWindow = 1500 * time.Millisecond

	// DefaultDialTimeout bounds connection establishment.
	DefaultDialTimeout = 10 * time.Second
)

// Config configures a Client.
type Config struct {
	// Addr is the endpoint URL. Default is DefaultAddr.
	Addr string

	// ResponseWindow is the post-send collection window.
	// Default is DefaultResponseWindow.
	ResponseWindow time.Duration

	// DialTimeout bounds the WebSocket handshake.
	// Default is DefaultDialTimeout.
	DialTimeout time.Duration

	// Logger receives debug logging. Default is slog.Default().
	Logger *slog.Logger
}

func (c *Config) setDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.ResponseWindow == 0 {
		c.ResponseWindow = DefaultResponseWindow
	}
	if c.DialTimeout == 0 {
		c.DialTimeout = DefaultDialTimeout
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Client talks to the runtime endpoint over one shared connection. The zero
// value is not usable; construct with New. There is deliberately no
// package-level default client: callers own their Client and pass it down.
type Client struct {
	config Config

	// batchMu serializes whole batches. The protocol has no correlation
	// ids, so overlapping response windows would misattribute responses.
	batchMu sync.Mutex

	mu      sync.Mutex
	conn    *socket
	pending *dialAttempt
}

// dialAttempt is one shared connection attempt. Every concurrent caller
// waits on the same done channel.
type dialAttempt struct {
	done      chan struct{}
	sock      *socket
	err       error
	abandoned bool // set under Client.mu by Close
}

// New creates a Client. No connection is made until the first send.
func New(config Config) *Client {
	config.setDefaults()
	return &Client{config: config}
}

// SendBatch writes the commands in order over the shared connection, then
// collects responses for the configured window and classifies them. It
// returns nil only when every command was written and no rejection marker
// was observed.
func (c *Client) SendBatch(ctx context.Context, commands []string) error {
	c.batchMu.Lock()
	defer c.batchMu.Unlock()

	s, err := c.connect(ctx)
	if err != nil {
		return err
	}

	texts := make(chan string, 256)
	id := s.subscribe(texts)
	defer s.unsubscribe(id)

	for _, cmd := range commands {
		if c.config.Logger.Enabled(ctx, slog.LevelDebug) {
			c.config.Logger.Debug("sending command", "content", truncate(cmd, 500))
		}
		if err := s.writeText(cmd); err != nil {
			return &SendError{Err: err}
		}
	}

	timer := time.NewTimer(c.config.ResponseWindow)
	defer timer.Stop()

	var rejection *RejectionError
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case text := <-texts:
			if rejection == nil {
				if r, ok := classify(text); ok {
					rejection = r
				}
			}
		case <-timer.C:
			if rejection != nil {
				return rejection
			}
			return nil
		}
	}
}

// connect returns the cached open socket, joins the in-flight attempt, or
// starts a new one. At most one physical attempt exists at a time.
func (c *Client) connect(ctx context.Context) (*socket, error) {
	c.mu.Lock()
	if c.conn != nil && !c.conn.isClosed() {
		s := c.conn
		c.mu.Unlock()
		return s, nil
	}
	if c.pending != nil {
		a := c.pending
		c.mu.Unlock()
		return a.wait(ctx)
	}

	a := &dialAttempt{done: make(chan struct{})}
	c.pending = a
	c.mu.Unlock()

	go c.dial(a)
	return a.wait(ctx)
}

func (a *dialAttempt) wait(ctx context.Context) (*socket, error) {
	select {
	case <-ctx.Done():
		// The attempt stays shared; only this caller gives up.
		return nil, ctx.Err()
	case <-a.done:
		return a.sock, a.err
	}
}

func (c *Client) dial(a *dialAttempt) {
	dialer := websocket.Dialer{HandshakeTimeout: c.config.DialTimeout}
	conn, _, err := dialer.Dial(c.config.Addr, nil)

	c.mu.Lock()
	if c.pending == a {
		c.pending = nil
	}
	if a.abandoned {
		c.mu.Unlock()
		if conn != nil {
			conn.Close()
		}
		a.err = ErrClosed
		close(a.done)
		return
	}
	if err != nil {
		c.mu.Unlock()
		a.err = &ConnectError{Addr: c.config.Addr, Err: err}
		close(a.done)
		return
	}

	s := newSocket(conn, c.config.Logger)
	c.conn = s
	c.mu.Unlock()

	// Evict the cache once the socket dies so the next send reconnects.
	go func() {
		s.readLoop()
		c.evict(s)
	}()

	c.config.Logger.Debug("connected", "addr", c.config.Addr)
	a.sock = s
	close(a.done)
}

func (c *Client) evict(s *socket) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == s {
		c.conn = nil
	}
}

// Close tears down the cached socket and abandons any in-flight attempt.
// Errors from the underlying close are swallowed; the next send dials anew.
func (c *Client) Close() error {
	c.mu.Lock()
	s := c.conn
	c.conn = nil
	if c.pending != nil {
		c.pending.abandoned = true
		c.pending = nil
	}
	c.mu.Unlock()

	if s != nil {
		s.close()
	}
	return nil
}
