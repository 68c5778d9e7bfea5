package codelink

import (
	"context"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
)

// socket wraps one open connection: a write lock, a background read loop
// and a fan-out of candidate response texts to transient listeners.
type socket struct {
	conn *websocket.Conn
	log  *slog.Logger

	writeMu sync.Mutex

	mu        sync.Mutex
	listeners map[uint64]chan<- string
	nextID    uint64

	closed    chan struct{}
	closeOnce sync.Once
}

func newSocket(conn *websocket.Conn, log *slog.Logger) *socket {
	return &socket{
		conn:      conn,
		log:       log,
		listeners: make(map[uint64]chan<- string),
		closed:    make(chan struct{}),
	}
}

// subscribe registers a listener channel and returns its id. Delivery is
// non-blocking: a listener that stops draining loses texts, never stalls
// the read loop.
func (s *socket) subscribe(ch chan<- string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.listeners[s.nextID] = ch
	return s.nextID
}

func (s *socket) unsubscribe(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.listeners, id)
}

func (s *socket) broadcast(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.listeners {
		select {
		case ch <- text:
		default:
		}
	}
}

func (s *socket) writeText(cmd string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteMessage(websocket.TextMessage, []byte(cmd))
}

func (s *socket) close() {
	s.closeOnce.Do(func() {
		close(s.closed)
		s.conn.Close()
	})
}

func (s *socket) isClosed() bool {
	select {
	case <-s.closed:
		return true
	default:
		return false
	}
}

// readLoop pumps inbound messages into the listener fan-out until the
// connection dies. Both text and binary frames are decoded to text.
func (s *socket) readLoop() {
	defer s.close()
	for {
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			s.log.Debug("connection closed", "err", err)
			return
		}
		if s.log.Enabled(context.Background(), slog.LevelDebug) {
			s.log.Debug("received message", "len", len(msg), "content", truncate(string(msg), 500))
		}
		for _, text := range responseTexts(msg) {
			s.broadcast(text)
		}
	}
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
