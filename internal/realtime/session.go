package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/jiu45/JobPortal/pkg/logger"
)

const writeWait = 3 * time.Second

// Session owns one websocket connection for an authenticated user. The
// connection counts as present only after the client sends a register
// frame; until then the session is connected but invisible to the
// registry.
type Session struct {
	userID   uuid.UUID
	conn     *websocket.Conn
	registry *Registry
	logger   logger.Logger

	send      chan []byte
	closed    chan struct{}
	closeOnce sync.Once

	readLimit  int64
	pingPeriod time.Duration
}

func newSession(userID uuid.UUID, conn *websocket.Conn, registry *Registry, readLimit int64, pingPeriod time.Duration, sendBuffer int, logger logger.Logger) *Session {
	return &Session{
		userID:     userID,
		conn:       conn,
		registry:   registry,
		logger:     logger.With("userId", userID),
		send:       make(chan []byte, sendBuffer),
		closed:     make(chan struct{}),
		readLimit:  readLimit,
		pingPeriod: pingPeriod,
	}
}

// Push queues an event without blocking. Frames are dropped when the
// session is gone or its buffer is full; pushed counts are hints, so a
// drop is not an error.
func (s *Session) Push(event string, data any) bool {
	payload, err := json.Marshal(Envelope{Event: event, Data: data})
	if err != nil {
		s.logger.Error("failed to encode push frame", "event", event, "err", err)
		return false
	}

	select {
	case <-s.closed:
		return false
	default:
	}

	select {
	case s.send <- payload:
		return true
	default:
		return false
	}
}

func (s *Session) close() {
	s.closeOnce.Do(func() {
		s.registry.Unregister(s.userID, s)
		close(s.closed)
		s.conn.Close()
	})
}

// readLoop consumes client frames. The only meaningful inbound event is
// register; everything else is ignored. Exiting tears the session down.
func (s *Session) readLoop() {
	defer s.close()

	pongWait := s.pingPeriod + 5*time.Second
	s.conn.SetReadLimit(s.readLimit)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	registered := false
	for {
		_, payload, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket closed unexpectedly", "err", err)
			}
			return
		}

		var in inboundEnvelope
		if err := json.Unmarshal(payload, &in); err != nil {
			s.logger.Debug("ignoring malformed client frame")
			continue
		}
		if in.Event == EventRegister && !registered {
			s.registry.Register(s.userID, s)
			registered = true
			s.logger.Debug("session registered")
		}
	}
}

func (s *Session) writeLoop() {
	ticker := time.NewTicker(s.pingPeriod)
	defer func() {
		ticker.Stop()
		s.close()
	}()

	for {
		select {
		case payload := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-s.closed:
			return
		}
	}
}
