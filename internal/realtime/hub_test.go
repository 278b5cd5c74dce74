package realtime

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiu45/JobPortal/config"
	"github.com/jiu45/JobPortal/pkg/logger"
	"github.com/jiu45/JobPortal/pkg/utils"
)

func startHub(t *testing.T) (string, *Registry, *config.Config) {
	t.Helper()

	cfg := &config.Config{
		JWT:       config.JWT{Secret: "test-secret", ExpiredIn: 3600},
		Websocket: config.Websocket{ReadLimit: 4096, PingPeriod: 20, SendBuffer: 16},
	}
	registry := NewRegistry()
	hub := NewHub(registry, cfg, logger.Logger{})

	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	t.Cleanup(srv.Close)

	return "ws" + strings.TrimPrefix(srv.URL, "http"), registry, cfg
}

func Test_Hub_ServeWS(t *testing.T) {
	t.Run("happy path- presence starts at the register frame", func(t *testing.T) {
		wsURL, registry, cfg := startHub(t)

		userID := uuid.New()
		token, err := utils.GenerateJWTToken(userID, cfg)
		require.NoError(t, err)

		conn, _, err := websocket.DefaultDialer.Dial(wsURL+"?token="+token, nil)
		require.NoError(t, err)
		defer conn.Close()

		// connected but not yet present
		assert.False(t, registry.Online(userID))

		// a spoofed identity in the payload is ignored; the session is
		// registered under the authenticated user
		frame := `{"event":"register","data":{"userId":"` + uuid.NewString() + `"}}`
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(frame)))

		require.Eventually(t, func() bool {
			return registry.Online(userID)
		}, time.Second, 5*time.Millisecond)
		assert.Equal(t, 1, registry.Len())

		// a push through the registry reaches the client
		sessions := registry.Sessions(userID)
		require.Len(t, sessions, 1)
		require.True(t, sessions[0].Push(EventUnreadUpdate, map[string]int{"count": 2}))

		conn.SetReadDeadline(time.Now().Add(time.Second))
		_, payload, err := conn.ReadMessage()
		require.NoError(t, err)

		var env struct {
			Event string          `json:"event"`
			Data  json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(payload, &env))
		assert.Equal(t, EventUnreadUpdate, env.Event)
		assert.JSONEq(t, `{"count":2}`, string(env.Data))
	})

	t.Run("disconnect removes exactly that session", func(t *testing.T) {
		wsURL, registry, cfg := startHub(t)

		userID := uuid.New()
		token, err := utils.GenerateJWTToken(userID, cfg)
		require.NoError(t, err)

		dial := func() *websocket.Conn {
			conn, _, err := websocket.DefaultDialer.Dial(wsURL+"?token="+token, nil)
			require.NoError(t, err)
			require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"event":"register"}`)))
			return conn
		}

		laptop := dial()
		phone := dial()
		defer phone.Close()

		require.Eventually(t, func() bool {
			return registry.Len() == 2
		}, time.Second, 5*time.Millisecond)

		laptop.Close()

		require.Eventually(t, func() bool {
			return registry.Len() == 1
		}, time.Second, 5*time.Millisecond)
		assert.True(t, registry.Online(userID))
	})

	t.Run("sad path- missing token", func(t *testing.T) {
		wsURL, _, _ := startHub(t)

		_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("sad path- garbage token", func(t *testing.T) {
		wsURL, _, _ := startHub(t)

		_, resp, err := websocket.DefaultDialer.Dial(wsURL+"?token=garbage", nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
