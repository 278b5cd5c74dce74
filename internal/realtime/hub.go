package realtime

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/jiu45/JobPortal/config"
	"github.com/jiu45/JobPortal/internal/auth"
	apperrors "github.com/jiu45/JobPortal/pkg/errors"
	"github.com/jiu45/JobPortal/pkg/logger"
	"github.com/jiu45/JobPortal/pkg/utils"
)

// Hub upgrades authenticated HTTP requests into live sessions. The identity
// a session is registered under always comes from the verified token, never
// from anything the client sends afterwards.
type Hub struct {
	registry *Registry
	cfg      *config.Config
	upgrader websocket.Upgrader
	logger   logger.Logger
}

func NewHub(registry *Registry, cfg *config.Config, logger logger.Logger) *Hub {
	return &Hub{
		registry: registry,
		cfg:      cfg,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	token := auth.TokenFromRequest(r)
	if token == "" {
		utils.RespondError(w, apperrors.ErrMissingToken)
		return
	}

	userID, err := utils.ParseUserID(token, h.cfg)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the failure response.
		h.logger.Warn("websocket upgrade failed", "err", err)
		return
	}

	s := newSession(
		userID,
		conn,
		h.registry,
		h.cfg.Websocket.ReadLimit,
		time.Duration(h.cfg.Websocket.PingPeriod)*time.Second,
		h.cfg.Websocket.SendBuffer,
		h.logger,
	)

	h.logger.Debug("websocket connected", "userId", userID)
	go s.writeLoop()
	go s.readLoop()
}
