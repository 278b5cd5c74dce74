package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/jiu45/JobPortal/internal/attachment"
	"github.com/jiu45/JobPortal/internal/auth"
	"github.com/jiu45/JobPortal/internal/messaging"
	apperrors "github.com/jiu45/JobPortal/pkg/errors"
	"github.com/jiu45/JobPortal/pkg/logger"
	"github.com/jiu45/JobPortal/pkg/utils"
)

const maxFormMemory = 32 << 20

type MessagingHandlers struct {
	usecase  messaging.MessagingUsecase
	ingestor *attachment.Ingestor
	logger   logger.Logger
}

func NewMessagingHandlers(usecase messaging.MessagingUsecase, ingestor *attachment.Ingestor, logger logger.Logger) *MessagingHandlers {
	return &MessagingHandlers{usecase: usecase, ingestor: ingestor, logger: logger}
}

// MapRoutes attaches the messaging endpoints to r. The router must already
// carry the auth middleware.
func (h *MessagingHandlers) MapRoutes(r *mux.Router) {
	r.HandleFunc("/messages", h.Send).Methods(http.MethodPost)
	r.HandleFunc("/messages/conversations", h.ListConversations).Methods(http.MethodGet)
	r.HandleFunc("/messages/conversation/{userId}", h.GetConversation).Methods(http.MethodGet)
	r.HandleFunc("/messages/unread-count", h.GetUnreadCount).Methods(http.MethodGet)
	r.HandleFunc("/messages/mark-read/{userId}", h.MarkRead).Methods(http.MethodPatch)
}

// Send accepts a multipart form with receiverId, text and up to five
// attachments parts.
func (h *MessagingHandlers) Send(w http.ResponseWriter, r *http.Request) {
	senderID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondError(w, apperrors.ErrMissingToken)
		return
	}

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		utils.RespondError(w, apperrors.InvalidArg("expected a multipart form"))
		return
	}

	rawReceiver := strings.TrimSpace(r.FormValue("receiverId"))
	if rawReceiver == "" {
		utils.RespondError(w, apperrors.ErrReceiverRequired)
		return
	}
	receiverID, err := uuid.Parse(rawReceiver)
	if err != nil {
		utils.RespondError(w, apperrors.ErrInvalidUserID)
		return
	}

	attachments, err := h.ingestor.Ingest(r.Context(), r.MultipartForm.File["attachments"])
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	msg, err := h.usecase.Send(r.Context(), messaging.SendMessageCommand{
		SenderID:    senderID,
		ReceiverID:  receiverID,
		Text:        r.FormValue("text"),
		Attachments: attachments,
	})
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	utils.RespondData(w, http.StatusCreated, msg)
}

func (h *MessagingHandlers) GetConversation(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondError(w, apperrors.ErrMissingToken)
		return
	}

	otherUserID, err := uuid.Parse(mux.Vars(r)["userId"])
	if err != nil {
		utils.RespondError(w, apperrors.ErrInvalidUserID)
		return
	}

	msgs, err := h.usecase.GetConversation(r.Context(), userID, otherUserID)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	utils.RespondData(w, http.StatusOK, msgs)
}

func (h *MessagingHandlers) GetUnreadCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondError(w, apperrors.ErrMissingToken)
		return
	}

	count, err := h.usecase.GetUnreadCount(r.Context(), userID)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	utils.RespondData(w, http.StatusOK, messaging.UnreadCountDTO{Count: count})
}

// MarkRead acknowledges the write only; the refreshed unread total travels
// over the websocket.
func (h *MessagingHandlers) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondError(w, apperrors.ErrMissingToken)
		return
	}

	otherUserID, err := uuid.Parse(mux.Vars(r)["userId"])
	if err != nil {
		utils.RespondError(w, apperrors.ErrInvalidUserID)
		return
	}

	if err := h.usecase.MarkConversationRead(r.Context(), userID, otherUserID); err != nil {
		utils.RespondError(w, err)
		return
	}

	utils.RespondData(w, http.StatusOK, nil)
}

func (h *MessagingHandlers) ListConversations(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondError(w, apperrors.ErrMissingToken)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.RespondError(w, apperrors.ErrInvalidLimit)
			return
		}
		limit = parsed
	}

	conversations, err := h.usecase.ListConversations(r.Context(), userID, limit)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	utils.RespondData(w, http.StatusOK, conversations)
}
