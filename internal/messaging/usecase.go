package messaging

import (
	"context"

	"github.com/google/uuid"
)

type MessagingUsecase interface {
	// Send validates, persists and returns the populated message. Live
	// delivery to connected parties is dispatched best-effort and never
	// affects the result.
	Send(ctx context.Context, cmd SendMessageCommand) (*MessageDTO, error)

	// GetConversation returns the full exchange with otherUser, oldest first.
	// Viewing does not mark anything read.
	GetConversation(ctx context.Context, userID, otherUserID uuid.UUID) ([]*MessageDTO, error)

	// GetUnreadCount returns the user's unread total across all counterparts.
	GetUnreadCount(ctx context.Context, userID uuid.UUID) (int, error)

	// MarkConversationRead marks every message from otherUser as read. The
	// new unread total is pushed over the realtime channel, not returned.
	MarkConversationRead(ctx context.Context, userID, otherUserID uuid.UUID) error

	// ListConversations returns counterpart summaries, most recent first.
	// limit <= 0 falls back to the default of 20.
	ListConversations(ctx context.Context, userID uuid.UUID, limit int) ([]*ConversationDTO, error)
}

// Notifier pushes realtime events after successful writes. Implementations
// must be fire-and-forget: they may not block and their failures stay on
// their side of the boundary.
type Notifier interface {
	MessageCreated(msg *MessageDTO)
	ConversationRead(receiverID uuid.UUID)
}
