package messaging

import (
	"context"

	"github.com/google/uuid"

	"github.com/jiu45/JobPortal/internal/messaging/model"
)

type MessageRepository interface {
	// Create persists the message with IsRead=false; no partial state on failure.
	Create(ctx context.Context, msg *model.Message) error

	// FindConversation returns every message exchanged between a and b, in
	// either direction, ordered ascending by creation time. The only
	// oldest-first listing in the system.
	FindConversation(ctx context.Context, a, b uuid.UUID) ([]model.Message, error)

	// CountUnread counts unread messages addressed to receiver, optionally
	// restricted to a single sender.
	CountUnread(ctx context.Context, receiver uuid.UUID, sender *uuid.UUID) (int, error)

	// MarkRead flips IsRead on every unread message from sender to receiver
	// and returns how many rows changed. Idempotent: a repeat call returns 0.
	MarkRead(ctx context.Context, receiver, sender uuid.UUID) (int64, error)

	// ListConversationSummaries groups the user's messages by counterpart,
	// newest conversation first, truncated to limit.
	ListConversationSummaries(ctx context.Context, userID uuid.UUID, limit int) ([]ConversationSummary, error)
}
