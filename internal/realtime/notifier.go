package realtime

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jiu45/JobPortal/internal/messaging"
	"github.com/jiu45/JobPortal/pkg/logger"
)

const countTimeout = 5 * time.Second

// UnreadCounter reports a user's unread total. The message repository
// satisfies it.
type UnreadCounter interface {
	CountUnread(ctx context.Context, receiverID uuid.UUID, senderID *uuid.UUID) (int, error)
}

// Notifier fans persisted-message events out to the live sessions of both
// parties. Every push is best-effort: an offline user, a full buffer or a
// failed count never surfaces to the caller.
type Notifier struct {
	registry *Registry
	unread   UnreadCounter
	logger   logger.Logger
}

func NewNotifier(registry *Registry, unread UnreadCounter, logger logger.Logger) *Notifier {
	return &Notifier{registry: registry, unread: unread, logger: logger}
}

func (n *Notifier) MessageCreated(msg *messaging.MessageDTO) {
	go n.dispatchMessage(msg)
}

func (n *Notifier) ConversationRead(receiverID uuid.UUID) {
	go n.pushUnreadTotal(receiverID)
}

func (n *Notifier) dispatchMessage(msg *messaging.MessageDTO) {
	n.broadcast(msg.ReceiverID, EventMessageNew, msg)
	n.broadcast(msg.SenderID, EventMessageSent, msg)
	n.pushUnreadTotal(msg.ReceiverID)
}

// pushUnreadTotal sends the receiver's unread total across all
// counterparts, the figure the client renders on its badge.
func (n *Notifier) pushUnreadTotal(userID uuid.UUID) {
	if !n.registry.Online(userID) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), countTimeout)
	defer cancel()

	count, err := n.unread.CountUnread(ctx, userID, nil)
	if err != nil {
		n.logger.Error("failed to count unread for push", "userId", userID, "err", err)
		return
	}
	n.broadcast(userID, EventUnreadUpdate, messaging.UnreadCountDTO{Count: count})
}

func (n *Notifier) broadcast(userID uuid.UUID, event string, data any) {
	for _, c := range n.registry.Sessions(userID) {
		if c.Push(event, data) {
			pushesTotal.WithLabelValues(event).Inc()
		} else {
			pushesDroppedTotal.WithLabelValues(event).Inc()
		}
	}
}
