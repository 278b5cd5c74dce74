package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/jiu45/JobPortal/internal/messaging"
	"github.com/jiu45/JobPortal/internal/messaging/model"
	"github.com/jiu45/JobPortal/pkg/logger"
)

type MessageRepository struct {
	db     *bun.DB
	logger logger.Logger
}

func NewMessageRepository(db *bun.DB, logger logger.Logger) *MessageRepository {
	return &MessageRepository{db: db, logger: logger}
}

func (r *MessageRepository) Create(ctx context.Context, msg *model.Message) error {
	_, err := r.db.NewInsert().Model(msg).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "messageRepo.Create.Insert: ")
	}
	return nil
}

func (r *MessageRepository) FindConversation(ctx context.Context, a, b uuid.UUID) ([]model.Message, error) {
	var msgs []model.Message
	err := r.db.NewSelect().
		Model(&msgs).
		Relation("Sender").
		Relation("Receiver").
		Where("(message.sender_id = ? AND message.receiver_id = ?) OR (message.sender_id = ? AND message.receiver_id = ?)",
			a, b, b, a).
		Order("message.created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "messageRepo.FindConversation.Scan: ")
	}
	return msgs, nil
}

func (r *MessageRepository) CountUnread(ctx context.Context, receiver uuid.UUID, sender *uuid.UUID) (int, error) {
	q := r.db.NewSelect().
		Model((*model.Message)(nil)).
		Where("receiver_id = ?", receiver).
		Where("is_read = FALSE")
	if sender != nil {
		q = q.Where("sender_id = ?", *sender)
	}

	count, err := q.Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "messageRepo.CountUnread.Count: ")
	}
	return count, nil
}

func (r *MessageRepository) MarkRead(ctx context.Context, receiver, sender uuid.UUID) (int64, error) {
	res, err := r.db.NewUpdate().
		Model((*model.Message)(nil)).
		Set("is_read = TRUE").
		Set("updated_at = current_timestamp").
		Where("receiver_id = ?", receiver).
		Where("sender_id = ?", sender).
		Where("is_read = FALSE").
		Exec(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "messageRepo.MarkRead.Update: ")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "messageRepo.MarkRead.RowsAffected: ")
	}
	return affected, nil
}

// ListConversationSummaries pulls the user's messages newest-first and
// groups them by counterpart. The first message seen per group is the
// conversation's last message, so first-seen group order is already the
// lastMessageAt descending order the caller wants.
func (r *MessageRepository) ListConversationSummaries(ctx context.Context, userID uuid.UUID, limit int) ([]messaging.ConversationSummary, error) {
	var msgs []model.Message
	err := r.db.NewSelect().
		Model(&msgs).
		Column("id", "sender_id", "receiver_id", "text", "is_read", "created_at").
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "messageRepo.ListConversationSummaries.Scan: ")
	}

	groups := make(map[uuid.UUID]*messaging.ConversationSummary)
	order := make([]uuid.UUID, 0)

	for i := range msgs {
		msg := &msgs[i]

		counterpart := msg.SenderID
		if msg.SenderID == userID {
			counterpart = msg.ReceiverID
		}

		summary, ok := groups[counterpart]
		if !ok {
			summary = &messaging.ConversationSummary{
				OtherUserID:     counterpart,
				LastMessageID:   msg.ID,
				LastMessageText: msg.Text,
				LastMessageAt:   msg.CreatedAt,
			}
			groups[counterpart] = summary
			order = append(order, counterpart)
		}

		if msg.ReceiverID == userID && !msg.IsRead {
			summary.UnreadCount++
		}
	}

	if limit > 0 && len(order) > limit {
		order = order[:limit]
	}

	out := make([]messaging.ConversationSummary, 0, len(order))
	for _, id := range order {
		out = append(out, *groups[id])
	}
	return out, nil
}
