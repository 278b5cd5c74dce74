package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jiu45/JobPortal/internal/messaging"
	"github.com/jiu45/JobPortal/internal/messaging/model"
	"github.com/jiu45/JobPortal/internal/user"
	"github.com/jiu45/JobPortal/pkg/errors"
	"github.com/jiu45/JobPortal/pkg/logger"
)

const (
	defaultConversationLimit = 20
	maxAttachments           = 5
)

type MessagingUsecase struct {
	repo     messaging.MessageRepository
	users    user.UserRepository
	notifier messaging.Notifier
	logger   logger.Logger
}

func NewMessagingUsecase(repo messaging.MessageRepository, users user.UserRepository,
	notifier messaging.Notifier, logger logger.Logger) *MessagingUsecase {
	return &MessagingUsecase{repo: repo, users: users, notifier: notifier, logger: logger}
}

func (uc *MessagingUsecase) Send(ctx context.Context, cmd messaging.SendMessageCommand) (*messaging.MessageDTO, error) {
	if cmd.ReceiverID == uuid.Nil {
		return nil, errors.ErrReceiverRequired
	}
	if cmd.SenderID == cmd.ReceiverID {
		return nil, errors.ErrSelfMessage
	}
	if strings.TrimSpace(cmd.Text) == "" && len(cmd.Attachments) == 0 {
		return nil, errors.ErrEmptyMessage
	}
	if len(cmd.Attachments) > maxAttachments {
		return nil, errors.ErrTooManyAttachments
	}

	msg := &model.Message{
		SenderID:    cmd.SenderID,
		ReceiverID:  cmd.ReceiverID,
		Text:        cmd.Text,
		Attachments: cmd.Attachments,
	}

	if err := uc.repo.Create(ctx, msg); err != nil {
		uc.logger.Error("failed to persist message", "sender", cmd.SenderID, "receiver", cmd.ReceiverID, "err", err)
		return nil, errors.ErrSendFailed(err)
	}

	dto := uc.populate(ctx, msg)

	// Live delivery is strictly secondary to persistence: the notifier
	// dispatches in the background and its outcome never reaches here.
	uc.notifier.MessageCreated(dto)

	return dto, nil
}

func (uc *MessagingUsecase) GetConversation(ctx context.Context, userID, otherUserID uuid.UUID) ([]*messaging.MessageDTO, error) {
	if otherUserID == uuid.Nil {
		return nil, errors.ErrInvalidUserID
	}

	msgs, err := uc.repo.FindConversation(ctx, userID, otherUserID)
	if err != nil {
		uc.logger.Error("failed to load conversation", "user", userID, "other", otherUserID, "err", err)
		return nil, errors.ErrConversationLoadFailed(err)
	}

	out := make([]*messaging.MessageDTO, 0, len(msgs))
	for i := range msgs {
		out = append(out, toMessageDTO(&msgs[i],
			user.SnapshotFromModel(msgs[i].Sender),
			user.SnapshotFromModel(msgs[i].Receiver)))
	}
	return out, nil
}

func (uc *MessagingUsecase) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := uc.repo.CountUnread(ctx, userID, nil)
	if err != nil {
		uc.logger.Error("failed to count unread messages", "user", userID, "err", err)
		return 0, errors.Internal("failed to count unread messages")
	}
	return count, nil
}

func (uc *MessagingUsecase) MarkConversationRead(ctx context.Context, userID, otherUserID uuid.UUID) error {
	if otherUserID == uuid.Nil {
		return errors.ErrInvalidUserID
	}

	if _, err := uc.repo.MarkRead(ctx, userID, otherUserID); err != nil {
		uc.logger.Error("failed to mark conversation read", "user", userID, "other", otherUserID, "err", err)
		return errors.Internal("failed to mark conversation read")
	}

	// The fresh unread total travels over the push channel only; callers
	// get an acknowledgement and must not assume the count synchronously.
	uc.notifier.ConversationRead(userID)

	return nil
}

func (uc *MessagingUsecase) ListConversations(ctx context.Context, userID uuid.UUID, limit int) ([]*messaging.ConversationDTO, error) {
	if limit <= 0 {
		limit = defaultConversationLimit
	}

	summaries, err := uc.repo.ListConversationSummaries(ctx, userID, limit)
	if err != nil {
		uc.logger.Error("failed to list conversations", "user", userID, "err", err)
		return nil, errors.Internal("failed to list conversations")
	}

	ids := make([]uuid.UUID, 0, len(summaries))
	for _, s := range summaries {
		ids = append(ids, s.OtherUserID)
	}

	snapshots := uc.lookupSnapshots(ctx, ids)

	out := make([]*messaging.ConversationDTO, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, &messaging.ConversationDTO{
			OtherUserID:   s.OtherUserID,
			OtherUser:     snapshots[s.OtherUserID], // nil when unresolvable
			LastMessage:   s.LastMessageText,
			LastMessageID: s.LastMessageID,
			LastMessageAt: s.LastMessageAt,
			UnreadCount:   s.UnreadCount,
		})
	}
	return out, nil
}

// populate resolves sender/receiver snapshots for a freshly written message.
// Directory failures degrade to nil snapshots rather than failing the send.
func (uc *MessagingUsecase) populate(ctx context.Context, msg *model.Message) *messaging.MessageDTO {
	snapshots := uc.lookupSnapshots(ctx, []uuid.UUID{msg.SenderID, msg.ReceiverID})
	return toMessageDTO(msg, snapshots[msg.SenderID], snapshots[msg.ReceiverID])
}

func (uc *MessagingUsecase) lookupSnapshots(ctx context.Context, ids []uuid.UUID) map[uuid.UUID]*user.Snapshot {
	if len(ids) == 0 {
		return nil
	}

	users, err := uc.users.GetUsersByIDs(ctx, ids)
	if err != nil {
		uc.logger.Warn("user directory lookup failed", "err", err)
		return nil
	}
	return user.SnapshotMap(users)
}

func toMessageDTO(msg *model.Message, sender, receiver *user.Snapshot) *messaging.MessageDTO {
	attachments := msg.Attachments
	if attachments == nil {
		attachments = []model.Attachment{}
	}
	return &messaging.MessageDTO{
		ID:          msg.ID,
		SenderID:    msg.SenderID,
		ReceiverID:  msg.ReceiverID,
		Sender:      sender,
		Receiver:    receiver,
		Text:        msg.Text,
		Attachments: attachments,
		IsRead:      msg.IsRead,
		CreatedAt:   msg.CreatedAt,
		UpdatedAt:   msg.UpdatedAt,
	}
}
