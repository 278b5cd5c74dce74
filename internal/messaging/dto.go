package messaging

import (
	"time"

	"github.com/google/uuid"

	"github.com/jiu45/JobPortal/internal/messaging/model"
	"github.com/jiu45/JobPortal/internal/user"
)

// Commands travel from handler to usecase, DTOs the other way.
type SendMessageCommand struct {
	SenderID    uuid.UUID
	ReceiverID  uuid.UUID
	Text        string
	Attachments []model.Attachment
}

// Output DTOs
type MessageDTO struct {
	ID          uuid.UUID          `json:"_id"`
	SenderID    uuid.UUID          `json:"-"`
	ReceiverID  uuid.UUID          `json:"-"`
	Sender      *user.Snapshot     `json:"sender"`
	Receiver    *user.Snapshot     `json:"receiver"`
	Text        string             `json:"text"`
	Attachments []model.Attachment `json:"attachments"`
	IsRead      bool               `json:"isRead"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

type ConversationDTO struct {
	OtherUserID   uuid.UUID      `json:"_id"`
	OtherUser     *user.Snapshot `json:"otherUser"`
	LastMessage   string         `json:"lastMessage"`
	LastMessageID uuid.UUID      `json:"lastMessageId"`
	LastMessageAt time.Time      `json:"lastMessageAt"`
	UnreadCount   int            `json:"unreadCount"`
}

type UnreadCountDTO struct {
	Count int `json:"count"`
}

// ConversationSummary is the aggregator's raw output, before counterpart
// snapshots are resolved against the user directory.
type ConversationSummary struct {
	OtherUserID     uuid.UUID
	LastMessageID   uuid.UUID
	LastMessageText string
	LastMessageAt   time.Time
	UnreadCount     int
}
