package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	user "github.com/jiu45/JobPortal/internal/user/model"
)

type AttachmentKind string

const (
	AttachmentKindImage AttachmentKind = "image"
	AttachmentKindFile  AttachmentKind = "file"
)

// KindForMimetype classifies a declared content type. image/* → image,
// everything else (pdf/doc/zip/...) → file.
func KindForMimetype(mimetype string) AttachmentKind {
	if strings.HasPrefix(mimetype, "image/") {
		return AttachmentKindImage
	}
	return AttachmentKindFile
}

// Attachment is owned entirely by its message; it has no identity or
// lifecycle of its own and is persisted inline as jsonb.
type Attachment struct {
	URL      string         `json:"url"`
	Filename string         `json:"filename"`
	Mimetype string         `json:"mimetype"`
	Size     int64          `json:"size"`
	Kind     AttachmentKind `json:"type"`
}

type Message struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	SenderID uuid.UUID  `bun:",notnull,type:uuid"`
	Sender   *user.User `bun:"rel:belongs-to,join:sender_id=id"`

	ReceiverID uuid.UUID  `bun:",notnull,type:uuid"`
	Receiver   *user.User `bun:"rel:belongs-to,join:receiver_id=id"`

	Text        string       `bun:"text"`
	Attachments []Attachment `bun:",type:jsonb"`

	// IsRead flips false→true via the receiver's mark-read action only;
	// nothing in this design ever resets it.
	IsRead bool `bun:",notnull,default:false"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// HasContent reports whether the message carries text or at least one attachment.
func (m *Message) HasContent() bool {
	return strings.TrimSpace(m.Text) != "" || len(m.Attachments) > 0
}
