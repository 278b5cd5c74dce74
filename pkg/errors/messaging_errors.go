package errors

var (
	// Messaging domain errors.
	ErrReceiverRequired   = InvalidArg("receiverId is required")
	ErrEmptyMessage       = InvalidArg("message text or at least one attachment is required")
	ErrTooManyAttachments = InvalidArg("a message can carry at most 5 attachments")
	ErrAttachmentTooLarge = InvalidArg("attachment exceeds the 10 MB limit")
	ErrSelfMessage        = InvalidArg("cannot send a message to yourself")
	ErrUserNotFound       = NotFound("user not found")
	ErrInvalidUserID      = InvalidArg("invalid user id")
	ErrInvalidLimit       = InvalidArg("limit must be a positive integer")
	ErrMissingToken       = Unauthorized("missing bearer token")
	ErrInvalidToken       = Unauthorized("invalid or expired token")
)

func ErrSendFailed(cause error) error {
	return Wrap(CodeInternal, "failed to send message", cause)
}

func ErrConversationLoadFailed(cause error) error {
	return Wrap(CodeInternal, "failed to load conversation", cause)
}
