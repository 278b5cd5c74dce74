package user

import (
	"context"

	"github.com/google/uuid"

	models "github.com/jiu45/JobPortal/internal/user/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// Batch snapshot lookup used to populate messages and conversation lists.
	// Missing ids are simply absent from the result, never an error.
	GetUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]models.User, error)
}
