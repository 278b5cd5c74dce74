package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	models "github.com/jiu45/JobPortal/internal/user/model"
	apperrors "github.com/jiu45/JobPortal/pkg/errors"
	"github.com/jiu45/JobPortal/pkg/logger"
)

type UserRepository struct {
	db     *bun.DB
	logger logger.Logger
}

func NewUserRepository(db *bun.DB, logger logger.Logger) *UserRepository {
	return &UserRepository{db: db, logger: logger}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	_, err := r.db.NewInsert().Model(user).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.CreateUser.Insert: ")
	}
	return nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().Model(user).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByID.Scan: ")
	}
	return user, nil
}

func (r *UserRepository) GetUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var users []models.User
	err := r.db.NewSelect().Model(&users).Where("id IN (?)", bun.In(ids)).Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.GetUsersByIDs.Scan: ")
	}
	return users, nil
}
