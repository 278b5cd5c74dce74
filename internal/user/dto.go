package user

import (
	"github.com/google/uuid"

	models "github.com/jiu45/JobPortal/internal/user/model"
)

// Snapshot is the denormalized identity view embedded in message and
// conversation responses.
type Snapshot struct {
	ID     uuid.UUID `json:"_id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Avatar string    `json:"avatar,omitempty"`
	Role   string    `json:"role"`
}

func SnapshotFromModel(u *models.User) *Snapshot {
	if u == nil {
		return nil
	}
	return &Snapshot{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Avatar: u.Avatar,
		Role:   u.Role,
	}
}

// SnapshotMap indexes snapshots by user id for batch population.
func SnapshotMap(users []models.User) map[uuid.UUID]*Snapshot {
	m := make(map[uuid.UUID]*Snapshot, len(users))
	for i := range users {
		m[users[i].ID] = SnapshotFromModel(&users[i])
	}
	return m
}
