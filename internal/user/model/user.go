package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the directory record referenced by messages. Profile CRUD lives
// outside the messaging core; this model only carries what chat views need.
type User struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	Name  string `bun:",notnull"`
	Email string `bun:",unique,notnull"`

	// Avatar = retrievable image locator, empty when the user never uploaded one
	Avatar string `bun:",nullzero"`

	// Role = jobseeker | employer
	Role string `bun:",notnull,default:'jobseeker'"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
