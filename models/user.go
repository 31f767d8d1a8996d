package models

import (
	"time"

	"github.com/google/uuid"
)

// User mirrors the user table. The ID is the auth user's UUID, assigned by
// the identity provider at signup and reused as the row's primary key.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
