package models

import (
	"time"
)

// Todo represents a row in the todos table.
type Todo struct {
	ID        int64     `json:"id,omitempty"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}
