package models

import (
	"time"
)

// Post represents one board entry in the posts table.
type Post struct {
	ID           int64     `json:"id,omitempty"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"` // Use a pointer for nullable TEXT fields
	CreatedAt    time.Time `json:"created_at"`
}
