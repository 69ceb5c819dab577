package models

import "time"

// News publication statuses
const (
	NewsStatusPending   = "pending"
	NewsStatusPublished = "published"
	NewsStatusRejected  = "rejected"
)

type News struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Snippet     string    `db:"snippet" json:"snippet,omitempty"`
	Content     string    `db:"content" json:"content"`
	City        string    `db:"city" json:"city,omitempty"`
	Category    string    `db:"category" json:"category"`
	Status      string    `db:"status" json:"status"`
	ViewsCount  int       `db:"views_count" json:"views_count"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	PublishedAt time.Time `db:"published_at" json:"published_at,omitempty"`
}
