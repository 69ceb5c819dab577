package models

import "time"

// Tag labels knowledge-base materials.
type Tag struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	Slug string `db:"slug" json:"slug"`
}

// Material is a knowledge-base entry. URL points at the external resource;
// the platform stores only the link and its metadata.
type Material struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description,omitempty"`
	Course      string    `db:"course" json:"course,omitempty"`
	Author      string    `db:"author" json:"author,omitempty"`
	URL         string    `db:"url" json:"url"`
	Tags        []Tag     `json:"tags"`
	ViewsCount  int       `db:"views_count" json:"views_count"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// LibraryItem is a material a user saved to their personal library.
type LibraryItem struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Material  Material  `json:"material"`
	Notes     string    `db:"notes" json:"notes,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
