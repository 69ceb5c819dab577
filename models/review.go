package models

import "time"

type Review struct {
	ID        int64     `db:"id" json:"id"`
	NGOID     int64     `db:"ngo_id" json:"ngo_id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Username  string    `db:"username" json:"username,omitempty"`
	Rating    int       `db:"rating" json:"rating"` // 1-5
	Comment   string    `db:"comment" json:"comment"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Favorite pairs a favorited organization with the moment it was saved.
type Favorite struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	NGO       NGO       `json:"ngo"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
