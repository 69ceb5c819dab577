package models

import "time"

type Event struct {
	ID              int64     `db:"id" json:"id"`
	NGOID           int64     `db:"ngo_id" json:"ngo_id"`
	NGOName         string    `db:"ngo_name" json:"ngo_name"`
	NGOCity         string    `db:"ngo_city" json:"ngo_city"`
	NGOCategoryID   int64     `db:"ngo_category_id" json:"ngo_category_id"`
	NGOCategoryName string    `db:"ngo_category_name" json:"ngo_category_name"`
	NGORating       float64   `db:"ngo_rating" json:"ngo_rating"`
	Title           string    `db:"title" json:"title"`
	Description     string    `db:"description" json:"description"`
	EventDate       time.Time `db:"event_date" json:"event_date"`
	Location        string    `db:"location" json:"location"`
	MaxParticipants int       `db:"max_participants" json:"max_participants,omitempty"`
	RegisteredCount int       `db:"registered_count" json:"registered_count"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type EventRegistration struct {
	ID        int64     `db:"id" json:"id"`
	EventID   int64     `db:"event_id" json:"event_id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
