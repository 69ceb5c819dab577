package models

import "time"

// NGO moderation statuses
const (
	NGOStatusPending  = "pending"
	NGOStatusApproved = "approved"
	NGOStatusRejected = "rejected"
)

type NGO struct {
	ID                int64     `db:"id" json:"id"`
	Name              string    `db:"name" json:"name"`
	Slug              string    `db:"slug" json:"slug"`
	CategoryID        int64     `db:"category_id" json:"category_id"`
	CategoryName      string    `db:"category_name" json:"category_name"`
	ShortDescription  string    `db:"short_description" json:"short_description"`
	City              string    `db:"city" json:"city"`
	Rating            float64   `db:"rating" json:"rating"` // 0.0-5.0, refreshed from reviews
	ParticipantsCount int       `db:"participants_count" json:"participants_count"`
	EventsCount       int       `db:"events_count" json:"events_count"`
	Status            string    `db:"status" json:"status"`
	Latitude          float64   `db:"latitude" json:"latitude,omitempty"` // 0 when the organization has no pin
	Longitude         float64   `db:"longitude" json:"longitude,omitempty"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

type Category struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Slug        string `db:"slug" json:"slug"`
	Description string `db:"description" json:"description,omitempty"`
	NGOCount    int64  `db:"ngo_count" json:"ngo_count"` // approved organizations only
}

// ContactMessage is a visitor message relayed to an organization.
type ContactMessage struct {
	ID        int64     `db:"id" json:"id"`
	NGOID     int64     `db:"ngo_id" json:"ngo_id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
