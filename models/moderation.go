package models

import "time"

// Moderation request statuses. These mirror the NGO statuses: resolving a
// request moves the organization through the same lifecycle.
const (
	ModerationStatusPending  = "pending"
	ModerationStatusApproved = "approved"
	ModerationStatusRejected = "rejected"
)

// ModerationRequest tracks the review of a submitted organization.
type ModerationRequest struct {
	ID          int64      `db:"id" json:"id"`
	NGOID       int64      `db:"ngo_id" json:"ngo_id"`
	NGOName     string     `db:"ngo_name" json:"ngo_name,omitempty"`
	ModeratorID int64      `db:"moderator_id" json:"moderator_id,omitempty"`
	Status      string     `db:"status" json:"status"`
	Comment     string     `db:"comment" json:"comment,omitempty"`
	Reason      string     `db:"reason" json:"reason,omitempty"` // filled on rejection
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	ReviewedAt  *time.Time `db:"reviewed_at" json:"reviewed_at,omitempty"`
}
