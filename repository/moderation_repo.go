package repository

import (
	"strings"

	"ngo_discovery/db"
	"ngo_discovery/models"
)

const moderationColumns = `
	mr.id, mr.ngo_id, n.name, COALESCE(mr.moderator_id, 0), mr.status,
	COALESCE(mr.comment, ''), COALESCE(mr.reason, ''), mr.created_at, mr.reviewed_at`

func scanModerationRequest(scanner interface{ Scan(...interface{}) error }) (models.ModerationRequest, error) {
	var m models.ModerationRequest
	err := scanner.Scan(
		&m.ID, &m.NGOID, &m.NGOName, &m.ModeratorID, &m.Status,
		&m.Comment, &m.Reason, &m.CreatedAt, &m.ReviewedAt,
	)
	return m, err
}

// ListModerationRequests returns moderation requests, newest first, optionally
// filtered by status.
func ListModerationRequests(status string) ([]models.ModerationRequest, error) {
	query := `
		SELECT` + moderationColumns + `
		FROM moderation_requests mr
		JOIN ngos n ON n.id = mr.ngo_id`
	args := []interface{}{}

	if status = strings.TrimSpace(status); status != "" {
		query += ` WHERE mr.status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY mr.created_at DESC, mr.id DESC`

	rows, err := db.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]models.ModerationRequest, 0)
	for rows.Next() {
		m, err := scanModerationRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, m)
	}
	return requests, rows.Err()
}

// GetModerationRequest returns a single moderation request by id.
func GetModerationRequest(id int64) (*models.ModerationRequest, error) {
	row := db.DB.QueryRow(`
		SELECT`+moderationColumns+`
		FROM moderation_requests mr
		JOIN ngos n ON n.id = mr.ngo_id
		WHERE mr.id = ?`, id)

	m, err := scanModerationRequest(row)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ResolveModerationRequest closes a request and moves the organization to the
// matching status. Both writes land in one transaction.
func ResolveModerationRequest(id, moderatorID int64, status, comment, reason string) error {
	tx, err := db.DB.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`
		UPDATE moderation_requests
		SET moderator_id = ?, status = ?, comment = ?, reason = ?, reviewed_at = NOW()
		WHERE id = ?`, moderatorID, status, comment, reason, id); err != nil {
		tx.Rollback()
		return err
	}

	if _, err := tx.Exec(`
		UPDATE ngos n
		JOIN moderation_requests mr ON mr.ngo_id = n.id
		SET n.status = ?
		WHERE mr.id = ?`, status, id); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
