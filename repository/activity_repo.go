package repository

import (
	"ngo_discovery/db"
	"ngo_discovery/models"
)

// FavoriteNGOIDs returns the ids of organizations the user has favorited.
func FavoriteNGOIDs(userID int64) ([]int64, error) {
	return queryIDs(`SELECT ngo_id FROM favorites WHERE user_id = ?`, userID)
}

// ViewedNGOIDs returns the ids of organizations the user has opened.
func ViewedNGOIDs(userID int64) ([]int64, error) {
	return queryIDs(`
		SELECT DISTINCT ngo_id FROM activity_history
		WHERE user_id = ? AND activity_type = ? AND ngo_id IS NOT NULL`,
		userID, models.ActivityView)
}

// RegisteredEventIDs returns the ids of events the user has registered for.
func RegisteredEventIDs(userID int64) ([]int64, error) {
	return queryIDs(`SELECT event_id FROM event_registrations WHERE user_id = ?`, userID)
}

// ListUserActivity returns the user's activity log, newest first.
func ListUserActivity(userID int64, limit int) ([]models.ActivityEntry, error) {
	query := `
		SELECT id, user_id, activity_type, COALESCE(ngo_id, 0), COALESCE(event_id, 0), created_at
		FROM activity_history
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC`
	args := []interface{}{userID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.ActivityEntry, 0)
	for rows.Next() {
		var e models.ActivityEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.ActivityType, &e.NGOID, &e.EventID, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// LogNGOActivity appends an organization-related entry to the activity log.
func LogNGOActivity(userID, ngoID int64, activityType string) error {
	_, err := db.DB.Exec(`
		INSERT INTO activity_history (user_id, activity_type, ngo_id, created_at)
		VALUES (?, ?, ?, NOW())`, userID, activityType, ngoID)
	return err
}

// LogEventActivity appends an event-related entry to the activity log.
func LogEventActivity(userID, eventID int64, activityType string) error {
	_, err := db.DB.Exec(`
		INSERT INTO activity_history (user_id, activity_type, event_id, created_at)
		VALUES (?, ?, ?, NOW())`, userID, activityType, eventID)
	return err
}
