package repository

import (
	"ngo_discovery/db"
	"ngo_discovery/models"
)

// GetStatistics collects the platform-wide counters in one round trip.
func GetStatistics() (*models.Statistics, error) {
	var s models.Statistics
	err := db.DB.QueryRow(`
		SELECT
			(SELECT COUNT(*) FROM ngos WHERE status = ?),
			(SELECT COUNT(*) FROM events e
				JOIN ngos n ON n.id = e.ngo_id
				WHERE e.event_date >= NOW() AND n.status = ?),
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM reviews),
			(SELECT COUNT(DISTINCT city) FROM ngos WHERE status = ?)`,
		models.NGOStatusApproved, models.NGOStatusApproved, models.NGOStatusApproved,
	).Scan(&s.NGOs, &s.UpcomingEvents, &s.Users, &s.Reviews, &s.Cities)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
