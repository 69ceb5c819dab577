package repository

import (
	"strings"
	"time"

	"ngo_discovery/db"
	"ngo_discovery/models"
)

const eventColumns = `
	e.id, e.ngo_id, n.name, n.city, n.category_id, c.name, n.rating,
	e.title, e.description, e.event_date, e.location,
	COALESCE(e.max_participants, 0),
	(SELECT COUNT(*) FROM event_registrations er WHERE er.event_id = e.id),
	e.created_at`

func scanEvent(scanner interface{ Scan(...interface{}) error }) (models.Event, error) {
	var e models.Event
	err := scanner.Scan(
		&e.ID, &e.NGOID, &e.NGOName, &e.NGOCity, &e.NGOCategoryID, &e.NGOCategoryName, &e.NGORating,
		&e.Title, &e.Description, &e.EventDate, &e.Location,
		&e.MaxParticipants, &e.RegisteredCount, &e.CreatedAt,
	)
	return e, err
}

func queryEvents(query string, args ...interface{}) ([]models.Event, error) {
	rows, err := db.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// ListUpcomingEvents returns future events of approved organizations,
// optionally restricted to the owning organization's city.
func ListUpcomingEvents(city string) ([]models.Event, error) {
	query := `
		SELECT` + eventColumns + `
		FROM events e
		JOIN ngos n ON n.id = e.ngo_id
		JOIN categories c ON c.id = n.category_id
		WHERE e.event_date >= ? AND n.status = ?`
	args := []interface{}{time.Now(), models.NGOStatusApproved}

	if city = strings.TrimSpace(city); city != "" {
		query += ` AND n.city = ?`
		args = append(args, city)
	}
	query += ` ORDER BY e.event_date, e.id`

	return queryEvents(query, args...)
}

// SearchEvents returns upcoming events of approved organizations whose title
// or description matches the query.
func SearchEvents(q string) ([]models.Event, error) {
	pattern := "%" + q + "%"
	return queryEvents(`
		SELECT`+eventColumns+`
		FROM events e
		JOIN ngos n ON n.id = e.ngo_id
		JOIN categories c ON c.id = n.category_id
		WHERE e.event_date >= ? AND n.status = ?
			AND (e.title LIKE ? OR e.description LIKE ?)
		ORDER BY e.event_date, e.id`,
		time.Now(), models.NGOStatusApproved, pattern, pattern)
}

// GetEvent returns a single event by id.
func GetEvent(id int64) (*models.Event, error) {
	row := db.DB.QueryRow(`
		SELECT`+eventColumns+`
		FROM events e
		JOIN ngos n ON n.id = e.ngo_id
		JOIN categories c ON c.id = n.category_id
		WHERE e.id = ?`, id)

	e, err := scanEvent(row)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
