package repository

import (
	"fmt"
	"strings"

	"ngo_discovery/db"
	"ngo_discovery/models"
)

const ngoColumns = `
	n.id, n.name, n.slug, n.category_id, c.name, n.short_description,
	n.city, n.rating, n.participants_count, n.events_count, n.status,
	COALESCE(n.latitude, 0), COALESCE(n.longitude, 0), n.created_at`

func scanNGO(scanner interface{ Scan(...interface{}) error }) (models.NGO, error) {
	var n models.NGO
	err := scanner.Scan(
		&n.ID, &n.Name, &n.Slug, &n.CategoryID, &n.CategoryName, &n.ShortDescription,
		&n.City, &n.Rating, &n.ParticipantsCount, &n.EventsCount, &n.Status,
		&n.Latitude, &n.Longitude, &n.CreatedAt,
	)
	return n, err
}

func queryNGOs(query string, args ...interface{}) ([]models.NGO, error) {
	rows, err := db.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ngos := make([]models.NGO, 0)
	for rows.Next() {
		n, err := scanNGO(rows)
		if err != nil {
			return nil, err
		}
		ngos = append(ngos, n)
	}
	return ngos, rows.Err()
}

// ListVisibleNGOs returns approved organizations, optionally restricted to a city.
func ListVisibleNGOs(city string) ([]models.NGO, error) {
	query := `
		SELECT` + ngoColumns + `
		FROM ngos n
		JOIN categories c ON c.id = n.category_id
		WHERE n.status = ?`
	args := []interface{}{models.NGOStatusApproved}

	if city = strings.TrimSpace(city); city != "" {
		query += ` AND n.city = ?`
		args = append(args, city)
	}
	query += ` ORDER BY n.id`

	return queryNGOs(query, args...)
}

// ListNGOs returns approved organizations for catalog browsing, with optional
// city and category slug filters.
func ListNGOs(city, categorySlug string) ([]models.NGO, error) {
	query := `
		SELECT` + ngoColumns + `
		FROM ngos n
		JOIN categories c ON c.id = n.category_id
		WHERE n.status = ?`
	args := []interface{}{models.NGOStatusApproved}

	if city = strings.TrimSpace(city); city != "" {
		query += ` AND n.city = ?`
		args = append(args, city)
	}
	if categorySlug = strings.TrimSpace(categorySlug); categorySlug != "" {
		query += ` AND c.slug = ?`
		args = append(args, categorySlug)
	}
	query += ` ORDER BY n.rating DESC, n.id`

	return queryNGOs(query, args...)
}

// GetNGO returns a single approved organization by id.
func GetNGO(id int64) (*models.NGO, error) {
	row := db.DB.QueryRow(`
		SELECT`+ngoColumns+`
		FROM ngos n
		JOIN categories c ON c.id = n.category_id
		WHERE n.id = ? AND n.status = ?`, id, models.NGOStatusApproved)

	n, err := scanNGO(row)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// ListApprovedNGOsExcluding returns up to limit approved organizations whose
// ids are not in the given set, id ascending. Used by the recommendation
// backfill step.
func ListApprovedNGOsExcluding(excluded []int64, limit int) ([]models.NGO, error) {
	if limit <= 0 {
		return []models.NGO{}, nil
	}

	query := `
		SELECT` + ngoColumns + `
		FROM ngos n
		JOIN categories c ON c.id = n.category_id
		WHERE n.status = ?`
	args := []interface{}{models.NGOStatusApproved}

	if len(excluded) > 0 {
		placeholders := make([]string, len(excluded))
		for i, id := range excluded {
			placeholders[i] = "?"
			args = append(args, id)
		}
		query += fmt.Sprintf(` AND n.id NOT IN (%s)`, strings.Join(placeholders, ","))
	}
	query += ` ORDER BY n.id LIMIT ?`
	args = append(args, limit)

	return queryNGOs(query, args...)
}

// SearchNGOs returns approved organizations whose name or description
// matches the query.
func SearchNGOs(q string) ([]models.NGO, error) {
	pattern := "%" + q + "%"
	return queryNGOs(`
		SELECT`+ngoColumns+`
		FROM ngos n
		JOIN categories c ON c.id = n.category_id
		WHERE n.status = ? AND (n.name LIKE ? OR n.short_description LIKE ?)
		ORDER BY n.rating DESC, n.id`,
		models.NGOStatusApproved, pattern, pattern)
}

// ListMappedNGOs returns approved organizations that carry map coordinates.
func ListMappedNGOs() ([]models.NGO, error) {
	return queryNGOs(`
		SELECT`+ngoColumns+`
		FROM ngos n
		JOIN categories c ON c.id = n.category_id
		WHERE n.status = ? AND n.latitude IS NOT NULL AND n.longitude IS NOT NULL
		ORDER BY n.id`, models.NGOStatusApproved)
}

// ListCategories returns all categories with their approved organization
// counts, name ascending.
func ListCategories() ([]models.Category, error) {
	rows, err := db.DB.Query(`
		SELECT c.id, c.name, c.slug, COALESCE(c.description, ''),
			(SELECT COUNT(*) FROM ngos n WHERE n.category_id = c.id AND n.status = ?)
		FROM categories c
		ORDER BY c.name`, models.NGOStatusApproved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.NGOCount); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// RefreshNGOStats recomputes the denormalized counters the scorer reads:
// rating from reviews, events_count from events, participants_count as the
// distinct registered users across the organization's events.
func RefreshNGOStats() (int64, error) {
	result, err := db.DB.Exec(`
		UPDATE ngos n
		SET n.rating = COALESCE((SELECT AVG(r.rating) FROM reviews r WHERE r.ngo_id = n.id), 0),
			n.events_count = (SELECT COUNT(*) FROM events e WHERE e.ngo_id = n.id),
			n.participants_count = (
				SELECT COUNT(DISTINCT er.user_id)
				FROM event_registrations er
				JOIN events e ON e.id = er.event_id
				WHERE e.ngo_id = n.id
			)`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
