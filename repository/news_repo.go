package repository

import (
	"strings"

	"ngo_discovery/db"
	"ngo_discovery/models"
)

const newsColumns = `
	id, title, COALESCE(snippet, ''), content, COALESCE(city, ''),
	category, status, views_count, created_at, COALESCE(published_at, created_at)`

// ListPublishedNews returns published news, newest first, optionally
// restricted to a city.
func ListPublishedNews(city string, limit int) ([]models.News, error) {
	query := `
		SELECT` + newsColumns + `
		FROM news
		WHERE status = ?`
	args := []interface{}{models.NewsStatusPublished}

	if city = strings.TrimSpace(city); city != "" {
		query += ` AND (city = ? OR city = '' OR city IS NULL)`
		args = append(args, city)
	}
	query += ` ORDER BY published_at DESC, id DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	return queryNews(query, args...)
}

// SearchPublishedNews returns published news whose title or content matches
// the query, newest first.
func SearchPublishedNews(q string) ([]models.News, error) {
	pattern := "%" + q + "%"
	return queryNews(`
		SELECT`+newsColumns+`
		FROM news
		WHERE status = ? AND (title LIKE ? OR snippet LIKE ? OR content LIKE ?)
		ORDER BY published_at DESC, id DESC`,
		models.NewsStatusPublished, pattern, pattern, pattern)
}

func queryNews(query string, args ...interface{}) ([]models.News, error) {
	rows, err := db.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.News, 0)
	for rows.Next() {
		var n models.News
		if err := rows.Scan(&n.ID, &n.Title, &n.Snippet, &n.Content, &n.City,
			&n.Category, &n.Status, &n.ViewsCount, &n.CreatedAt, &n.PublishedAt); err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}
