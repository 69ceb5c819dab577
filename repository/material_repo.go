package repository

import (
	"fmt"
	"strings"

	"ngo_discovery/db"
	"ngo_discovery/models"
)

const materialColumns = `
	m.id, m.title, COALESCE(m.description, ''), COALESCE(m.course, ''),
	COALESCE(m.author, ''), m.url, m.views_count, m.created_at, m.updated_at`

func scanMaterial(scanner interface{ Scan(...interface{}) error }) (models.Material, error) {
	var m models.Material
	err := scanner.Scan(
		&m.ID, &m.Title, &m.Description, &m.Course,
		&m.Author, &m.URL, &m.ViewsCount, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

func queryMaterials(query string, args ...interface{}) ([]models.Material, error) {
	rows, err := db.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	materials := make([]models.Material, 0)
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, err
		}
		materials = append(materials, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return attachTags(materials)
}

// attachTags hydrates the tag lists of the given materials with one query.
func attachTags(materials []models.Material) ([]models.Material, error) {
	if len(materials) == 0 {
		return materials, nil
	}

	placeholders := make([]string, len(materials))
	args := make([]interface{}, len(materials))
	index := make(map[int64]int, len(materials))
	for i := range materials {
		placeholders[i] = "?"
		args[i] = materials[i].ID
		index[materials[i].ID] = i
		materials[i].Tags = make([]models.Tag, 0)
	}

	rows, err := db.DB.Query(fmt.Sprintf(`
		SELECT mt.material_id, t.id, t.name, t.slug
		FROM material_tags mt
		JOIN tags t ON t.id = mt.tag_id
		WHERE mt.material_id IN (%s)
		ORDER BY t.name`, strings.Join(placeholders, ",")), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var materialID int64
		var tag models.Tag
		if err := rows.Scan(&materialID, &tag.ID, &tag.Name, &tag.Slug); err != nil {
			return nil, err
		}
		if i, ok := index[materialID]; ok {
			materials[i].Tags = append(materials[i].Tags, tag)
		}
	}
	return materials, rows.Err()
}

// ListMaterials returns knowledge-base materials, newest first, with optional
// tag slug and text query filters.
func ListMaterials(tagSlug, q string) ([]models.Material, error) {
	query := `
		SELECT` + materialColumns + `
		FROM materials m`
	args := []interface{}{}

	if tagSlug = strings.TrimSpace(tagSlug); tagSlug != "" {
		query += `
		JOIN material_tags mt ON mt.material_id = m.id
		JOIN tags t ON t.id = mt.tag_id AND t.slug = ?`
		args = append(args, tagSlug)
	}
	if q = strings.TrimSpace(q); q != "" {
		pattern := "%" + q + "%"
		query += `
		WHERE (m.title LIKE ? OR m.description LIKE ? OR m.author LIKE ?)`
		args = append(args, pattern, pattern, pattern)
	}
	query += ` ORDER BY m.created_at DESC, m.id DESC`

	return queryMaterials(query, args...)
}

// GetMaterial returns a single material by id, tags included.
func GetMaterial(id int64) (*models.Material, error) {
	row := db.DB.QueryRow(`
		SELECT`+materialColumns+`
		FROM materials m
		WHERE m.id = ?`, id)

	m, err := scanMaterial(row)
	if err != nil {
		return nil, err
	}
	hydrated, err := attachTags([]models.Material{m})
	if err != nil {
		return nil, err
	}
	return &hydrated[0], nil
}

// IncrementMaterialViews bumps the view counter.
func IncrementMaterialViews(id int64) error {
	_, err := db.DB.Exec(`UPDATE materials SET views_count = views_count + 1 WHERE id = ?`, id)
	return err
}

// ListTags returns all material tags, name ascending.
func ListTags() ([]models.Tag, error) {
	rows, err := db.DB.Query(`SELECT id, name, slug FROM tags ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make([]models.Tag, 0)
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}
