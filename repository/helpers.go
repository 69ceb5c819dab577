package repository

import (
	"ngo_discovery/db"
)

// queryIDs runs a query whose first column is an id and collects the results.
func queryIDs(query string, args ...interface{}) ([]int64, error) {
	rows, err := db.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// exists runs a COUNT query and reports whether any row matched.
func exists(query string, args ...interface{}) (bool, error) {
	var count int
	err := db.DB.QueryRow(query, args...).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
