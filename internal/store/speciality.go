package store

import (
	"context"
	"fmt"

	"cafe-directory/internal/database"
	"cafe-directory/internal/model"
)

func ListSpecialities(ctx context.Context, db database.DB, cafeID int) ([]model.Speciality, error) {
	rows, err := db.Query(ctx,
		`SELECT name, cafe_id FROM specialities WHERE cafe_id = $1 ORDER BY name ASC`,
		cafeID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListSpecialities: %w", err)
	}
	defer rows.Close()

	var specialities []model.Speciality
	for rows.Next() {
		var s model.Speciality
		if err := rows.Scan(&s.Name, &s.CafeID); err != nil {
			return nil, fmt.Errorf("ListSpecialities: %w", err)
		}
		specialities = append(specialities, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListSpecialities: %w", err)
	}
	return specialities, nil
}

// SearchSpecialities returns specialities whose name contains q,
// case-insensitively. An empty q returns none: the empty-query search
// shows all cafes and no speciality matches.
func SearchSpecialities(ctx context.Context, db database.DB, q string) ([]model.Speciality, error) {
	if q == "" {
		return nil, nil
	}
	rows, err := db.Query(ctx,
		`SELECT name, cafe_id FROM specialities
		 WHERE name ILIKE '%' || $1 || '%'
		 ORDER BY name ASC`,
		q,
	)
	if err != nil {
		return nil, fmt.Errorf("SearchSpecialities: %w", err)
	}
	defer rows.Close()

	var specialities []model.Speciality
	for rows.Next() {
		var s model.Speciality
		if err := rows.Scan(&s.Name, &s.CafeID); err != nil {
			return nil, fmt.Errorf("SearchSpecialities: %w", err)
		}
		specialities = append(specialities, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("SearchSpecialities: %w", err)
	}
	return specialities, nil
}
