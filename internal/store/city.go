package store

import (
	"context"
	"fmt"

	"cafe-directory/internal/database"
	"cafe-directory/internal/model"
)

// ListCities returns the reference city set for the cafe form's select box.
func ListCities(ctx context.Context, db database.DB) ([]model.City, error) {
	rows, err := db.Query(ctx,
		`SELECT code, name, state FROM cities ORDER BY name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListCities: %w", err)
	}
	defer rows.Close()

	var cities []model.City
	for rows.Next() {
		var c model.City
		if err := rows.Scan(&c.Code, &c.Name, &c.State); err != nil {
			return nil, fmt.Errorf("ListCities: %w", err)
		}
		cities = append(cities, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListCities: %w", err)
	}
	return cities, nil
}
