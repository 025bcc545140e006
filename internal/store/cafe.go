package store

import (
	"context"
	"fmt"

	"cafe-directory/internal/database"
	"cafe-directory/internal/model"
)

const cafeColumns = `c.id, c.name, c.description, c.url, c.address, c.city_code, c.image_url,
	   ci.code, ci.name, ci.state`

func scanCafe(row interface{ Scan(dest ...any) error }) (*model.Cafe, error) {
	c := &model.Cafe{City: &model.City{}}
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.URL,
		&c.Address,
		&c.CityCode,
		&c.ImageURL,
		&c.City.Code,
		&c.City.Name,
		&c.City.State,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListCafes returns every cafe ordered by name ascending, city joined.
func ListCafes(ctx context.Context, db database.DB) ([]*model.Cafe, error) {
	rows, err := db.Query(ctx,
		`SELECT `+cafeColumns+`
		 FROM cafes c JOIN cities ci ON ci.code = c.city_code
		 ORDER BY c.name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListCafes: %w", err)
	}
	defer rows.Close()

	var cafes []*model.Cafe
	for rows.Next() {
		c, err := scanCafe(rows)
		if err != nil {
			return nil, fmt.Errorf("ListCafes: %w", err)
		}
		cafes = append(cafes, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListCafes: %w", err)
	}
	return cafes, nil
}

func GetCafe(ctx context.Context, db database.DB, cafeID int) (*model.Cafe, error) {
	row := db.QueryRow(ctx,
		`SELECT `+cafeColumns+`
		 FROM cafes c JOIN cities ci ON ci.code = c.city_code
		 WHERE c.id = $1`,
		cafeID,
	)
	c, err := scanCafe(row)
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("GetCafe: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetCafe: %w", err)
	}
	return c, nil
}

// SearchCafes returns cafes whose name contains q, case-insensitively.
// An empty q matches every cafe.
func SearchCafes(ctx context.Context, db database.DB, q string) ([]*model.Cafe, error) {
	rows, err := db.Query(ctx,
		`SELECT `+cafeColumns+`
		 FROM cafes c JOIN cities ci ON ci.code = c.city_code
		 WHERE c.name ILIKE '%' || $1 || '%'
		 ORDER BY c.name ASC`,
		q,
	)
	if err != nil {
		return nil, fmt.Errorf("SearchCafes: %w", err)
	}
	defer rows.Close()

	var cafes []*model.Cafe
	for rows.Next() {
		c, err := scanCafe(rows)
		if err != nil {
			return nil, fmt.Errorf("SearchCafes: %w", err)
		}
		cafes = append(cafes, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("SearchCafes: %w", err)
	}
	return cafes, nil
}

// CreateCafe inserts the cafe and, when speciality is non-empty, its single
// speciality row, in one transaction. The generated id is filled into c.
func CreateCafe(ctx context.Context, db database.DB, c *model.Cafe, speciality string) (*model.Cafe, error) {
	if c.ImageURL == "" {
		c.ImageURL = model.DefaultCafeImageURL
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("CreateCafe: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx,
		`INSERT INTO cafes (name, description, url, address, city_code, image_url)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		c.Name,
		c.Description,
		c.URL,
		c.Address,
		c.CityCode,
		c.ImageURL,
	)
	if err := row.Scan(&c.ID); err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("CreateCafe: city %q: %w", c.CityCode, ErrNotFound)
		}
		return nil, fmt.Errorf("CreateCafe: %w", err)
	}

	if speciality != "" {
		if _, err := tx.Exec(ctx,
			`INSERT INTO specialities (name, cafe_id) VALUES ($1, $2)`,
			speciality, c.ID,
		); err != nil {
			if isUniqueViolation(err) {
				return nil, fmt.Errorf("CreateCafe: speciality: %w", ErrDuplicate)
			}
			return nil, fmt.Errorf("CreateCafe: speciality: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("CreateCafe: %w", err)
	}
	return c, nil
}

// UpdateCafe overwrites the cafe's mutable fields and wholesale-replaces its
// speciality set: all prior rows are deleted, then a single row is inserted
// when speciality is non-empty. One transaction covers both steps.
func UpdateCafe(ctx context.Context, db database.DB, c *model.Cafe, speciality string) error {
	if c.ImageURL == "" {
		c.ImageURL = model.DefaultCafeImageURL
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("UpdateCafe: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE cafes SET name = $1, description = $2, url = $3, address = $4, city_code = $5, image_url = $6
		 WHERE id = $7`,
		c.Name,
		c.Description,
		c.URL,
		c.Address,
		c.CityCode,
		c.ImageURL,
		c.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("UpdateCafe: city %q: %w", c.CityCode, ErrNotFound)
		}
		return fmt.Errorf("UpdateCafe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateCafe: %w", ErrNotFound)
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM specialities WHERE cafe_id = $1`, c.ID,
	); err != nil {
		return fmt.Errorf("UpdateCafe: clear specialities: %w", err)
	}
	if speciality != "" {
		if _, err := tx.Exec(ctx,
			`INSERT INTO specialities (name, cafe_id) VALUES ($1, $2)`,
			speciality, c.ID,
		); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("UpdateCafe: speciality: %w", ErrDuplicate)
			}
			return fmt.Errorf("UpdateCafe: speciality: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("UpdateCafe: %w", err)
	}
	return nil
}

// DeleteCafe removes the cafe's likes, its specialities, and finally the cafe
// row itself, atomically. A missing cafe returns ErrNotFound.
func DeleteCafe(ctx context.Context, db database.DB, cafeID int) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("DeleteCafe: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM likes WHERE cafe_id = $1`, cafeID,
	); err != nil {
		return fmt.Errorf("DeleteCafe: likes: %w", err)
	}
	if _, err := tx.Exec(ctx,
		`DELETE FROM specialities WHERE cafe_id = $1`, cafeID,
	); err != nil {
		return fmt.Errorf("DeleteCafe: specialities: %w", err)
	}
	tag, err := tx.Exec(ctx,
		`DELETE FROM cafes WHERE id = $1`, cafeID,
	)
	if err != nil {
		return fmt.Errorf("DeleteCafe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteCafe: %w", ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("DeleteCafe: %w", err)
	}
	return nil
}
