package store

import (
	"context"
	"fmt"

	"cafe-directory/internal/database"
	"cafe-directory/internal/model"
)

// ListLikedCafes returns the cafes a user has liked, ordered by name.
func ListLikedCafes(ctx context.Context, db database.DB, userID int) ([]*model.Cafe, error) {
	rows, err := db.Query(ctx,
		`SELECT `+cafeColumns+`
		 FROM likes l
		 JOIN cafes c ON c.id = l.cafe_id
		 JOIN cities ci ON ci.code = c.city_code
		 WHERE l.user_id = $1
		 ORDER BY c.name ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListLikedCafes: %w", err)
	}
	defer rows.Close()

	var cafes []*model.Cafe
	for rows.Next() {
		c, err := scanCafe(rows)
		if err != nil {
			return nil, fmt.Errorf("ListLikedCafes: %w", err)
		}
		cafes = append(cafes, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListLikedCafes: %w", err)
	}
	return cafes, nil
}
