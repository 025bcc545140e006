package store

import (
	"context"
	"fmt"

	"cafe-directory/internal/database"
)

func HasLiked(ctx context.Context, db database.DB, userID, cafeID int) (bool, error) {
	row := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM likes WHERE user_id = $1 AND cafe_id = $2)`,
		userID, cafeID,
	)
	var liked bool
	if err := row.Scan(&liked); err != nil {
		return false, fmt.Errorf("HasLiked: %w", err)
	}
	return liked, nil
}

// AddLike inserts the (user, cafe) like. An existing pair returns
// ErrAlreadyLiked instead of a raw uniqueness violation; an unknown cafe or
// user returns ErrNotFound.
func AddLike(ctx context.Context, db database.DB, userID, cafeID int) error {
	tag, err := db.Exec(ctx,
		`INSERT INTO likes (user_id, cafe_id) VALUES ($1, $2)
		 ON CONFLICT (user_id, cafe_id) DO NOTHING`,
		userID, cafeID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("AddLike: %w", ErrNotFound)
		}
		return fmt.Errorf("AddLike: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("AddLike: %w", ErrAlreadyLiked)
	}
	return nil
}

// RemoveLike deletes the pair if present. Unliking an un-liked cafe is a
// no-op, not an error.
func RemoveLike(ctx context.Context, db database.DB, userID, cafeID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM likes WHERE user_id = $1 AND cafe_id = $2`,
		userID, cafeID,
	)
	if err != nil {
		return fmt.Errorf("RemoveLike: %w", err)
	}
	return nil
}
