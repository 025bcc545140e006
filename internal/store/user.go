package store

import (
	"context"
	"fmt"

	"cafe-directory/internal/database"
	"cafe-directory/internal/model"
)

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, username, email, first_name, last_name, COALESCE(description, ''), image_url, admin, password
		 FROM users WHERE id = $1`,
		userID,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.FirstName,
		&u.LastName,
		&u.Description,
		&u.ImageURL,
		&u.Admin,
		&u.Password,
	); err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("GetUserByID: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

func GetUserByUsername(ctx context.Context, db database.DB, username string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, username, email, first_name, last_name, COALESCE(description, ''), image_url, admin, password
		 FROM users WHERE username = $1`,
		username,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.FirstName,
		&u.LastName,
		&u.Description,
		&u.ImageURL,
		&u.Admin,
		&u.Password,
	); err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("GetUserByUsername: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetUserByUsername: %w", err)
	}
	return u, nil
}

// CreateUser inserts u and fills in its generated id. A username or email
// collision surfaces as ErrDuplicate.
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	if u.ImageURL == "" {
		u.ImageURL = model.DefaultUserImageURL
	}
	row := db.QueryRow(ctx,
		`INSERT INTO users (username, email, first_name, last_name, description, image_url, admin, password)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		u.Username,
		u.Email,
		u.FirstName,
		u.LastName,
		u.Description,
		u.ImageURL,
		u.Admin,
		u.Password,
	)
	if err := row.Scan(&u.ID); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("CreateUser: %w", ErrDuplicate)
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

// UpdateUserProfile overwrites the mutable profile fields in place. The
// password and admin flag are untouched.
func UpdateUserProfile(ctx context.Context, db database.DB, u *model.User) error {
	if u.ImageURL == "" {
		u.ImageURL = model.DefaultUserImageURL
	}
	_, err := db.Exec(ctx,
		`UPDATE users SET first_name = $1, last_name = $2, description = $3, email = $4, image_url = $5
		 WHERE id = $6`,
		u.FirstName,
		u.LastName,
		u.Description,
		u.Email,
		u.ImageURL,
		u.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("UpdateUserProfile: %w", ErrDuplicate)
		}
		return fmt.Errorf("UpdateUserProfile: %w", err)
	}
	return nil
}
