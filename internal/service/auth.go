package service

import (
	"context"
	"errors"

	"cafe-directory/internal/database"
	"cafe-directory/internal/model"
	"cafe-directory/internal/store"
)

// Authenticate looks up the user by username and compares the password
// against the stored hash. A missing user and a wrong password both return
// (nil, nil): failure is a sentinel, not an error. Storage faults other than
// not-found still propagate.
func Authenticate(ctx context.Context, db database.DB, username, password string) (*model.User, error) {
	user, err := store.GetUserByUsername(ctx, db, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := ComparePassword(user.Password, password); err != nil {
		return nil, nil
	}
	return user, nil
}
