package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"cafe-directory/internal/database"
)

type authRow struct {
	id       int
	username string
	hash     string
	err      error
}

func (r authRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int) = r.id
	*dest[1].(*string) = r.username
	*dest[2].(*string) = r.username + "@example.com"
	*dest[3].(*string) = "First"
	*dest[4].(*string) = "Last"
	*dest[5].(*string) = ""
	*dest[6].(*string) = "/static/images/default-pic.jpg"
	*dest[7].(*bool) = false
	*dest[8].(*string) = r.hash
	return nil
}

func TestAuthenticate(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
				require.Equal(t, []any{"alice"}, args)
				return authRow{id: 1, username: "alice", hash: hash}
			},
		}
		user, err := Authenticate(context.Background(), db, "alice", "s3cret")
		require.NoError(t, err)
		require.NotNil(t, user)
		require.Equal(t, 1, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
				return authRow{id: 1, username: "alice", hash: hash}
			},
		}
		user, err := Authenticate(context.Background(), db, "alice", "nope")
		require.NoError(t, err)
		require.Nil(t, user)
	})

	t.Run("unknown user", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
				return authRow{err: pgx.ErrNoRows}
			},
		}
		user, err := Authenticate(context.Background(), db, "ghost", "s3cret")
		require.NoError(t, err)
		require.Nil(t, user)
	})

	t.Run("storage fault propagates", func(t *testing.T) {
		boom := errors.New("boom")
		db := &database.FakeDB{
			QueryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
				return authRow{err: boom}
			},
		}
		_, err := Authenticate(context.Background(), db, "alice", "s3cret")
		require.ErrorIs(t, err, boom)
	})
}
