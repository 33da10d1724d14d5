package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"conecta-joven/internal/database"
	"conecta-joven/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestUserStore(t *testing.T) {
	now := time.Now().UTC()
	userRow := []any{7, "Alice", "alice@example.com", "hash123", model.RoleStudent, true, (*time.Time)(nil), now}

	t.Run("GetUserByEmail success", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				gotArgs = args
				return &fakeRow{vals: userRow}
			},
		}
		u, err := GetUserByEmail(context.Background(), db, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, []any{"alice@example.com"}, gotArgs)
		require.Equal(t, 7, u.ID)
		require.Equal(t, "hash123", u.PasswordHash)
		require.Equal(t, model.RoleStudent, u.Role)
		require.True(t, u.IsAdmin)
		require.Nil(t, u.LastLoginAt)
	})

	t.Run("GetUserByEmail not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{err: pgx.ErrNoRows}
			},
		}
		u, err := GetUserByEmail(context.Background(), db, "bob@example.com")
		require.ErrorIs(t, err, pgx.ErrNoRows)
		require.Nil(t, u)
	})

	t.Run("CreateUser success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, "bob@example.com", args[1])
				require.Equal(t, model.RoleStudent, args[3])
				return &fakeRow{vals: []any{42, now}}
			},
		}
		created, err := CreateUser(context.Background(), db, &model.User{Name: "Bob", Email: "bob@example.com", PasswordHash: "h", Role: model.RoleStudent})
		require.NoError(t, err)
		require.Equal(t, 42, created.ID)
		require.Equal(t, now, created.CreatedAt)
	})

	t.Run("CreateUser duplicate email", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{err: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}}
			},
		}
		_, err := CreateUser(context.Background(), db, &model.User{})
		require.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("CreateUser other error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{err: errors.New("conn reset")}
			},
		}
		_, err := CreateUser(context.Background(), db, &model.User{})
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrDuplicate)
	})

	t.Run("EnsureUser", func(t *testing.T) {
		var sql string
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, s string, _ ...any) pgx.Row {
				sql = s
				return &fakeRow{vals: []any{3}}
			},
		}
		id, err := EnsureUser(context.Background(), db, &model.User{Email: "admin@conectajoven.pe", IsAdmin: true})
		require.NoError(t, err)
		require.Equal(t, 3, id)
		require.Contains(t, sql, "ON CONFLICT (email)")

		db.QueryRowFn = func(context.Context, string, ...any) pgx.Row { return &fakeRow{err: errors.New("x")} }
		_, err = EnsureUser(context.Background(), db, &model.User{})
		require.Error(t, err)
	})

	t.Run("TouchLastLogin", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				require.Equal(t, []any{7}, args)
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
		}
		require.NoError(t, TouchLastLogin(context.Background(), db, 7))

		db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, errors.New("update failed")
		}
		require.Error(t, TouchLastLogin(context.Background(), db, 7))
	})
}
