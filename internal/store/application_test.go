package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"conecta-joven/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestListApplicationHistory(t *testing.T) {
	now := time.Now().UTC()

	t.Run("rows", func(t *testing.T) {
		var gotSQL string
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, s string, args ...any) (pgx.Rows, error) {
				gotSQL = s
				require.Equal(t, []any{5}, args)
				return &fakeRows{data: [][]any{
					{2, "Soporte TI Jr.", "Tech Perú", "l", "d", intPtr(1), now.Add(-time.Hour), now},
				}}, nil
			},
		}
		history, err := ListApplicationHistory(context.Background(), db, 5)
		require.NoError(t, err)
		require.Len(t, history, 1)
		require.Equal(t, "Soporte TI Jr.", history[0].Title)
		require.Equal(t, now, history[0].AppliedAt)
		require.Contains(t, gotSQL, "JOIN jobs j ON j.id = a.job_id")
		require.Contains(t, gotSQL, "ORDER BY a.created_at DESC")
	})

	t.Run("empty", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return &fakeRows{}, nil },
		}
		history, err := ListApplicationHistory(context.Background(), db, 5)
		require.NoError(t, err)
		require.NotNil(t, history)
		require.Empty(t, history)
	})

	t.Run("errors", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return nil, errors.New("q") },
		}
		_, err := ListApplicationHistory(context.Background(), db, 5)
		require.Error(t, err)

		db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) {
			return &fakeRows{data: [][]any{{1}}, scanErr: errors.New("scan")}, nil
		}
		_, err = ListApplicationHistory(context.Background(), db, 5)
		require.Error(t, err)
	})
}
