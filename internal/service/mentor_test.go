package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"conecta-joven/internal/database"
	"conecta-joven/internal/model"
	"conecta-joven/internal/store"

	"github.com/stretchr/testify/require"
)

func TestPreRegisterMentor(t *testing.T) {
	t.Cleanup(restoreGlobals)
	seen := map[string]bool{}
	createMentorPrereg = func(_ context.Context, _ database.DB, m *model.MentorPrereg) (*model.MentorPrereg, error) {
		if seen[m.Email] {
			return nil, fmt.Errorf("CreateMentorPrereg: %w", store.ErrDuplicate)
		}
		seen[m.Email] = true
		m.ID = len(seen)
		m.Status = model.MentorStatusPending
		return m, nil
	}

	_, err := PreRegisterMentor(context.Background(), nil, "", "rosa@example.com")
	require.ErrorIs(t, err, ErrValidation)
	_, err = PreRegisterMentor(context.Background(), nil, "Rosa", "  ")
	require.ErrorIs(t, err, ErrValidation)

	m, err := PreRegisterMentor(context.Background(), nil, " Rosa ", "Rosa@Example.com")
	require.NoError(t, err)
	require.Equal(t, "Rosa", m.Name)
	require.Equal(t, "rosa@example.com", m.Email)
	require.Equal(t, "PENDING", m.Status)

	_, err = PreRegisterMentor(context.Background(), nil, "Rosa", "rosa@example.com")
	require.ErrorIs(t, err, ErrConflict)
	var e *Error
	require.True(t, errors.As(err, &e))
	require.Equal(t, "that email has already been pre-registered", e.Message)

	createMentorPrereg = func(context.Context, database.DB, *model.MentorPrereg) (*model.MentorPrereg, error) {
		return nil, errors.New("db down")
	}
	_, err = PreRegisterMentor(context.Background(), nil, "X", "x@example.com")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrConflict)
}
