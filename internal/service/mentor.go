package service

import (
	"context"
	"errors"
	"strings"

	"conecta-joven/internal/database"
	"conecta-joven/internal/model"
	"conecta-joven/internal/store"
)

var createMentorPrereg = store.CreateMentorPrereg

// PreRegisterMentor 登記導師意願，同一 email 只能登記一次
func PreRegisterMentor(ctx context.Context, db database.DB, name, email string) (*model.MentorPrereg, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" || email == "" {
		return nil, newError(ErrValidation, "name and email are required")
	}

	m, err := createMentorPrereg(ctx, db, &model.MentorPrereg{Name: name, Email: email})
	if errors.Is(err, store.ErrDuplicate) {
		return nil, newError(ErrConflict, "that email has already been pre-registered")
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}
