package store

import (
	"context"
	"fmt"

	"conecta-joven/internal/database"
	"conecta-joven/internal/model"
)

// CreateMentorPrereg 新增導師預先登記；email 重複時回傳包裝過的 ErrDuplicate
func CreateMentorPrereg(ctx context.Context, db database.DB, m *model.MentorPrereg) (*model.MentorPrereg, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO mentor_prereg (name, email)
		 VALUES ($1, $2)
		 RETURNING id, status, created_at`,
		m.Name,
		m.Email,
	)
	if err := row.Scan(&m.ID, &m.Status, &m.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("CreateMentorPrereg: %w", ErrDuplicate)
		}
		return nil, fmt.Errorf("CreateMentorPrereg: %w", err)
	}
	return m, nil
}
