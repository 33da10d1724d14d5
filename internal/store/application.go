package store

import (
	"context"
	"fmt"

	"conecta-joven/internal/database"
	"conecta-joven/internal/model"
)

// ListApplicationHistory 回傳使用者申請過的職缺，依申請時間由新到舊
func ListApplicationHistory(ctx context.Context, db database.DB, userID int) ([]model.AppliedJob, error) {
	rows, err := db.Query(ctx,
		`SELECT j.id, j.title, j.company, j.link, j.description, j.created_by, j.created_at,
		        a.created_at AS applied_at
		 FROM job_applications a
		 JOIN jobs j ON j.id = a.job_id
		 WHERE a.user_id = $1
		 ORDER BY a.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListApplicationHistory: %w", err)
	}
	defer rows.Close()

	history := []model.AppliedJob{}
	for rows.Next() {
		var a model.AppliedJob
		if err := rows.Scan(
			&a.ID,
			&a.Title,
			&a.Company,
			&a.Link,
			&a.Description,
			&a.CreatedBy,
			&a.CreatedAt,
			&a.AppliedAt,
		); err != nil {
			return nil, fmt.Errorf("ListApplicationHistory: %w", err)
		}
		history = append(history, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListApplicationHistory: %w", err)
	}
	return history, nil
}
