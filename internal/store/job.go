package store

import (
	"context"
	"fmt"

	"conecta-joven/internal/database"
	"conecta-joven/internal/model"

	"github.com/jackc/pgx/v5"
)

const jobColumns = `id, title, company, link, description, created_by, created_at`

func scanJob(row interface{ Scan(dest ...any) error }, j *model.Job) error {
	return row.Scan(
		&j.ID,
		&j.Title,
		&j.Company,
		&j.Link,
		&j.Description,
		&j.CreatedBy,
		&j.CreatedAt,
	)
}

func collectJobs(rows pgx.Rows) ([]model.Job, error) {
	defer rows.Close()
	jobs := []model.Job{}
	for rows.Next() {
		var j model.Job
		if err := scanJob(rows, &j); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return jobs, nil
}

// ListJobs 依 id 由新到舊列出職缺；query 非空時以標題或公司做不分大小寫的子字串比對
func ListJobs(ctx context.Context, db database.DB, query string) ([]model.Job, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if query == "" {
		rows, err = db.Query(ctx,
			`SELECT `+jobColumns+` FROM jobs ORDER BY id DESC`,
		)
	} else {
		rows, err = db.Query(ctx,
			`SELECT `+jobColumns+` FROM jobs
			 WHERE title ILIKE $1 ESCAPE '\' OR company ILIKE $1 ESCAPE '\'
			 ORDER BY id DESC`,
			likePattern(query),
		)
	}
	if err != nil {
		return nil, fmt.Errorf("ListJobs: %w", err)
	}
	jobs, err := collectJobs(rows)
	if err != nil {
		return nil, fmt.Errorf("ListJobs: %w", err)
	}
	return jobs, nil
}

func CreateJob(ctx context.Context, db database.DB, j *model.Job) (*model.Job, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO jobs (title, company, link, description, created_by)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		j.Title,
		j.Company,
		j.Link,
		j.Description,
		j.CreatedBy,
	)
	if err := row.Scan(&j.ID, &j.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateJob: %w", err)
	}
	return j, nil
}

// EnsureJob 只在相同 (title, company) 不存在時新增，回傳是否有寫入
func EnsureJob(ctx context.Context, db database.DB, j *model.Job) (bool, error) {
	tag, err := db.Exec(ctx,
		`INSERT INTO jobs (title, company, link, description, created_by)
		 SELECT $1::text, $2::text, $3::text, $4::text, $5::integer
		 WHERE NOT EXISTS (SELECT 1 FROM jobs WHERE title = $1 AND company = $2)`,
		j.Title,
		j.Company,
		j.Link,
		j.Description,
		j.CreatedBy,
	)
	if err != nil {
		return false, fmt.Errorf("EnsureJob: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteJob 刪除職缺；id 不存在時不視為錯誤
func DeleteJob(ctx context.Context, db database.DB, id int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM jobs WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("DeleteJob: %w", err)
	}
	return nil
}
