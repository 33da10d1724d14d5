package model

import "time"

type Job struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Company     string    `db:"company" json:"company"`
	Link        string    `db:"link" json:"link"`
	Description string    `db:"description" json:"description"`
	CreatedBy   *int      `db:"created_by" json:"created_by,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// AppliedJob 是申請紀錄與職缺 join 後的結果
type AppliedJob struct {
	Job
	AppliedAt time.Time `db:"applied_at" json:"applied_at"`
}
