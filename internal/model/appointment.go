package model

import "time"

// Appointment 為一筆諮詢預約；Date 格式 YYYY-MM-DD，Time 格式 HH:MM
type Appointment struct {
	ID        int       `db:"id" json:"id"`
	DNI       string    `db:"dni" json:"dni"`
	Name      string    `db:"name" json:"name"`
	Advisor   string    `db:"advisor" json:"advisor"`
	Date      string    `db:"date" json:"date"`
	Time      string    `db:"time" json:"time"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
