package store

import (
	"context"
	"fmt"

	"conecta-joven/internal/database"
	"conecta-joven/internal/model"
)

const appointmentColumns = `id, dni, name, advisor, date, time, created_at`

func scanAppointment(row interface{ Scan(dest ...any) error }, a *model.Appointment) error {
	return row.Scan(
		&a.ID,
		&a.DNI,
		&a.Name,
		&a.Advisor,
		&a.Date,
		&a.Time,
		&a.CreatedAt,
	)
}

// CreateAppointment 一律新增，不檢查同一顧問同一時段是否已被預約
func CreateAppointment(ctx context.Context, db database.DB, a *model.Appointment) (*model.Appointment, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO appointments (dni, name, advisor, date, time)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		a.DNI,
		a.Name,
		a.Advisor,
		a.Date,
		a.Time,
	)
	if err := row.Scan(&a.ID, &a.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateAppointment: %w", err)
	}
	return a, nil
}

// FirstAppointmentByDNI 回傳該 DNI 日期時間最早的一筆預約，查無資料時包裝 pgx.ErrNoRows
func FirstAppointmentByDNI(ctx context.Context, db database.DB, dni string) (*model.Appointment, error) {
	row := db.QueryRow(ctx,
		`SELECT `+appointmentColumns+`
		 FROM appointments WHERE dni = $1
		 ORDER BY date, time
		 LIMIT 1`,
		dni,
	)
	a := &model.Appointment{}
	if err := scanAppointment(row, a); err != nil {
		return nil, fmt.Errorf("FirstAppointmentByDNI: %w", err)
	}
	return a, nil
}

func ListAppointments(ctx context.Context, db database.DB) ([]model.Appointment, error) {
	rows, err := db.Query(ctx,
		`SELECT `+appointmentColumns+` FROM appointments ORDER BY date, time`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListAppointments: %w", err)
	}
	defer rows.Close()

	list := []model.Appointment{}
	for rows.Next() {
		var a model.Appointment
		if err := scanAppointment(rows, &a); err != nil {
			return nil, fmt.Errorf("ListAppointments: %w", err)
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListAppointments: %w", err)
	}
	return list, nil
}
