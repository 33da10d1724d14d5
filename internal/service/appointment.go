package service

import (
	"context"
	"errors"
	"strings"

	"conecta-joven/internal/database"
	"conecta-joven/internal/model"
	"conecta-joven/internal/store"

	"github.com/jackc/pgx/v5"
)

var (
	createAppointment     = store.CreateAppointment
	firstAppointmentByDNI = store.FirstAppointmentByDNI
	listAppointments      = store.ListAppointments
)

// AppointmentInput 為預約表單欄位
type AppointmentInput struct {
	DNI     string
	Name    string
	Advisor string
	Date    string
	Time    string
}

// Schedule 新增預約；同一顧問同一時段可重複預約
func Schedule(ctx context.Context, db database.DB, in AppointmentInput) (*model.Appointment, error) {
	a := &model.Appointment{
		DNI:     strings.TrimSpace(in.DNI),
		Name:    strings.TrimSpace(in.Name),
		Advisor: strings.TrimSpace(in.Advisor),
		Date:    strings.TrimSpace(in.Date),
		Time:    strings.TrimSpace(in.Time),
	}
	if a.DNI == "" || a.Name == "" || a.Advisor == "" || a.Date == "" || a.Time == "" {
		return nil, newError(ErrValidation, "all fields are required to schedule")
	}
	return createAppointment(ctx, db, a)
}

// LookupByDNI 回傳該 DNI 最早的一筆預約
func LookupByDNI(ctx context.Context, db database.DB, dni string) (*model.Appointment, error) {
	dni = strings.TrimSpace(dni)
	if dni == "" {
		return nil, newError(ErrValidation, "enter a DNI to look up")
	}
	a, err := firstAppointmentByDNI(ctx, db, dni)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, newError(ErrNotFound, "there are no appointments for that DNI")
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ListAllAppointments 僅限管理員，依日期與時間排序
func ListAllAppointments(ctx context.Context, db database.DB, actor model.Session) ([]model.Appointment, error) {
	if !actor.IsAdmin {
		return nil, newError(ErrForbidden, "admin privileges required")
	}
	return listAppointments(ctx, db)
}
