package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"conecta-joven/internal/database"
	"conecta-joven/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

// appointmentTable 模擬 appointments 表
type appointmentTable struct{ rows []model.Appointment }

func (tb *appointmentTable) install() {
	createAppointment = func(_ context.Context, _ database.DB, a *model.Appointment) (*model.Appointment, error) {
		a.ID = len(tb.rows) + 1
		tb.rows = append(tb.rows, *a)
		return a, nil
	}
	sorted := func() []model.Appointment {
		out := append([]model.Appointment{}, tb.rows...)
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Date != out[j].Date {
				return out[i].Date < out[j].Date
			}
			return out[i].Time < out[j].Time
		})
		return out
	}
	firstAppointmentByDNI = func(_ context.Context, _ database.DB, dni string) (*model.Appointment, error) {
		for _, a := range sorted() {
			if a.DNI == dni {
				return &a, nil
			}
		}
		return nil, pgx.ErrNoRows
	}
	listAppointments = func(context.Context, database.DB) ([]model.Appointment, error) {
		return sorted(), nil
	}
}

func TestScheduleThenLookup(t *testing.T) {
	t.Cleanup(restoreGlobals)
	tb := &appointmentTable{}
	tb.install()

	_, err := Schedule(context.Background(), nil, AppointmentInput{DNI: "12345678", Name: "Ana", Advisor: "Gustavo", Date: "2025-01-10", Time: "10:00"})
	require.NoError(t, err)

	got, err := LookupByDNI(context.Background(), nil, "12345678")
	require.NoError(t, err)
	require.Equal(t, "12345678", got.DNI)
	require.Equal(t, "Ana", got.Name)
	require.Equal(t, "Gustavo", got.Advisor)
	require.Equal(t, "2025-01-10", got.Date)
	require.Equal(t, "10:00", got.Time)
}

func TestScheduleAllowsDoubleBooking(t *testing.T) {
	t.Cleanup(restoreGlobals)
	tb := &appointmentTable{}
	tb.install()

	in := AppointmentInput{DNI: "1", Name: "Ana", Advisor: "Gustavo", Date: "2025-01-10", Time: "10:00"}
	_, err := Schedule(context.Background(), nil, in)
	require.NoError(t, err)
	in.DNI = "2"
	_, err = Schedule(context.Background(), nil, in)
	require.NoError(t, err)
	require.Len(t, tb.rows, 2)
}

func TestScheduleValidation(t *testing.T) {
	t.Cleanup(restoreGlobals)
	tb := &appointmentTable{}
	tb.install()

	full := AppointmentInput{DNI: "1", Name: "Ana", Advisor: "Gustavo", Date: "2025-01-10", Time: "10:00"}
	blanks := []func(*AppointmentInput){
		func(in *AppointmentInput) { in.DNI = "" },
		func(in *AppointmentInput) { in.Name = "  " },
		func(in *AppointmentInput) { in.Advisor = "" },
		func(in *AppointmentInput) { in.Date = "" },
		func(in *AppointmentInput) { in.Time = "" },
	}
	for _, blank := range blanks {
		in := full
		blank(&in)
		_, err := Schedule(context.Background(), nil, in)
		require.ErrorIs(t, err, ErrValidation)
	}
	require.Empty(t, tb.rows)
}

func TestLookupByDNIEarliestAndMisses(t *testing.T) {
	t.Cleanup(restoreGlobals)
	tb := &appointmentTable{}
	tb.install()

	for _, in := range []AppointmentInput{
		{DNI: "9", Name: "Ana", Advisor: "Elvis", Date: "2025-02-01", Time: "09:00"},
		{DNI: "9", Name: "Ana", Advisor: "Gustavo", Date: "2025-01-10", Time: "16:00"},
		{DNI: "9", Name: "Ana", Advisor: "Zayuri", Date: "2025-01-10", Time: "10:00"},
	} {
		_, err := Schedule(context.Background(), nil, in)
		require.NoError(t, err)
	}
	got, err := LookupByDNI(context.Background(), nil, " 9 ")
	require.NoError(t, err)
	require.Equal(t, "Zayuri", got.Advisor)

	_, err = LookupByDNI(context.Background(), nil, "00000000")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = LookupByDNI(context.Background(), nil, "")
	require.ErrorIs(t, err, ErrValidation)

	firstAppointmentByDNI = func(context.Context, database.DB, string) (*model.Appointment, error) {
		return nil, errors.New("db down")
	}
	_, err = LookupByDNI(context.Background(), nil, "9")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}

func TestListAllAppointments(t *testing.T) {
	t.Cleanup(restoreGlobals)
	tb := &appointmentTable{}
	tb.install()
	_, _ = Schedule(context.Background(), nil, AppointmentInput{DNI: "1", Name: "B", Advisor: "Elvis", Date: "2025-03-01", Time: "10:00"})
	_, _ = Schedule(context.Background(), nil, AppointmentInput{DNI: "2", Name: "A", Advisor: "Elvis", Date: "2025-01-01", Time: "10:00"})

	_, err := ListAllAppointments(context.Background(), nil, student)
	require.ErrorIs(t, err, ErrForbidden)

	list, err := ListAllAppointments(context.Background(), nil, admin)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "2025-01-01", list[0].Date)
}
