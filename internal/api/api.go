package api

import (
	"conecta-joven/internal/catalog"
	"conecta-joven/internal/model"
)

// 提示等級，對應前端的提示樣式
const (
	LevelSuccess = "success"
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelDanger  = "danger"
)

// ErrorResponse 錯誤回應
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message string `json:"message" example:"invalid credentials"`
	Level   string `json:"level,omitempty" example:"danger"`
}

// Notice 顯示給使用者的提示訊息
type Notice struct {
	Message string `json:"message" example:"¡Bienvenido!"`
	Level   string `json:"level" example:"success"`
}

func Success(msg string) Notice { return Notice{Message: msg, Level: LevelSuccess} }

func Info(msg string) Notice { return Notice{Message: msg, Level: LevelInfo} }

// MessageResponse 只有訊息的回應
type MessageResponse struct {
	Message string `json:"message" example:"login required"`
}

type LoginRequest struct {
	Email    string `form:"email" json:"email" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

type RegisterRequest struct {
	Name     string `form:"name" json:"name" validate:"required"`
	Email    string `form:"email" json:"email" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

type MentorPreregRequest struct {
	Name  string `form:"name" json:"name" validate:"required"`
	Email string `form:"email" json:"email" validate:"required"`
}

type CreateJobRequest struct {
	Title       string `form:"title" json:"title" validate:"required"`
	Company     string `form:"company" json:"company" validate:"required"`
	Link        string `form:"link" json:"link" validate:"required"`
	Description string `form:"description" json:"description"`
}

type ScheduleRequest struct {
	DNI     string `form:"dni" json:"dni" validate:"required"`
	Name    string `form:"name" json:"name" validate:"required"`
	Advisor string `form:"advisor" json:"advisor" validate:"required"`
	Date    string `form:"date" json:"date" validate:"required"`
	Time    string `form:"time" json:"time" validate:"required"`
}

type LookupRequest struct {
	DNI string `form:"dni_lookup" json:"dni" validate:"required"`
}

// SessionResponse 登入成功後回傳的身分
type SessionResponse struct {
	Notice  Notice        `json:"notice"`
	Session model.Session `json:"session"`
}

type RegisterResponse struct {
	Notice Notice `json:"notice"`
	UserID int    `json:"user_id"`
}

type MentorPreregResponse struct {
	Success bool                `json:"success"`
	Notice  Notice              `json:"notice"`
	Prereg  *model.MentorPrereg `json:"prereg,omitempty"`
}

type HomeResponse struct {
	AppName   string         `json:"app_name"`
	MeetLink  string         `json:"meet_link"`
	Year      int            `json:"year"`
	Session   model.Session  `json:"session"`
	News      []catalog.Link `json:"news"`
	JobBoards []catalog.Link `json:"job_boards"`
}

type JobsResponse struct {
	Query string      `json:"q"`
	Jobs  []model.Job `json:"jobs"`
}

type JobResponse struct {
	Notice Notice    `json:"notice"`
	Job    model.Job `json:"job"`
}

type HistoryResponse struct {
	Applications []model.AppliedJob `json:"applications"`
}

type CoursesResponse struct {
	Categories []catalog.Category `json:"categories"`
}

// AdvisorsResponse 管理員會額外拿到所有預約
type AdvisorsResponse struct {
	MeetLink     string              `json:"meet_link"`
	Advisors     []catalog.Advisor   `json:"advisors"`
	Appointments []model.Appointment `json:"appointments,omitempty"`
}

type AppointmentResponse struct {
	Notice      Notice            `json:"notice"`
	Appointment model.Appointment `json:"appointment"`
	MeetLink    string            `json:"meet_link"`
}

type AppointmentsResponse struct {
	Appointments []model.Appointment `json:"appointments"`
}

type LookupResponse struct {
	Appointment model.Appointment `json:"appointment"`
	MeetLink    string            `json:"meet_link"`
}
