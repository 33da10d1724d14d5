// File: internal/model/user.go
package model

import "time"

// 使用者角色
const (
	RoleStudent = "Student"
	RoleMentor  = "Mentor"
)

type User struct {
	ID           int        `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Role         string     `db:"role" json:"role"`
	IsAdmin      bool       `db:"is_admin" json:"is_admin"`
	LastLoginAt  *time.Time `db:"last_login_at" json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}
