package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"conecta-joven/internal/database"
	"conecta-joven/internal/model"
	"conecta-joven/internal/store"

	"github.com/jackc/pgx/v5"
)

// 供測試覆寫
var (
	createUser     = store.CreateUser
	getUserByEmail = store.GetUserByEmail
	touchLastLogin = store.TouchLastLogin
)

// NormalizeEmail 去除前後空白並轉小寫
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register 建立學生帳號，角色一律為 Student
func Register(ctx context.Context, db database.DB, name, email, password string) (int, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return 0, newError(ErrValidation, "name, email and password are required")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	u, err := createUser(ctx, db, &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleStudent,
	})
	if errors.Is(err, store.ErrDuplicate) {
		return 0, newError(ErrConflict, "email is already registered")
	}
	if err != nil {
		return 0, err
	}
	return u.ID, nil
}

// authenticateUser 以 bcrypt 比對明文密碼，成功回傳使用者
func authenticateUser(user model.User, password string) (*model.User, error) {
	if user.PasswordHash == "" {
		return nil, errors.New("invalid password")
	}
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, errors.New("invalid password")
	}
	return &user, nil
}

// Login 驗證帳密並回傳 session 內容；帳號不存在與密碼錯誤回傳相同錯誤
func Login(ctx context.Context, db database.DB, email, password string) (*model.Session, error) {
	user, err := getUserByEmail(ctx, db, NormalizeEmail(email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, newError(ErrInvalidCredentials, "invalid credentials")
	}
	if err != nil {
		return nil, err
	}

	authUser, err := authenticateUser(*user, password)
	if err != nil {
		return nil, newError(ErrInvalidCredentials, "invalid credentials")
	}

	sess := model.SessionFromUser(*authUser)
	return &sess, nil
}

// RecordLogin 更新最後登入時間
func RecordLogin(ctx context.Context, db database.DB, userID int) error {
	return touchLastLogin(ctx, db, userID)
}
