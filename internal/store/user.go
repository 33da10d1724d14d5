package store

import (
	"context"
	"fmt"

	"conecta-joven/internal/database"
	"conecta-joven/internal/model"
)

const userColumns = `id, name, email, password_hash, role, is_admin, last_login_at, created_at`

func scanUser(row interface{ Scan(dest ...any) error }, u *model.User) error {
	return row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.IsAdmin,
		&u.LastLoginAt,
		&u.CreatedAt,
	)
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users WHERE email = $1`,
		email,
	)
	u := &model.User{}
	if err := scanUser(row, u); err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

// CreateUser 新增使用者；email 重複時回傳包裝過的 ErrDuplicate
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, role, is_admin)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.IsAdmin,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("CreateUser: %w", ErrDuplicate)
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

// EnsureUser 以 email 為鍵冪等建立使用者並回傳其 ID
// 已存在時不覆寫名稱與密碼，只會把 is_admin 提升為 true
func EnsureUser(ctx context.Context, db database.DB, u *model.User) (int, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, role, is_admin)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (email) DO UPDATE SET is_admin = users.is_admin OR EXCLUDED.is_admin
		 RETURNING id`,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.IsAdmin,
	)
	var id int
	if err := row.Scan(&id); err != nil {
		return 0, fmt.Errorf("EnsureUser: %w", err)
	}
	return id, nil
}

func TouchLastLogin(ctx context.Context, db database.DB, userID int) error {
	_, err := db.Exec(ctx,
		`UPDATE users SET last_login_at = now() WHERE id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("TouchLastLogin: %w", err)
	}
	return nil
}
