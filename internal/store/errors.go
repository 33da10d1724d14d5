package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicate 表示違反唯一性約束
var ErrDuplicate = errors.New("duplicate key")

// uniqueViolation 為 PostgreSQL unique_violation 錯誤碼
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// likePattern 將使用者輸入轉為 ILIKE 子字串比對，並跳脫萬用字元
func likePattern(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(q) + "%"
}
