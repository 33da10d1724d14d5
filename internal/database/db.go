package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB 為 store 需要的查詢方法加上健康檢查與關閉
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(context.Context) error
	Close()
}

var (
	_ DB = (*pgxpool.Pool)(nil)
	_ DB = (*FakeDB)(nil)
)

// FakeDB 以函式欄位模擬 DB；除 Close 外，未設定的方法被呼叫時 panic 並帶出 SQL 第一行
type FakeDB struct {
	// ExecFn 處理 INSERT/UPDATE/DELETE 等不回傳列的語句
	ExecFn func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	// QueryFn 處理列表查詢，例如職缺搜尋與全部預約
	QueryFn func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	// QueryRowFn 處理單列查詢與 RETURNING
	QueryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
	// PingFn 供 /api/ping 健康檢查
	PingFn func(ctx context.Context) error
	// CloseFn 可省略
	CloseFn func()
}

func unexpected(method, sql string) string {
	first, _, _ := strings.Cut(strings.TrimSpace(sql), "\n")
	if first == "" {
		return fmt.Sprintf("FakeDB: unexpected %s", method)
	}
	return fmt.Sprintf("FakeDB: unexpected %s: %s", method, first)
}

func (f *FakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if f.ExecFn == nil {
		panic(unexpected("Exec", sql))
	}
	return f.ExecFn(ctx, sql, args...)
}

func (f *FakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if f.QueryFn == nil {
		panic(unexpected("Query", sql))
	}
	return f.QueryFn(ctx, sql, args...)
}

func (f *FakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if f.QueryRowFn == nil {
		panic(unexpected("QueryRow", sql))
	}
	return f.QueryRowFn(ctx, sql, args...)
}

func (f *FakeDB) Ping(ctx context.Context) error {
	if f.PingFn == nil {
		panic(unexpected("Ping", ""))
	}
	return f.PingFn(ctx)
}

func (f *FakeDB) Close() {
	if f.CloseFn != nil {
		f.CloseFn()
	}
}
