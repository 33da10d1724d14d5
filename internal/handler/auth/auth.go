package auth

import (
	"time"

	"conecta-joven/internal/service"
)

// 供測試覆寫
var (
	login             = service.Login
	recordLogin       = service.RecordLogin
	register          = service.Register
	preRegisterMentor = service.PreRegisterMentor

	// recordLoginTimeout 背景更新最後登入時間的上限
	recordLoginTimeout = 5 * time.Second
)
