package model

// Session 為登入後綁定在請求上的身分資訊
type Session struct {
	UserID  int    `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	IsAdmin bool   `json:"is_admin"`
}

// SessionFromUser 由使用者資料建立 Session
func SessionFromUser(u User) Session {
	return Session{
		UserID:  u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Role:    u.Role,
		IsAdmin: u.IsAdmin,
	}
}
