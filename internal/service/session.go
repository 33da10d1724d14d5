package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"conecta-joven/internal/cache"
	"conecta-joven/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrSessionInvalid 表示 cookie 無效、過期或 session 已被登出
var ErrSessionInvalid = errors.New("invalid session")

const sessionKeyPrefix = "session:"

// SessionClaims 為 session cookie 的 JWT 負載，jti 即 Redis 中的 session ID
type SessionClaims struct {
	UserID  int    `json:"uid"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// 供測試覆寫
var (
	newSessionID  = uuid.NewString
	timeNow       = time.Now
	jsonMarshal   = json.Marshal
	jsonUnmarshal = json.Unmarshal
)

// SessionStore 以 Redis 保存 session 內容，並簽發 HS256 cookie 參照它
type SessionStore struct {
	cache  cache.Cache
	secret []byte
	ttl    time.Duration
}

func NewSessionStore(c cache.Cache, secret string, ttl time.Duration) *SessionStore {
	return &SessionStore{cache: c, secret: []byte(secret), ttl: ttl}
}

// TTL 回傳 session 有效期間
func (s *SessionStore) TTL() time.Duration { return s.ttl }

func sessionKey(id string) string { return sessionKeyPrefix + id }

// Create 儲存 session 並回傳簽章後的 token
func (s *SessionStore) Create(ctx context.Context, sess model.Session) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("session secret not set")
	}

	id := newSessionID()
	data, err := jsonMarshal(sess)
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}
	if err := s.cache.Set(ctx, sessionKey(id), data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	now := timeNow()
	claims := SessionClaims{
		UserID:  sess.UserID,
		Name:    sess.Name,
		Email:   sess.Email,
		Role:    sess.Role,
		IsAdmin: sess.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Subject:   fmt.Sprint(sess.UserID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *SessionStore) parse(tokenString string, opts ...jwt.ParserOption) (*SessionClaims, error) {
	opts = append(opts, jwt.WithTimeFunc(timeNow))
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionInvalid, err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, ErrSessionInvalid
	}
	return claims, nil
}

// Load 驗證 token 並從 Redis 取回 session；已登出的 session 視為無效
func (s *SessionStore) Load(ctx context.Context, tokenString string) (*model.Session, error) {
	if len(s.secret) == 0 {
		return nil, fmt.Errorf("session secret not set")
	}
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}

	raw, err := s.cache.Get(ctx, sessionKey(claims.ID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: session revoked", ErrSessionInvalid)
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var sess model.Session
	if err := jsonUnmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

// Destroy 刪除 token 所參照的 session；過期的 token 也能登出
func (s *SessionStore) Destroy(ctx context.Context, tokenString string) error {
	claims, err := s.parse(tokenString, jwt.WithoutClaimsValidation())
	if err != nil {
		return err
	}
	if err := s.cache.Del(ctx, sessionKey(claims.ID)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
