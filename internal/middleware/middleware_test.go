package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"conecta-joven/internal/model"
	"conecta-joven/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type fakeLoader struct {
	sess *model.Session
	err  error
	got  string
}

func (f *fakeLoader) Load(_ context.Context, token string) (*model.Session, error) {
	f.got = token
	return f.sess, f.err
}

func newContext(cookie string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func requireCleared(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	res := rec.Result()
	require.Len(t, res.Cookies(), 1)
	ck := res.Cookies()[0]
	require.Equal(t, SessionCookieName, ck.Name)
	require.Empty(t, ck.Value)
	require.Equal(t, -1, ck.MaxAge)
}

func TestRequireAuth(t *testing.T) {
	t.Run("valid session", func(t *testing.T) {
		loader := &fakeLoader{sess: &model.Session{UserID: 2, Name: "Ana"}}
		ctx, rec := newContext("tok")
		called := false
		h := RequireAuth(loader, false)(func(c echo.Context) error {
			called = true
			sess, ok := SessionFrom(c)
			require.True(t, ok)
			require.Equal(t, 2, sess.UserID)
			return c.String(http.StatusOK, "ok")
		})
		require.NoError(t, h(ctx))
		require.True(t, called)
		require.Equal(t, "tok", loader.got)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing cookie", func(t *testing.T) {
		ctx, rec := newContext("")
		called := false
		h := RequireAuth(&fakeLoader{}, false)(func(echo.Context) error { called = true; return nil })
		require.NoError(t, h(ctx))
		require.False(t, called)
		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, LoginPath, rec.Header().Get(echo.HeaderLocation))
		requireCleared(t, rec)
	})

	t.Run("revoked session", func(t *testing.T) {
		ctx, rec := newContext("tok")
		called := false
		h := RequireAuth(&fakeLoader{err: service.ErrSessionInvalid}, false)(func(echo.Context) error { called = true; return nil })
		require.NoError(t, h(ctx))
		require.False(t, called)
		require.Equal(t, http.StatusSeeOther, rec.Code)
		requireCleared(t, rec)
	})

	t.Run("store failure", func(t *testing.T) {
		ctx, rec := newContext("tok")
		h := RequireAuth(&fakeLoader{err: errors.New("redis down")}, false)(func(echo.Context) error { return nil })
		require.NoError(t, h(ctx))
		require.Equal(t, http.StatusSeeOther, rec.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	// admin ok
	ctx, rec := newContext("")
	ctx.Set(ContextSessionKey, &model.Session{UserID: 3, IsAdmin: true})
	called := false
	err := RequireAdmin(func(c echo.Context) error { called = true; return c.String(http.StatusOK, "admin") })(ctx)
	require.NoError(t, err)
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	// non-admin
	ctx, rec = newContext("")
	ctx.Set(ContextSessionKey, &model.Session{UserID: 4})
	called = false
	err = RequireAdmin(func(echo.Context) error { called = true; return nil })(ctx)
	require.NoError(t, err)
	require.False(t, called)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.JSONEq(t, `{"message":"admin privileges required","level":"warning"}`, rec.Body.String())

	// no session at all
	ctx, rec = newContext("")
	err = RequireAdmin(func(echo.Context) error { called = true; return nil })(ctx)
	require.NoError(t, err)
	require.False(t, called)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSessionCookie(t *testing.T) {
	ctx, rec := newContext("")
	SetSessionCookie(ctx, "abc", 24*time.Hour, true)
	ck := rec.Result().Cookies()[0]
	require.Equal(t, "abc", ck.Value)
	require.Equal(t, "/", ck.Path)
	require.True(t, ck.HttpOnly)
	require.True(t, ck.Secure)
	require.Equal(t, http.SameSiteLaxMode, ck.SameSite)
	require.Equal(t, 86400, ck.MaxAge)

	ctx, rec = newContext("")
	ClearSessionCookie(ctx, false)
	requireCleared(t, rec)
}
