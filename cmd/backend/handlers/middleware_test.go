package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/hairizuanbinnoorazman/testtrack/logger"
	"github.com/hairizuanbinnoorazman/testtrack/session"
	"github.com/hairizuanbinnoorazman/testtrack/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookieSecret = "0123456789abcdef0123456789abcdef"

func requestWithRole(role user.Role) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	sess := &session.Session{ID: "test", Role: role}
	ctx := context.WithValue(req.Context(), sessionContextKey, sess)
	return req.WithContext(ctx)
}

func TestRequireEditor(t *testing.T) {
	tests := []struct {
		name       string
		role       user.Role
		wantStatus int
	}{
		{"admin passes", user.RoleAdmin, http.StatusOK},
		{"internal passes", user.RoleInternal, http.StatusOK},
		{"external rejected", user.RoleExternal, http.StatusForbidden},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler := RequireEditor(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			handler(w, requestWithRole(tc.role))
			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}

	t.Run("no session rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler := RequireEditor(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		handler(w, httptest.NewRequest(http.MethodPost, "/test", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name       string
		role       user.Role
		wantStatus int
	}{
		{"admin passes", user.RoleAdmin, http.StatusOK},
		{"internal rejected", user.RoleInternal, http.StatusForbidden},
		{"external rejected", user.RoleExternal, http.StatusForbidden},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler := RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			handler(w, requestWithRole(tc.role))
			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}

func TestAuthMiddleware_Handler(t *testing.T) {
	log := logger.NewTestLogger()
	manager := session.NewManager(time.Hour, log)
	middleware := NewAuthMiddleware(manager, testCookieSecret, "session_id", log)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := GetSession(r.Context())
		assert.True(t, ok)
		w.WriteHeader(http.StatusOK)
	})

	encodeCookie := func(t *testing.T, sessionID string) *http.Cookie {
		sc := securecookie.New([]byte(testCookieSecret), nil)
		encoded, err := sc.Encode("session_id", sessionID)
		require.NoError(t, err)
		return &http.Cookie{Name: "session_id", Value: encoded}
	}

	t.Run("valid cookie passes through", func(t *testing.T) {
		u := &user.User{Email: "mw@example.com", Name: "Middleware", Role: user.RoleInternal}
		sess, err := manager.Create(u)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.AddCookie(encodeCookie(t, sess.ID))
		w := httptest.NewRecorder()

		middleware.Handler(next).ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing cookie rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		middleware.Handler(next).ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("tampered cookie rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.AddCookie(&http.Cookie{Name: "session_id", Value: "not-signed"})
		w := httptest.NewRecorder()

		middleware.Handler(next).ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown session rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.AddCookie(encodeCookie(t, "deadbeef"))
		w := httptest.NewRecorder()

		middleware.Handler(next).ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
