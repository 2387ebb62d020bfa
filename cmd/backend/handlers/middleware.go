package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/hairizuanbinnoorazman/testtrack/logger"
	"github.com/hairizuanbinnoorazman/testtrack/session"
	"github.com/hairizuanbinnoorazman/testtrack/user"
)

type contextKey string

const sessionContextKey contextKey = "session"

// GetSession retrieves the authenticated session from the request context.
func GetSession(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(sessionContextKey).(*session.Session)
	return sess, ok
}

// GetUserID retrieves the authenticated user's ID from the request context.
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	sess, ok := GetSession(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return sess.UserID, true
}

// AuthMiddleware validates the signed session cookie and attaches the
// session to the request context.
type AuthMiddleware struct {
	sessionManager *session.Manager
	secureCookie   *securecookie.SecureCookie
	cookieName     string
	logger         logger.Logger
}

// NewAuthMiddleware creates a new authentication middleware.
func NewAuthMiddleware(sessionManager *session.Manager, cookieSecret, cookieName string, log logger.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		sessionManager: sessionManager,
		secureCookie:   securecookie.New([]byte(cookieSecret), nil),
		cookieName:     cookieName,
		logger:         log,
	}
}

// Handler wraps the next handler with session validation.
func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(m.cookieName)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		var sessionID string
		if err := m.secureCookie.Decode(m.cookieName, cookie.Value, &sessionID); err != nil {
			respondError(w, http.StatusUnauthorized, "invalid session cookie")
			return
		}

		sess, err := m.sessionManager.Get(sessionID)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "invalid or expired session")
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireEditor rejects mutating requests from read-only (external) users.
// Role gating lives here in the API layer only; stores do not re-check.
func RequireEditor(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := GetSession(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if !sess.Role.CanEdit() {
			respondError(w, http.StatusForbidden, "insufficient permissions")
			return
		}
		next(w, r)
	}
}

// RequireAdmin rejects requests from non-admin users.
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := GetSession(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if sess.Role != user.RoleAdmin {
			respondError(w, http.StatusForbidden, "admin access required")
			return
		}
		next(w, r)
	}
}
