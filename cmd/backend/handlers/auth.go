package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/hairizuanbinnoorazman/testtrack/logger"
	"github.com/hairizuanbinnoorazman/testtrack/session"
	"github.com/hairizuanbinnoorazman/testtrack/user"
)

// AuthHandler handles authentication-related requests.
type AuthHandler struct {
	userStore      user.Store
	sessionManager *session.Manager
	secureCookie   *securecookie.SecureCookie
	cookieName     string
	cookieSecure   bool
	logger         logger.Logger
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(
	userStore user.Store,
	sessionManager *session.Manager,
	cookieSecret string,
	cookieName string,
	cookieSecure bool,
	log logger.Logger,
) *AuthHandler {
	return &AuthHandler{
		userStore:      userStore,
		sessionManager: sessionManager,
		secureCookie:   securecookie.New([]byte(cookieSecret), nil),
		cookieName:     cookieName,
		cookieSecure:   cookieSecure,
		logger:         log,
	}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles user registration requests. New users get the internal
// role; admins promote or demote through the user endpoints.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	newUser := &user.User{
		Email:    req.Email,
		Name:     req.Name,
		Role:     user.RoleInternal,
		IsActive: true,
	}

	if err := newUser.SetPassword(req.Password); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.userStore.Create(r.Context(), newUser); err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			respondError(w, http.StatusConflict, "email already exists")
			return
		}
		if errors.Is(err, user.ErrInvalidEmail) || errors.Is(err, user.ErrInvalidName) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error(r.Context(), "failed to create user", map[string]interface{}{
			"error": err.Error(),
			"email": req.Email,
		})
		respondError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	sess, err := h.sessionManager.Create(newUser)
	if err != nil {
		h.logger.Error(r.Context(), "failed to create session", map[string]interface{}{
			"error":   err.Error(),
			"user_id": newUser.ID.String(),
		})
		respondError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	h.setSessionCookie(w, sess.ID)

	h.logger.Info(r.Context(), "user registered", map[string]interface{}{
		"user_id": newUser.ID.String(),
		"email":   newUser.Email,
	})

	respondJSON(w, http.StatusCreated, newUser)
}

// Login handles user login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	if !u.CheckPassword(req.Password) {
		respondError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	sess, err := h.sessionManager.Create(u)
	if err != nil {
		h.logger.Error(r.Context(), "failed to create session", map[string]interface{}{
			"error":   err.Error(),
			"user_id": u.ID.String(),
		})
		respondError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	h.setSessionCookie(w, sess.ID)

	h.logger.Info(r.Context(), "user logged in", map[string]interface{}{
		"user_id": u.ID.String(),
	})

	respondJSON(w, http.StatusOK, u)
}

// Logout handles user logout requests.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(h.cookieName)
	if err == nil {
		var sessionID string
		if err := h.secureCookie.Decode(h.cookieName, cookie.Value, &sessionID); err == nil {
			h.sessionManager.Delete(sessionID)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
	})

	respondSuccess(w, "logged out")
}

// setSessionCookie signs the session ID before writing the cookie so a
// tampered cookie fails decoding in the middleware.
func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, sessionID string) {
	encoded, err := h.secureCookie.Encode(h.cookieName, sessionID)
	if err != nil {
		h.logger.Error(context.Background(), "failed to encode session cookie", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
