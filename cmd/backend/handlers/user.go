package handlers

import (
	"errors"
	"net/http"

	"github.com/hairizuanbinnoorazman/testtrack/logger"
	"github.com/hairizuanbinnoorazman/testtrack/user"
)

// UserHandler handles user management requests.
type UserHandler struct {
	userStore user.Store
	logger    logger.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userStore user.Store, log logger.Logger) *UserHandler {
	return &UserHandler{
		userStore: userStore,
		logger:    log,
	}
}

// UpdateUserRequest represents a user update request.
type UpdateUserRequest struct {
	Name *string    `json:"name,omitempty"`
	Role *user.Role `json:"role,omitempty"`
}

// List handles listing users with pagination.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)

	users, err := h.userStore.List(r.Context(), limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list users")
		return
	}

	respondJSON(w, http.StatusOK, NewPaginatedResponse(users, len(users), limit, offset))
}

// GetByID handles getting a single user by ID.
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDOrRespond(w, r, "id", "user")
	if !ok {
		return
	}

	u, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "user not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to get user")
		return
	}

	respondJSON(w, http.StatusOK, u)
}

// Update handles updating a user's name or role.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDOrRespond(w, r, "id", "user")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var setters []user.UpdateSetter
	if req.Name != nil {
		setters = append(setters, user.SetName(*req.Name))
	}
	if req.Role != nil {
		setters = append(setters, user.SetRole(*req.Role))
	}

	if len(setters) == 0 {
		respondError(w, http.StatusBadRequest, "no fields to update")
		return
	}

	if err := h.userStore.Update(r.Context(), id, setters...); err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "user not found")
		case errors.Is(err, user.ErrInvalidName), errors.Is(err, user.ErrInvalidRole):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "failed to update user")
		}
		return
	}

	respondSuccess(w, "user updated")
}

// Delete handles deactivating a user.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDOrRespond(w, r, "id", "user")
	if !ok {
		return
	}

	if err := h.userStore.Delete(r.Context(), id); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "user not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to delete user")
		return
	}

	respondSuccess(w, "user deleted")
}
