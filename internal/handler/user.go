package handler

import (
	"net/http"

	"github.com/taskdeck/taskdeck-go/internal/middleware"
	"github.com/taskdeck/taskdeck-go/internal/model"
	"github.com/taskdeck/taskdeck-go/internal/service"
)

// UserHandler handles HTTP requests for account operations.
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// HandleSignup handles POST /users/signup requests.
func (h *UserHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req model.SignupRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	respond(w, http.StatusOK, "signup successful", user.ToResponse())
}

// HandleLogin handles POST /users/login requests. The issued token is the
// response payload; clients send it back in the Authorization header.
func (h *UserHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, err := h.service.Login(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	respond(w, http.StatusOK, "login successful", token)
}

// HandleMe handles GET /users/me requests.
func (h *UserHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeErrorStatus(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.service.Me(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	respond(w, http.StatusOK, "user info retrieved", user.ToResponse())
}

// HandleModifyMe handles PUT /users/me requests.
func (h *UserHandler) HandleModifyMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeErrorStatus(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req model.ModifyUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.service.Modify(r.Context(), userID, req)
	if err != nil {
		writeError(w, err)
		return
	}

	respond(w, http.StatusOK, "user info updated", user.ToResponse())
}

// HandleDeleteMe handles DELETE /users/me requests. The body carries the
// current password; the deleted account is echoed back.
func (h *UserHandler) HandleDeleteMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeErrorStatus(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req model.PasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.service.Delete(r.Context(), userID, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	respond(w, http.StatusOK, "user deleted", user.ToResponse())
}
