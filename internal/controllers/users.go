package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/wurt83ow/maintracker/internal/models"
	"go.uber.org/zap"
)

// @Summary List users
// @Tags Admin
// @Produce json
// @Success 200 {array} models.User
// @Failure 403 {string} string "Forbidden"
// @Router /api/admin/users [get]
func (h *BaseController) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.storage.Users(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, users)
}

// @Summary Add user
// @Description Add a new user with a role
// @Tags Admin
// @Accept json
// @Produce json
// @Param user body models.NewUser true "User Info"
// @Success 201 {object} models.User
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Failure 500 {string} string "Internal Server Error"
// @Router /api/admin/users [post]
func (h *BaseController) AddUser(w http.ResponseWriter, r *http.Request) {
	var nu models.NewUser
	if err := json.NewDecoder(r.Body).Decode(&nu); err != nil {
		h.log.Info("cannot decode request JSON body: ", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	user, err := h.storage.CreateUser(r.Context(), nu.Username, nu.Password, nu.Role)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.log.Info("User added successfully", zap.String("user", user.Username))
	h.writeJSON(w, http.StatusCreated, user)
}

// @Summary Delete user
// @Tags Admin
// @Param username path string true "Username"
// @Success 200 {string} string "User deleted successfully"
// @Failure 403 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {string} string "Internal Server Error"
// @Router /api/admin/users/{username} [delete]
func (h *BaseController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	if err := h.storage.DeleteUser(r.Context(), username); err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	h.log.Info("User deleted successfully", zap.String("user", username))
}
