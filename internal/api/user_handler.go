package api

import (
	"log/slog"
	"net/http"

	"github.com/pulsard/pulsard-api/internal/api/shared"
	"github.com/pulsard/pulsard-api/internal/service"
)

// UserHandler handles the users listing endpoint.
type UserHandler struct {
	users  *service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *service.UserService, log *slog.Logger) *UserHandler {
	return &UserHandler{
		users:  users,
		logger: log.With("component", "user_handler"),
	}
}

// List handles GET /api/users, returning every registered user's id and
// username.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list users", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to list users")
		return
	}

	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, UserResponse{ID: u.ID, Username: u.Username})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, out)
}
