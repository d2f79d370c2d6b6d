package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/pulsard/pulsard-api/internal/api/shared"
	"github.com/pulsard/pulsard-api/internal/domain"
	"github.com/pulsard/pulsard-api/internal/service"
)

// TaskHandler handles task creation and the live task-event subscription.
type TaskHandler struct {
	tasks  *service.TaskService
	logger *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(tasks *service.TaskService, log *slog.Logger) *TaskHandler {
	return &TaskHandler{
		tasks:  tasks,
		logger: log.With("component", "task_handler"),
	}
}

// Create handles POST /api/tasks. The created record is appended to the
// registry and the updated task list is pushed to every subscriber before
// this responds.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	rec, err := h.tasks.Create(r.Context(), req.Name, req.Message)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyTaskName) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Task name is required")
			return
		}
		h.logger.Error("failed to create task", "error", err, "name", req.Name)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, rec)
}

// Subscribe handles GET /api/tasks/subscribe. It upgrades the connection
// to a websocket and writes one JSON frame containing the full task list
// for every task created while the connection is open. With ?seed=1 the
// current registry contents are sent first, so the client starts with the
// history it would otherwise miss. The subscription is released when the
// client disconnects or the server drains.
func (h *TaskHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		h.logger.Debug("websocket accept failed", "error", err)
		return
	}
	defer conn.Close(websocket.StatusInternalError, "subscription ended")

	sub := h.tasks.Subscribe()
	defer sub.Close()

	// CloseRead starts a read pump whose context is canceled when the
	// client goes away; this connection only ever writes.
	ctx := conn.CloseRead(r.Context())

	if r.URL.Query().Get("seed") == "1" {
		if err := wsjson.Write(ctx, conn, h.tasks.Snapshot()); err != nil {
			h.logger.Debug("failed to write seed snapshot", "error", err)
			return
		}
	}

	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "client disconnected")
			return
		case snapshot, ok := <-sub.C():
			if !ok {
				// Bus drained at shutdown.
				conn.Close(websocket.StatusGoingAway, "server shutting down")
				return
			}
			if err := wsjson.Write(ctx, conn, snapshot); err != nil {
				h.logger.Debug("failed to deliver snapshot to subscriber", "error", err)
				return
			}
		}
	}
}
