package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsard/pulsard-api/internal/domain"
	"github.com/pulsard/pulsard-api/internal/events"
	"github.com/pulsard/pulsard-api/internal/service"
	"github.com/pulsard/pulsard-api/internal/task"
)

func newTaskHandler() (*TaskHandler, *service.TaskService, *events.Bus) {
	bus := events.NewBus(64, slog.Default())
	svc := service.NewTaskService(task.NewRegistry(), bus, slog.Default())
	return NewTaskHandler(svc, slog.Default()), svc, bus
}

func TestTaskHandler_Create(t *testing.T) {
	t.Parallel()

	h, svc, _ := newTaskHandler()
	sub := svc.Subscribe()
	defer sub.Close()

	rec := postJSON(t, h.Create, "/api/tasks", CreateTaskRequest{
		Name:    "build",
		Message: "compiling",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.TaskRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, domain.TaskRecord{Name: "build", Message: "compiling"}, created)

	// Creation published the full registry to the live subscriber.
	select {
	case snapshot := <-sub.C():
		require.Len(t, snapshot, 1)
		assert.Equal(t, created, snapshot[0])
	case <-time.After(time.Second):
		t.Fatal("no snapshot delivered")
	}
}

func TestTaskHandler_CreateValidation(t *testing.T) {
	t.Parallel()

	h, _, _ := newTaskHandler()

	rec := postJSON(t, h.Create, "/api/tasks", CreateTaskRequest{Message: "no name"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	r := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	h.Create(w, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaskHandler_Subscribe(t *testing.T) {
	t.Parallel()

	h, svc, bus := newTaskHandler()

	server := httptest.NewServer(http.HandlerFunc(h.Subscribe))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "done")

	// Wait for the handler to register its subscription: the upgrade
	// races our first create otherwise.
	require.Eventually(t, func() bool {
		return bus.SubscriberCount(service.TopicTaskCreated) == 1
	}, time.Second, 10*time.Millisecond)

	_, err = svc.Create(ctx, "build", "compiling")
	require.NoError(t, err)

	var frame []domain.TaskRecord
	require.NoError(t, wsjson.Read(ctx, conn, &frame))
	require.Len(t, frame, 1)
	assert.Equal(t, "build", frame[0].Name)

	_, err = svc.Create(ctx, "deploy", "")
	require.NoError(t, err)

	require.NoError(t, wsjson.Read(ctx, conn, &frame))
	require.Len(t, frame, 2)
	assert.Equal(t, "deploy", frame[1].Name)
}

func TestTaskHandler_SubscribeWithSeed(t *testing.T) {
	t.Parallel()

	h, svc, _ := newTaskHandler()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// History created before the subscriber connects.
	_, err := svc.Create(ctx, "early", "")
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(h.Subscribe))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "?seed=1"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "done")

	// The first frame is the seeded snapshot carrying the history.
	var frame []domain.TaskRecord
	require.NoError(t, wsjson.Read(ctx, conn, &frame))
	require.Len(t, frame, 1)
	assert.Equal(t, "early", frame[0].Name)
}
