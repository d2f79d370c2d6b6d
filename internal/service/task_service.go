package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pulsard/pulsard-api/internal/domain"
	"github.com/pulsard/pulsard-api/internal/events"
	"github.com/pulsard/pulsard-api/internal/task"
)

// TopicTaskCreated is the event bus topic task-creation snapshots are
// published on.
const TopicTaskCreated = "task.created"

// TaskService owns the task registry and its event distribution: it is
// the single writer of the registry, and every append is published to the
// task-created topic as a full registry snapshot.
type TaskService struct {
	registry *task.Registry
	bus      *events.Bus
	logger   *slog.Logger

	// mu serializes append-and-publish so the sequence of published
	// snapshots matches the registry's append order exactly.
	mu sync.Mutex
}

// NewTaskService creates a TaskService around the given registry and bus.
func NewTaskService(registry *task.Registry, bus *events.Bus, log *slog.Logger) *TaskService {
	return &TaskService{
		registry: registry,
		bus:      bus,
		logger:   log.With("component", "task_service"),
	}
}

// Create validates and appends a new task record, then publishes the
// updated full registry snapshot to every live subscriber. The record is
// immutable once created.
func (s *TaskService) Create(ctx context.Context, name, message string) (domain.TaskRecord, error) {
	rec, err := domain.NewTaskRecord(name, message)
	if err != nil {
		return domain.TaskRecord{}, err
	}

	s.mu.Lock()
	snapshot := s.registry.Append(rec)
	s.bus.Publish(TopicTaskCreated, snapshot)
	s.mu.Unlock()

	s.logger.Info("task created",
		"name", rec.Name,
		"registry_size", len(snapshot),
		"subscriber_count", s.bus.SubscriberCount(TopicTaskCreated))

	return rec, nil
}

// Subscribe opens a subscription to task-creation events. The subscriber
// observes only snapshots published after this call; use Snapshot to seed
// its initial state. The caller must Close the subscription when the
// consumer disconnects.
func (s *TaskService) Subscribe() *events.Subscription {
	return s.bus.Subscribe(TopicTaskCreated)
}

// Snapshot returns the registry's current contents.
func (s *TaskService) Snapshot() []domain.TaskRecord {
	return s.registry.Snapshot()
}
