package task

import (
	"sync"

	"github.com/pulsard/pulsard-api/internal/domain"
)

// Registry is the process-wide, insertion-ordered log of created tasks.
// All access goes through the mutex, making Append a single-writer
// atomic operation: concurrent appends never lose a record.
type Registry struct {
	mu      sync.Mutex
	records []domain.TaskRecord
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Append adds the record to the end of the registry and returns a copy of
// the updated full contents. The returned slice is owned by the caller;
// later appends do not mutate it.
func (r *Registry) Append(rec domain.TaskRecord) []domain.TaskRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, rec)

	snapshot := make([]domain.TaskRecord, len(r.records))
	copy(snapshot, r.records)
	return snapshot
}

// Snapshot returns a copy of the registry's current contents in insertion
// order.
func (r *Registry) Snapshot() []domain.TaskRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make([]domain.TaskRecord, len(r.records))
	copy(snapshot, r.records)
	return snapshot
}

// Len returns the number of records in the registry.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}
