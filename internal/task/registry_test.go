package task

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsard/pulsard-api/internal/domain"
)

func TestRegistry_Append(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	first := r.Append(domain.TaskRecord{Name: "build", Message: "compiling"})
	require.Len(t, first, 1)
	assert.Equal(t, "build", first[0].Name)

	second := r.Append(domain.TaskRecord{Name: "deploy"})
	require.Len(t, second, 2)
	assert.Equal(t, "build", second[0].Name)
	assert.Equal(t, "deploy", second[1].Name)

	// The snapshot handed out earlier is a copy: later appends haven't
	// touched it.
	assert.Len(t, first, 1)
}

func TestRegistry_Snapshot(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	assert.Empty(t, r.Snapshot())

	r.Append(domain.TaskRecord{Name: "a"})
	r.Append(domain.TaskRecord{Name: "b"})

	snap := r.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, []domain.TaskRecord{{Name: "a"}, {Name: "b"}}, snap)

	// Mutating the caller's copy does not reach the registry.
	snap[0].Name = "mutated"
	assert.Equal(t, "a", r.Snapshot()[0].Name)
}

func TestRegistry_ConcurrentAppendsLoseNothing(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			r.Append(domain.TaskRecord{Name: "concurrent"})
		}()
	}
	wg.Wait()

	assert.Equal(t, n, r.Len())
	assert.Len(t, r.Snapshot(), n)
}
