// internal/store/memory.go
//
// In-memory snapshot store shared by the frame loop and the status server.
//
// Characteristics:
//   - Stores game.Snapshot values keyed by name; the loop publishes to Current.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Snapshots are copied in and out, so readers never see the live board.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/SyrovatkaA/memory-puzzle-game/internal/game"
)

// Current is the key the frame loop publishes under.
const Current = "current"

// ErrNotFound is returned before anything was saved under a key.
var ErrNotFound = errors.New("snapshot not found")

// Store defines the snapshot interface.
type Store interface {
	// Save replaces the snapshot stored under key.
	Save(ctx context.Context, key string, s game.Snapshot) error

	// Get returns the snapshot for key or ErrNotFound.
	Get(ctx context.Context, key string) (game.Snapshot, error)

	// Publish saves s under Current.
	Publish(ctx context.Context, s game.Snapshot) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu        sync.RWMutex             // guards snapshots map
	snapshots map[string]game.Snapshot // keyed by name
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{snapshots: make(map[string]game.Snapshot)}
}

func (m *memory) Save(ctx context.Context, key string, s game.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[key] = clone(s)
	return nil
}

func (m *memory) Get(ctx context.Context, key string) (game.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.snapshots[key]; ok {
		return clone(s), nil
	}
	return game.Snapshot{}, ErrNotFound
}

func (m *memory) Publish(ctx context.Context, s game.Snapshot) error {
	return m.Save(ctx, Current, s)
}

// clone deep-copies the cell grid, the only reference type in a snapshot.
func clone(s game.Snapshot) game.Snapshot {
	rows := make([][]game.CellView, len(s.Cells))
	for i, row := range s.Cells {
		rows[i] = append([]game.CellView(nil), row...)
	}
	s.Cells = rows
	return s
}
