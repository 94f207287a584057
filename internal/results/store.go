package results

import (
	"sort"
	"sync"

	"github.com/eytandecker/glideperf/internal/glide"
)

// Store is a concurrent-safe cache of computed performance curves keyed by
// airfoil display name. The CLI fills it once at startup; the MCP server
// reads it for the rest of the run.
type Store struct {
	mu     sync.RWMutex
	curves map[string]glide.Curve
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{curves: make(map[string]glide.Curve)}
}

// Put stores a curve under its airfoil name, replacing any previous one.
func (s *Store) Put(c glide.Curve) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.curves[c.Name] = c
}

// Get returns the curve for the given airfoil name, or ErrNotComputed if no
// curve has been stored under that name.
func (s *Store) Get(name string) (glide.Curve, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.curves[name]
	if !ok {
		return glide.Curve{}, ErrNotComputed
	}
	return c, nil
}

// Names returns the stored airfoil names sorted alphabetically.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.curves))
	for name := range s.curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
