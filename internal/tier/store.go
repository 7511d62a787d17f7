package tier

import (
	"encoding/json"
	"os"
	"sync"

	"karobar-dashboard/internal/model"
)

// fileStore keeps all tier states in one JSON document on disk, keyed by
// user scope. Every write rewrites the whole document — the state is a
// single small map, matching the local-storage semantics it replaces.
type fileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a Store persisting to the given path.
func NewFileStore(path string) Store {
	return &fileStore{path: path}
}

func (s *fileStore) Load(userID string) (model.TierState, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	states, err := s.read()
	if err != nil {
		return model.TierState{}, false, err
	}

	state, ok := states[userID]
	return state, ok, nil
}

func (s *fileStore) Save(userID string, state model.TierState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	states, err := s.read()
	if err != nil {
		return err
	}
	states[userID] = state

	data, err := json.MarshalIndent(states, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

func (s *fileStore) read() (map[string]model.TierState, error) {
	states := map[string]model.TierState{}

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return states, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return states, nil
	}
	if err := json.Unmarshal(data, &states); err != nil {
		return nil, err
	}
	return states, nil
}

// MemoryStore is an in-memory Store used by tests and as a fallback when no
// state path is configured.
type MemoryStore struct {
	mu     sync.Mutex
	states map[string]model.TierState
}

// NewMemoryStore creates an empty in-memory Store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: map[string]model.TierState{}}
}

func (s *MemoryStore) Load(userID string) (model.TierState, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.states[userID]
	return state, ok, nil
}

func (s *MemoryStore) Save(userID string, state model.TierState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[userID] = state
	return nil
}
