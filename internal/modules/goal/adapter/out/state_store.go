package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"flowcat/internal/modules/goal/domain"
	goalout "flowcat/internal/modules/goal/port/out"
	apperrors "flowcat/internal/platform/errors"
	"flowcat/internal/platform/id"
)

// FileStateStore owns the authoritative in-memory state and overwrites
// one JSON file on every mutation. The file is read once at startup;
// goal identifiers are minted here and live only for the process.
//
// A failed write leaves the in-memory state mutated and diverged from
// disk: the wrapped ErrPersistence tells callers the change is unsaved.
type FileStateStore struct {
	path string
	ids  id.Generator

	mu       sync.Mutex
	state    domain.State
	activeID string
}

func NewFileStateStore(path string, ids id.Generator) (*FileStateStore, error) {
	s := &FileStateStore{path: path, ids: ids}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.state = domain.State{Goals: []domain.Goal{}}
			return s, nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}
	if err := json.Unmarshal(raw, &s.state); err != nil {
		return nil, fmt.Errorf("decode state file: %w", err)
	}
	for i := range s.state.Goals {
		s.state.Goals[i].ID = ids.New()
	}
	return s, nil
}

func (s *FileStateStore) Goals(_ context.Context) ([]domain.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	goals := make([]domain.Goal, len(s.state.Goals))
	copy(goals, s.state.Goals)
	return goals, nil
}

func (s *FileStateStore) ReplaceGoals(_ context.Context, goals []domain.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Goals = make([]domain.Goal, len(goals))
	copy(s.state.Goals, goals)
	return s.flushLocked()
}

func (s *FileStateStore) ActiveGoalID(_ context.Context) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID, s.activeID != ""
}

func (s *FileStateStore) SetActiveGoalID(_ context.Context, goalID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeID = goalID
}

func (s *FileStateStore) ClearActiveGoalID(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeID = ""
}

// SessionCount and SaveSessionCount persist the lifetime work-session
// counter in the same document as the goals.
func (s *FileStateStore) SessionCount(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.PomodoroSessions, nil
}

func (s *FileStateStore) SaveSessionCount(_ context.Context, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.PomodoroSessions = count
	return s.flushLocked()
}

func (s *FileStateStore) flushLocked() error {
	payload, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("%w: create data dir: %v", apperrors.ErrPersistence, err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", apperrors.ErrPersistence, s.path, err)
	}
	return nil
}

var _ goalout.Store = (*FileStateStore)(nil)
