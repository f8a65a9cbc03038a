package project

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// StemUpdate carries the mixer fields a caller may change on a stem.
// Nil fields are left untouched.
type StemUpdate struct {
	Volume *int
	Pan    *int
}

// Store owns the single active project. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	current *Project
	now     func() time.Time
}

// NewStore constructs an empty store.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Current returns a copy of the active project, or nil when none is loaded.
func (s *Store) Current() *Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// SetCurrent adopts a project, replacing whatever was active. This is the
// only way a new project enters the store.
func (s *Store) SetCurrent(p *Project) error {
	if p == nil {
		return ErrNoActiveProject
	}
	if err := ValidateStems(p.Stems); err != nil {
		return fmt.Errorf("adopt project %q: %w", p.ID, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = p.Clone()
	return nil
}

// Clear discards the active project.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// UpdateStem merges the update into the matching stem, validates the result,
// refreshes UpdatedAt, and returns a copy of the updated project. On any
// failure the stored project is untouched.
func (s *Store) UpdateStem(stemID string, update StemUpdate) (*Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, ErrNoActiveProject
	}

	index := -1
	for i, stem := range s.current.Stems {
		if stem.ID == stemID {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, fmt.Errorf("stem %q: %w", stemID, ErrStemNotFound)
	}

	merged := s.current.Stems[index]
	if update.Volume != nil {
		merged.Volume = *update.Volume
	}
	if update.Pan != nil {
		merged.Pan = *update.Pan
	}
	if merged.Volume < MinVolume || merged.Volume > MaxVolume {
		return nil, fmt.Errorf("volume %d not in [%d,%d]: %w", merged.Volume, MinVolume, MaxVolume, ErrOutOfRange)
	}
	if merged.Pan < MinPan || merged.Pan > MaxPan {
		return nil, fmt.Errorf("pan %d not in [%d,%d]: %w", merged.Pan, MinPan, MaxPan, ErrOutOfRange)
	}

	s.current.Stems[index] = merged
	s.current.UpdatedAt = s.now()
	return s.current.Clone(), nil
}

// Rename sets a new title and refreshes UpdatedAt. Titles that are blank
// after trimming are rejected.
func (s *Store) Rename(title string) (*Project, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return nil, ErrEmptyTitle
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, ErrNoActiveProject
	}
	s.current.Title = trimmed
	s.current.UpdatedAt = s.now()
	return s.current.Clone(), nil
}

// Save refreshes UpdatedAt without changing any other field. It maps to the
// user's explicit save action.
func (s *Store) Save() (*Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, ErrNoActiveProject
	}
	s.current.UpdatedAt = s.now()
	return s.current.Clone(), nil
}
