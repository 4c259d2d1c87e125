package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/outreach-tracker/internal/types"
)

// MoveUp and MoveDown are the directions accepted by MoveMethod.
const (
	MoveUp   = "up"
	MoveDown = "down"
)

// resequence renumbers the catalog so Sequence is always a dense 1..N
// matching display order. Must be called with the write lock held, after
// every catalog mutation.
func (s *Store) resequence() {
	for i := range s.methods {
		s.methods[i].Sequence = i + 1
	}
}

// ListMethods returns the catalog in display order.
func (s *Store) ListMethods() []types.CommunicationMethod {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.CommunicationMethod, len(s.methods))
	copy(out, s.methods)
	return out
}

// AddMethod appends a new communication method at the end of the display
// order.
func (s *Store) AddMethod(req types.MethodRequest) (*types.CommunicationMethod, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	method := types.CommunicationMethod{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Mandatory:   req.Mandatory,
	}
	s.methods = append(s.methods, method)
	s.resequence()

	added := s.methods[len(s.methods)-1]
	return &added, nil
}

// UpdateMethod edits a method's name, description, and mandatory flag in
// place. Sequence is not editable here; order changes go through MoveMethod
// or ReorderMethods.
func (s *Store) UpdateMethod(id string, req types.MethodRequest) (*types.CommunicationMethod, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.methods {
		if s.methods[i].ID == id {
			s.methods[i].Name = req.Name
			s.methods[i].Description = req.Description
			s.methods[i].Mandatory = req.Mandatory
			updated := s.methods[i]
			return &updated, nil
		}
	}
	return nil, &ErrUnknownMethod{ID: id}
}

// DeleteMethod removes a method and closes the sequence gap.
func (s *Store) DeleteMethod(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.methods {
		if s.methods[i].ID == id {
			s.methods = append(s.methods[:i], s.methods[i+1:]...)
			s.resequence()
			return nil
		}
	}
	return &ErrUnknownMethod{ID: id}
}

// MoveMethod shifts a method one position up or down in display order and
// renumbers the whole catalog. Moving the first method up or the last one
// down is a no-op.
func (s *Store) MoveMethod(id, direction string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.methods {
		if s.methods[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return &ErrUnknownMethod{ID: id}
	}

	target := idx
	switch direction {
	case MoveUp:
		target = idx - 1
	case MoveDown:
		target = idx + 1
	}
	if target < 0 || target >= len(s.methods) || target == idx {
		return nil
	}

	s.methods[idx], s.methods[target] = s.methods[target], s.methods[idx]
	s.resequence()
	return nil
}

// ReorderMethods replaces the display order with the given ID permutation.
// The list must name every method exactly once.
func (s *Store) ReorderMethods(ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(ids) != len(s.methods) {
		return &ErrBadReorder{Reason: fmt.Sprintf("list has %d ids, catalog has %d methods", len(ids), len(s.methods))}
	}

	byID := make(map[string]types.CommunicationMethod, len(s.methods))
	for _, m := range s.methods {
		byID[m.ID] = m
	}

	seen := make(map[string]bool, len(ids))
	reordered := make([]types.CommunicationMethod, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			return &ErrBadReorder{Reason: fmt.Sprintf("duplicate id %s", id)}
		}
		seen[id] = true
		method, ok := byID[id]
		if !ok {
			return &ErrBadReorder{Reason: fmt.Sprintf("unknown id %s", id)}
		}
		reordered = append(reordered, method)
	}

	s.methods = reordered
	s.resequence()
	return nil
}
