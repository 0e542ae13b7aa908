// Package store holds the in-memory user record set. The store is
// owned by the application and passed by reference to the session
// controller and the deletion gate; all mutation happens on the single
// REPL goroutine, so access is not synchronized.
package store

import (
	"strings"

	"github.com/Ankur-Kumar-4/synergy-labs-task/internal/common"
	"github.com/Ankur-Kumar-4/synergy-labs-task/internal/models"
)

// Store keeps user records in their original order.
type Store struct {
	users []models.User
}

func New() *Store {
	return &Store{}
}

// Load replaces the record set with the initial batch from the remote
// source. It is called once at startup.
func (s *Store) Load(users []models.User) {
	s.users = append([]models.User(nil), users...)
}

// Len returns the number of records currently held.
func (s *Store) Len() int {
	return len(s.users)
}

// All returns a copy of the record list in original order.
func (s *Store) All() []models.User {
	return append([]models.User(nil), s.users...)
}

// Get returns the record with the given identifier.
func (s *Store) Get(id int) (models.User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// NextID returns max(existing identifiers) + 1, or 1 for an empty set.
func (s *Store) NextID() int {
	max := 0
	for _, u := range s.users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}

// Append adds a new record. Identifiers must stay unique.
func (s *Store) Append(u models.User) error {
	if _, ok := s.Get(u.ID); ok {
		return common.ErrDuplicateID
	}
	s.users = append(s.users, u)
	return nil
}

// Update replaces the record with the same identifier in place.
func (s *Store) Update(u models.User) error {
	for i := range s.users {
		if s.users[i].ID == u.ID {
			s.users[i] = u
			return nil
		}
	}
	return common.ErrNotFound
}

// Remove deletes the record with the given identifier.
func (s *Store) Remove(id int) error {
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

// Search returns the records whose display name contains the term,
// case-insensitively, keeping original relative order. An empty term
// matches everything.
func (s *Store) Search(term string) []models.User {
	if term == "" {
		return s.All()
	}
	term = strings.ToLower(term)
	var matched []models.User
	for _, u := range s.users {
		if strings.Contains(strings.ToLower(u.Name), term) {
			matched = append(matched, u)
		}
	}
	return matched
}
