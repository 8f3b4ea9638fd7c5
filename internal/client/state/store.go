// Package state holds the client's ordered copy of the contact collection.
package state

import "contactlog/internal/domain/entity"

// Store is an ordered, immutable set of contacts. Every transition returns a
// new Store and leaves the receiver untouched.
type Store struct {
	contacts []entity.Contact
}

// New builds a store holding copies of contacts in order.
func New(contacts []*entity.Contact) Store {
	return Store{}.ReplaceAll(contacts)
}

// ReplaceAll discards the current contents. Nil entries are skipped.
func (s Store) ReplaceAll(contacts []*entity.Contact) Store {
	next := make([]entity.Contact, 0, len(contacts))
	for _, c := range contacts {
		if c != nil {
			next = append(next, *c)
		}
	}

	return Store{contacts: next}
}

// Insert appends c.
func (s Store) Insert(c entity.Contact) Store {
	next := make([]entity.Contact, len(s.contacts), len(s.contacts)+1)
	copy(next, s.contacts)

	return Store{contacts: append(next, c)}
}

// ReplaceByID swaps the first contact with c's id for c, keeping its position.
// ok is false when no contact matches.
func (s Store) ReplaceByID(c entity.Contact) (next Store, ok bool) {
	for i := range s.contacts {
		if s.contacts[i].ID == c.ID {
			cloned := s.clone()
			cloned.contacts[i] = c

			return cloned, true
		}
	}

	return s, false
}

// RemoveByID drops every contact with id.
func (s Store) RemoveByID(id string) Store {
	next := make([]entity.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		if c.ID != id {
			next = append(next, c)
		}
	}

	return Store{contacts: next}
}

// Contacts returns a copy of the contents in order.
func (s Store) Contacts() []entity.Contact {
	out := make([]entity.Contact, len(s.contacts))
	copy(out, s.contacts)

	return out
}

// Len is the number of contacts held.
func (s Store) Len() int {
	return len(s.contacts)
}

// At returns the contact at index i.
func (s Store) At(i int) (entity.Contact, bool) {
	if i < 0 || i >= len(s.contacts) {
		return entity.Contact{}, false
	}

	return s.contacts[i], true
}

func (s Store) clone() Store {
	return Store{contacts: s.Contacts()}
}
