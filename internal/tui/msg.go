// Package tui implements the interactive contact book: a list pane mirroring
// the server's collection and a form pane for creating and editing contacts.
package tui

import (
	"context"

	"contactlog/internal/client/form"
	"contactlog/internal/client/state"
	"contactlog/internal/domain/entity"
)

// Focus represents which pane has keyboard focus.
type Focus int

const (
	PaneList Focus = iota // Contact list has focus.
	PaneForm              // Form inputs have focus.
)

// Gateway is everything the TUI asks of the API.
type Gateway interface {
	form.Gateway
	List(ctx context.Context) ([]*entity.Contact, error)
	Delete(ctx context.Context, id string) (*entity.Contact, error)
	Seed(ctx context.Context) ([]*entity.Contact, error)
}

// --- tea.Msg types ---

// ContactsLoadedMsg carries a fresh copy of the whole collection, from either
// a reload or a seed.
type ContactsLoadedMsg struct {
	Contacts []*entity.Contact
	Seeded   bool
	Err      error
}

// SubmittedMsg carries the result of a form submit.
type SubmittedMsg struct {
	Controller form.Controller
	Outcome    form.Outcome
	Err        error
}

// DeletedMsg carries the result of a row delete.
type DeletedMsg struct {
	ID    string
	Store state.Store
	Err   error
}
