// Package form holds the editable draft behind the contact form.
package form

import (
	"context"

	"contactlog/internal/client/state"
	"contactlog/internal/domain/entity"
	"contactlog/internal/domain/validation"

	"github.com/pkg/errors"
)

// Mode is the submission target of the draft.
type Mode int

const (
	// ModeCreate submits the draft as a new contact.
	ModeCreate Mode = iota
	// ModeEdit submits the draft as a replacement for the contact with its id.
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}

	return "create"
}

var (
	// ErrInvalidDraft is returned by Submit when a field violates its constraint.
	ErrInvalidDraft = errors.New("draft has invalid fields")
	// ErrContactGone is returned when the server no longer holds the edited contact.
	ErrContactGone = errors.New("contact no longer exists")
	// ErrEmptyResponse is returned when the server acknowledged a create without a body.
	ErrEmptyResponse = errors.New("server returned no contact")
)

// DraftError carries the fields that blocked a submit. It matches ErrInvalidDraft.
type DraftError struct {
	Fields validation.FieldErrors
}

// Error lists the rejected fields.
func (e *DraftError) Error() string {
	return ErrInvalidDraft.Error() + ": " + e.Fields.Error()
}

// Is reports whether target is ErrInvalidDraft.
func (e *DraftError) Is(target error) bool {
	return target == ErrInvalidDraft
}

// Unwrap exposes the field errors.
func (e *DraftError) Unwrap() error {
	return e.Fields
}

// Gateway is the part of the API the form submits to.
type Gateway interface {
	Create(ctx context.Context, draft *entity.Contact) (*entity.Contact, error)
	Update(ctx context.Context, contact *entity.Contact) (*entity.Contact, error)
}

// OutcomeKind says how a successful submit changes the collection.
type OutcomeKind int

const (
	// Inserted appends the stored contact to the collection.
	Inserted OutcomeKind = iota + 1
	// Replaced swaps the contact with the same id in place.
	Replaced
)

// Outcome is the result of a successful submit.
type Outcome struct {
	Kind    OutcomeKind
	Contact entity.Contact
}

// Apply folds the outcome into store.
func (o Outcome) Apply(store state.Store) state.Store {
	switch o.Kind {
	case Inserted:
		return store.Insert(o.Contact)
	case Replaced:
		next, _ := store.ReplaceByID(o.Contact)

		return next
	default:
		return store
	}
}

// Controller is a value type; every method returns the next controller.
type Controller struct {
	mode   Mode
	draft  entity.Contact
	errors validation.FieldErrors
}

// New returns a controller in create mode with a blank draft.
func New() Controller {
	return Controller{mode: ModeCreate, draft: entity.BlankContact()}
}

// Mode reports the current mode.
func (c Controller) Mode() Mode {
	return c.mode
}

// Draft returns a copy of the draft.
func (c Controller) Draft() entity.Contact {
	return c.draft
}

// Errors lists the fields flagged by the last validation.
func (c Controller) Errors() validation.FieldErrors {
	return c.errors
}

// Edit switches to edit mode with a copy of contact.
func (c Controller) Edit(contact entity.Contact) Controller {
	return Controller{mode: ModeEdit, draft: contact}
}

// Reset discards the draft and returns to create mode.
func (c Controller) Reset() Controller {
	return New()
}

// SetField replaces one nested attribute of the draft. A stale flag on that
// field is cleared; nothing else is validated.
func (c Controller) SetField(path, value string) (Controller, error) {
	draft, err := c.draft.WithField(path, value)
	if err != nil {
		return c, err
	}

	next := c
	next.draft = draft
	next.errors = withoutField(c.errors, path)

	return next, nil
}

// Validate flags every field of the draft that breaks its constraint.
func (c Controller) Validate() Controller {
	next := c
	next.errors = validation.Check(&c.draft)

	return next
}

// Submit validates the draft and, when it passes, sends it through gw. On
// success the returned controller is reset to create mode. On failure the
// returned controller keeps its mode and draft.
func (c Controller) Submit(ctx context.Context, gw Gateway) (Controller, Outcome, error) {
	checked := c.Validate()
	if len(checked.errors) > 0 {
		return checked, Outcome{}, &DraftError{Fields: checked.errors}
	}

	draft := c.draft
	if c.mode == ModeCreate {
		created, err := gw.Create(ctx, &draft)
		if err != nil {
			return checked, Outcome{}, err
		}
		if created == nil {
			return checked, Outcome{}, ErrEmptyResponse
		}

		return New(), Outcome{Kind: Inserted, Contact: *created}, nil
	}

	updated, err := gw.Update(ctx, &draft)
	if err != nil {
		return checked, Outcome{}, err
	}
	if updated == nil {
		return checked, Outcome{}, errors.Wrapf(ErrContactGone, "%s", draft.ID)
	}

	return New(), Outcome{Kind: Replaced, Contact: *updated}, nil
}

func withoutField(errs validation.FieldErrors, path string) validation.FieldErrors {
	if !errs.Has(path) {
		return errs
	}
	out := make(validation.FieldErrors, 0, len(errs))
	for _, e := range errs {
		if e.Field != path {
			out = append(out, e)
		}
	}

	return out
}
