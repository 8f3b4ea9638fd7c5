// Package listview projects the contact store into rows and carries out row actions.
package listview

import (
	"context"

	"contactlog/internal/client/form"
	"contactlog/internal/client/state"
	"contactlog/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrNoSuchRow is returned for an index outside the store.
var ErrNoSuchRow = errors.New("no such row")

// Row is one rendered contact.
type Row struct {
	ID      string
	Name    string
	Email   string
	Phone   string
	Address string
}

// Deleter is the part of the API a row delete goes through.
type Deleter interface {
	Delete(ctx context.Context, id string) (*entity.Contact, error)
}

// Rows renders every contact in store order.
func Rows(store state.Store) []Row {
	contacts := store.Contacts()
	rows := make([]Row, 0, len(contacts))
	for i := range contacts {
		rows = append(rows, toRow(&contacts[i]))
	}

	return rows
}

func toRow(c *entity.Contact) Row {
	return Row{
		ID:      c.ID,
		Name:    c.FullName(),
		Email:   c.Email,
		Phone:   c.PhoneNumber,
		Address: formatAddress(c.Address),
	}
}

func formatAddress(a entity.Address) string {
	street := joinNonEmpty(" ", a.Street, a.HouseNumber)
	city := joinNonEmpty(" ", a.ZipCode, a.City)

	return joinNonEmpty(", ", street, city)
}

func joinNonEmpty(sep string, parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += sep
		}
		out += p
	}

	return out
}

// EditIntent hands the contact at index to the controller in edit mode.
func EditIntent(store state.Store, index int, controller form.Controller) (form.Controller, error) {
	contact, ok := store.At(index)
	if !ok {
		return controller, errors.Wrapf(ErrNoSuchRow, "%d", index)
	}

	return controller.Edit(contact), nil
}

// DeleteIntent deletes id through the API and drops it from store. A null
// answer means the server had already forgotten it, so it is dropped as well.
// On failure store is returned unchanged.
func DeleteIntent(ctx context.Context, store state.Store, id string, api Deleter) (state.Store, error) {
	if _, err := api.Delete(ctx, id); err != nil {
		return store, err
	}

	return store.RemoveByID(id), nil
}
