package listview_test

import (
	"context"
	"testing"

	"contactlog/internal/client/form"
	"contactlog/internal/client/listview"
	"contactlog/internal/client/state"
	"contactlog/internal/domain/entity"
	mockListview "contactlog/internal/mocks/listview"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStore() state.Store {
	return state.New([]*entity.Contact{
		{
			ID:          "a",
			Name:        entity.Name{FirstName: "Anna", LastName: "Schmidt"},
			Email:       "anna@example.com",
			PhoneNumber: "01701234567",
			Address:     entity.Address{Street: "Lindenweg", HouseNumber: "4", City: "Leipzig", ZipCode: "04109"},
		},
		{ID: "b", Name: entity.Name{FirstName: "Bernd"}},
	})
}

func TestRows(t *testing.T) {
	rows := listview.Rows(newStore())

	require.Len(t, rows, 2)
	assert.Equal(t, listview.Row{
		ID:      "a",
		Name:    "Anna Schmidt",
		Email:   "anna@example.com",
		Phone:   "01701234567",
		Address: "Lindenweg 4, 04109 Leipzig",
	}, rows[0])
	assert.Equal(t, "Bernd", rows[1].Name)
	assert.Empty(t, rows[1].Address)
}

func TestRows_EmptyStore(t *testing.T) {
	assert.Empty(t, listview.Rows(state.Store{}))
}

func TestEditIntent(t *testing.T) {
	c, err := listview.EditIntent(newStore(), 0, form.New())
	require.NoError(t, err)

	assert.Equal(t, form.ModeEdit, c.Mode())
	assert.Equal(t, "a", c.Draft().ID)

	_, err = listview.EditIntent(newStore(), 7, form.New())
	assert.True(t, errors.Is(err, listview.ErrNoSuchRow))
}

func TestDeleteIntent(t *testing.T) {
	tests := []struct {
		name    string
		answer  *entity.Contact
		err     error
		wantIDs []string
	}{
		{name: "removed", answer: &entity.Contact{ID: "a"}, wantIDs: []string{"b"}},
		{name: "already gone", answer: nil, wantIDs: []string{"b"}},
		{name: "api failure", err: errors.New("boom"), wantIDs: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := mockListview.NewMockDeleter(t)
			api.EXPECT().Delete(mock.Anything, "a").Return(tt.answer, tt.err).Once()

			store, err := listview.DeleteIntent(context.Background(), newStore(), "a", api)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
			} else {
				require.NoError(t, err)
			}

			var ids []string
			for _, row := range listview.Rows(store) {
				ids = append(ids, row.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
