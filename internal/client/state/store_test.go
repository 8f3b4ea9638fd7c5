package state

import (
	"testing"

	"contactlog/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contact(id, first string) *entity.Contact {
	return &entity.Contact{ID: id, Name: entity.Name{FirstName: first, LastName: "Tester"}}
}

func ids(s Store) []string {
	out := make([]string, 0, s.Len())
	for _, c := range s.Contacts() {
		out = append(out, c.ID)
	}

	return out
}

func TestStore_ReplaceAllSkipsNil(t *testing.T) {
	s := New([]*entity.Contact{contact("a", "Ann"), nil, contact("b", "Bob")})

	assert.Equal(t, []string{"a", "b"}, ids(s))
}

func TestStore_TransitionsLeaveReceiverUntouched(t *testing.T) {
	base := New([]*entity.Contact{contact("a", "Ann"), contact("b", "Bob")})

	inserted := base.Insert(*contact("c", "Cat"))
	removed := base.RemoveByID("a")
	replaced, ok := base.ReplaceByID(*contact("b", "Bea"))
	require.True(t, ok)

	assert.Equal(t, []string{"a", "b"}, ids(base))
	assert.Equal(t, []string{"a", "b", "c"}, ids(inserted))
	assert.Equal(t, []string{"b"}, ids(removed))

	got, _ := replaced.At(1)
	assert.Equal(t, "Bea", got.Name.FirstName)
	orig, _ := base.At(1)
	assert.Equal(t, "Bob", orig.Name.FirstName)
}

func TestStore_InsertThenRemoveRestoresCollection(t *testing.T) {
	base := New([]*entity.Contact{contact("a", "Ann"), contact("b", "Bob")})

	roundTrip := base.Insert(*contact("c", "Cat")).RemoveByID("c")

	assert.Equal(t, base.Contacts(), roundTrip.Contacts())
}

func TestStore_ReplaceByIDFirstMatchOnly(t *testing.T) {
	s := New([]*entity.Contact{contact("a", "One"), contact("a", "Two")})

	next, ok := s.ReplaceByID(*contact("a", "New"))
	require.True(t, ok)

	first, _ := next.At(0)
	second, _ := next.At(1)
	assert.Equal(t, "New", first.Name.FirstName)
	assert.Equal(t, "Two", second.Name.FirstName)
}

func TestStore_ReplaceByIDUnknown(t *testing.T) {
	s := New([]*entity.Contact{contact("a", "Ann")})

	next, ok := s.ReplaceByID(*contact("zzz", "Nobody"))
	assert.False(t, ok)
	assert.Equal(t, ids(s), ids(next))
}

func TestStore_RemoveByIDAllMatches(t *testing.T) {
	s := New([]*entity.Contact{contact("a", "One"), contact("b", "Bob"), contact("a", "Two")})

	assert.Equal(t, []string{"b"}, ids(s.RemoveByID("a")))
	assert.Equal(t, []string{"a", "b", "a"}, ids(s.RemoveByID("missing")))
}

func TestStore_ContactsIsACopy(t *testing.T) {
	s := New([]*entity.Contact{contact("a", "Ann")})

	out := s.Contacts()
	out[0].Name.FirstName = "Mutated"

	got, _ := s.At(0)
	assert.Equal(t, "Ann", got.Name.FirstName)
}

func TestStore_AtOutOfRange(t *testing.T) {
	var s Store

	_, ok := s.At(0)
	assert.False(t, ok)
	_, ok = s.At(-1)
	assert.False(t, ok)
	assert.Zero(t, s.Len())
}
