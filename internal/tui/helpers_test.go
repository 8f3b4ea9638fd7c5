package tui

import (
	"context"
	"strings"
	"sync"
	"testing"

	"contactlog/internal/domain/entity"

	tea "github.com/charmbracelet/bubbletea"
)

// fakeGateway is an in-memory API with per-call error injection.
type fakeGateway struct {
	mu        sync.Mutex
	contacts  []*entity.Contact
	nextID    int
	listErr   error
	createErr error
	deleteErr error
	creates   int
}

func newFakeGateway(contacts ...*entity.Contact) *fakeGateway {
	return &fakeGateway{contacts: contacts}
}

func (f *fakeGateway) List(context.Context) ([]*entity.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}

	return cloneAll(f.contacts), nil
}

func (f *fakeGateway) Seed(context.Context) ([]*entity.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contacts = []*entity.Contact{sampleContact("seed-1", "Sofia", "Seeded")}

	return cloneAll(f.contacts), nil
}

func (f *fakeGateway) Create(_ context.Context, draft *entity.Contact) (*entity.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	stored := draft.Clone()
	stored.ID = "new-" + strings.Repeat("x", f.nextID)
	f.contacts = append(f.contacts, stored)

	return stored.Clone(), nil
}

func (f *fakeGateway) Update(_ context.Context, contact *entity.Contact) (*entity.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, c := range f.contacts {
		if c.ID == contact.ID {
			f.contacts[i] = contact.Clone()

			return contact.Clone(), nil
		}
	}

	return nil, nil
}

func (f *fakeGateway) Delete(_ context.Context, id string) (*entity.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	for i, c := range f.contacts {
		if c.ID == id {
			f.contacts = append(f.contacts[:i], f.contacts[i+1:]...)

			return c, nil
		}
	}

	return nil, nil
}

func cloneAll(in []*entity.Contact) []*entity.Contact {
	out := make([]*entity.Contact, 0, len(in))
	for _, c := range in {
		out = append(out, c.Clone())
	}

	return out
}

func sampleContact(id, first, last string) *entity.Contact {
	return &entity.Contact{
		ID:          id,
		Name:        entity.Name{FirstName: first, LastName: last},
		Email:       strings.ToLower(first) + "@example.com",
		PhoneNumber: "01701234567",
		Address:     entity.Address{Street: "Lindenweg", HouseNumber: "4", City: "Leipzig", ZipCode: "04109"},
	}
}

// update feeds msg to m without running the returned command.
func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)

	return next.(Model), cmd
}

// settle runs an action command and feeds its result back into m. Commands
// returned while applying the result (cursor blinks) are not run.
func settle(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()

	if cmd == nil {
		t.Fatal("expected an action command")
	}
	m, _ = update(t, m, cmd())

	return m
}

// press sends a key and settles the command it starts.
func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()

	m, cmd := update(t, m, msg)

	return settle(t, m, cmd)
}

// typeText types s into the focused input one rune at a time.
func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()

	for _, r := range s {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// loadedModel returns a sized model that already holds the gateway's contacts.
func loadedModel(t *testing.T, gw *fakeGateway) Model {
	t.Helper()

	m, _ := update(t, NewModel(context.Background(), gw), tea.WindowSizeMsg{Width: 120, Height: 40})

	return settle(t, m, m.Init())
}

// stripANSI removes ANSI escape sequences from a string.
func stripANSI(s string) string {
	var out []byte
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < 'A' || s[j] > 'Z') && (s[j] < 'a' || s[j] > 'z') {
				j++
			}
			if j < len(s) {
				j++
			}
			i = j
		} else {
			out = append(out, s[i])
			i++
		}
	}

	return string(out)
}
