package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contactlog/internal/domain/entity"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockTeaRunner struct {
	ran bool
	err error
}

func (m *mockTeaRunner) Run() (tea.Model, error) {
	m.ran = true

	return nil, m.err
}

func contactServer(t *testing.T) *httptest.Server {
	t.Helper()

	anna := entity.Contact{
		ID:          "a",
		Name:        entity.Name{FirstName: "Anna", LastName: "Schmidt"},
		Email:       "anna@example.com",
		PhoneNumber: "01701234567",
		Address:     entity.Address{Street: "Lindenweg", HouseNumber: "4", City: "Leipzig", ZipCode: "04109"},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/contacts", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]entity.Contact{anna})
	})
	mux.HandleFunc("GET /api/fillDB", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string][]entity.Contact{"contacts": {anna, anna}})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func TestCLI_DefaultCommandIsTUI(t *testing.T) {
	var cli CLI
	k, err := kong.New(&cli, kong.Vars{"version": "test"})
	require.NoError(t, err)

	kctx, err := k.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, "tui", kctx.Command())
}

func TestTUICmd_Run(t *testing.T) {
	t.Run("refuses a non-terminal", func(t *testing.T) {
		prog := &mockTeaRunner{}
		err := (&TUICmd{}).run(false, prog)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "terminal")
		assert.False(t, prog.ran)
	})

	t.Run("runs the program on a terminal", func(t *testing.T) {
		prog := &mockTeaRunner{}

		require.NoError(t, (&TUICmd{}).run(true, prog))
		assert.True(t, prog.ran)
	})

	t.Run("returns the program error", func(t *testing.T) {
		prog := &mockTeaRunner{err: errors.New("tea: terminal error")}

		err := (&TUICmd{}).run(true, prog)
		assert.EqualError(t, err, "tea: terminal error")
	})
}

func TestRun_List(t *testing.T) {
	server := contactServer(t)
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"--base-url", server.URL, "list"}, &stdout, &stderr)
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Anna Schmidt")
	assert.Contains(t, out, "Lindenweg 4, 04109 Leipzig")
	assert.Empty(t, stderr.String())
}

func TestRun_ListJSON(t *testing.T) {
	server := contactServer(t)
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"--base-url", server.URL, "list", "--json"}, &stdout, &stderr)
	require.NoError(t, err)

	var contacts []entity.Contact
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &contacts))
	require.Len(t, contacts, 1)
	assert.Equal(t, "a", contacts[0].ID)
}

func TestRun_Seed(t *testing.T) {
	server := contactServer(t)
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"--base-url", server.URL, "seed"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout.String(), "seeded 2 contacts\n"))
}

func TestRun_VerboseLogsToStderr(t *testing.T) {
	server := contactServer(t)
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"--base-url", server.URL, "-v", "list"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "API call")
}

func TestRun_ServerDown(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"--base-url", url, "list"}, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list contacts")
}
