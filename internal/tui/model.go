package tui

import (
	"context"

	"contactlog/internal/client/form"
	"contactlog/internal/client/listview"
	"contactlog/internal/client/state"
	"contactlog/internal/domain/entity"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// helpBarHeight is the number of lines reserved for the help bar at the bottom.
const helpBarHeight = 1

// noticeHeight is the line reserved for the notification.
const noticeHeight = 1

// borderChrome is the number of lines consumed by top + bottom borders.
const borderChrome = 2

const inputCharLimit = 50

// Model is the root Bubble Tea model of the contact book.
// While a request is in flight (busy) the collection cannot be changed.
type Model struct {
	ctx        context.Context
	api        Gateway
	store      state.Store
	controller form.Controller

	fields []entity.ContactField
	inputs []textinput.Model
	active int

	focus  Focus
	cursor int
	busy   bool
	notice notice

	width    int
	height   int
	help     help.Model
	listKeys listKeys
	formKeys formKeys
}

// NewModel creates a model with an empty list and a blank create form.
func NewModel(ctx context.Context, api Gateway) Model {
	fields := entity.ContactFields()
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = f.Label
		in.CharLimit = inputCharLimit
		inputs[i] = in
	}

	return Model{
		ctx:        ctx,
		api:        api,
		controller: form.New(),
		fields:     fields,
		inputs:     inputs,
		focus:      PaneList,
		busy:       true,
		help:       help.New(),
		listKeys:   ListKeyMap(),
		formKeys:   FormKeyMap(),
	}
}

// Init loads the collection.
func (m Model) Init() tea.Cmd {
	return m.load(false)
}

// Store returns the client-side collection.
func (m Model) Store() state.Store {
	return m.store
}

// Controller returns the form state.
func (m Model) Controller() form.Controller {
	return m.controller
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		_, formWidth := PaneWidths(msg.Width)
		for i := range m.inputs {
			m.inputs[i].Width = max(formWidth-borderChrome-labelWidth-1, 0)
		}

		return m, nil

	case ContactsLoadedMsg:
		return m.applyLoaded(msg), nil

	case SubmittedMsg:
		return m.applySubmitted(msg)

	case DeletedMsg:
		return m.applyDeleted(msg), nil

	case tea.KeyMsg:
		if m.focus == PaneForm {
			return m.handleFormKey(msg)
		}

		return m.handleListKey(msg)
	}

	return m, nil
}

func (m Model) applyLoaded(msg ContactsLoadedMsg) Model {
	m.busy = false
	action := "loading contacts"
	if msg.Seeded {
		action = "seeding"
	}
	if msg.Err != nil {
		m.notice = failure(action, msg.Err)

		return m
	}

	m.store = m.store.ReplaceAll(msg.Contacts)
	m.cursor = clampCursor(m.cursor, m.store.Len())
	if msg.Seeded {
		m.notice = info("seeded %d contacts", m.store.Len())
	} else {
		m.notice = info("loaded %d contacts", m.store.Len())
	}

	return m
}

func (m Model) applySubmitted(msg SubmittedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	m.controller = msg.Controller
	if msg.Err != nil {
		m.notice = failure("saving", msg.Err)

		return m, nil
	}

	m.store = msg.Outcome.Apply(m.store)
	if msg.Outcome.Kind == form.Inserted {
		m.notice = info("created %s", msg.Outcome.Contact.FullName())
		m.cursor = m.store.Len() - 1
	} else {
		m.notice = info("updated %s", msg.Outcome.Contact.FullName())
	}
	m.syncInputs()
	cmd := m.focusInput(0)

	return m, cmd
}

func (m Model) applyDeleted(msg DeletedMsg) Model {
	m.busy = false
	if msg.Err != nil {
		m.notice = failure("deleting", msg.Err)

		return m
	}

	m.store = msg.Store
	m.cursor = clampCursor(m.cursor, m.store.Len())
	m.notice = info("deleted contact %s", msg.ID)
	if m.controller.Mode() == form.ModeEdit && m.controller.Draft().ID == msg.ID {
		m.controller = m.controller.Reset()
		m.syncInputs()
	}

	return m
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.listKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.listKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.listKeys.Down):
		if m.cursor < m.store.Len()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.listKeys.Tab):
		return m.enterForm()
	case m.busy:
		return m, nil
	case key.Matches(msg, m.listKeys.New):
		m.controller = m.controller.Reset()
		m.syncInputs()

		return m.enterForm()
	case key.Matches(msg, m.listKeys.Edit):
		controller, err := listview.EditIntent(m.store, m.cursor, m.controller)
		if err != nil {
			return m, nil
		}
		m.controller = controller
		m.syncInputs()

		return m.enterForm()
	case key.Matches(msg, m.listKeys.Delete):
		return m.deleteSelected()
	case key.Matches(msg, m.listKeys.Refresh):
		m.busy = true

		return m, m.load(false)
	case key.Matches(msg, m.listKeys.Seed):
		m.busy = true

		return m, m.load(true)
	}

	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.formKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.formKeys.Back):
		m.focus = PaneList
		m.inputs[m.active].Blur()

		return m, nil
	case key.Matches(msg, m.formKeys.Next):
		cmd := m.focusInput((m.active + 1) % len(m.inputs))

		return m, cmd
	case key.Matches(msg, m.formKeys.Prev):
		cmd := m.focusInput((m.active - 1 + len(m.inputs)) % len(m.inputs))

		return m, cmd
	case m.busy:
		return m, nil
	case key.Matches(msg, m.formKeys.Reset):
		m.controller = m.controller.Reset()
		m.syncInputs()
		cmd := m.focusInput(0)

		return m, cmd
	case key.Matches(msg, m.formKeys.Submit):
		m.busy = true

		return m, m.submit()
	}

	var cmd tea.Cmd
	m.inputs[m.active], cmd = m.inputs[m.active].Update(msg)
	if next, err := m.controller.SetField(m.fields[m.active].Path, m.inputs[m.active].Value()); err == nil {
		m.controller = next
	}

	return m, cmd
}

func (m Model) enterForm() (tea.Model, tea.Cmd) {
	m.focus = PaneForm
	cmd := m.focusInput(m.active)

	return m, cmd
}

// focusInput moves the cursor to input i. Inputs are value types, so the
// change lands on m.inputs only because m is returned by the caller.
func (m *Model) focusInput(i int) tea.Cmd {
	m.inputs[m.active].Blur()
	m.active = i
	if m.focus != PaneForm {
		return nil
	}

	return m.inputs[i].Focus()
}

func (m *Model) syncInputs() {
	draft := m.controller.Draft()
	for i, f := range m.fields {
		m.inputs[i].SetValue(f.Get(&draft))
	}
}

func (m Model) deleteSelected() (tea.Model, tea.Cmd) {
	selected, ok := m.store.At(m.cursor)
	if !ok {
		return m, nil
	}
	m.busy = true
	ctx, api, store := m.ctx, m.api, m.store

	return m, func() tea.Msg {
		next, err := listview.DeleteIntent(ctx, store, selected.ID, api)

		return DeletedMsg{ID: selected.ID, Store: next, Err: err}
	}
}

func (m Model) submit() tea.Cmd {
	ctx, api, controller := m.ctx, m.api, m.controller

	return func() tea.Msg {
		next, outcome, err := controller.Submit(ctx, api)

		return SubmittedMsg{Controller: next, Outcome: outcome, Err: err}
	}
}

func (m Model) load(seed bool) tea.Cmd {
	ctx, api := m.ctx, m.api

	return func() tea.Msg {
		fetch := api.List
		if seed {
			fetch = api.Seed
		}
		contacts, err := fetch(ctx)

		return ContactsLoadedMsg{Contacts: contacts, Seeded: seed, Err: err}
	}
}

func clampCursor(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		return 0
	}

	return cursor
}

// contentHeight returns the usable height for pane content,
// accounting for border chrome, the notification and the help bar.
func (m Model) contentHeight() int {
	h := m.height - borderChrome - helpBarHeight - noticeHeight
	if h < 1 {
		return 1
	}

	return h
}

// View renders both panes, the notification and the help bar.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	listWidth, formWidth := PaneWidths(m.width)
	contentHeight := m.contentHeight()

	listStyle, formStyle := FocusedBorder(), UnfocusedBorder()
	if m.focus == PaneForm {
		listStyle, formStyle = UnfocusedBorder(), FocusedBorder()
	}

	listPane := listStyle.
		Width(listWidth - borderChrome).
		Height(contentHeight).
		Render(m.viewList(contentHeight))
	formPane := formStyle.
		Width(formWidth - borderChrome).
		Height(contentHeight).
		Render(m.viewForm())
	panes := lipgloss.JoinHorizontal(lipgloss.Top, listPane, formPane)

	var keys help.KeyMap = m.listKeys
	if m.focus == PaneForm {
		keys = m.formKeys
	}

	return lipgloss.JoinVertical(lipgloss.Left, panes, m.notice.View(), m.help.View(keys))
}
