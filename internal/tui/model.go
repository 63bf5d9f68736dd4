package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"transit-items-service/internal/api/dto"
	"transit-items-service/internal/client"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// API is the subset of the HTTP client the UI drives.
type API interface {
	ListItems(ctx context.Context) ([]dto.ItemResponse, error)
	CreateItem(ctx context.Context, name, description string) (dto.ItemResponse, error)
	DeleteItem(ctx context.Context, id int) error
	LookupBuses(ctx context.Context, stopName string) (dto.BusStopResponse, error)
}

const requestTimeout = 20 * time.Second

type mode int

const (
	modeBrowse mode = iota
	modeAddName
	modeAddDescription
	modeBusStop
)

type (
	itemsLoadedMsg struct {
		items []dto.ItemResponse
		err   error
	}
	itemCreatedMsg struct {
		item dto.ItemResponse
		err  error
	}
	itemDeletedMsg struct {
		id  int
		err error
	}
	busesLoadedMsg struct {
		res dto.BusStopResponse
		err error
	}
)

// itemEntry adapts an API item to bubbles/list.Item.
type itemEntry struct {
	dto.ItemResponse
}

func (i itemEntry) Title() string { return i.Name }
func (i itemEntry) Description() string {
	if i.ItemResponse.Description == "" {
		return "No description"
	}
	return i.ItemResponse.Description
}
func (i itemEntry) FilterValue() string { return i.Name }

// Single-line rows: "> Name  #id  description".
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(itemEntry)
	if !ok {
		return
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintf(w, "%s%s  %s  %s",
		prefix,
		titleStyle.Render(it.Name),
		accentStyle.Render(fmt.Sprintf("#%d", it.ID)),
		mutedStyle.Render(it.Description()),
	)
}

var (
	addKey    = key.NewBinding(key.WithKeys("n", "a"), key.WithHelp("n", "new item"))
	deleteKey = key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete"))
	stopKey   = key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "bus stop"))
	reloadKey = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh"))
	quitKey   = key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit"))
)

// Model is the single-screen client: the item list, an add-item form and a
// bus lookup form. All state lives here for the life of the program.
type Model struct {
	api   API
	list  list.Model
	input textinput.Model
	mode  mode

	pendingName string
	loading     bool
	err         string
	status      string
	departures  *dto.BusStopResponse
}

func New(api API) Model {
	l := list.New(nil, itemDelegate{}, 80, 14)
	l.Title = "Items"
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.SetShowStatusBar(true)
	l.SetStatusBarItemName("item", "items")
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	extra := func() []key.Binding { return []key.Binding{addKey, deleteKey, stopKey, reloadKey, quitKey} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	return Model{
		api:     api,
		list:    l,
		input:   ti,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadItems()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, max(msg.Height-12, 5))
		return m, nil

	case itemsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = failure("Failed to fetch items", msg.err)
			return m, nil
		}
		m.err = ""
		entries := make([]list.Item, 0, len(msg.items))
		for _, it := range msg.items {
			entries = append(entries, itemEntry{it})
		}
		return m, m.list.SetItems(entries)

	case itemCreatedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = failure("Failed to add item", msg.err)
			return m, nil
		}
		m.err = ""
		m.status = fmt.Sprintf("Added %q", msg.item.Name)
		n := len(m.list.Items())
		cmd := m.list.InsertItem(n, itemEntry{msg.item})
		m.list.Select(n)
		return m, cmd

	case itemDeletedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = failure("Failed to delete item", msg.err)
			return m, nil
		}
		m.err = ""
		m.status = fmt.Sprintf("Deleted item #%d", msg.id)
		// Random ids can repeat, so drop every row carrying this one.
		items := m.list.Items()
		for i := len(items) - 1; i >= 0; i-- {
			if e, ok := items[i].(itemEntry); ok && e.ID == msg.id {
				m.list.RemoveItem(i)
			}
		}
		return m, nil

	case busesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.departures = nil
			m.err = failure("Failed to fetch bus data", msg.err)
			return m, nil
		}
		m.err = ""
		res := msg.res
		m.departures = &res
		return m, nil

	case tea.KeyMsg:
		if m.mode != modeBrowse {
			return m.updateForm(msg)
		}
		return m.updateBrowse(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, quitKey):
		return m, tea.Quit
	case key.Matches(msg, addKey):
		return m, m.openForm(modeAddName, "Item name")
	case key.Matches(msg, stopKey):
		return m, m.openForm(modeBusStop, "Stop name, e.g. Slussen")
	case key.Matches(msg, reloadKey):
		m.loading = true
		return m, m.loadItems()
	case key.Matches(msg, deleteKey):
		sel, ok := m.list.SelectedItem().(itemEntry)
		if !ok {
			return m, nil
		}
		m.loading = true
		return m, m.deleteItem(sel.ID)
	case msg.String() == "esc":
		m.err = ""
		m.status = ""
		m.departures = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeForm()
		return m, nil
	case "enter":
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())

	switch m.mode {
	case modeAddName:
		if value == "" {
			m.err = "Name is required"
			return m, nil
		}
		m.err = ""
		m.pendingName = value
		return m, m.openForm(modeAddDescription, "Description (optional)")

	case modeAddDescription:
		name := m.pendingName
		m.closeForm()
		m.loading = true
		return m, m.createItem(name, value)

	case modeBusStop:
		if value == "" {
			m.err = "Stop name is required"
			return m, nil
		}
		m.closeForm()
		m.loading = true
		return m, m.lookupBuses(value)
	}

	return m, nil
}

func (m *Model) openForm(next mode, placeholder string) tea.Cmd {
	m.mode = next
	m.status = ""
	m.input.Reset()
	m.input.Placeholder = placeholder
	return m.input.Focus()
}

func (m *Model) closeForm() {
	m.mode = modeBrowse
	m.pendingName = ""
	m.input.Reset()
	m.input.Blur()
}

func (m Model) loadItems() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		items, err := api.ListItems(ctx)
		return itemsLoadedMsg{items: items, err: err}
	}
}

func (m Model) createItem(name, description string) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		item, err := api.CreateItem(ctx, name, description)
		return itemCreatedMsg{item: item, err: err}
	}
}

func (m Model) deleteItem(id int) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return itemDeletedMsg{id: id, err: api.DeleteItem(ctx, id)}
	}
}

func (m Model) lookupBuses(stopName string) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		res, err := api.LookupBuses(ctx, stopName)
		return busesLoadedMsg{res: res, err: err}
	}
}

// failure prefers the server's own message (e.g. "No bus stop found for ...")
// over the generic fallback.
func failure(fallback string, err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func (m Model) View() string {
	var b strings.Builder

	if m.err != "" {
		b.WriteString(errorStyle.Render("✖ "+m.err) + "\n\n")
	} else if m.status != "" {
		b.WriteString(successStyle.Render("✔ "+m.status) + "\n\n")
	}

	switch {
	case m.loading && len(m.list.Items()) == 0:
		b.WriteString(mutedStyle.Render("Loading items...") + "\n")
	case len(m.list.Items()) == 0:
		b.WriteString(mutedStyle.Render("No items yet. Press n to add one.") + "\n")
	default:
		b.WriteString(m.list.View() + "\n")
	}

	switch m.mode {
	case modeAddName:
		b.WriteString("\n" + titleStyle.Render("New item") + "\n" + m.input.View() + "\n")
	case modeAddDescription:
		b.WriteString("\n" + titleStyle.Render("New item: "+m.pendingName) + "\n" + m.input.View() + "\n")
	case modeBusStop:
		b.WriteString("\n" + titleStyle.Render("Bus stop") + "\n" + m.input.View() + "\n")
	}
	if m.mode != modeBrowse {
		b.WriteString(helpStyle.Render("enter submit • esc cancel") + "\n")
	}

	if m.loading && len(m.list.Items()) > 0 {
		b.WriteString(mutedStyle.Render("Working...") + "\n")
	}

	if m.departures != nil {
		lines := []string{titleStyle.Render("Departures from " + m.departures.StopName)}
		if len(m.departures.Buses) == 0 {
			lines = append(lines, mutedStyle.Render("No upcoming departures"))
		}
		for _, d := range m.departures.Buses {
			lines = append(lines, departureLine(d.Line, d.Destination, d.DepartureTime))
		}
		b.WriteString("\n" + panel(lines) + "\n")
	}

	return b.String()
}
