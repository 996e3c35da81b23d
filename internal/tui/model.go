package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const fetchTimeout = 15 * time.Second

// statsMsg carries one complete fetch of everything the dashboard shows.
type statsMsg struct {
	quotations QuotationStats
	events     EventStats
	health     Health
}

// errMsg reports a failed fetch. The previous data, if any, stays on
// screen.
type errMsg struct {
	err error
}

// refreshDoneMsg reports a completed server-side reload; a fresh fetch
// follows.
type refreshDoneMsg struct {
	err error
}

// SpinnerTickMsg triggers a re-render while a fetch is in flight.
type SpinnerTickMsg struct{}

// DashboardModel is the root bubbletea model of the terminal dashboard.
type DashboardModel struct {
	client *Client

	width  int
	height int

	loading bool
	stats   *statsMsg
	err     error

	search    textinput.Model
	searching bool
	query     string
}

// NewDashboardModel creates the dashboard over the given API client.
func NewDashboardModel(client *Client) *DashboardModel {
	input := textinput.New()
	input.Placeholder = "buscar..."
	input.CharLimit = 80
	input.Width = 30

	return &DashboardModel{
		client:  client,
		loading: true,
		search:  input,
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.fetchCmd(), m.spinnerTick())
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case statsMsg:
		m.loading = false
		m.err = nil
		m.stats = &msg
		return m, nil

	case errMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case refreshDoneMsg:
		if msg.err != nil {
			m.loading = false
			m.err = msg.err
			return m, nil
		}
		return m, m.fetchCmd()

	case SpinnerTickMsg:
		if m.loading {
			return m, m.spinnerTick()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *DashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.Type {
		case tea.KeyEsc:
			m.searching = false
			m.search.Blur()
			return m, nil
		case tea.KeyEnter:
			m.searching = false
			m.search.Blur()
			m.query = m.search.Value()
			m.loading = true
			return m, tea.Batch(m.fetchCmd(), m.spinnerTick())
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		m.loading = true
		return m, tea.Batch(m.refreshCmd(), m.spinnerTick())
	case "/":
		m.searching = true
		m.search.SetValue(m.query)
		m.search.Focus()
		return m, textinput.Blink
	case "esc":
		if m.query != "" {
			m.query = ""
			m.loading = true
			return m, tea.Batch(m.fetchCmd(), m.spinnerTick())
		}
	}
	return m, nil
}

// fetchCmd pulls everything the dashboard renders in one command.
func (m *DashboardModel) fetchCmd() tea.Cmd {
	query := m.query
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		quotations, err := m.client.QuotationStats(ctx, query)
		if err != nil {
			return errMsg{err}
		}
		events, err := m.client.EventStats(ctx)
		if err != nil {
			return errMsg{err}
		}
		health, err := m.client.Health(ctx)
		if err != nil {
			return errMsg{err}
		}
		return statsMsg{quotations: quotations, events: events, health: health}
	}
}

func (m *DashboardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return refreshDoneMsg{err: m.client.Refresh(ctx)}
	}
}

func (m *DashboardModel) spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(_ time.Time) tea.Msg {
		return SpinnerTickMsg{}
	})
}
