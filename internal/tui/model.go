package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/weathercard/backend/internal/domain"
	"github.com/weathercard/backend/internal/service"
	"github.com/weathercard/backend/pkg/utils"
)

const (
	minWidth = 24
	maxWidth = 64

	welcomeText = "Enter a city name to see the current weather"
	loadingText = "Fetching weather…"
)

// lookupDoneMsg carries the resolved state of a background lookup
type lookupDoneMsg struct {
	state domain.SearchState
}

// Model is the bubbletea model for the weather widget
type Model struct {
	ctx    context.Context
	search *service.SearchController
	theme  *service.ThemeService

	input   textinput.Model
	spinner spinner.Model
	styles  styles
	state   domain.SearchState
	dark    bool
	width   int
}

// New creates the widget model. ctx bounds lookups started from the UI.
func New(ctx context.Context, search *service.SearchController, theme *service.ThemeService) Model {
	ti := textinput.New()
	ti.Placeholder = "City name"
	ti.Prompt = "› "
	ti.CharLimit = 100
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	dark := theme.Dark()
	st := newStyles(dark)
	sp.Style = st.spinner

	return Model{
		ctx:     ctx,
		search:  search,
		theme:   theme,
		input:   ti,
		spinner: sp,
		styles:  st,
		state:   search.State(),
		dark:    dark,
		width:   maxWidth,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = utils.Clamp(msg.Width-4, minWidth, maxWidth)
		m.input.Width = m.width - 4
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case lookupDoneMsg:
		// a dismissed lookup resolves to whatever is current, possibly a newer Loading
		m.state = msg.state
		if m.state.Loading() {
			return m, nil
		}
		if m.state.Phase == domain.PhaseSuccess {
			m.input.SetValue("")
		}
		return m, m.input.Focus()

	case spinner.TickMsg:
		if !m.state.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "ctrl+t":
		dark, err := m.theme.Toggle(m.ctx)
		if err != nil {
			log.Warn().Err(err).Msg("theme change not saved")
		}
		m.setDark(dark)
		return m, nil

	case "esc":
		m.state = m.search.Dismiss()
		return m, m.input.Focus()

	case "enter":
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.state = m.search.SetQuery(m.input.Value())
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.state.Loading() {
		return m, nil
	}

	m.search.SetQuery(m.input.Value())
	state, done, err := m.search.SubmitAsync(m.ctx)
	if errors.Is(err, domain.ErrLookupInFlight) {
		return m, nil
	}
	m.state = state

	if !state.Loading() {
		return m, nil
	}

	m.input.Blur()
	return m, tea.Batch(m.spinner.Tick, waitForLookup(done))
}

func (m *Model) setDark(dark bool) {
	m.dark = dark
	m.styles = newStyles(dark)
	m.spinner.Style = m.styles.spinner
}

func waitForLookup(done <-chan domain.SearchState) tea.Cmd {
	return func() tea.Msg {
		return lookupDoneMsg{state: <-done}
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("Weather"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.state.Loading():
		b.WriteString(m.spinner.View() + " " + m.styles.muted.Render(loadingText))
	case m.state.Error != nil:
		b.WriteString(m.styles.banner.Render(m.state.Error.Message))
	case m.state.Result != nil:
		b.WriteString(m.renderCard(m.state.Result.Card()))
	default:
		b.WriteString(m.styles.muted.Render(welcomeText))
	}

	theme := "light"
	if m.dark {
		theme = "dark"
	}
	b.WriteString("\n\n")
	b.WriteString(m.styles.muted.Render(fmt.Sprintf("enter search • esc clear • ctrl+t theme (%s) • ctrl+c quit", theme)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderCard(card domain.Card) string {
	lines := []string{
		m.styles.title.Render(card.Title),
		m.styles.temp.Render(fmt.Sprintf("%d°C", card.Temperature)) + "  " + m.styles.text.Render(card.Description),
		m.styles.muted.Render(card.FeelsLike),
		"",
		m.styles.text.Render("Humidity  " + card.Humidity),
		m.styles.text.Render("Pressure  " + card.Pressure),
		m.styles.text.Render("Wind      " + card.WindSpeed),
	}
	return m.styles.card.Render(strings.Join(lines, "\n"))
}
