package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Emilio24-dev/Laboratorio/internal/core"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var slotStyle = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("42"))

// SlotFinder returns the free times for a date.
type SlotFinder interface {
	FreeSlots(ctx context.Context, date string) ([]string, error)
}

type (
	slotsMsg struct {
		date string
		free []string
	}
	slotsFailedMsg struct{ err error }
)

// AvailabilityModel shows the free hourly slots of one date. The store is
// queried again every time a date is shown.
type AvailabilityModel struct {
	ctx    context.Context
	finder SlotFinder
	now    func() time.Time
	input  textinput.Model

	date   string
	free   []string
	loaded bool
	dialog *dialog
}

func NewAvailability(ctx context.Context, finder SlotFinder, now func() time.Time) *AvailabilityModel {
	if now == nil {
		now = time.Now
	}

	t := textinput.New()
	t.Cursor.Style = cursorStyle
	t.CharLimit = 10
	t.Placeholder = "YYYY-MM-DD"
	t.SetValue(now().Format(core.DateLayout))
	t.Focus()
	t.PromptStyle = focusedStyle
	t.TextStyle = focusedStyle

	return &AvailabilityModel{
		ctx:    ctx,
		finder: finder,
		now:    now,
		input:  t,
	}
}

func (m *AvailabilityModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.query(m.input.Value()))
}

func (m *AvailabilityModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case slotsMsg:
		m.date = msg.date
		m.free = msg.free
		m.loaded = true

		if msg.date < m.now().Format(core.DateLayout) {
			m.dialog = &dialog{kind: dialogWarning, text: fmt.Sprintf("%s is in the past; these slots cannot be booked.", msg.date)}
		}

		return m, nil

	case slotsFailedMsg:
		d := dialogFor(msg.err)
		m.dialog = &d

		return m, nil

	case tea.KeyMsg:
		if m.dialog != nil {
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}

			m.dialog = nil

			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			return m, m.query(m.input.Value())

		case "pgdown", "pgup":
			days := 1
			if msg.String() == "pgup" {
				days = -1
			}

			d, err := time.Parse(core.DateLayout, strings.TrimSpace(m.input.Value()))
			if err != nil {
				d = m.now()
			}

			next := d.AddDate(0, 0, days).Format(core.DateLayout)
			m.input.SetValue(next)

			return m, m.query(next)
		}
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m *AvailabilityModel) query(date string) tea.Cmd {
	return func() tea.Msg {
		free, err := m.finder.FreeSlots(m.ctx, date)
		if err != nil {
			return slotsFailedMsg{err: err}
		}

		d, _ := core.NormalizeDate(date)

		return slotsMsg{date: d, free: free}
	}
}

func (m *AvailabilityModel) View() string {
	s := headerStyle.Render("Available Times") + "\n\n"
	s += fmt.Sprintf(fmtV1, blurredStyle.Render("Date (YYYY-MM-DD):"), m.input.View())

	if m.loaded {
		s += " " + blurredStyle.Render("Free slots on "+m.date+":") + "\n"

		if len(m.free) == 0 {
			s += slotStyle.Foreground(lipgloss.Color("214")).Render("no free slots") + "\n"
		}

		for _, slot := range m.free {
			s += slotStyle.Render(slot) + "\n"
		}

		s += "\n"
	}

	if m.dialog != nil {
		return s + m.dialog.View() + "\n" + blurredStyle.Render(" press any key to continue")
	}

	s += blurredStyle.Render(" enter: show • pgup/pgdown: previous/next day • esc: back")

	return s
}
