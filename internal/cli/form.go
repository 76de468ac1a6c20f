package cli

import (
	"context"
	"fmt"

	"github.com/Emilio24-dev/Laboratorio/internal/core"
	"github.com/Emilio24-dev/Laboratorio/internal/model"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const fmtV1 = " %s\n %s\n\n"

var (
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle  = focusedStyle
	noStyle      = lipgloss.NewStyle()
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

	focusedButton = focusedStyle.Render("[ Submit ]")
	blurredButton = fmt.Sprintf("[ %s ]", blurredStyle.Render("Submit"))
)

// Form field order.
const (
	fieldPatient = iota
	fieldDoctor
	fieldDate
	fieldTime
	fieldEmail
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldPatient: "Patient Name:",
	fieldDoctor:  "Doctor Name:",
	fieldDate:    "Date (YYYY-MM-DD):",
	fieldTime:    "Time (HH:MM):",
	fieldEmail:   "Email:",
}

// Booking registers appointments and sends their confirmations.
type Booking interface {
	Register(ctx context.Context, req core.BookingRequest) (*model.Appointment, error)
	Confirm(ctx context.Context, appt *model.Appointment) error
}

type (
	registeredMsg     struct{ appt *model.Appointment }
	registerFailedMsg struct{ err error }
	confirmedMsg      struct{}
	confirmFailedMsg  struct{ err error }
)

// BookingFormModel collects a new appointment. Registration and the
// confirmation email run as commands so the screen stays responsive.
type BookingFormModel struct {
	ctx        context.Context
	booking    Booking
	focusIndex int
	inputs     []textinput.Model

	busy   bool
	status string
	dialog *dialog

	// Appointment is set once the booking has been stored.
	Appointment *model.Appointment

	// Err is the last registration or confirmation failure.
	Err error

	done bool
}

func NewBookingForm(ctx context.Context, booking Booking) *BookingFormModel {
	m := &BookingFormModel{
		ctx:     ctx,
		booking: booking,
		inputs:  make([]textinput.Model, fieldCount),
	}

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = cursorStyle
		t.CharLimit = 128

		switch i {
		case fieldPatient:
			t.Placeholder = "Ana Pérez"
			t.Focus()
			t.PromptStyle = focusedStyle
			t.TextStyle = focusedStyle
		case fieldDoctor:
			t.Placeholder = "Dr. Ruiz"
		case fieldDate:
			t.Placeholder = "2025-01-10"
			t.CharLimit = 10
		case fieldTime:
			t.Placeholder = "10:00"
			t.CharLimit = 5
		case fieldEmail:
			t.Placeholder = "ana@example.com"
			t.CharLimit = 254
		}

		m.inputs[i] = t
	}

	return m
}

func (m *BookingFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Done reports whether the form has finished, successfully or not.
func (m *BookingFormModel) Done() bool {
	return m.done
}

func (m *BookingFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case registeredMsg:
		m.Appointment = msg.appt
		m.status = fmt.Sprintf("Appointment #%d saved. Sending confirmation to %s...", msg.appt.ID, msg.appt.Email)

		return m, m.confirm(msg.appt)

	case registerFailedMsg:
		m.busy = false
		m.status = ""
		m.Err = msg.err
		d := dialogFor(msg.err)
		m.dialog = &d

		return m, nil

	case confirmedMsg:
		m.busy = false
		m.done = true
		m.status = ""
		m.dialog = &dialog{
			kind: dialogInfo,
			text: fmt.Sprintf("Appointment registered for %s at %s.\nConfirmation sent to %s.",
				m.Appointment.Date, m.Appointment.Time, m.Appointment.Email),
		}

		return m, nil

	case confirmFailedMsg:
		m.busy = false
		m.done = true
		m.status = ""
		m.Err = msg.err
		m.dialog = &dialog{
			kind: dialogError,
			text: fmt.Sprintf("Appointment registered for %s at %s,\nbut the confirmation email could not be sent:\n%v",
				m.Appointment.Date, m.Appointment.Time, msg.err),
		}

		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.busy {
			return m, nil
		}

		if m.dialog != nil {
			m.dialog = nil

			if m.done {
				return m, tea.Quit
			}

			return m, nil
		}

		switch msg.String() {
		case "esc":
			return m, tea.Quit

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" && m.focusIndex == len(m.inputs) {
				m.busy = true
				m.Err = nil
				m.status = "Registering appointment..."

				return m, m.register(m.request())
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}

			if m.focusIndex > len(m.inputs) {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = len(m.inputs)
			}

			return m, m.focusInputs()
		}
	}

	cmd := m.updateInputs(msg)

	return m, cmd
}

func (m *BookingFormModel) focusInputs() tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))

	for i := range m.inputs {
		if i == m.focusIndex {
			cmds[i] = m.inputs[i].Focus()
			m.inputs[i].PromptStyle = focusedStyle
			m.inputs[i].TextStyle = focusedStyle

			continue
		}

		m.inputs[i].Blur()
		m.inputs[i].PromptStyle = noStyle
		m.inputs[i].TextStyle = noStyle
	}

	return tea.Batch(cmds...)
}

func (m *BookingFormModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))

	// Only focused inputs react to key presses.
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}

	return tea.Batch(cmds...)
}

func (m *BookingFormModel) request() core.BookingRequest {
	return core.BookingRequest{
		PatientName: m.inputs[fieldPatient].Value(),
		DoctorName:  m.inputs[fieldDoctor].Value(),
		Date:        m.inputs[fieldDate].Value(),
		Time:        m.inputs[fieldTime].Value(),
		Email:       m.inputs[fieldEmail].Value(),
	}
}

func (m *BookingFormModel) register(req core.BookingRequest) tea.Cmd {
	return func() tea.Msg {
		appt, err := m.booking.Register(m.ctx, req)
		if err != nil {
			return registerFailedMsg{err: err}
		}

		return registeredMsg{appt: appt}
	}
}

func (m *BookingFormModel) confirm(appt *model.Appointment) tea.Cmd {
	return func() tea.Msg {
		if err := m.booking.Confirm(m.ctx, appt); err != nil {
			return confirmFailedMsg{err: err}
		}

		return confirmedMsg{}
	}
}

func (m *BookingFormModel) View() string {
	s := headerStyle.Render("Register Appointment") + "\n"
	s += blurredStyle.Render("Fill in the fields below and press Tab to navigate") + "\n\n"

	for i := range m.inputs {
		s += fmt.Sprintf(fmtV1, blurredStyle.Render(fieldLabels[i]), m.inputs[i].View())
	}

	button := &blurredButton
	if m.focusIndex == len(m.inputs) {
		button = &focusedButton
	}

	s += fmt.Sprintf("\n %s\n\n", *button)

	if m.status != "" {
		s += " " + blurredStyle.Render(m.status) + "\n\n"
	}

	if m.dialog != nil {
		return s + m.dialog.View() + "\n" + blurredStyle.Render(" press any key to continue")
	}

	s += blurredStyle.Render(" tab/shift+tab: navigate • enter: submit • esc: back")

	return s
}
