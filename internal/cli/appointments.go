package cli

import (
	"context"
	"fmt"

	"github.com/Emilio24-dev/Laboratorio/internal/model"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)
)

// AppointmentLister returns every stored appointment.
type AppointmentLister interface {
	ListAppointments(ctx context.Context) ([]model.Appointment, error)
}

type appointmentItem struct {
	appt model.Appointment
}

func (i appointmentItem) Title() string {
	return fmt.Sprintf("%s %s  %s", i.appt.Date, i.appt.Time, i.appt.PatientName)
}

func (i appointmentItem) Description() string {
	return fmt.Sprintf("#%d | %s | %s", i.appt.ID, i.appt.DoctorName, i.appt.Email)
}

func (i appointmentItem) FilterValue() string {
	return i.appt.PatientName + " " + i.appt.DoctorName + " " + i.appt.Date
}

type AppointmentListModel struct {
	list     list.Model
	quitting bool
}

func (m AppointmentListModel) Init() tea.Cmd {
	return nil
}

func (m AppointmentListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m AppointmentListModel) View() string {
	if m.quitting {
		return ""
	}

	return docStyle.Render(m.list.View())
}

// Len returns the number of appointments shown.
func (m AppointmentListModel) Len() int {
	return len(m.list.Items())
}

func NewAppointmentList(ctx context.Context, lister AppointmentLister) (AppointmentListModel, error) {
	appts, err := lister.ListAppointments(ctx)
	if err != nil {
		return AppointmentListModel{}, err
	}

	items := make([]list.Item, len(appts))
	for i, appt := range appts {
		items[i] = appointmentItem{appt: appt}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Appointments"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)

	return AppointmentListModel{list: l}, nil
}
