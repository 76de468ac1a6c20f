package notify

import (
	"strings"
	"text/template"
)

// ConfirmationSubject is the subject line of every confirmation.
const ConfirmationSubject = "Confirmación de Cita"

var confirmationBody = template.Must(template.New("confirmation").Parse(`Estimado/a {{.PatientName}},

Su cita ha sido registrada con éxito.

Doctor: {{.DoctorName}}
Fecha: {{.Date}}
Hora: {{.Time}}

¡Feliz Día!
`))

// FormatConfirmation renders the plain-text body for c.
func FormatConfirmation(c *Confirmation) (string, error) {
	var sb strings.Builder

	if err := confirmationBody.Execute(&sb, c); err != nil {
		return "", err
	}

	return sb.String(), nil
}
