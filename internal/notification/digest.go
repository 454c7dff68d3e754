package notification

import (
	"fmt"
	"html"
	"strings"

	"github.com/a2sh3r/creator-wallet/internal/models"
)

// alertTypeTitles renders the closed alert-type set for the digest.
// Keeping the mapping here is the single place outside the detector
// that switches on alert types.
var alertTypeTitles = map[models.AlertType]string{
	models.AlertTypeHighAmount:          "Monto alto",
	models.AlertTypeMultipleWithdrawals: "Retiros múltiples",
	models.AlertTypeSuspiciousPattern:   "Patrón sospechoso",
	models.AlertTypeNewAccount:          "Cuenta nueva",
}

func AlertDigestSubject(w *models.Withdrawal) string {
	return fmt.Sprintf("Alertas en solicitud de retiro #%d", w.ID)
}

// FormatAlertDigest renders the admin notification body for a flagged
// withdrawal.
func FormatAlertDigest(w *models.Withdrawal, alerts []models.Alert) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("<h2>Solicitud de retiro #%d</h2>", w.ID))
	b.WriteString(fmt.Sprintf("<p>Monto solicitado: <strong>$%s USD</strong></p>", w.Amount.StringFixed(2)))
	b.WriteString("<ul>")
	for _, a := range alerts {
		title, ok := alertTypeTitles[a.Type]
		if !ok {
			title = string(a.Type)
		}
		b.WriteString(fmt.Sprintf("<li><strong>%s</strong> (%s): %s</li>",
			html.EscapeString(title), html.EscapeString(a.Level), html.EscapeString(a.Message)))
	}
	b.WriteString("</ul>")
	b.WriteString("<p>Revise la solicitud en el panel de administración.</p>")

	return b.String()
}
