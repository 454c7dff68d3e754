package models

import "time"

// AlertType is a closed set; the detector and the email digest both
// switch on these constants.
type AlertType string

const (
	AlertTypeHighAmount          AlertType = "MONTO_ALTO"
	AlertTypeMultipleWithdrawals AlertType = "RETIROS_MULTIPLES"
	AlertTypeSuspiciousPattern   AlertType = "PATRON_SOSPECHOSO"
	AlertTypeNewAccount          AlertType = "CUENTA_NUEVA"
)

const (
	AlertLevelWarning = "warning"
	AlertLevelDanger  = "danger"
)

type Alert struct {
	ID           int64     `json:"id" db:"id"`
	WithdrawalID int64     `json:"withdrawal_id" db:"withdrawal_id"`
	Type         AlertType `json:"type" db:"type"`
	Level        string    `json:"level" db:"level"`
	Message      string    `json:"message" db:"message"`
	Resolved     bool      `json:"resolved" db:"resolved"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
