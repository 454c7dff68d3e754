package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Withdrawal statuses as stored in the database. The Spanish values are
// the product's canonical ones and are shared with the admin frontend.
const (
	WithdrawalStatusPending    = "Pendiente"
	WithdrawalStatusProcessing = "Procesando"
	WithdrawalStatusCompleted  = "Completado"
	WithdrawalStatusRejected   = "Rechazado"
)

type Withdrawal struct {
	ID            int64           `json:"id" db:"id"`
	UserID        int64           `json:"user_id" db:"user_id"`
	BankAccountID int64           `json:"bank_account_id" db:"bank_account_id"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Status        string          `json:"status" db:"status"`
	AdminNotes    *string         `json:"admin_notes,omitempty" db:"admin_notes"`
	ProofRef      *string         `json:"proof_ref,omitempty" db:"proof_ref"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

type WithdrawalRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	BankAccountID int64           `json:"bank_account_id"`
	Notes         string          `json:"notes,omitempty"`
}

// IsTerminal reports whether no further transition is allowed from status.
func IsTerminal(status string) bool {
	return status == WithdrawalStatusCompleted || status == WithdrawalStatusRejected
}
