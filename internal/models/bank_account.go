package models

import "time"

const (
	BankAccountKindDomestic      = "nacional"
	BankAccountKindInternational = "internacional"
	BankAccountKindPayPal        = "paypal"
)

type BankAccount struct {
	ID                 int64     `json:"id" db:"id"`
	UserID             int64     `json:"-" db:"user_id"`
	Kind               string    `json:"kind" db:"kind"`
	HolderName         string    `json:"holder_name" db:"holder_name"`
	BankName           *string   `json:"bank_name,omitempty" db:"bank_name"`
	CLABE              *string   `json:"clabe,omitempty" db:"clabe"`
	Country            *string   `json:"country,omitempty" db:"country"`
	AccountNumber      *string   `json:"account_number,omitempty" db:"account_number"`
	SWIFT              *string   `json:"swift,omitempty" db:"swift"`
	PayPalEmail        *string   `json:"paypal_email,omitempty" db:"paypal_email"`
	BeneficiaryAddress *string   `json:"beneficiary_address,omitempty" db:"beneficiary_address"`
	BankAddress        *string   `json:"bank_address,omitempty" db:"bank_address"`
	IsDefault          bool      `json:"is_default" db:"is_default"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}
