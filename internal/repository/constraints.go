package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/a2sh3r/creator-wallet/internal/apperrors"
)

const uniqueViolationCode = "23505"

// translateConstraintError maps postgres unique-violation errors onto
// field-specific application errors. Anything else passes through.
func translateConstraintError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return err
	}

	switch pgErr.ConstraintName {
	case "users_email_key":
		return apperrors.ErrUserAlreadyExists
	case "bank_accounts_clabe_key":
		return &apperrors.ConstraintError{Field: "clabe", Message: "la CLABE ya está registrada"}
	case "bank_accounts_account_number_key":
		return &apperrors.ConstraintError{Field: "account_number", Message: "el número de cuenta ya está registrado"}
	case "bank_accounts_paypal_email_key":
		return &apperrors.ConstraintError{Field: "paypal_email", Message: "el correo de PayPal ya está registrado"}
	case "bank_accounts_one_default_per_user":
		return &apperrors.ConstraintError{Field: "is_default", Message: "ya existe una cuenta predeterminada"}
	}
	return err
}
