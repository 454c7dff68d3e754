package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/a2sh3r/creator-wallet/internal/models"
)

const (
	MaxNotesLength           = 500
	MinRejectionReasonLength = 10
	MaxRejectionReasonLength = 1000
	MaxProofFileBytes        = 5 * 1024 * 1024
	MinCLABEDigits           = 10
	MinSWIFTLength           = 6
	MinAccountNumberLength   = 4
)

var (
	MinWithdrawalAmount = decimal.RequireFromString("100")
	MaxWithdrawalAmount = decimal.RequireFromString("999999.99")
)

var injectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<script`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)on\w+=`),
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

var allowedProofMIME = map[string]string{
	"application/pdf": ".pdf",
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
}

// Result reports the outcome of a validation. Expected invalid input is
// never an error; it is a Result with Valid=false.
type Result struct {
	Valid  bool
	Errors []string
}

func valid() Result {
	return Result{Valid: true}
}

func invalid(errs ...string) Result {
	return Result{Valid: false, Errors: errs}
}

func containsInjection(s string) bool {
	for _, p := range injectionPatterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// ValidateWithdrawalAmount accepts amounts between 100.00 and 999999.99
// inclusive with at most two decimal places.
func ValidateWithdrawalAmount(amount decimal.Decimal) Result {
	var errs []string

	if amount.LessThanOrEqual(decimal.Zero) {
		return invalid("el monto debe ser mayor a cero")
	}
	if amount.LessThan(MinWithdrawalAmount) {
		errs = append(errs, fmt.Sprintf("el monto mínimo de retiro es $%s USD", MinWithdrawalAmount.StringFixed(2)))
	}
	if amount.GreaterThan(MaxWithdrawalAmount) {
		errs = append(errs, fmt.Sprintf("el monto máximo de retiro es $%s USD", MaxWithdrawalAmount.StringFixed(2)))
	}
	if !amount.Equal(amount.Round(2)) {
		errs = append(errs, "el monto no puede tener más de dos decimales")
	}

	if len(errs) > 0 {
		return invalid(errs...)
	}
	return valid()
}

// ValidateWithdrawalRequest composes the amount check with bank-account
// and notes checks.
func ValidateWithdrawalRequest(req models.WithdrawalRequest) Result {
	res := ValidateWithdrawalAmount(req.Amount)
	errs := res.Errors

	if req.BankAccountID <= 0 {
		errs = append(errs, "se requiere una cuenta bancaria de destino")
	}

	if utf8.RuneCountInString(req.Notes) > MaxNotesLength {
		errs = append(errs, fmt.Sprintf("las notas no pueden exceder %d caracteres", MaxNotesLength))
	}
	if containsInjection(req.Notes) {
		errs = append(errs, "las notas contienen contenido no permitido")
	}

	if len(errs) > 0 {
		return invalid(errs...)
	}
	return valid()
}

func ValidateRejectionReason(reason string) Result {
	var errs []string

	length := utf8.RuneCountInString(strings.TrimSpace(reason))
	if length < MinRejectionReasonLength {
		errs = append(errs, fmt.Sprintf("el motivo de rechazo debe tener al menos %d caracteres", MinRejectionReasonLength))
	}
	if length > MaxRejectionReasonLength {
		errs = append(errs, fmt.Sprintf("el motivo de rechazo no puede exceder %d caracteres", MaxRejectionReasonLength))
	}
	if containsInjection(reason) {
		errs = append(errs, "el motivo de rechazo contiene contenido no permitido")
	}

	if len(errs) > 0 {
		return invalid(errs...)
	}
	return valid()
}

// ValidateProofFile checks a proof-of-payment upload by extension, MIME
// type and size. Only PDF, JPEG and PNG are accepted.
func ValidateProofFile(name string, size int64, mimeType string) Result {
	var errs []string

	ext := strings.ToLower(name[strings.LastIndex(name, ".")+1:])
	switch ext {
	case "pdf", "jpg", "jpeg", "png":
	default:
		errs = append(errs, "solo se permiten archivos PDF, JPEG o PNG")
	}

	if _, ok := allowedProofMIME[strings.ToLower(mimeType)]; !ok {
		errs = append(errs, fmt.Sprintf("tipo de archivo no permitido: %s", mimeType))
	}

	if size <= 0 {
		errs = append(errs, "el archivo está vacío")
	}
	if size > MaxProofFileBytes {
		errs = append(errs, "el archivo no puede exceder 5MB")
	}

	if len(errs) > 0 {
		return invalid(errs...)
	}
	return valid()
}

// allowedTransitions is the full state machine: Completado and
// Rechazado are terminal.
var allowedTransitions = map[string][]string{
	models.WithdrawalStatusPending:    {models.WithdrawalStatusProcessing, models.WithdrawalStatusRejected},
	models.WithdrawalStatusProcessing: {models.WithdrawalStatusCompleted, models.WithdrawalStatusRejected},
	models.WithdrawalStatusCompleted:  {},
	models.WithdrawalStatusRejected:   {},
}

func ValidateStateTransition(current, next string) Result {
	targets, ok := allowedTransitions[current]
	if !ok {
		return invalid(fmt.Sprintf("estado desconocido: %s", current))
	}
	for _, t := range targets {
		if t == next {
			return valid()
		}
	}
	return invalid(fmt.Sprintf("transición no permitida: %s → %s", current, next))
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// ValidateBankAccount applies the kind-specific rules. The rules are
// deliberately lenient: CLABE length and SWIFT format are not enforced
// beyond minimums, to keep parity with accounts accepted historically.
func ValidateBankAccount(acc models.BankAccount) Result {
	var errs []string

	if strings.TrimSpace(acc.HolderName) == "" {
		errs = append(errs, "se requiere el nombre del titular")
	}

	switch acc.Kind {
	case models.BankAccountKindDomestic:
		if acc.BankName == nil || strings.TrimSpace(*acc.BankName) == "" {
			errs = append(errs, "se requiere el nombre del banco")
		}
		if acc.CLABE == nil || digitCount(*acc.CLABE) < MinCLABEDigits {
			errs = append(errs, fmt.Sprintf("la CLABE debe tener al menos %d dígitos", MinCLABEDigits))
		}
	case models.BankAccountKindInternational:
		if acc.Country == nil || strings.TrimSpace(*acc.Country) == "" {
			errs = append(errs, "se requiere el país")
		}
		if acc.BankName == nil || strings.TrimSpace(*acc.BankName) == "" {
			errs = append(errs, "se requiere el nombre del banco")
		}
		if acc.AccountNumber == nil || len(strings.TrimSpace(*acc.AccountNumber)) < MinAccountNumberLength {
			errs = append(errs, fmt.Sprintf("el número de cuenta debe tener al menos %d caracteres", MinAccountNumberLength))
		}
		if acc.SWIFT == nil || len(strings.TrimSpace(*acc.SWIFT)) < MinSWIFTLength {
			errs = append(errs, fmt.Sprintf("el código SWIFT debe tener al menos %d caracteres", MinSWIFTLength))
		}
	case models.BankAccountKindPayPal:
		if acc.PayPalEmail == nil || !emailPattern.MatchString(strings.TrimSpace(*acc.PayPalEmail)) {
			errs = append(errs, "se requiere un correo de PayPal válido")
		}
	default:
		errs = append(errs, fmt.Sprintf("tipo de cuenta desconocido: %s", acc.Kind))
	}

	if len(errs) > 0 {
		return invalid(errs...)
	}
	return valid()
}
