package handlers

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/a2sh3r/creator-wallet/internal/apperrors"
	"github.com/a2sh3r/creator-wallet/internal/logger"
)

// writeServiceError maps service-layer errors onto HTTP status codes.
// Not-found and foreign-resource cases share one generic message on
// purpose.
func writeServiceError(w http.ResponseWriter, err error) {
	var vErr *apperrors.ValidationError
	var scErr *apperrors.StateConflictError
	var cErr *apperrors.ConstraintError

	switch {
	case errors.As(err, &vErr):
		http.Error(w, strings.Join(vErr.Messages, "; "), http.StatusBadRequest)
	case errors.As(err, &scErr):
		http.Error(w, scErr.Error(), http.StatusConflict)
	case errors.As(err, &cErr):
		http.Error(w, cErr.Message, http.StatusConflict)
	case errors.Is(err, apperrors.ErrWithdrawalNotFound),
		errors.Is(err, apperrors.ErrBankAccountNotFound),
		errors.Is(err, apperrors.ErrAlertNotFound),
		errors.Is(err, apperrors.ErrUserNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrPendingCapReached):
		http.Error(w, "too many unresolved withdrawal requests", http.StatusConflict)
	case errors.Is(err, apperrors.ErrBankAccountInUse):
		http.Error(w, "bank account has associated withdrawals", http.StatusConflict)
	case errors.Is(err, apperrors.ErrProofRequired):
		http.Error(w, "proof of payment is required", http.StatusBadRequest)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("unexpected service error", zap.Error(err))
	}
}
