package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/a2sh3r/creator-wallet/internal/apperrors"
	"github.com/a2sh3r/creator-wallet/internal/logger"
	"github.com/a2sh3r/creator-wallet/internal/models"
	"github.com/a2sh3r/creator-wallet/internal/notification"
	"github.com/a2sh3r/creator-wallet/internal/repository"
	"github.com/a2sh3r/creator-wallet/internal/validation"
)

// AlertDetector evaluates risk rules for a persisted withdrawal.
type AlertDetector interface {
	Detect(ctx context.Context, w *models.Withdrawal) ([]models.Alert, error)
}

type WithdrawalService interface {
	Create(ctx context.Context, userID int64, req models.WithdrawalRequest) (*models.Withdrawal, []models.Alert, error)
	Approve(ctx context.Context, adminID, withdrawalID int64) error
	Reject(ctx context.Context, adminID, withdrawalID int64, reason string) error
	Complete(ctx context.Context, adminID, withdrawalID int64, proofRef string) error
	ListByUser(ctx context.Context, userID int64) ([]models.Withdrawal, error)
	ListForAdmin(ctx context.Context, adminID int64) ([]models.Withdrawal, error)
}

type withdrawalService struct {
	withdrawals repository.WithdrawalRepository
	accounts    repository.BankAccountRepository
	users       repository.UserRepository
	detector    AlertDetector
	sender      notification.Sender
	pendingCap  int
}

func NewWithdrawalService(
	withdrawals repository.WithdrawalRepository,
	accounts repository.BankAccountRepository,
	users repository.UserRepository,
	detector AlertDetector,
	sender notification.Sender,
	pendingCap int,
) WithdrawalService {
	return &withdrawalService{
		withdrawals: withdrawals,
		accounts:    accounts,
		users:       users,
		detector:    detector,
		sender:      sender,
		pendingCap:  pendingCap,
	}
}

// Create validates the request, verifies account ownership, inserts the
// withdrawal under the pending cap and runs the alert detector. An
// admin notification goes out only for risky requests, so routine ones
// don't drown the inbox.
func (s *withdrawalService) Create(ctx context.Context, userID int64, req models.WithdrawalRequest) (*models.Withdrawal, []models.Alert, error) {
	if res := validation.ValidateWithdrawalRequest(req); !res.Valid {
		return nil, nil, apperrors.NewValidationError(res.Errors)
	}

	if _, err := s.accounts.GetByIDForUser(ctx, req.BankAccountID, userID); err != nil {
		return nil, nil, err
	}

	w := &models.Withdrawal{
		UserID:        userID,
		BankAccountID: req.BankAccountID,
		Amount:        req.Amount,
	}
	if req.Notes != "" {
		notes := req.Notes
		w.AdminNotes = &notes
	}

	created, err := s.withdrawals.Create(ctx, w, s.pendingCap)
	if err != nil {
		return nil, nil, err
	}

	alerts, err := s.detector.Detect(ctx, created)
	if err != nil {
		// The withdrawal exists; alerting is best effort from here.
		logger.Log.Error("alert detection failed",
			zap.Int64("withdrawal_id", created.ID), zap.Error(err))
		return created, nil, nil
	}

	if shouldNotify(alerts) {
		s.notifyAdmins(ctx, created, alerts)
	}

	return created, alerts, nil
}

// shouldNotify gates the admin email: any danger-level alert, or more
// than two alerts overall.
func shouldNotify(alerts []models.Alert) bool {
	if len(alerts) > 2 {
		return true
	}
	for _, a := range alerts {
		if a.Level == models.AlertLevelDanger {
			return true
		}
	}
	return false
}

func (s *withdrawalService) notifyAdmins(ctx context.Context, w *models.Withdrawal, alerts []models.Alert) {
	emails, err := s.users.GetAdminEmailsForArtist(ctx, w.UserID)
	if err != nil {
		logger.Log.Error("failed to resolve admin recipients",
			zap.Int64("withdrawal_id", w.ID), zap.Error(err))
		return
	}
	if len(emails) == 0 {
		logger.Log.Warn("no admins assigned to artist, skipping notification",
			zap.Int64("user_id", w.UserID))
		return
	}

	subject := notification.AlertDigestSubject(w)
	body := notification.FormatAlertDigest(w, alerts)
	if err := s.sender.Send(ctx, emails, subject, body); err != nil {
		logger.Log.Error("failed to send admin notification",
			zap.Int64("withdrawal_id", w.ID), zap.Error(err))
	}
}

func (s *withdrawalService) Approve(ctx context.Context, adminID, withdrawalID int64) error {
	return s.transition(ctx, adminID, withdrawalID, models.WithdrawalStatusProcessing, nil, nil)
}

func (s *withdrawalService) Reject(ctx context.Context, adminID, withdrawalID int64, reason string) error {
	if res := validation.ValidateRejectionReason(reason); !res.Valid {
		return apperrors.NewValidationError(res.Errors)
	}
	return s.transition(ctx, adminID, withdrawalID, models.WithdrawalStatusRejected, &reason, nil)
}

func (s *withdrawalService) Complete(ctx context.Context, adminID, withdrawalID int64, proofRef string) error {
	if proofRef == "" {
		return apperrors.ErrProofRequired
	}
	return s.transition(ctx, adminID, withdrawalID, models.WithdrawalStatusCompleted, nil, &proofRef)
}

func (s *withdrawalService) transition(ctx context.Context, adminID, withdrawalID int64, to string, notes, proofRef *string) error {
	w, err := s.withdrawals.GetByIDForAdmin(ctx, withdrawalID, adminID)
	if err != nil {
		return err
	}

	if res := validation.ValidateStateTransition(w.Status, to); !res.Valid {
		return &apperrors.StateConflictError{From: w.Status, To: to}
	}

	return s.withdrawals.Transition(ctx, withdrawalID, w.Status, to, notes, proofRef)
}

func (s *withdrawalService) ListByUser(ctx context.Context, userID int64) ([]models.Withdrawal, error) {
	return s.withdrawals.ListByUser(ctx, userID)
}

func (s *withdrawalService) ListForAdmin(ctx context.Context, adminID int64) ([]models.Withdrawal, error) {
	return s.withdrawals.ListForAdmin(ctx, adminID)
}
