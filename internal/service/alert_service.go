package service

import (
	"context"

	"github.com/a2sh3r/creator-wallet/internal/models"
	"github.com/a2sh3r/creator-wallet/internal/repository"
)

type AlertService interface {
	ListUnresolvedForAdmin(ctx context.Context, adminID int64) ([]models.Alert, error)
	ListByWithdrawal(ctx context.Context, adminID, withdrawalID int64) ([]models.Alert, error)
	Resolve(ctx context.Context, adminID, alertID int64) error
}

type alertService struct {
	alerts      repository.AlertRepository
	withdrawals repository.WithdrawalRepository
}

func NewAlertService(alerts repository.AlertRepository, withdrawals repository.WithdrawalRepository) AlertService {
	return &alertService{alerts: alerts, withdrawals: withdrawals}
}

func (s *alertService) ListUnresolvedForAdmin(ctx context.Context, adminID int64) ([]models.Alert, error) {
	return s.alerts.ListUnresolvedForAdmin(ctx, adminID)
}

// ListByWithdrawal resolves the withdrawal through the admin assignment
// first, so alerts on unassigned artists stay invisible.
func (s *alertService) ListByWithdrawal(ctx context.Context, adminID, withdrawalID int64) ([]models.Alert, error) {
	if _, err := s.withdrawals.GetByIDForAdmin(ctx, withdrawalID, adminID); err != nil {
		return nil, err
	}
	return s.alerts.ListByWithdrawal(ctx, withdrawalID)
}

func (s *alertService) Resolve(ctx context.Context, adminID, alertID int64) error {
	return s.alerts.Resolve(ctx, alertID, adminID)
}
