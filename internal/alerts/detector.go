package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/a2sh3r/creator-wallet/internal/logger"
	"github.com/a2sh3r/creator-wallet/internal/models"
	"github.com/a2sh3r/creator-wallet/internal/repository"
)

// Config holds the detection thresholds. Passed in explicitly so tests
// can tune them per case.
type Config struct {
	HighAmount          decimal.Decimal
	MaxMonthly          int
	FrequencyWindowDays int
	MinDaysBetween      int
	NewAccountDays      int
}

func DefaultConfig() Config {
	return Config{
		HighAmount:          decimal.RequireFromString("50000"),
		MaxMonthly:          1,
		FrequencyWindowDays: 7,
		MinDaysBetween:      7,
		NewAccountDays:      7,
	}
}

// Detector evaluates the risk rules for a freshly created withdrawal
// and persists one alert per finding. The rules are independent; a
// single withdrawal can raise several alerts.
type Detector struct {
	cfg         Config
	withdrawals repository.WithdrawalRepository
	accounts    repository.BankAccountRepository
	alerts      repository.AlertRepository
	now         func() time.Time
}

func NewDetector(cfg Config, withdrawals repository.WithdrawalRepository, accounts repository.BankAccountRepository, alertRepo repository.AlertRepository) *Detector {
	return &Detector{
		cfg:         cfg,
		withdrawals: withdrawals,
		accounts:    accounts,
		alerts:      alertRepo,
		now:         time.Now,
	}
}

func (d *Detector) Detect(ctx context.Context, w *models.Withdrawal) ([]models.Alert, error) {
	var found []models.Alert

	if a := d.checkHighAmount(w); a != nil {
		found = append(found, *a)
	}

	if a, err := d.checkMonthlyCount(ctx, w); err != nil {
		return nil, err
	} else if a != nil {
		found = append(found, *a)
	}

	if a, err := d.checkFrequency(ctx, w); err != nil {
		return nil, err
	} else if a != nil {
		found = append(found, *a)
	}

	if a, err := d.checkNewAccount(ctx, w); err != nil {
		return nil, err
	} else if a != nil {
		found = append(found, *a)
	}

	for i := range found {
		if err := d.alerts.Create(ctx, &found[i]); err != nil {
			return nil, err
		}
		logger.Log.Info("withdrawal alert raised",
			zap.Int64("withdrawal_id", w.ID),
			zap.String("type", string(found[i].Type)),
			zap.String("level", found[i].Level))
	}

	return found, nil
}

func (d *Detector) checkHighAmount(w *models.Withdrawal) *models.Alert {
	if w.Amount.LessThan(d.cfg.HighAmount) {
		return nil
	}
	return &models.Alert{
		WithdrawalID: w.ID,
		Type:         models.AlertTypeHighAmount,
		Level:        models.AlertLevelDanger,
		Message:      fmt.Sprintf("Retiro por monto inusualmente alto: $%s USD", w.Amount.StringFixed(2)),
	}
}

// checkMonthlyCount counts non-rejected withdrawals in the current
// calendar month. The new withdrawal is already persisted, so the count
// includes it and the message carries its ordinal.
func (d *Detector) checkMonthlyCount(ctx context.Context, w *models.Withdrawal) (*models.Alert, error) {
	now := d.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	count, err := d.withdrawals.CountInPeriod(ctx, w.UserID, monthStart, nextMonth)
	if err != nil {
		return nil, err
	}
	if count <= d.cfg.MaxMonthly {
		return nil, nil
	}
	return &models.Alert{
		WithdrawalID: w.ID,
		Type:         models.AlertTypeMultipleWithdrawals,
		Level:        models.AlertLevelWarning,
		Message:      fmt.Sprintf("Este es el retiro número %d del mes para este artista", count),
	}, nil
}

// checkFrequency looks at the two most recent non-rejected withdrawals
// inside the trailing window; if they are closer together than the
// configured gap, the pattern is flagged.
func (d *Detector) checkFrequency(ctx context.Context, w *models.Withdrawal) (*models.Alert, error) {
	since := d.now().UTC().AddDate(0, 0, -d.cfg.FrequencyWindowDays)

	recent, err := d.withdrawals.ListRecentNonRejected(ctx, w.UserID, since, 2)
	if err != nil {
		return nil, err
	}
	if len(recent) < 2 {
		return nil, nil
	}

	gap := recent[0].CreatedAt.Sub(recent[1].CreatedAt)
	if gap >= time.Duration(d.cfg.MinDaysBetween)*24*time.Hour {
		return nil, nil
	}
	return &models.Alert{
		WithdrawalID: w.ID,
		Type:         models.AlertTypeSuspiciousPattern,
		Level:        models.AlertLevelWarning,
		Message:      fmt.Sprintf("Dos retiros con menos de %d días de diferencia", d.cfg.MinDaysBetween),
	}, nil
}

func (d *Detector) checkNewAccount(ctx context.Context, w *models.Withdrawal) (*models.Alert, error) {
	acc, err := d.accounts.GetByID(ctx, w.BankAccountID)
	if err != nil {
		return nil, err
	}

	age := d.now().Sub(acc.CreatedAt)
	if age >= time.Duration(d.cfg.NewAccountDays)*24*time.Hour {
		return nil, nil
	}
	return &models.Alert{
		WithdrawalID: w.ID,
		Type:         models.AlertTypeNewAccount,
		Level:        models.AlertLevelWarning,
		Message:      fmt.Sprintf("La cuenta bancaria de destino fue registrada hace menos de %d días", d.cfg.NewAccountDays),
	}, nil
}
