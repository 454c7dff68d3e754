package repository

import (
	"context"
	"database/sql"

	"github.com/a2sh3r/creator-wallet/internal/apperrors"
	"github.com/a2sh3r/creator-wallet/internal/logger"
	"github.com/a2sh3r/creator-wallet/internal/models"
	"go.uber.org/zap"
)

type AlertRepository interface {
	Create(ctx context.Context, alert *models.Alert) error
	ListByWithdrawal(ctx context.Context, withdrawalID int64) ([]models.Alert, error)
	ListUnresolvedForAdmin(ctx context.Context, adminID int64) ([]models.Alert, error)
	Resolve(ctx context.Context, alertID, adminID int64) error
}

type alertRepo struct {
	db *sql.DB
}

func NewAlertRepository(db *sql.DB) AlertRepository {
	return &alertRepo{db: db}
}

func (r *alertRepo) Create(ctx context.Context, alert *models.Alert) error {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO alerts (withdrawal_id, type, level, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, resolved, created_at`,
		alert.WithdrawalID, alert.Type, alert.Level, alert.Message)
	return row.Scan(&alert.ID, &alert.Resolved, &alert.CreatedAt)
}

func (r *alertRepo) ListByWithdrawal(ctx context.Context, withdrawalID int64) ([]models.Alert, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, withdrawal_id, type, level, message, resolved, created_at
		FROM alerts WHERE withdrawal_id = $1 ORDER BY created_at`, withdrawalID)
	if err != nil {
		logger.Log.Error("failed to query alerts", zap.Error(err))
		return nil, err
	}
	return collectAlerts(rows)
}

// ListUnresolvedForAdmin returns open alerts on withdrawals of artists
// assigned to the admin.
func (r *alertRepo) ListUnresolvedForAdmin(ctx context.Context, adminID int64) ([]models.Alert, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT a.id, a.withdrawal_id, a.type, a.level, a.message, a.resolved, a.created_at
		FROM alerts a
		JOIN withdrawals w ON w.id = a.withdrawal_id
		JOIN admin_artists aa ON aa.artist_id = w.user_id
		WHERE aa.admin_id = $1 AND NOT a.resolved
		ORDER BY a.created_at DESC`, adminID)
	if err != nil {
		logger.Log.Error("failed to query alerts for admin", zap.Error(err))
		return nil, err
	}
	return collectAlerts(rows)
}

// Resolve marks an alert resolved when the admin is assigned to the
// artist behind it. Alerts of unassigned artists look like missing
// ones. Resolving an already-resolved alert is idempotent.
func (r *alertRepo) Resolve(ctx context.Context, alertID, adminID int64) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE alerts SET resolved = TRUE
		WHERE id = $1 AND withdrawal_id IN (
			SELECT w.id FROM withdrawals w
			JOIN admin_artists aa ON aa.artist_id = w.user_id
			WHERE aa.admin_id = $2)`,
		alertID, adminID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrAlertNotFound
	}
	return nil
}

func collectAlerts(rows *sql.Rows) ([]models.Alert, error) {
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var alerts []models.Alert
	for rows.Next() {
		var a models.Alert
		if err := rows.Scan(&a.ID, &a.WithdrawalID, &a.Type, &a.Level, &a.Message, &a.Resolved, &a.CreatedAt); err != nil {
			logger.Log.Error("failed to scan alert", zap.Error(err))
			return nil, err
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}
