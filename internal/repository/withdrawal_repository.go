package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/a2sh3r/creator-wallet/internal/apperrors"
	"github.com/a2sh3r/creator-wallet/internal/logger"
	"github.com/a2sh3r/creator-wallet/internal/models"
	"go.uber.org/zap"
)

type WithdrawalRepository interface {
	Create(ctx context.Context, w *models.Withdrawal, pendingCap int) (*models.Withdrawal, error)
	GetByIDForAdmin(ctx context.Context, id, adminID int64) (*models.Withdrawal, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Withdrawal, error)
	ListForAdmin(ctx context.Context, adminID int64) ([]models.Withdrawal, error)
	Transition(ctx context.Context, id int64, from, to string, adminNotes, proofRef *string) error
	CountInPeriod(ctx context.Context, userID int64, from, to time.Time) (int, error)
	ListRecentNonRejected(ctx context.Context, userID int64, since time.Time, limit int) ([]models.Withdrawal, error)
}

type withdrawalRepo struct {
	db *sql.DB
}

func NewWithdrawalRepository(db *sql.DB) WithdrawalRepository {
	return &withdrawalRepo{db: db}
}

const withdrawalColumns = `id, user_id, bank_account_id, amount, status, admin_notes, proof_ref, created_at, updated_at`

func scanWithdrawal(row interface{ Scan(...any) error }) (*models.Withdrawal, error) {
	var w models.Withdrawal
	err := row.Scan(&w.ID, &w.UserID, &w.BankAccountID, &w.Amount, &w.Status,
		&w.AdminNotes, &w.ProofRef, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Create inserts a withdrawal in Pendiente. The pending-request cap is
// checked inside the same transaction, with the owner row locked, so
// two concurrent requests cannot both slip under the cap.
func (r *withdrawalRepo) Create(ctx context.Context, w *models.Withdrawal, pendingCap int) (*models.Withdrawal, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.Log.Error("rollback error", zap.Error(rbErr))
			}
		}
	}()

	var ownerID int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM users WHERE id = $1 FOR UPDATE`, w.UserID).Scan(&ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		err = apperrors.ErrUserNotFound
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	var pending int
	err = tx.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM withdrawals
		WHERE user_id = $1 AND status IN ($2, $3)`,
		w.UserID, models.WithdrawalStatusPending, models.WithdrawalStatusProcessing).Scan(&pending)
	if err != nil {
		return nil, err
	}
	if pending >= pendingCap {
		err = apperrors.ErrPendingCapReached
		return nil, err
	}

	row := tx.QueryRowContext(ctx, `
		INSERT INTO withdrawals (user_id, bank_account_id, amount, status, admin_notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+withdrawalColumns,
		w.UserID, w.BankAccountID, w.Amount, models.WithdrawalStatusPending, w.AdminNotes)

	var created *models.Withdrawal
	created, err = scanWithdrawal(row)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetByIDForAdmin resolves a withdrawal only when the admin is assigned
// to its owner. Unassigned withdrawals look like missing ones.
func (r *withdrawalRepo) GetByIDForAdmin(ctx context.Context, id, adminID int64) (*models.Withdrawal, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+prefixedWithdrawalColumns+` FROM withdrawals w
		JOIN admin_artists aa ON aa.artist_id = w.user_id
		WHERE w.id = $1 AND aa.admin_id = $2`, id, adminID)
	w, err := scanWithdrawal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrWithdrawalNotFound
	}
	return w, err
}

const prefixedWithdrawalColumns = `w.id, w.user_id, w.bank_account_id, w.amount, w.status, w.admin_notes, w.proof_ref, w.created_at, w.updated_at`

func (r *withdrawalRepo) ListByUser(ctx context.Context, userID int64) ([]models.Withdrawal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+withdrawalColumns+` FROM withdrawals WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		logger.Log.Error("failed to query withdrawals", zap.Error(err))
		return nil, err
	}
	return collectWithdrawals(rows)
}

func (r *withdrawalRepo) ListForAdmin(ctx context.Context, adminID int64) ([]models.Withdrawal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+prefixedWithdrawalColumns+` FROM withdrawals w
		JOIN admin_artists aa ON aa.artist_id = w.user_id
		WHERE aa.admin_id = $1
		ORDER BY w.created_at DESC`, adminID)
	if err != nil {
		logger.Log.Error("failed to query withdrawals for admin", zap.Error(err))
		return nil, err
	}
	return collectWithdrawals(rows)
}

func collectWithdrawals(rows *sql.Rows) ([]models.Withdrawal, error) {
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var withdrawals []models.Withdrawal
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			logger.Log.Error("failed to scan withdrawal", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, *w)
	}
	return withdrawals, rows.Err()
}

// Transition moves a withdrawal from one status to another and, when
// the target is terminal, resolves its outstanding alerts in the same
// transaction. The status guard in the UPDATE makes the change safe
// against a concurrent admin acting on the same row.
func (r *withdrawalRepo) Transition(ctx context.Context, id int64, from, to string, adminNotes, proofRef *string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.Log.Error("rollback error", zap.Error(rbErr))
			}
		}
	}()

	res, err := tx.ExecContext(ctx, `
		UPDATE withdrawals
		SET status = $3,
			admin_notes = COALESCE($4, admin_notes),
			proof_ref = COALESCE($5, proof_ref),
			updated_at = now()
		WHERE id = $1 AND status = $2`,
		id, from, to, adminNotes, proofRef)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		var current string
		scanErr := tx.QueryRowContext(ctx, `SELECT status FROM withdrawals WHERE id = $1`, id).Scan(&current)
		if errors.Is(scanErr, sql.ErrNoRows) {
			err = apperrors.ErrWithdrawalNotFound
			return err
		}
		if scanErr != nil {
			err = scanErr
			return err
		}
		err = &apperrors.StateConflictError{From: current, To: to}
		return err
	}

	if models.IsTerminal(to) {
		_, err = tx.ExecContext(ctx,
			`UPDATE alerts SET resolved = TRUE WHERE withdrawal_id = $1 AND NOT resolved`, id)
		if err != nil {
			return err
		}
	}

	err = tx.Commit()
	return err
}

func (r *withdrawalRepo) CountInPeriod(ctx context.Context, userID int64, from, to time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM withdrawals
		WHERE user_id = $1 AND status <> $2 AND created_at >= $3 AND created_at < $4`,
		userID, models.WithdrawalStatusRejected, from, to).Scan(&count)
	return count, err
}

func (r *withdrawalRepo) ListRecentNonRejected(ctx context.Context, userID int64, since time.Time, limit int) ([]models.Withdrawal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+withdrawalColumns+` FROM withdrawals
		WHERE user_id = $1 AND status <> $2 AND created_at >= $3
		ORDER BY created_at DESC
		LIMIT $4`,
		userID, models.WithdrawalStatusRejected, since, limit)
	if err != nil {
		logger.Log.Error("failed to query recent withdrawals", zap.Error(err))
		return nil, err
	}
	return collectWithdrawals(rows)
}
