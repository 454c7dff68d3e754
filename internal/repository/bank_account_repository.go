package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/a2sh3r/creator-wallet/internal/apperrors"
	"github.com/a2sh3r/creator-wallet/internal/logger"
	"github.com/a2sh3r/creator-wallet/internal/models"
	"go.uber.org/zap"
)

type BankAccountRepository interface {
	Create(ctx context.Context, acc *models.BankAccount) (*models.BankAccount, error)
	GetByID(ctx context.Context, id int64) (*models.BankAccount, error)
	GetByIDForUser(ctx context.Context, id, userID int64) (*models.BankAccount, error)
	ListByUser(ctx context.Context, userID int64) ([]models.BankAccount, error)
	Update(ctx context.Context, acc *models.BankAccount) error
	Delete(ctx context.Context, id, userID int64) error
	SetDefault(ctx context.Context, id, userID int64) error
}

type bankAccountRepo struct {
	db *sql.DB
}

func NewBankAccountRepository(db *sql.DB) BankAccountRepository {
	return &bankAccountRepo{db: db}
}

const bankAccountColumns = `id, user_id, kind, holder_name, bank_name, clabe, country,
	account_number, swift, paypal_email, beneficiary_address, bank_address, is_default, created_at`

func scanBankAccount(row interface{ Scan(...any) error }) (*models.BankAccount, error) {
	var acc models.BankAccount
	err := row.Scan(&acc.ID, &acc.UserID, &acc.Kind, &acc.HolderName, &acc.BankName,
		&acc.CLABE, &acc.Country, &acc.AccountNumber, &acc.SWIFT, &acc.PayPalEmail,
		&acc.BeneficiaryAddress, &acc.BankAddress, &acc.IsDefault, &acc.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *bankAccountRepo) Create(ctx context.Context, acc *models.BankAccount) (*models.BankAccount, error) {
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

	// The partial unique index would reject a second default; unset the
	// previous one inside the same transaction.
	if acc.IsDefault {
		_, err = tx.ExecContext(ctx,
			`UPDATE bank_accounts SET is_default = FALSE WHERE user_id = $1 AND is_default`, acc.UserID)
		if err != nil {
			return nil, err
		}
	}

	row := tx.QueryRowContext(ctx, `
		INSERT INTO bank_accounts (user_id, kind, holder_name, bank_name, clabe, country,
			account_number, swift, paypal_email, beneficiary_address, bank_address, is_default)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+bankAccountColumns,
		acc.UserID, acc.Kind, acc.HolderName, acc.BankName, acc.CLABE, acc.Country,
		acc.AccountNumber, acc.SWIFT, acc.PayPalEmail, acc.BeneficiaryAddress,
		acc.BankAddress, acc.IsDefault)

	var created *models.BankAccount
	created, err = scanBankAccount(row)
	if err != nil {
		return nil, translateConstraintError(err)
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *bankAccountRepo) GetByID(ctx context.Context, id int64) (*models.BankAccount, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+bankAccountColumns+` FROM bank_accounts WHERE id = $1`, id)
	acc, err := scanBankAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrBankAccountNotFound
	}
	return acc, err
}

func (r *bankAccountRepo) GetByIDForUser(ctx context.Context, id, userID int64) (*models.BankAccount, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+bankAccountColumns+` FROM bank_accounts WHERE id = $1 AND user_id = $2`, id, userID)
	acc, err := scanBankAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrBankAccountNotFound
	}
	return acc, err
}

func (r *bankAccountRepo) ListByUser(ctx context.Context, userID int64) ([]models.BankAccount, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+bankAccountColumns+` FROM bank_accounts WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		logger.Log.Error("failed to query bank accounts", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var accounts []models.BankAccount
	for rows.Next() {
		acc, err := scanBankAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *acc)
	}
	return accounts, rows.Err()
}

func (r *bankAccountRepo) Update(ctx context.Context, acc *models.BankAccount) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE bank_accounts
		SET holder_name = $3, bank_name = $4, clabe = $5, country = $6,
			account_number = $7, swift = $8, paypal_email = $9,
			beneficiary_address = $10, bank_address = $11
		WHERE id = $1 AND user_id = $2`,
		acc.ID, acc.UserID, acc.HolderName, acc.BankName, acc.CLABE, acc.Country,
		acc.AccountNumber, acc.SWIFT, acc.PayPalEmail, acc.BeneficiaryAddress, acc.BankAddress)
	if err != nil {
		return translateConstraintError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrBankAccountNotFound
	}
	return nil
}

// Delete removes an account unless a withdrawal references it; audit
// history must stay intact.
func (r *bankAccountRepo) Delete(ctx context.Context, id, userID int64) error {
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

	var ownerID int64
	err = tx.QueryRowContext(ctx,
		`SELECT user_id FROM bank_accounts WHERE id = $1 AND user_id = $2 FOR UPDATE`, id, userID).Scan(&ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		err = apperrors.ErrBankAccountNotFound
		return err
	}
	if err != nil {
		return err
	}

	var refs int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM withdrawals WHERE bank_account_id = $1`, id).Scan(&refs)
	if err != nil {
		return err
	}
	if refs > 0 {
		err = apperrors.ErrBankAccountInUse
		return err
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM bank_accounts WHERE id = $1`, id)
	if err != nil {
		return err
	}

	err = tx.Commit()
	return err
}

func (r *bankAccountRepo) SetDefault(ctx context.Context, id, userID int64) error {
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

	var ownerID int64
	err = tx.QueryRowContext(ctx,
		`SELECT user_id FROM bank_accounts WHERE id = $1 AND user_id = $2 FOR UPDATE`, id, userID).Scan(&ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		err = apperrors.ErrBankAccountNotFound
		return err
	}
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE bank_accounts SET is_default = FALSE WHERE user_id = $1 AND is_default`, userID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE bank_accounts SET is_default = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}

	err = tx.Commit()
	return err
}
