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

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetAdminEmailsForArtist(ctx context.Context, artistID int64) ([]string, error)
}

type userRepo struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *models.User) error {
	existing, err := r.GetUserByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}
	if existing != nil {
		return apperrors.ErrUserAlreadyExists
	}

	query := `INSERT INTO users (email, password_hash, role, status, must_change_password)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err = r.db.ExecContext(ctx, query,
		user.Email, user.Password, user.Role, user.Status, user.MustChangePassword)
	return translateConstraintError(err)
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, email, password_hash, role, status, must_change_password, created_at
			  FROM users WHERE email=$1`
	row := r.db.QueryRowContext(ctx, query, email)

	var user models.User
	err := row.Scan(&user.ID, &user.Email, &user.Password, &user.Role, &user.Status,
		&user.MustChangePassword, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetAdminEmailsForArtist(ctx context.Context, artistID int64) ([]string, error) {
	query := `SELECT u.email FROM users u
			  JOIN admin_artists aa ON aa.admin_id = u.id
			  WHERE aa.artist_id = $1 AND u.status = $2`

	rows, err := r.db.QueryContext(ctx, query, artistID, models.UserStatusActive)
	if err != nil {
		logger.Log.Error("failed to query admin emails", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}
