package service

import (
	"context"

	"github.com/a2sh3r/creator-wallet/internal/apperrors"
	"github.com/a2sh3r/creator-wallet/internal/models"
	"github.com/a2sh3r/creator-wallet/internal/repository"
	"github.com/a2sh3r/creator-wallet/internal/validation"
)

type BankAccountService interface {
	Create(ctx context.Context, userID int64, acc models.BankAccount) (*models.BankAccount, error)
	Update(ctx context.Context, userID, accountID int64, acc models.BankAccount) (*models.BankAccount, error)
	Delete(ctx context.Context, userID, accountID int64) error
	SetDefault(ctx context.Context, userID, accountID int64) error
	ListByUser(ctx context.Context, userID int64) ([]models.BankAccount, error)
}

type bankAccountService struct {
	repo repository.BankAccountRepository
}

func NewBankAccountService(repo repository.BankAccountRepository) BankAccountService {
	return &bankAccountService{repo: repo}
}

func (s *bankAccountService) Create(ctx context.Context, userID int64, acc models.BankAccount) (*models.BankAccount, error) {
	if res := validation.ValidateBankAccount(acc); !res.Valid {
		return nil, apperrors.NewValidationError(res.Errors)
	}

	acc.UserID = userID

	// The first account becomes the default destination automatically.
	existing, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		acc.IsDefault = true
	}

	return s.repo.Create(ctx, &acc)
}

// Update keeps the account kind immutable; changing kind means creating
// a new account.
func (s *bankAccountService) Update(ctx context.Context, userID, accountID int64, acc models.BankAccount) (*models.BankAccount, error) {
	current, err := s.repo.GetByIDForUser(ctx, accountID, userID)
	if err != nil {
		return nil, err
	}

	acc.ID = current.ID
	acc.UserID = current.UserID
	acc.Kind = current.Kind

	if res := validation.ValidateBankAccount(acc); !res.Valid {
		return nil, apperrors.NewValidationError(res.Errors)
	}

	if err := s.repo.Update(ctx, &acc); err != nil {
		return nil, err
	}

	return s.repo.GetByIDForUser(ctx, accountID, userID)
}

func (s *bankAccountService) Delete(ctx context.Context, userID, accountID int64) error {
	return s.repo.Delete(ctx, accountID, userID)
}

func (s *bankAccountService) SetDefault(ctx context.Context, userID, accountID int64) error {
	return s.repo.SetDefault(ctx, accountID, userID)
}

func (s *bankAccountService) ListByUser(ctx context.Context, userID int64) ([]models.BankAccount, error) {
	return s.repo.ListByUser(ctx, userID)
}
