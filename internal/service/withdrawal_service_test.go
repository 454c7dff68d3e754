package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"

	"github.com/a2sh3r/creator-wallet/internal/apperrors"
	"github.com/a2sh3r/creator-wallet/internal/mocks/notification_mocks"
	"github.com/a2sh3r/creator-wallet/internal/mocks/repository_mocks"
	"github.com/a2sh3r/creator-wallet/internal/mocks/service_mocks"
	"github.com/a2sh3r/creator-wallet/internal/models"
)

type withdrawalServiceMocks struct {
	withdrawals *repository_mocks.MockWithdrawalRepository
	accounts    *repository_mocks.MockBankAccountRepository
	users       *repository_mocks.MockUserRepository
	detector    *service_mocks.MockAlertDetector
	sender      *notification_mocks.MockSender
}

func newWithdrawalService(ctrl *gomock.Controller, pendingCap int) (WithdrawalService, withdrawalServiceMocks) {
	m := withdrawalServiceMocks{
		withdrawals: repository_mocks.NewMockWithdrawalRepository(ctrl),
		accounts:    repository_mocks.NewMockBankAccountRepository(ctrl),
		users:       repository_mocks.NewMockUserRepository(ctrl),
		detector:    service_mocks.NewMockAlertDetector(ctrl),
		sender:      notification_mocks.NewMockSender(ctrl),
	}
	svc := NewWithdrawalService(m.withdrawals, m.accounts, m.users, m.detector, m.sender, pendingCap)
	return svc, m
}

func validRequest() models.WithdrawalRequest {
	return models.WithdrawalRequest{
		Amount:        decimal.RequireFromString("500.00"),
		BankAccountID: 10,
	}
}

func TestWithdrawalService_Create(t *testing.T) {
	warning := models.Alert{Type: models.AlertTypeNewAccount, Level: models.AlertLevelWarning}
	danger := models.Alert{Type: models.AlertTypeHighAmount, Level: models.AlertLevelDanger}

	tests := []struct {
		name        string
		req         models.WithdrawalRequest
		mockSetup   func(m withdrawalServiceMocks)
		wantAlerts  int
		expectedErr error
	}{
		{
			name: "success without alerts",
			req:  validRequest(),
			mockSetup: func(m withdrawalServiceMocks) {
				m.accounts.EXPECT().GetByIDForUser(gomock.Any(), int64(10), int64(1)).Return(&models.BankAccount{ID: 10}, nil)
				m.withdrawals.EXPECT().Create(gomock.Any(), gomock.Any(), 3).
					Return(&models.Withdrawal{ID: 100, UserID: 1, Status: models.WithdrawalStatusPending}, nil)
				m.detector.EXPECT().Detect(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
		},
		{
			name:        "invalid amount",
			req:         models.WithdrawalRequest{Amount: decimal.Zero, BankAccountID: 10},
			mockSetup:   func(m withdrawalServiceMocks) {},
			expectedErr: &apperrors.ValidationError{},
		},
		{
			name: "foreign bank account",
			req:  validRequest(),
			mockSetup: func(m withdrawalServiceMocks) {
				m.accounts.EXPECT().GetByIDForUser(gomock.Any(), int64(10), int64(1)).
					Return(nil, apperrors.ErrBankAccountNotFound)
			},
			expectedErr: apperrors.ErrBankAccountNotFound,
		},
		{
			name: "pending cap reached",
			req:  validRequest(),
			mockSetup: func(m withdrawalServiceMocks) {
				m.accounts.EXPECT().GetByIDForUser(gomock.Any(), int64(10), int64(1)).Return(&models.BankAccount{ID: 10}, nil)
				m.withdrawals.EXPECT().Create(gomock.Any(), gomock.Any(), 3).
					Return(nil, apperrors.ErrPendingCapReached)
			},
			expectedErr: apperrors.ErrPendingCapReached,
		},
		{
			name: "danger alert triggers notification",
			req:  validRequest(),
			mockSetup: func(m withdrawalServiceMocks) {
				m.accounts.EXPECT().GetByIDForUser(gomock.Any(), int64(10), int64(1)).Return(&models.BankAccount{ID: 10}, nil)
				m.withdrawals.EXPECT().Create(gomock.Any(), gomock.Any(), 3).
					Return(&models.Withdrawal{ID: 100, UserID: 1, Status: models.WithdrawalStatusPending}, nil)
				m.detector.EXPECT().Detect(gomock.Any(), gomock.Any()).Return([]models.Alert{danger}, nil)
				m.users.EXPECT().GetAdminEmailsForArtist(gomock.Any(), int64(1)).Return([]string{"admin@example.com"}, nil)
				m.sender.EXPECT().Send(gomock.Any(), []string{"admin@example.com"}, gomock.Any(), gomock.Any()).Return(nil)
			},
			wantAlerts: 1,
		},
		{
			name: "two warnings stay quiet",
			req:  validRequest(),
			mockSetup: func(m withdrawalServiceMocks) {
				m.accounts.EXPECT().GetByIDForUser(gomock.Any(), int64(10), int64(1)).Return(&models.BankAccount{ID: 10}, nil)
				m.withdrawals.EXPECT().Create(gomock.Any(), gomock.Any(), 3).
					Return(&models.Withdrawal{ID: 100, UserID: 1, Status: models.WithdrawalStatusPending}, nil)
				m.detector.EXPECT().Detect(gomock.Any(), gomock.Any()).Return([]models.Alert{warning, warning}, nil)
			},
			wantAlerts: 2,
		},
		{
			name: "three warnings trigger notification",
			req:  validRequest(),
			mockSetup: func(m withdrawalServiceMocks) {
				m.accounts.EXPECT().GetByIDForUser(gomock.Any(), int64(10), int64(1)).Return(&models.BankAccount{ID: 10}, nil)
				m.withdrawals.EXPECT().Create(gomock.Any(), gomock.Any(), 3).
					Return(&models.Withdrawal{ID: 100, UserID: 1, Status: models.WithdrawalStatusPending}, nil)
				m.detector.EXPECT().Detect(gomock.Any(), gomock.Any()).Return([]models.Alert{warning, warning, warning}, nil)
				m.users.EXPECT().GetAdminEmailsForArtist(gomock.Any(), int64(1)).Return([]string{"admin@example.com"}, nil)
				m.sender.EXPECT().Send(gomock.Any(), []string{"admin@example.com"}, gomock.Any(), gomock.Any()).Return(nil)
			},
			wantAlerts: 3,
		},
		{
			name: "detection failure does not fail the withdrawal",
			req:  validRequest(),
			mockSetup: func(m withdrawalServiceMocks) {
				m.accounts.EXPECT().GetByIDForUser(gomock.Any(), int64(10), int64(1)).Return(&models.BankAccount{ID: 10}, nil)
				m.withdrawals.EXPECT().Create(gomock.Any(), gomock.Any(), 3).
					Return(&models.Withdrawal{ID: 100, UserID: 1, Status: models.WithdrawalStatusPending}, nil)
				m.detector.EXPECT().Detect(gomock.Any(), gomock.Any()).Return(nil, errors.New("db fail"))
			},
		},
		{
			name: "notification failure does not fail the withdrawal",
			req:  validRequest(),
			mockSetup: func(m withdrawalServiceMocks) {
				m.accounts.EXPECT().GetByIDForUser(gomock.Any(), int64(10), int64(1)).Return(&models.BankAccount{ID: 10}, nil)
				m.withdrawals.EXPECT().Create(gomock.Any(), gomock.Any(), 3).
					Return(&models.Withdrawal{ID: 100, UserID: 1, Status: models.WithdrawalStatusPending}, nil)
				m.detector.EXPECT().Detect(gomock.Any(), gomock.Any()).Return([]models.Alert{danger}, nil)
				m.users.EXPECT().GetAdminEmailsForArtist(gomock.Any(), int64(1)).Return([]string{"admin@example.com"}, nil)
				m.sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
			},
			wantAlerts: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newWithdrawalService(ctrl, 3)
			tt.mockSetup(m)

			created, alerts, err := svc.Create(context.Background(), 1, tt.req)

			if tt.expectedErr != nil {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				var vErr *apperrors.ValidationError
				if errors.As(tt.expectedErr, &vErr) {
					if !errors.As(err, &vErr) {
						t.Errorf("expected validation error, got %v", err)
					}
				} else if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if created == nil || created.ID != 100 {
				t.Errorf("expected withdrawal 100, got %+v", created)
			}
			if len(alerts) != tt.wantAlerts {
				t.Errorf("expected %d alerts, got %d", tt.wantAlerts, len(alerts))
			}
		})
	}
}

func TestWithdrawalService_Approve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newWithdrawalService(ctrl, 3)

	m.withdrawals.EXPECT().GetByIDForAdmin(gomock.Any(), int64(100), int64(2)).
		Return(&models.Withdrawal{ID: 100, Status: models.WithdrawalStatusPending}, nil)
	m.withdrawals.EXPECT().Transition(gomock.Any(), int64(100), models.WithdrawalStatusPending, models.WithdrawalStatusProcessing, nil, nil).
		Return(nil)

	if err := svc.Approve(context.Background(), 2, 100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWithdrawalService_Approve_UnassignedAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newWithdrawalService(ctrl, 3)

	m.withdrawals.EXPECT().GetByIDForAdmin(gomock.Any(), int64(100), int64(2)).
		Return(nil, apperrors.ErrWithdrawalNotFound)

	err := svc.Approve(context.Background(), 2, 100)
	if !errors.Is(err, apperrors.ErrWithdrawalNotFound) {
		t.Errorf("expected ErrWithdrawalNotFound, got %v", err)
	}
}

func TestWithdrawalService_Reject(t *testing.T) {
	reason := "Los datos bancarios no coinciden con el titular"

	tests := []struct {
		name      string
		reason    string
		mockSetup func(m withdrawalServiceMocks)
		checkErr  func(t *testing.T, err error)
	}{
		{
			name:   "success from pending",
			reason: reason,
			mockSetup: func(m withdrawalServiceMocks) {
				m.withdrawals.EXPECT().GetByIDForAdmin(gomock.Any(), int64(100), int64(2)).
					Return(&models.Withdrawal{ID: 100, Status: models.WithdrawalStatusPending}, nil)
				m.withdrawals.EXPECT().Transition(gomock.Any(), int64(100), models.WithdrawalStatusPending, models.WithdrawalStatusRejected, &reason, nil).
					Return(nil)
			},
			checkErr: func(t *testing.T, err error) {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			},
		},
		{
			name:      "reason too short",
			reason:    "no",
			mockSetup: func(m withdrawalServiceMocks) {},
			checkErr: func(t *testing.T, err error) {
				var vErr *apperrors.ValidationError
				if !errors.As(err, &vErr) {
					t.Errorf("expected validation error, got %v", err)
				}
			},
		},
		{
			name:   "already completed",
			reason: reason,
			mockSetup: func(m withdrawalServiceMocks) {
				m.withdrawals.EXPECT().GetByIDForAdmin(gomock.Any(), int64(100), int64(2)).
					Return(&models.Withdrawal{ID: 100, Status: models.WithdrawalStatusCompleted}, nil)
			},
			checkErr: func(t *testing.T, err error) {
				var scErr *apperrors.StateConflictError
				if !errors.As(err, &scErr) {
					t.Fatalf("expected state conflict error, got %v", err)
				}
				if scErr.From != models.WithdrawalStatusCompleted {
					t.Errorf("expected conflict from %q, got %q", models.WithdrawalStatusCompleted, scErr.From)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newWithdrawalService(ctrl, 3)
			tt.mockSetup(m)

			err := svc.Reject(context.Background(), 2, 100, tt.reason)
			tt.checkErr(t, err)
		})
	}
}

func TestWithdrawalService_Complete(t *testing.T) {
	proofRef := "100_abc.pdf"

	t.Run("success from processing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newWithdrawalService(ctrl, 3)
		m.withdrawals.EXPECT().GetByIDForAdmin(gomock.Any(), int64(100), int64(2)).
			Return(&models.Withdrawal{ID: 100, Status: models.WithdrawalStatusProcessing}, nil)
		m.withdrawals.EXPECT().Transition(gomock.Any(), int64(100), models.WithdrawalStatusProcessing, models.WithdrawalStatusCompleted, nil, &proofRef).
			Return(nil)

		if err := svc.Complete(context.Background(), 2, 100, proofRef); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing proof reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newWithdrawalService(ctrl, 3)
		err := svc.Complete(context.Background(), 2, 100, "")
		if !errors.Is(err, apperrors.ErrProofRequired) {
			t.Errorf("expected ErrProofRequired, got %v", err)
		}
	})

	t.Run("completing straight from pending is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newWithdrawalService(ctrl, 3)
		m.withdrawals.EXPECT().GetByIDForAdmin(gomock.Any(), int64(100), int64(2)).
			Return(&models.Withdrawal{ID: 100, Status: models.WithdrawalStatusPending}, nil)

		err := svc.Complete(context.Background(), 2, 100, proofRef)
		var scErr *apperrors.StateConflictError
		if !errors.As(err, &scErr) {
			t.Errorf("expected state conflict error, got %v", err)
		}
	})
}

func TestWithdrawalService_ListByUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newWithdrawalService(ctrl, 3)
	expected := []models.Withdrawal{{ID: 1}, {ID: 2}}
	m.withdrawals.EXPECT().ListByUser(gomock.Any(), int64(1)).Return(expected, nil)

	got, err := svc.ListByUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 withdrawals, got %d", len(got))
	}
}
