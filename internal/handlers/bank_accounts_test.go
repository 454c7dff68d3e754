package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/a2sh3r/creator-wallet/internal/apperrors"
	service_mocks "github.com/a2sh3r/creator-wallet/internal/mocks/service_mocks"
	"github.com/a2sh3r/creator-wallet/internal/models"
)

func TestHandler_CreateBankAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := service_mocks.NewMockBankAccountService(ctrl)
	h := &Handler{bankAccountService: mockService}

	tests := []struct {
		name           string
		body           string
		mockSetup      func()
		wantStatusCode int
	}{
		{
			name: "success",
			body: `{"kind":"nacional","holder_name":"María García","bank_name":"BBVA","clabe":"012345678901234567"}`,
			mockSetup: func() {
				mockService.EXPECT().Create(gomock.Any(), int64(1), gomock.Any()).
					Return(&models.BankAccount{ID: 7, Kind: models.BankAccountKindDomestic, IsDefault: true}, nil)
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name: "validation failure",
			body: `{"kind":"nacional","holder_name":"María García"}`,
			mockSetup: func() {
				mockService.EXPECT().Create(gomock.Any(), int64(1), gomock.Any()).
					Return(nil, apperrors.NewValidationError([]string{"La CLABE es obligatoria para cuentas nacionales"}))
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "duplicate clabe",
			body: `{"kind":"nacional","holder_name":"María García","bank_name":"BBVA","clabe":"012345678901234567"}`,
			mockSetup: func() {
				mockService.EXPECT().Create(gomock.Any(), int64(1), gomock.Any()).
					Return(nil, &apperrors.ConstraintError{Field: "clabe", Message: "Esta CLABE ya está registrada"})
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name:           "invalid json",
			body:           `not json`,
			mockSetup:      func() {},
			wantStatusCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := authedRequest(http.MethodPost, "/api/user/accounts", bytes.NewBufferString(tt.body), 1)
			w := httptest.NewRecorder()
			h.CreateBankAccount(w, req)
			resp := w.Result()
			if resp.StatusCode != tt.wantStatusCode {
				t.Errorf("got status %d, want %d", resp.StatusCode, tt.wantStatusCode)
			}
			_ = resp.Body.Close()
		})
	}
}

func TestHandler_DeleteBankAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := service_mocks.NewMockBankAccountService(ctrl)
	h := &Handler{bankAccountService: mockService}

	tests := []struct {
		name           string
		accountID      string
		mockSetup      func()
		wantStatusCode int
	}{
		{
			name:      "success",
			accountID: "7",
			mockSetup: func() {
				mockService.EXPECT().Delete(gomock.Any(), int64(1), int64(7)).Return(nil)
			},
			wantStatusCode: http.StatusNoContent,
		},
		{
			name:      "account in use",
			accountID: "7",
			mockSetup: func() {
				mockService.EXPECT().Delete(gomock.Any(), int64(1), int64(7)).Return(apperrors.ErrBankAccountInUse)
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name:      "foreign account",
			accountID: "7",
			mockSetup: func() {
				mockService.EXPECT().Delete(gomock.Any(), int64(1), int64(7)).Return(apperrors.ErrBankAccountNotFound)
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:           "invalid id",
			accountID:      "abc",
			mockSetup:      func() {},
			wantStatusCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := authedRequest(http.MethodDelete, "/api/user/accounts/"+tt.accountID, nil, 1)
			req = withURLParam(req, "id", tt.accountID)
			w := httptest.NewRecorder()
			h.DeleteBankAccount(w, req)
			resp := w.Result()
			if resp.StatusCode != tt.wantStatusCode {
				t.Errorf("got status %d, want %d", resp.StatusCode, tt.wantStatusCode)
			}
			_ = resp.Body.Close()
		})
	}
}

func TestHandler_SetDefaultBankAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := service_mocks.NewMockBankAccountService(ctrl)
	h := &Handler{bankAccountService: mockService}

	mockService.EXPECT().SetDefault(gomock.Any(), int64(1), int64(7)).Return(nil)

	req := authedRequest(http.MethodPost, "/api/user/accounts/7/default", nil, 1)
	req = withURLParam(req, "id", "7")
	w := httptest.NewRecorder()
	h.SetDefaultBankAccount(w, req)
	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("got status %d, want %d", resp.StatusCode, http.StatusOK)
	}
	_ = resp.Body.Close()
}

func TestHandler_ListBankAccounts_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := service_mocks.NewMockBankAccountService(ctrl)
	h := &Handler{bankAccountService: mockService}

	mockService.EXPECT().ListByUser(gomock.Any(), int64(1)).Return(nil, errors.New("db fail"))

	req := authedRequest(http.MethodGet, "/api/user/accounts", nil, 1)
	w := httptest.NewRecorder()
	h.ListBankAccounts(w, req)
	resp := w.Result()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("got status %d, want %d", resp.StatusCode, http.StatusInternalServerError)
	}
	_ = resp.Body.Close()
}
