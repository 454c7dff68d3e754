package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/a2sh3r/creator-wallet/internal/apperrors"
	service_mocks "github.com/a2sh3r/creator-wallet/internal/mocks/service_mocks"
	"github.com/a2sh3r/creator-wallet/internal/models"
	"github.com/a2sh3r/creator-wallet/internal/storage"
)

func TestHandler_ApproveWithdrawal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := service_mocks.NewMockWithdrawalService(ctrl)
	h := &Handler{withdrawalService: mockService}

	tests := []struct {
		name           string
		withdrawalID   string
		mockSetup      func()
		wantStatusCode int
	}{
		{
			name:         "success",
			withdrawalID: "100",
			mockSetup: func() {
				mockService.EXPECT().Approve(gomock.Any(), int64(2), int64(100)).Return(nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:         "not assigned to this admin",
			withdrawalID: "100",
			mockSetup: func() {
				mockService.EXPECT().Approve(gomock.Any(), int64(2), int64(100)).Return(apperrors.ErrWithdrawalNotFound)
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:         "already completed",
			withdrawalID: "100",
			mockSetup: func() {
				mockService.EXPECT().Approve(gomock.Any(), int64(2), int64(100)).
					Return(&apperrors.StateConflictError{From: models.WithdrawalStatusCompleted, To: models.WithdrawalStatusProcessing})
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name:           "invalid id",
			withdrawalID:   "0",
			mockSetup:      func() {},
			wantStatusCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := authedRequest(http.MethodPost, "/api/admin/withdrawals/"+tt.withdrawalID+"/approve", nil, 2)
			req = withURLParam(req, "id", tt.withdrawalID)
			w := httptest.NewRecorder()
			h.ApproveWithdrawal(w, req)
			resp := w.Result()
			if resp.StatusCode != tt.wantStatusCode {
				t.Errorf("got status %d, want %d", resp.StatusCode, tt.wantStatusCode)
			}
			_ = resp.Body.Close()
		})
	}
}

func TestHandler_RejectWithdrawal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := service_mocks.NewMockWithdrawalService(ctrl)
	h := &Handler{withdrawalService: mockService}

	reason := "Los datos bancarios no coinciden con el titular"

	tests := []struct {
		name           string
		body           string
		mockSetup      func()
		wantStatusCode int
	}{
		{
			name: "success",
			body: `{"reason":"` + reason + `"}`,
			mockSetup: func() {
				mockService.EXPECT().Reject(gomock.Any(), int64(2), int64(100), reason).Return(nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "reason too short",
			body: `{"reason":"no"}`,
			mockSetup: func() {
				mockService.EXPECT().Reject(gomock.Any(), int64(2), int64(100), "no").
					Return(apperrors.NewValidationError([]string{"El motivo de rechazo debe tener al menos 10 caracteres"}))
			},
			wantStatusCode: http.StatusBadRequest,
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
			req := authedRequest(http.MethodPost, "/api/admin/withdrawals/100/reject", bytes.NewBufferString(tt.body), 2)
			req = withURLParam(req, "id", "100")
			w := httptest.NewRecorder()
			h.RejectWithdrawal(w, req)
			resp := w.Result()
			if resp.StatusCode != tt.wantStatusCode {
				t.Errorf("got status %d, want %d", resp.StatusCode, tt.wantStatusCode)
			}
			_ = resp.Body.Close()
		})
	}
}

// Minimal valid PNG header so the magic-byte sniff recognizes the upload.
var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D}

func multipartProof(t *testing.T, fieldName, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(fieldName, fileName)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestHandler_CompleteWithdrawal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	proofs, err := storage.NewProofStorage(t.TempDir(), 5)
	if err != nil {
		t.Fatalf("failed to create proof storage: %v", err)
	}

	mockService := service_mocks.NewMockWithdrawalService(ctrl)
	h := &Handler{withdrawalService: mockService, proofs: proofs}

	t.Run("success with png proof", func(t *testing.T) {
		mockService.EXPECT().Complete(gomock.Any(), int64(2), int64(100), gomock.Any()).Return(nil)

		body, contentType := multipartProof(t, "proof", "receipt.png", pngHeader)
		req := authedRequest(http.MethodPost, "/api/admin/withdrawals/100/complete", body, 2)
		req.Header.Set("Content-Type", contentType)
		req = withURLParam(req, "id", "100")

		w := httptest.NewRecorder()
		h.CompleteWithdrawal(w, req)
		resp := w.Result()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("got status %d, want %d", resp.StatusCode, http.StatusOK)
		}
		_ = resp.Body.Close()
	})

	t.Run("missing file", func(t *testing.T) {
		body, contentType := multipartProof(t, "other", "receipt.png", pngHeader)
		req := authedRequest(http.MethodPost, "/api/admin/withdrawals/100/complete", body, 2)
		req.Header.Set("Content-Type", contentType)
		req = withURLParam(req, "id", "100")

		w := httptest.NewRecorder()
		h.CompleteWithdrawal(w, req)
		resp := w.Result()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("got status %d, want %d", resp.StatusCode, http.StatusBadRequest)
		}
		_ = resp.Body.Close()
	})

	t.Run("state conflict leaves no stored file behind", func(t *testing.T) {
		dir := t.TempDir()
		conflictProofs, err := storage.NewProofStorage(dir, 5)
		if err != nil {
			t.Fatalf("failed to create proof storage: %v", err)
		}
		h := &Handler{withdrawalService: mockService, proofs: conflictProofs}

		mockService.EXPECT().Complete(gomock.Any(), int64(2), int64(100), gomock.Any()).
			Return(&apperrors.StateConflictError{From: models.WithdrawalStatusPending, To: models.WithdrawalStatusCompleted})

		body, contentType := multipartProof(t, "proof", "receipt.png", pngHeader)
		req := authedRequest(http.MethodPost, "/api/admin/withdrawals/100/complete", body, 2)
		req.Header.Set("Content-Type", contentType)
		req = withURLParam(req, "id", "100")

		w := httptest.NewRecorder()
		h.CompleteWithdrawal(w, req)
		resp := w.Result()
		if resp.StatusCode != http.StatusConflict {
			t.Errorf("got status %d, want %d", resp.StatusCode, http.StatusConflict)
		}
		_ = resp.Body.Close()

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("failed to read storage dir: %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("expected storage dir to be empty, found %d entries", len(entries))
		}
	})

	t.Run("unrecognized file type", func(t *testing.T) {
		body, contentType := multipartProof(t, "proof", "notes.txt", []byte("plain text"))
		req := authedRequest(http.MethodPost, "/api/admin/withdrawals/100/complete", body, 2)
		req.Header.Set("Content-Type", contentType)
		req = withURLParam(req, "id", "100")

		w := httptest.NewRecorder()
		h.CompleteWithdrawal(w, req)
		resp := w.Result()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("got status %d, want %d", resp.StatusCode, http.StatusBadRequest)
		}
		_ = resp.Body.Close()
	})
}

func TestHandler_AdminListAlerts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := service_mocks.NewMockAlertService(ctrl)
	h := &Handler{alertService: mockService}

	mockService.EXPECT().ListUnresolvedForAdmin(gomock.Any(), int64(2)).
		Return([]models.Alert{{ID: 1, Type: models.AlertTypeHighAmount, Level: models.AlertLevelDanger}}, nil)

	req := authedRequest(http.MethodGet, "/api/admin/alerts", nil, 2)
	w := httptest.NewRecorder()
	h.AdminListAlerts(w, req)
	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("got status %d, want %d", resp.StatusCode, http.StatusOK)
	}
	_ = resp.Body.Close()
}

func TestHandler_AdminListWithdrawalAlerts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := service_mocks.NewMockAlertService(ctrl)
	h := &Handler{alertService: mockService}

	tests := []struct {
		name           string
		withdrawalID   string
		mockSetup      func()
		wantStatusCode int
	}{
		{
			name:         "success",
			withdrawalID: "100",
			mockSetup: func() {
				mockService.EXPECT().ListByWithdrawal(gomock.Any(), int64(2), int64(100)).
					Return([]models.Alert{{ID: 1, WithdrawalID: 100, Type: models.AlertTypeHighAmount, Level: models.AlertLevelDanger}}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:         "not assigned to this admin",
			withdrawalID: "100",
			mockSetup: func() {
				mockService.EXPECT().ListByWithdrawal(gomock.Any(), int64(2), int64(100)).
					Return(nil, apperrors.ErrWithdrawalNotFound)
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:           "invalid id",
			withdrawalID:   "abc",
			mockSetup:      func() {},
			wantStatusCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := authedRequest(http.MethodGet, "/api/admin/withdrawals/"+tt.withdrawalID+"/alerts", nil, 2)
			req = withURLParam(req, "id", tt.withdrawalID)
			w := httptest.NewRecorder()
			h.AdminListWithdrawalAlerts(w, req)
			resp := w.Result()
			if resp.StatusCode != tt.wantStatusCode {
				t.Errorf("got status %d, want %d", resp.StatusCode, tt.wantStatusCode)
			}
			_ = resp.Body.Close()
		})
	}
}

func TestHandler_ResolveAlert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := service_mocks.NewMockAlertService(ctrl)
	h := &Handler{alertService: mockService}

	tests := []struct {
		name           string
		alertID        string
		mockSetup      func()
		wantStatusCode int
	}{
		{
			name:    "success",
			alertID: "7",
			mockSetup: func() {
				mockService.EXPECT().Resolve(gomock.Any(), int64(2), int64(7)).Return(nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:    "alert of unassigned artist",
			alertID: "7",
			mockSetup: func() {
				mockService.EXPECT().Resolve(gomock.Any(), int64(2), int64(7)).Return(apperrors.ErrAlertNotFound)
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:           "invalid id",
			alertID:        "0",
			mockSetup:      func() {},
			wantStatusCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := authedRequest(http.MethodPost, "/api/admin/alerts/"+tt.alertID+"/resolve", nil, 2)
			req = withURLParam(req, "id", tt.alertID)
			w := httptest.NewRecorder()
			h.ResolveAlert(w, req)
			resp := w.Result()
			if resp.StatusCode != tt.wantStatusCode {
				t.Errorf("got status %d, want %d", resp.StatusCode, tt.wantStatusCode)
			}
			_ = resp.Body.Close()
		})
	}
}
