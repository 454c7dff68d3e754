package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/a2sh3r/creator-wallet/internal/middleware"
	"github.com/a2sh3r/creator-wallet/internal/models"
)

type createWithdrawalResponse struct {
	Withdrawal *models.Withdrawal `json:"withdrawal"`
	Alerts     []models.Alert     `json:"alerts"`
}

func (h *Handler) CreateWithdrawal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.WithdrawalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	withdrawal, alerts, err := h.withdrawalService.Create(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if alerts == nil {
		alerts = []models.Alert{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(createWithdrawalResponse{Withdrawal: withdrawal, Alerts: alerts})
}

func (h *Handler) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	withdrawals, err := h.withdrawalService.ListByUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if withdrawals == nil {
		withdrawals = []models.Withdrawal{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(withdrawals)
}
