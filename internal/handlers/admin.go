package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/h2non/filetype"
	"go.uber.org/zap"

	"github.com/a2sh3r/creator-wallet/internal/apperrors"
	"github.com/a2sh3r/creator-wallet/internal/logger"
	"github.com/a2sh3r/creator-wallet/internal/middleware"
	"github.com/a2sh3r/creator-wallet/internal/models"
	"github.com/a2sh3r/creator-wallet/internal/validation"
)

func withdrawalIDFromURL(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

func (h *Handler) AdminListWithdrawals(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	withdrawals, err := h.withdrawalService.ListForAdmin(r.Context(), adminID)
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

func (h *Handler) AdminListAlerts(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	alerts, err := h.alertService.ListUnresolvedForAdmin(r.Context(), adminID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if alerts == nil {
		alerts = []models.Alert{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(alerts)
}

func (h *Handler) AdminListWithdrawalAlerts(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := withdrawalIDFromURL(r)
	if !ok {
		http.Error(w, "invalid withdrawal id", http.StatusBadRequest)
		return
	}

	alerts, err := h.alertService.ListByWithdrawal(r.Context(), adminID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if alerts == nil {
		alerts = []models.Alert{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(alerts)
}

func (h *Handler) ResolveAlert(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid alert id", http.StatusBadRequest)
		return
	}

	if err := h.alertService.Resolve(r.Context(), adminID, id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) ApproveWithdrawal(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := withdrawalIDFromURL(r)
	if !ok {
		http.Error(w, "invalid withdrawal id", http.StatusBadRequest)
		return
	}

	if err := h.withdrawalService.Approve(r.Context(), adminID, id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) RejectWithdrawal(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := withdrawalIDFromURL(r)
	if !ok {
		http.Error(w, "invalid withdrawal id", http.StatusBadRequest)
		return
	}

	var req rejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if err := h.withdrawalService.Reject(r.Context(), adminID, id, req.Reason); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// CompleteWithdrawal accepts a multipart proof-of-payment upload,
// verifies the declared type against the magic bytes, stores the file
// and records the reference on the withdrawal.
func (h *Handler) CompleteWithdrawal(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := withdrawalIDFromURL(r)
	if !ok {
		http.Error(w, "invalid withdrawal id", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(validation.MaxProofFileBytes); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("proof")
	if err != nil {
		http.Error(w, "proof file is required", http.StatusBadRequest)
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Log.Error("failed to close uploaded file", zap.Error(err))
		}
	}()

	head := make([]byte, 261)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		http.Error(w, "failed to read file", http.StatusBadRequest)
		return
	}

	kind, err := filetype.Match(head[:n])
	if err != nil || kind == filetype.Unknown {
		http.Error(w, "unrecognized file type", http.StatusBadRequest)
		return
	}

	if res := validation.ValidateProofFile(header.Filename, header.Size, kind.MIME.Value); !res.Valid {
		writeServiceError(w, apperrors.NewValidationError(res.Errors))
		return
	}

	content := io.MultiReader(bytes.NewReader(head[:n]), file)
	ref, err := h.proofs.Save(r.Context(), id, header.Filename, content)
	if err != nil {
		http.Error(w, "failed to store proof file", http.StatusInternalServerError)
		logger.Log.Error("proof upload failed", zap.Int64("withdrawal_id", id), zap.Error(err))
		return
	}

	if err := h.withdrawalService.Complete(r.Context(), adminID, id, ref); err != nil {
		// The withdrawal was not completed, so the stored file has no
		// record pointing at it.
		if rmErr := h.proofs.Remove(ref); rmErr != nil {
			logger.Log.Error("failed to remove orphaned proof file",
				zap.String("proof_ref", ref), zap.Error(rmErr))
		}
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"proof_ref": ref})
}
