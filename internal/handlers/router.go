package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"github.com/a2sh3r/creator-wallet/internal/middleware"
	"github.com/a2sh3r/creator-wallet/internal/models"
	"github.com/a2sh3r/creator-wallet/internal/service"
	"github.com/a2sh3r/creator-wallet/internal/storage"
)

type Handler struct {
	userService        service.UserService
	withdrawalService  service.WithdrawalService
	bankAccountService service.BankAccountService
	alertService       service.AlertService
	proofs             *storage.ProofStorage
	secretKey          string
}

func NewHandler(
	userService service.UserService,
	withdrawalService service.WithdrawalService,
	bankAccountService service.BankAccountService,
	alertService service.AlertService,
	proofs *storage.ProofStorage,
	secretKey string,
) *Handler {
	return &Handler{
		userService:        userService,
		withdrawalService:  withdrawalService,
		bankAccountService: bankAccountService,
		alertService:       alertService,
		proofs:             proofs,
		secretKey:          secretKey,
	}
}

func NewRouter(handler *Handler, secretKey string) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip())
	r.Use(middleware.RateLimitMiddleware(middleware.NewUserRateLimiter(rate.Limit(10), 20)))

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid URL format", http.StatusNotFound)
	})

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", handler.Register)
		r.Post("/login", handler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTMiddleware(secretKey))

			r.Get("/accounts", handler.ListBankAccounts)
			r.Post("/accounts", handler.CreateBankAccount)
			r.Put("/accounts/{id}", handler.UpdateBankAccount)
			r.Delete("/accounts/{id}", handler.DeleteBankAccount)
			r.Post("/accounts/{id}/default", handler.SetDefaultBankAccount)

			r.Get("/withdrawals", handler.ListWithdrawals)
			r.Post("/withdrawals", handler.CreateWithdrawal)
		})
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.JWTMiddleware(secretKey))
		r.Use(middleware.RequireRole(models.RoleAdmin))

		r.Get("/withdrawals", handler.AdminListWithdrawals)
		r.Post("/withdrawals/{id}/approve", handler.ApproveWithdrawal)
		r.Post("/withdrawals/{id}/reject", handler.RejectWithdrawal)
		r.Post("/withdrawals/{id}/complete", handler.CompleteWithdrawal)
		r.Get("/withdrawals/{id}/alerts", handler.AdminListWithdrawalAlerts)
		r.Get("/alerts", handler.AdminListAlerts)
		r.Post("/alerts/{id}/resolve", handler.ResolveAlert)
	})

	return r
}
