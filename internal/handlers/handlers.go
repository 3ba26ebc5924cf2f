package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/tradefund/docs"
	"github.com/GlebRadaev/tradefund/internal/access"
	authhandlers "github.com/GlebRadaev/tradefund/internal/handlers/auth"
	dashboardhandlers "github.com/GlebRadaev/tradefund/internal/handlers/dashboard"
	deposithandlers "github.com/GlebRadaev/tradefund/internal/handlers/deposits"
	paymentmethodhandlers "github.com/GlebRadaev/tradefund/internal/handlers/paymentmethods"
	planhandlers "github.com/GlebRadaev/tradefund/internal/handlers/plans"
	totalhandlers "github.com/GlebRadaev/tradefund/internal/handlers/totals"
	transactionhandlers "github.com/GlebRadaev/tradefund/internal/handlers/transactions"
	userhandlers "github.com/GlebRadaev/tradefund/internal/handlers/users"
	"github.com/GlebRadaev/tradefund/internal/service"
	"github.com/GlebRadaev/tradefund/pkg/auth"
	"github.com/GlebRadaev/tradefund/pkg/logger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type DepositHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListByUser(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type TransactionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type TotalHandler interface {
	Mine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Upsert(w http.ResponseWriter, r *http.Request)
}

type PlanHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type PaymentMethodHandler interface {
	ListEnabled(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	SetEnabled(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	SetRole(w http.ResponseWriter, r *http.Request)
}

type DashboardHandler interface {
	User(w http.ResponseWriter, r *http.Request)
	Admin(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler          AuthHandler
	DepositHandler       DepositHandler
	TransactionHandler   TransactionHandler
	TotalHandler         TotalHandler
	PlanHandler          PlanHandler
	PaymentMethodHandler PaymentMethodHandler
	UserHandler          UserHandler
	DashboardHandler     DashboardHandler

	JWTService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:          authhandlers.New(s.AuthService),
		DepositHandler:       deposithandlers.New(s.DepositService),
		TransactionHandler:   transactionhandlers.New(s.TransactionService),
		TotalHandler:         totalhandlers.New(s.TotalService),
		PlanHandler:          planhandlers.New(s.PlanService),
		PaymentMethodHandler: paymentmethodhandlers.New(s.PaymentMethodService),
		UserHandler:          userhandlers.New(s.UserService),
		DashboardHandler:     dashboardhandlers.New(s.DashboardService),
		JWTService:           jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		logger.RequestLogger,
		middleware.Recoverer,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	view := func(e access.Entity) func(http.Handler) http.Handler { return Require(access.ActionView, e) }
	create := func(e access.Entity) func(http.Handler) http.Handler { return Require(access.ActionCreate, e) }
	update := func(e access.Entity) func(http.Handler) http.Handler { return Require(access.ActionUpdate, e) }

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.JWTService))
			r.Get("/me", h.AuthHandler.Me)

			ud := access.EntityUserDashboard
			r.With(view(ud)).Get("/dashboard", h.DashboardHandler.User)
			r.Route("/deposits", func(r chi.Router) {
				r.With(create(ud)).Post("/", h.DepositHandler.Create)
				r.With(view(ud)).Get("/", h.DepositHandler.List)
				r.With(view(ud)).Get("/{id}", h.DepositHandler.Get)
			})
			r.Route("/transactions", func(r chi.Router) {
				r.With(create(ud)).Post("/", h.TransactionHandler.Create)
				r.With(view(ud)).Get("/", h.TransactionHandler.List)
			})
			r.With(view(ud)).Get("/totals", h.TotalHandler.Mine)
			r.With(view(ud)).Get("/plans", h.PlanHandler.List)
			r.With(view(ud)).Get("/payment-methods", h.PaymentMethodHandler.ListEnabled)
		})
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.Middleware(h.JWTService))

		ad := access.EntityAdminDashboard
		r.With(view(ad)).Get("/dashboard", h.DashboardHandler.Admin)

		r.With(view(access.EntityTrades)).Get("/deposits", h.DepositHandler.ListByUser)
		r.With(update(access.EntityTrades)).Patch("/deposits/{id}/status", h.DepositHandler.UpdateStatus)
		r.With(update(access.EntityTrades)).Patch("/transactions/{id}/status", h.TransactionHandler.UpdateStatus)
		r.With(view(access.EntityTrades)).Get("/totals", h.TotalHandler.List)
		r.With(update(access.EntityTrades)).Put("/totals", h.TotalHandler.Upsert)

		r.With(view(access.EntityUsers)).Get("/users", h.UserHandler.List)
		r.With(update(access.EntityUsers)).Patch("/users/{id}/role", h.UserHandler.SetRole)

		r.Route("/plans", func(r chi.Router) {
			r.With(view(ad)).Get("/", h.PlanHandler.List)
			r.With(create(ad)).Post("/", h.PlanHandler.Create)
			r.With(update(ad)).Put("/{id}", h.PlanHandler.Update)
		})
		r.Route("/payment-methods", func(r chi.Router) {
			r.With(view(ad)).Get("/", h.PaymentMethodHandler.List)
			r.With(create(ad)).Post("/", h.PaymentMethodHandler.Create)
			r.With(update(ad)).Put("/{id}", h.PaymentMethodHandler.Update)
			r.With(update(ad)).Patch("/{id}/enabled", h.PaymentMethodHandler.SetEnabled)
		})
	})

	return r
}
