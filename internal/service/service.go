package service

import (
	"github.com/GlebRadaev/tradefund/internal/config"
	"github.com/GlebRadaev/tradefund/internal/handlers/auth"
	"github.com/GlebRadaev/tradefund/internal/handlers/dashboard"
	"github.com/GlebRadaev/tradefund/internal/handlers/deposits"
	"github.com/GlebRadaev/tradefund/internal/handlers/paymentmethods"
	"github.com/GlebRadaev/tradefund/internal/handlers/plans"
	"github.com/GlebRadaev/tradefund/internal/handlers/totals"
	"github.com/GlebRadaev/tradefund/internal/handlers/transactions"
	"github.com/GlebRadaev/tradefund/internal/handlers/users"

	pkgauth "github.com/GlebRadaev/tradefund/pkg/auth"

	"github.com/GlebRadaev/tradefund/internal/repo"
	"github.com/GlebRadaev/tradefund/internal/service/authservice"
	"github.com/GlebRadaev/tradefund/internal/service/dashboardservice"
	"github.com/GlebRadaev/tradefund/internal/service/depositservice"
	"github.com/GlebRadaev/tradefund/internal/service/paymentmethodservice"
	"github.com/GlebRadaev/tradefund/internal/service/planservice"
	"github.com/GlebRadaev/tradefund/internal/service/totalservice"
	"github.com/GlebRadaev/tradefund/internal/service/transactionservice"
	"github.com/GlebRadaev/tradefund/internal/service/userservice"
)

type Services struct {
	AuthService          auth.Service
	DepositService       deposits.Service
	TransactionService   transactions.Service
	TotalService         totals.Service
	PlanService          plans.Service
	PaymentMethodService paymentmethods.Service
	UserService          users.Service
	DashboardService     dashboard.Service
}

func New(repo *repo.Repositories, cfg *config.Config, jwtService pkgauth.JWTServiceInterface, planCache planservice.Cache) *Services {
	totalService := totalservice.New(repo.TotalRepo)
	depositService := depositservice.New(repo.DepositRepo)
	planService := planservice.New(repo.PlanRepo, planCache)
	transactionService := transactionservice.New(repo.TransactionRepo, planService)
	userService := userservice.New(repo.ProfileRepo)
	authService := authservice.New(repo.ProfileRepo, totalService, repo.TXManager, &pkgauth.HashService{}, jwtService, cfg.TokenTTL, cfg.AdminLogin)

	return &Services{
		AuthService:          authService,
		DepositService:       depositService,
		TransactionService:   transactionService,
		TotalService:         totalService,
		PlanService:          planService,
		PaymentMethodService: paymentmethodservice.New(repo.PaymentMethodRepo),
		UserService:          userService,
		DashboardService:     dashboardservice.New(depositService, transactionService, totalService, planService, userService),
	}
}
