package repo

import (
	"github.com/GlebRadaev/tradefund/internal/pg"
	depositrepo "github.com/GlebRadaev/tradefund/internal/repo/deposit-repo"
	paymentmethodrepo "github.com/GlebRadaev/tradefund/internal/repo/paymentmethod-repo"
	planrepo "github.com/GlebRadaev/tradefund/internal/repo/plan-repo"
	profilerepo "github.com/GlebRadaev/tradefund/internal/repo/profile-repo"
	totalrepo "github.com/GlebRadaev/tradefund/internal/repo/total-repo"
	transactionrepo "github.com/GlebRadaev/tradefund/internal/repo/transaction-repo"
	"github.com/GlebRadaev/tradefund/internal/service/authservice"
	"github.com/GlebRadaev/tradefund/internal/service/depositservice"
	"github.com/GlebRadaev/tradefund/internal/service/paymentmethodservice"
	"github.com/GlebRadaev/tradefund/internal/service/planservice"
	"github.com/GlebRadaev/tradefund/internal/service/totalservice"
	"github.com/GlebRadaev/tradefund/internal/service/transactionservice"
	"github.com/GlebRadaev/tradefund/internal/service/userservice"
)

// ProfileRepo serves both sign-up/sign-in and user administration.
type ProfileRepo interface {
	authservice.Repo
	userservice.Repo
}

type Repositories struct {
	ProfileRepo       ProfileRepo
	DepositRepo       depositservice.Repo
	TransactionRepo   transactionservice.Repo
	TotalRepo         totalservice.Repo
	PlanRepo          planservice.Repo
	PaymentMethodRepo paymentmethodservice.Repo

	TXManager pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		ProfileRepo:       profilerepo.New(conn),
		DepositRepo:       depositrepo.New(conn, txManager),
		TransactionRepo:   transactionrepo.New(conn, txManager),
		TotalRepo:         totalrepo.New(conn),
		PlanRepo:          planrepo.New(conn),
		PaymentMethodRepo: paymentmethodrepo.New(conn),
		TXManager:         txManager,
	}
}
