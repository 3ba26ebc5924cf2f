package dashboardservice

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/tradefund/internal/domain"
)

type DepositService interface {
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]domain.Deposit, error)
}

type TransactionService interface {
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]domain.Transaction, error)
}

type TotalService interface {
	GetUserTotals(ctx context.Context, userID uuid.UUID) ([]domain.UserTransactionTotal, error)
	GetAllTotals(ctx context.Context) ([]domain.UserTransactionTotal, error)
}

type PlanService interface {
	List(ctx context.Context) ([]domain.SubscriptionPlan, error)
}

type UserService interface {
	List(ctx context.Context) ([]domain.Profile, error)
}

type UserDashboard struct {
	Deposits     []domain.Deposit
	Transactions []domain.Transaction
	Totals       []domain.UserTransactionTotal
}

type AdminDashboard struct {
	Totals []domain.UserTransactionTotal
	Plans  []domain.SubscriptionPlan
	Users  []domain.Profile
}

type Service struct {
	deposits     DepositService
	transactions TransactionService
	totals       TotalService
	plans        PlanService
	users        UserService
}

func New(deposits DepositService, transactions TransactionService, totals TotalService, plans PlanService, users UserService) *Service {
	return &Service{
		deposits:     deposits,
		transactions: transactions,
		totals:       totals,
		plans:        plans,
		users:        users,
	}
}

// User loads the records of userID concurrently. The first failing load
// cancels the others and its error is returned.
func (s *Service) User(ctx context.Context, userID uuid.UUID) (*UserDashboard, error) {
	var d UserDashboard
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		d.Deposits, err = s.deposits.ListByOwner(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		d.Transactions, err = s.transactions.ListByProfile(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		d.Totals, err = s.totals.GetUserTotals(ctx, userID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Service) Admin(ctx context.Context) (*AdminDashboard, error) {
	var d AdminDashboard
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		d.Totals, err = s.totals.GetAllTotals(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.Plans, err = s.plans.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.Users, err = s.users.List(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}
