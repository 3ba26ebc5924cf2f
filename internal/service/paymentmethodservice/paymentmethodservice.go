package paymentmethodservice

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/tradefund/internal/domain"
	"github.com/GlebRadaev/tradefund/pkg/validate"
)

type Repo interface {
	Create(ctx context.Context, method *domain.PaymentMethod) (*domain.PaymentMethod, error)
	Update(ctx context.Context, method *domain.PaymentMethod) (*domain.PaymentMethod, error)
	SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) (*domain.PaymentMethod, error)
	FindAll(ctx context.Context, onlyEnabled bool) ([]domain.PaymentMethod, error)
}

type Input struct {
	Name        string
	Description *string
	Type        domain.PaymentMethodType
	Enabled     bool
	Details     json.RawMessage
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// ValidateDetails checks the details document against the method type and
// returns it re-encoded without unknown fields.
func ValidateDetails(typ domain.PaymentMethodType, raw json.RawMessage) (json.RawMessage, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("details are required: %w", domain.ErrValidation)
	}
	var details any
	switch typ {
	case domain.PaymentMethodCrypto:
		var d domain.CryptoDetails
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("crypto details: %w", domain.ErrValidation)
		}
		if d.Address == "" || d.Currency == "" {
			return nil, fmt.Errorf("crypto details need address and currency: %w", domain.ErrValidation)
		}
		details = d
	case domain.PaymentMethodBank:
		var d domain.BankDetails
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("bank details: %w", domain.ErrValidation)
		}
		if d.BankName == "" || d.AccountNumber == "" {
			return nil, fmt.Errorf("bank details need bank_name and account_number: %w", domain.ErrValidation)
		}
		if d.CardNumber != "" && !validate.IsLuhn(d.CardNumber) {
			return nil, fmt.Errorf("card number fails checksum: %w", domain.ErrValidation)
		}
		details = d
	default:
		return nil, fmt.Errorf("unknown payment method type %q: %w", typ, domain.ErrValidation)
	}
	out, err := json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("encode details: %w", domain.ErrValidation)
	}
	return out, nil
}

func (in Input) toMethod(id uuid.UUID) (*domain.PaymentMethod, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("payment method name is required: %w", domain.ErrValidation)
	}
	typ := in.Type
	if typ == "" {
		typ = domain.PaymentMethodCrypto
	}
	details, err := ValidateDetails(typ, in.Details)
	if err != nil {
		return nil, err
	}
	return &domain.PaymentMethod{
		ID:          id,
		Name:        name,
		Description: in.Description,
		Type:        typ,
		Enabled:     in.Enabled,
		Details:     details,
	}, nil
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.PaymentMethod, error) {
	m, err := in.toMethod(uuid.New())
	if err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, m)
	if err != nil {
		return nil, err
	}
	zap.L().Info("payment method created", zap.String("id", created.ID.String()), zap.String("type", string(created.Type)))
	return created, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, in Input) (*domain.PaymentMethod, error) {
	m, err := in.toMethod(id)
	if err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, m)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("payment method %s: %w", id, domain.ErrNotFound)
	}
	return updated, nil
}

func (s *Service) SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) (*domain.PaymentMethod, error) {
	m, err := s.repo.SetEnabled(ctx, id, enabled)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("payment method %s: %w", id, domain.ErrNotFound)
	}
	zap.L().Info("payment method toggled", zap.String("id", id.String()), zap.Bool("enabled", enabled))
	return m, nil
}

// List returns every payment method, enabled or not.
func (s *Service) List(ctx context.Context) ([]domain.PaymentMethod, error) {
	return s.repo.FindAll(ctx, false)
}

func (s *Service) ListEnabled(ctx context.Context) ([]domain.PaymentMethod, error) {
	return s.repo.FindAll(ctx, true)
}
