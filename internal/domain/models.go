package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Profile struct {
	ID           uuid.UUID `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

type DepositStatus string

const (
	DepositPending   DepositStatus = "pending"
	DepositCompleted DepositStatus = "completed"
	DepositFailed    DepositStatus = "failed"
	DepositCancelled DepositStatus = "cancelled"
)

func (s DepositStatus) Valid() bool {
	switch s {
	case DepositPending, DepositCompleted, DepositFailed, DepositCancelled:
		return true
	}
	return false
}

type Deposit struct {
	ID            uuid.UUID       `db:"id"`
	UserID        uuid.UUID       `db:"user_id"`
	Amount        decimal.Decimal `db:"amount"`
	Method        string          `db:"method"`
	TransactionID string          `db:"transaction_id"`
	Status        DepositStatus   `db:"status"`
	IsVerified    bool            `db:"is_verified"`
	IPAddress     *string         `db:"ip_address"`
	Notes         *string         `db:"notes"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
	TransactionCancelled TransactionStatus = "cancelled"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionPending, TransactionCompleted, TransactionFailed, TransactionCancelled:
		return true
	}
	return false
}

type Transaction struct {
	ID                 uuid.UUID         `db:"id"`
	ProfileID          uuid.UUID         `db:"profile_id"`
	SubscriptionPlanID uuid.UUID         `db:"subscription_plan_id"`
	Amount             decimal.Decimal   `db:"amount"`
	Status             TransactionStatus `db:"status"`
	CreatedAt          time.Time         `db:"created_at"`
}

// TotalType is the category a running total is kept for.
type TotalType string

const (
	TotalTransactions TotalType = "transactions"
	TotalDeposits     TotalType = "deposits"
	TotalWithdrawals  TotalType = "withdrawals"
)

func (t TotalType) Valid() bool {
	switch t {
	case TotalTransactions, TotalDeposits, TotalWithdrawals:
		return true
	}
	return false
}

// UserTransactionTotal is unique per (UserID, Type).
type UserTransactionTotal struct {
	ID        uuid.UUID       `db:"id"`
	UserID    uuid.UUID       `db:"user_id"`
	Type      TotalType       `db:"type"`
	Amount    decimal.Decimal `db:"amount"`
	UpdatedAt time.Time       `db:"updated_at"`
}

type SubscriptionPlan struct {
	ID          uuid.UUID       `db:"id"          json:"id"`
	Name        string          `db:"name"        json:"name"`
	Price       decimal.Decimal `db:"price"       json:"price"`
	Features    []string        `db:"features"    json:"features"`
	Description string          `db:"description" json:"description"`
	CreatedAt   time.Time       `db:"created_at"  json:"created_at"`
}

type PaymentMethodType string

const (
	PaymentMethodCrypto PaymentMethodType = "CRYPTO"
	PaymentMethodBank   PaymentMethodType = "BANK"
)

func (t PaymentMethodType) Valid() bool {
	return t == PaymentMethodCrypto || t == PaymentMethodBank
}

type PaymentMethod struct {
	ID          uuid.UUID         `db:"id"`
	Name        string            `db:"name"`
	Description *string           `db:"description"`
	Type        PaymentMethodType `db:"type"`
	Enabled     bool              `db:"enabled"`
	Details     json.RawMessage   `db:"details"`
	CreatedAt   time.Time         `db:"created_at"`
	UpdatedAt   time.Time         `db:"updated_at"`
}

// CryptoDetails is the details document of a CRYPTO payment method.
type CryptoDetails struct {
	Network  string `json:"network,omitempty"`
	Address  string `json:"address"`
	Currency string `json:"currency"`
}

// BankDetails is the details document of a BANK payment method.
type BankDetails struct {
	BankName      string `json:"bank_name"`
	AccountHolder string `json:"account_holder,omitempty"`
	AccountNumber string `json:"account_number"`
	CardNumber    string `json:"card_number,omitempty"`
}
