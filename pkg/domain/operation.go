package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OperationKind tags an Operation record. A single record type with a
// kind tag replaces per-kind subtypes; the rule engine dispatches on
// the tag.
type OperationKind string

// OperationWay is the directionality of an operation relative to the
// ledger.
type OperationWay string

const (
	KindDeposit    OperationKind = "D"
	KindWithdrawal OperationKind = "W"
	KindTransfer   OperationKind = "T"

	WayIn    OperationWay = "IN"
	WayOut   OperationWay = "OUT"
	WayInOut OperationWay = "IN_OUT"
)

// Label returns the human-readable name of the kind.
func (k OperationKind) Label() string {
	switch k {
	case KindDeposit:
		return "Deposit"
	case KindWithdrawal:
		return "Withdrawal"
	case KindTransfer:
		return "Transfer"
	}
	return string(k)
}

// Label returns the human-readable name of the way.
func (w OperationWay) Label() string {
	switch w {
	case WayIn:
		return "In"
	case WayOut:
		return "Out"
	case WayInOut:
		return "In/Out"
	}
	return string(w)
}

// Operation is an immutable ledger record. By the time one is
// persisted its balance side effect has already been applied; there
// is no pending state and no update or delete path.
type Operation struct {
	ID            uuid.UUID
	Kind          OperationKind
	Way           OperationWay
	Amount        decimal.Decimal
	Timestamp     time.Time
	SourceID      *uuid.UUID
	DestinationID *uuid.UUID

	// SourceNumber and DestinationNumber carry the account numbers
	// for presentation. The repository hydrates them when listing
	// operations; they are not persisted columns.
	SourceNumber      string
	DestinationNumber string
}

// NewDeposit builds a deposit record into the destination account.
func NewDeposit(amount decimal.Decimal, destinationID uuid.UUID) (*Operation, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	return &Operation{
		ID:            uuid.New(),
		Kind:          KindDeposit,
		Way:           WayIn,
		Amount:        amount,
		Timestamp:     time.Now(),
		DestinationID: &destinationID,
	}, nil
}

// NewWithdrawal builds a withdrawal record out of the source account.
func NewWithdrawal(amount decimal.Decimal, sourceID uuid.UUID) (*Operation, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	return &Operation{
		ID:        uuid.New(),
		Kind:      KindWithdrawal,
		Way:       WayOut,
		Amount:    amount,
		Timestamp: time.Now(),
		SourceID:  &sourceID,
	}, nil
}

// NewTransfer builds a transfer record between two accounts. A
// transfer to the same account is allowed and nets to zero.
func NewTransfer(amount decimal.Decimal, sourceID, destinationID uuid.UUID) (*Operation, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	return &Operation{
		ID:            uuid.New(),
		Kind:          KindTransfer,
		Way:           WayInOut,
		Amount:        amount,
		Timestamp:     time.Now(),
		SourceID:      &sourceID,
		DestinationID: &destinationID,
	}, nil
}

// Involves reports whether the account takes part in the operation.
func (o *Operation) Involves(accountID uuid.UUID) bool {
	if o.SourceID != nil && *o.SourceID == accountID {
		return true
	}
	return o.DestinationID != nil && *o.DestinationID == accountID
}
