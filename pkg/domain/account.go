package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultAgency is the branch identifier assigned to new accounts
// unless configuration overrides it.
const DefaultAgency = "0001"

// Account is a client's account. Balance is only ever mutated by the
// account service inside a unit of work; handlers and repositories
// treat it as read-only.
type Account struct {
	ID        uuid.UUID
	Number    string
	Agency    string
	Balance   decimal.Decimal
	ClientID  uuid.UUID
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount opens an active, zero-balance account for the client.
func NewAccount(number, agency string, clientID uuid.UUID) *Account {
	if agency == "" {
		agency = DefaultAgency
	}
	return &Account{
		ID:        uuid.New(),
		Number:    number,
		Agency:    agency,
		Balance:   decimal.Zero,
		ClientID:  clientID,
		Active:    true,
		CreatedAt: time.Now(),
	}
}
