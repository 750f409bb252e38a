// Package repository defines the data-access contracts the services
// depend on. Implementations live in infra/repository; tests use the
// mocks in internal/fixtures/mocks.
package repository

import (
	"context"
	"time"

	"github.com/gobank/ledger/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClientRepository defines client data access. Clients are never
// deleted.
type ClientRepository interface {
	Create(client *domain.Client) error
	GetByCPF(cpfNumber string) (*domain.Client, error)
}

// AccountRepository defines account data access. Balance writes only
// happen through UpdateBalance inside a unit of work.
type AccountRepository interface {
	Create(account *domain.Account) error
	GetByNumber(number string) (*domain.Account, error)
	// GetByNumberForUpdate fetches the account holding a row-level
	// write lock for the remainder of the enclosing transaction.
	GetByNumberForUpdate(number string) (*domain.Account, error)
	List() ([]*domain.Account, error)
	UpdateBalance(id uuid.UUID, balance decimal.Decimal) error
}

// OperationRepository defines operation data access. Operations are
// immutable: there is no update or delete.
type OperationRepository interface {
	Create(op *domain.Operation) error
	// ListByAccount returns every operation where the account is
	// source or destination, in ascending timestamp order.
	ListByAccount(accountID uuid.UUID) ([]*domain.Operation, error)
	// CountWithdrawalsOnDate counts withdrawals recorded against the
	// account on the calendar date of day (server-local).
	CountWithdrawalsOnDate(accountID uuid.UUID, day time.Time) (int64, error)
}

// UnitOfWork provides a transaction boundary plus repository access
// bound to that transaction, so a balance write and its operation
// record commit or roll back together.
type UnitOfWork interface {
	// Do runs fn inside a transaction; fn receives a UnitOfWork whose
	// repositories share the transaction's session.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error
	ClientRepository() (ClientRepository, error)
	AccountRepository() (AccountRepository, error)
	OperationRepository() (OperationRepository, error)
}
