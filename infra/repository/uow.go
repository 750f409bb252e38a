package repository

import (
	"context"

	"github.com/gobank/ledger/pkg/repository"
	"gorm.io/gorm"
)

// UoW is the gorm unit of work. Do opens a database transaction and
// hands the closure a UoW whose repositories all share that
// transaction's session, so a balance write and its operation record
// commit or roll back together. Row locks taken inside the closure
// (GetByNumberForUpdate) are held until Do returns.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// session returns the transaction session when inside Do, the bare
// connection otherwise.
func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// Do runs fn inside a transaction boundary. Nested calls reuse the
// enclosing transaction instead of opening a new one.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if u.tx != nil {
		return fn(u)
	}
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

// ClientRepository returns a ClientRepository bound to the current
// session.
func (u *UoW) ClientRepository() (repository.ClientRepository, error) {
	return NewClientRepository(u.session()), nil
}

// AccountRepository returns an AccountRepository bound to the current
// session.
func (u *UoW) AccountRepository() (repository.AccountRepository, error) {
	return NewAccountRepository(u.session()), nil
}

// OperationRepository returns an OperationRepository bound to the
// current session.
func (u *UoW) OperationRepository() (repository.OperationRepository, error) {
	return NewOperationRepository(u.session()), nil
}
