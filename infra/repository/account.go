package repository

import (
	"github.com/gobank/ledger/pkg/domain"
	"github.com/gobank/ledger/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a gorm-backed AccountRepository bound
// to the given session.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(a *domain.Account) error {
	err := r.db.Create(accountToModel(a)).Error
	return translate(err, domain.ErrAccountNotFound, domain.ErrDuplicateAccountNumber)
}

func (r *accountRepository) GetByNumber(number string) (*domain.Account, error) {
	var m Account
	err := r.db.Where("number = ?", number).First(&m).Error
	if err != nil {
		return nil, translate(err, domain.ErrAccountNotFound, domain.ErrDuplicateAccountNumber)
	}
	return accountToDomain(&m), nil
}

func (r *accountRepository) GetByNumberForUpdate(number string) (*domain.Account, error) {
	var m Account
	err := r.db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("number = ?", number).
		First(&m).Error
	if err != nil {
		return nil, translate(err, domain.ErrAccountNotFound, domain.ErrDuplicateAccountNumber)
	}
	return accountToDomain(&m), nil
}

func (r *accountRepository) List() ([]*domain.Account, error) {
	var models []Account
	if err := r.db.Order("number asc").Find(&models).Error; err != nil {
		return nil, translate(err, domain.ErrAccountNotFound, domain.ErrDuplicateAccountNumber)
	}
	accounts := make([]*domain.Account, 0, len(models))
	for i := range models {
		accounts = append(accounts, accountToDomain(&models[i]))
	}
	return accounts, nil
}

func (r *accountRepository) UpdateBalance(id uuid.UUID, balance decimal.Decimal) error {
	res := r.db.Model(&Account{}).Where("id = ?", id).Update("balance", balance)
	if res.Error != nil {
		return translate(res.Error, domain.ErrAccountNotFound, domain.ErrDuplicateAccountNumber)
	}
	if res.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}
