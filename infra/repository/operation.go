package repository

import (
	"time"

	"github.com/gobank/ledger/pkg/domain"
	"github.com/gobank/ledger/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type operationRepository struct {
	db *gorm.DB
}

// NewOperationRepository creates a gorm-backed OperationRepository
// bound to the given session.
func NewOperationRepository(db *gorm.DB) repository.OperationRepository {
	return &operationRepository{db: db}
}

func (r *operationRepository) Create(op *domain.Operation) error {
	err := r.db.Create(opToModel(op)).Error
	return translate(err, domain.ErrAccountNotFound, domain.ErrDuplicateAccountNumber)
}

func (r *operationRepository) ListByAccount(accountID uuid.UUID) ([]*domain.Operation, error) {
	var models []Operation
	err := r.db.
		Preload("Source").
		Preload("Destination").
		Where("source_id = ? OR destination_id = ?", accountID, accountID).
		Order("timestamp asc").
		Find(&models).Error
	if err != nil {
		return nil, translate(err, domain.ErrAccountNotFound, domain.ErrDuplicateAccountNumber)
	}
	ops := make([]*domain.Operation, 0, len(models))
	for i := range models {
		ops = append(ops, opToDomain(&models[i]))
	}
	return ops, nil
}

func (r *operationRepository) CountWithdrawalsOnDate(accountID uuid.UUID, day time.Time) (int64, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)
	var count int64
	err := r.db.Model(&Operation{}).
		Where("kind = ?", string(domain.KindWithdrawal)).
		Where("source_id = ?", accountID).
		Where("timestamp >= ? AND timestamp < ?", start, end).
		Count(&count).Error
	if err != nil {
		return 0, translate(err, domain.ErrAccountNotFound, domain.ErrDuplicateAccountNumber)
	}
	return count, nil
}
