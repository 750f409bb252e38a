package repository

import (
	"github.com/gobank/ledger/pkg/domain"
	"github.com/gobank/ledger/pkg/repository"
	"gorm.io/gorm"
)

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a gorm-backed ClientRepository bound to
// the given session.
func NewClientRepository(db *gorm.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(c *domain.Client) error {
	err := r.db.Create(clientToModel(c)).Error
	return translate(err, domain.ErrClientNotFound, domain.ErrDuplicateCPF)
}

func (r *clientRepository) GetByCPF(cpfNumber string) (*domain.Client, error) {
	var m Client
	err := r.db.Where("cpf = ?", cpfNumber).First(&m).Error
	if err != nil {
		return nil, translate(err, domain.ErrClientNotFound, domain.ErrDuplicateCPF)
	}
	return clientToDomain(&m), nil
}
