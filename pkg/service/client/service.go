// Package client provides registration and lookup of bank clients.
// CPF checksum validation happens before the store is touched;
// uniqueness is enforced by the store's unique index.
package client

import (
	"context"
	"log/slog"
	"time"

	"github.com/gobank/ledger/pkg/domain"
	"github.com/gobank/ledger/pkg/repository"
)

// RegisterInput carries the profile fields for a new client.
type RegisterInput struct {
	Name          string
	BirthDate     time.Time
	CPF           string
	StreetAddress string
	StreetNumber  string
	Neighborhood  string
	City          string
	StateCode     string
}

// Service provides client registration and lookup.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewService creates a client Service.
func NewService(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Register validates the CPF and persists a new client. A CPF that
// fails the checksum never reaches the store.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.Client, error) {
	logger := s.logger.With("cpf", input.CPF)

	c, err := domain.NewClient(input.Name, input.BirthDate, input.CPF)
	if err != nil {
		logger.Warn("client registration rejected", "error", err)
		return nil, err
	}
	c.StreetAddress = input.StreetAddress
	c.StreetNumber = input.StreetNumber
	c.Neighborhood = input.Neighborhood
	c.City = input.City
	c.StateCode = input.StateCode

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.ClientRepository()
		if err != nil {
			return err
		}
		return repo.Create(c)
	})
	if err != nil {
		logger.Error("client registration failed", "error", err)
		return nil, err
	}
	logger.Info("client registered", "clientID", c.ID)
	return c, nil
}

// GetByCPF returns the client registered under the CPF.
func (s *Service) GetByCPF(ctx context.Context, cpfNumber string) (c *domain.Client, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.ClientRepository()
		if err != nil {
			return err
		}
		c, err = repo.GetByCPF(cpfNumber)
		return err
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}
