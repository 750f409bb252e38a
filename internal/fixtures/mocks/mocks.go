// Package mocks holds hand-written testify mocks for the repository
// contracts, shared by service and handler tests.
package mocks

import (
	"context"
	"time"

	"github.com/gobank/ledger/pkg/domain"
	"github.com/gobank/ledger/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockUnitOfWork is a testify mock of repository.UnitOfWork. Do runs
// the given function against the mock itself unless an expectation
// returns an error first, so tests exercise the real transactional
// closures.
type MockUnitOfWork struct {
	mock.Mock
}

// NewMockUnitOfWork creates a MockUnitOfWork whose expectations are
// asserted when the test finishes.
func NewMockUnitOfWork(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUnitOfWork {
	m := &MockUnitOfWork{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(m)
}

func (m *MockUnitOfWork) ClientRepository() (repository.ClientRepository, error) {
	args := m.Called()
	repo, _ := args.Get(0).(repository.ClientRepository)
	return repo, args.Error(1)
}

func (m *MockUnitOfWork) AccountRepository() (repository.AccountRepository, error) {
	args := m.Called()
	repo, _ := args.Get(0).(repository.AccountRepository)
	return repo, args.Error(1)
}

func (m *MockUnitOfWork) OperationRepository() (repository.OperationRepository, error) {
	args := m.Called()
	repo, _ := args.Get(0).(repository.OperationRepository)
	return repo, args.Error(1)
}

// MockClientRepository is a testify mock of repository.ClientRepository.
type MockClientRepository struct {
	mock.Mock
}

func NewMockClientRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClientRepository {
	m := &MockClientRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockClientRepository) Create(client *domain.Client) error {
	return m.Called(client).Error(0)
}

func (m *MockClientRepository) GetByCPF(cpfNumber string) (*domain.Client, error) {
	args := m.Called(cpfNumber)
	c, _ := args.Get(0).(*domain.Client)
	return c, args.Error(1)
}

// MockAccountRepository is a testify mock of repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

func NewMockAccountRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAccountRepository) Create(account *domain.Account) error {
	return m.Called(account).Error(0)
}

func (m *MockAccountRepository) GetByNumber(number string) (*domain.Account, error) {
	args := m.Called(number)
	a, _ := args.Get(0).(*domain.Account)
	return a, args.Error(1)
}

func (m *MockAccountRepository) GetByNumberForUpdate(number string) (*domain.Account, error) {
	args := m.Called(number)
	a, _ := args.Get(0).(*domain.Account)
	return a, args.Error(1)
}

func (m *MockAccountRepository) List() ([]*domain.Account, error) {
	args := m.Called()
	accounts, _ := args.Get(0).([]*domain.Account)
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) UpdateBalance(id uuid.UUID, balance decimal.Decimal) error {
	return m.Called(id, balance).Error(0)
}

// MockOperationRepository is a testify mock of repository.OperationRepository.
type MockOperationRepository struct {
	mock.Mock
}

func NewMockOperationRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOperationRepository {
	m := &MockOperationRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockOperationRepository) Create(op *domain.Operation) error {
	return m.Called(op).Error(0)
}

func (m *MockOperationRepository) ListByAccount(accountID uuid.UUID) ([]*domain.Operation, error) {
	args := m.Called(accountID)
	ops, _ := args.Get(0).([]*domain.Operation)
	return ops, args.Error(1)
}

func (m *MockOperationRepository) CountWithdrawalsOnDate(accountID uuid.UUID, day time.Time) (int64, error) {
	args := m.Called(accountID, day)
	return args.Get(0).(int64), args.Error(1)
}
