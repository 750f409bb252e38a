package client_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/gobank/ledger/internal/fixtures/mocks"
	"github.com/gobank/ledger/pkg/domain"
	clientsvc "github.com/gobank/ledger/pkg/service/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func registerInput() clientsvc.RegisterInput {
	return clientsvc.RegisterInput{
		Name:          "Maria Silva",
		BirthDate:     time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
		CPF:           "52998224725",
		StreetAddress: "Av. Paulista",
		StreetNumber:  "1578",
		Neighborhood:  "Bela Vista",
		City:          "São Paulo",
		StateCode:     "SP",
	}
}

func TestRegister_Success(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	repo := mocks.NewMockClientRepository(t)

	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("ClientRepository").Return(repo, nil).Once()
	repo.On("Create", mock.Anything).Return(nil).Once()

	svc := clientsvc.NewService(uow, slog.Default())
	c, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)
	assert.Equal(t, "52998224725", c.CPF)
	assert.Equal(t, "Bela Vista", c.Neighborhood)
}

func TestRegister_InvalidCPFNeverHitsStore(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)

	svc := clientsvc.NewService(uow, slog.Default())
	input := registerInput()
	input.CPF = "52998224700"
	_, err := svc.Register(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrInvalidCPF)
	uow.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateCPF(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	repo := mocks.NewMockClientRepository(t)

	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("ClientRepository").Return(repo, nil).Once()
	repo.On("Create", mock.Anything).Return(domain.ErrDuplicateCPF).Once()

	svc := clientsvc.NewService(uow, slog.Default())
	_, err := svc.Register(context.Background(), registerInput())
	assert.ErrorIs(t, err, domain.ErrDuplicateCPF)
}

func TestGetByCPF(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	repo := mocks.NewMockClientRepository(t)
	want := &domain.Client{Name: "Maria Silva", CPF: "52998224725"}

	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("ClientRepository").Return(repo, nil).Once()
	repo.On("GetByCPF", "52998224725").Return(want, nil).Once()

	svc := clientsvc.NewService(uow, slog.Default())
	got, err := svc.GetByCPF(context.Background(), "52998224725")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetByCPF_NotFound(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	repo := mocks.NewMockClientRepository(t)

	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("ClientRepository").Return(repo, nil).Once()
	repo.On("GetByCPF", "52998224725").Return(nil, domain.ErrClientNotFound).Once()

	svc := clientsvc.NewService(uow, slog.Default())
	_, err := svc.GetByCPF(context.Background(), "52998224725")
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}
