package webapi_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gobank/ledger/infra/initializer"
	"github.com/gobank/ledger/internal/fixtures/mocks"
	"github.com/gobank/ledger/pkg/domain"
	accountsvc "github.com/gobank/ledger/pkg/service/account"
	clientsvc "github.com/gobank/ledger/pkg/service/client"
	statementsvc "github.com/gobank/ledger/pkg/service/statement"
	"github.com/gobank/ledger/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *mocks.MockUnitOfWork) {
	t.Helper()
	uow := mocks.NewMockUnitOfWork(t)
	logger := slog.Default()
	deps := &initializer.Deps{
		UoW:        uow,
		Logger:     logger,
		Clients:    clientsvc.NewService(uow, logger),
		Accounts:   accountsvc.NewService(uow, "0001", logger),
		Statements: statementsvc.NewService(uow, logger),
	}
	return webapi.NewApp(deps), uow
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	payload := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &payload))
	}
	return resp, payload
}

func activeAccount(number, balance string) *domain.Account {
	return &domain.Account{
		ID:      uuid.New(),
		Number:  number,
		Agency:  "0001",
		Balance: decimal.RequireFromString(balance),
		Active:  true,
	}
}

func TestCreateClient(t *testing.T) {
	app, uow := newTestApp(t)
	clients := mocks.NewMockClientRepository(t)

	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("ClientRepository").Return(clients, nil).Once()
	clients.On("Create", mock.Anything).Return(nil).Once()

	resp, payload := doJSON(t, app, fiber.MethodPost, "/clients", `{
		"name": "Maria Silva",
		"birth_date": "20/05/1990",
		"cpf": "52998224725",
		"street_address": "Av. Paulista",
		"street_number": "1578",
		"neighborhood": "Bela Vista",
		"city": "São Paulo",
		"state_code": "SP"
	}`)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Client registered", payload["success"])
	data := payload["data"].(map[string]any)
	assert.Equal(t, "529.982.247-25", data["cpf"])
	assert.Equal(t, "20/05/1990", data["birth_date"])
}

func TestCreateClient_InvalidCPF(t *testing.T) {
	app, _ := newTestApp(t)

	resp, payload := doJSON(t, app, fiber.MethodPost, "/clients", `{
		"name": "Maria Silva",
		"birth_date": "20/05/1990",
		"cpf": "52998224700",
		"street_address": "Av. Paulista",
		"street_number": "1578",
		"neighborhood": "Bela Vista",
		"city": "São Paulo",
		"state_code": "SP"
	}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, payload["error"], "invalid CPF")
}

func TestCreateClient_BadBirthDate(t *testing.T) {
	app, _ := newTestApp(t)

	resp, payload := doJSON(t, app, fiber.MethodPost, "/clients", `{
		"name": "Maria Silva",
		"birth_date": "1990-05-20",
		"cpf": "52998224725",
		"street_address": "Av. Paulista",
		"street_number": "1578",
		"neighborhood": "Bela Vista",
		"city": "São Paulo",
		"state_code": "SP"
	}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, payload["error"], "DD/MM/YYYY")
}

func TestCreateClient_MissingFields(t *testing.T) {
	app, _ := newTestApp(t)

	resp, payload := doJSON(t, app, fiber.MethodPost, "/clients", `{"name": "Maria Silva"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, payload["error"], "invalid request data")
}

func TestGetClient_NotFound(t *testing.T) {
	app, uow := newTestApp(t)
	clients := mocks.NewMockClientRepository(t)

	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("ClientRepository").Return(clients, nil).Once()
	clients.On("GetByCPF", "52998224725").Return(nil, domain.ErrClientNotFound).Once()

	resp, payload := doJSON(t, app, fiber.MethodGet, "/clients/52998224725", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "client not found", payload["error"])
}

func TestCreateAccount(t *testing.T) {
	app, uow := newTestApp(t)
	clients := mocks.NewMockClientRepository(t)
	accounts := mocks.NewMockAccountRepository(t)
	c := &domain.Client{ID: uuid.New(), CPF: "52998224725"}

	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("ClientRepository").Return(clients, nil).Once()
	clients.On("GetByCPF", "52998224725").Return(c, nil).Once()
	uow.On("AccountRepository").Return(accounts, nil).Once()
	accounts.On("Create", mock.Anything).Return(nil).Once()

	resp, payload := doJSON(t, app, fiber.MethodPost, "/accounts", `{"client_cpf": "52998224725"}`)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	data := payload["data"].(map[string]any)
	assert.Equal(t, "0001", data["agency"])
	assert.Equal(t, float64(0), data["balance"])
	assert.Equal(t, true, data["active"])
}

func TestDeposit(t *testing.T) {
	app, uow := newTestApp(t)
	accounts := mocks.NewMockAccountRepository(t)
	ops := mocks.NewMockOperationRepository(t)
	to := activeAccount("11111111", "0")

	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("AccountRepository").Return(accounts, nil).Once()
	accounts.On("GetByNumberForUpdate", "11111111").Return(to, nil).Once()
	accounts.On("UpdateBalance", to.ID, decimal.RequireFromString("50")).Return(nil).Once()
	uow.On("OperationRepository").Return(ops, nil).Once()
	ops.On("Create", mock.Anything).Return(nil).Once()

	resp, payload := doJSON(t, app, fiber.MethodPost, "/deposit",
		`{"amount": 50, "to_account": "11111111"}`)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Deposit successful", payload["success"])
	data := payload["data"].(map[string]any)
	assert.Equal(t, "Deposit", data["type"])
	assert.Equal(t, "In", data["way"])
}

func TestDeposit_UnknownAccount(t *testing.T) {
	app, uow := newTestApp(t)
	accounts := mocks.NewMockAccountRepository(t)

	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("AccountRepository").Return(accounts, nil).Once()
	accounts.On("GetByNumberForUpdate", "99999999").Return(nil, domain.ErrAccountNotFound).Once()

	resp, payload := doJSON(t, app, fiber.MethodPost, "/deposit",
		`{"amount": 50, "to_account": "99999999"}`)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "account not found", payload["error"])
}

func TestDeposit_NegativeAmount(t *testing.T) {
	app, uow := newTestApp(t)

	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()

	resp, payload := doJSON(t, app, fiber.MethodPost, "/deposit",
		`{"amount": -5, "to_account": "11111111"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "amount must be greater than zero", payload["error"])
}

func TestWithdrawal_OverCap(t *testing.T) {
	app, uow := newTestApp(t)
	accounts := mocks.NewMockAccountRepository(t)
	from := activeAccount("11111111", "10000")

	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("AccountRepository").Return(accounts, nil).Once()
	accounts.On("GetByNumberForUpdate", "11111111").Return(from, nil).Once()

	resp, payload := doJSON(t, app, fiber.MethodPost, "/withdrawal",
		`{"amount": 500.01, "from_account": "11111111"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "withdrawal amount exceeds limit of 500", payload["error"])
}

func TestTransfer_InsufficientFunds(t *testing.T) {
	app, uow := newTestApp(t)
	accounts := mocks.NewMockAccountRepository(t)
	from := activeAccount("11111111", "10")
	to := activeAccount("22222222", "0")

	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("AccountRepository").Return(accounts, nil).Once()
	accounts.On("GetByNumberForUpdate", "11111111").Return(from, nil).Once()
	accounts.On("GetByNumberForUpdate", "22222222").Return(to, nil).Once()

	resp, payload := doJSON(t, app, fiber.MethodPost, "/transfer",
		`{"amount": 30, "from_account": "11111111", "to_account": "22222222"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "insufficient funds", payload["error"])
}

func TestStatement(t *testing.T) {
	app, uow := newTestApp(t)
	accounts := mocks.NewMockAccountRepository(t)
	ops := mocks.NewMockOperationRepository(t)
	account := activeAccount("11111111", "50")
	deposit := &domain.Operation{
		ID: uuid.New(), Kind: domain.KindDeposit, Way: domain.WayIn,
		Amount:        decimal.RequireFromString("50"),
		DestinationID: &account.ID,
	}

	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("AccountRepository").Return(accounts, nil).Once()
	accounts.On("GetByNumber", "11111111").Return(account, nil).Once()
	uow.On("OperationRepository").Return(ops, nil).Once()
	ops.On("ListByAccount", account.ID).Return([]*domain.Operation{deposit}, nil).Once()

	resp, payload := doJSON(t, app, fiber.MethodGet, "/statement/11111111", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Statement retrieved successfully", payload["success"])
	data := payload["data"].(map[string]any)
	assert.Equal(t, "R$50.00", data["balance"])
	assert.Len(t, data["statement"], 1)
}

func TestMethodNotAllowed(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, fiber.MethodGet, "/deposit", "")
	assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
}
