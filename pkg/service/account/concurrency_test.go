package account_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/gobank/ledger/pkg/domain"
	"github.com/gobank/ledger/pkg/repository"
	accountsvc "github.com/gobank/ledger/pkg/service/account"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryLedger is a single-account UnitOfWork whose Do serializes
// callers with a mutex, the way the database serializes transactions
// holding the same row lock. Balance state is live, so each caller
// sees the balance left by the previous one.
type memoryLedger struct {
	mu      sync.Mutex
	account *domain.Account
	ops     []*domain.Operation
}

func newMemoryLedger(account *domain.Account) *memoryLedger {
	return &memoryLedger{account: account}
}

func (l *memoryLedger) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn(l)
}

func (l *memoryLedger) ClientRepository() (repository.ClientRepository, error) {
	return nil, errors.New("memory ledger holds no clients")
}

func (l *memoryLedger) AccountRepository() (repository.AccountRepository, error) {
	return memoryAccounts{l}, nil
}

func (l *memoryLedger) OperationRepository() (repository.OperationRepository, error) {
	return memoryOperations{l}, nil
}

func (l *memoryLedger) balance() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.account.Balance
}

type memoryAccounts struct{ l *memoryLedger }

func (r memoryAccounts) Create(*domain.Account) error { return errors.New("read-only") }

func (r memoryAccounts) GetByNumber(number string) (*domain.Account, error) {
	return r.GetByNumberForUpdate(number)
}

func (r memoryAccounts) GetByNumberForUpdate(number string) (*domain.Account, error) {
	if number != r.l.account.Number {
		return nil, domain.ErrAccountNotFound
	}
	snapshot := *r.l.account
	return &snapshot, nil
}

func (r memoryAccounts) List() ([]*domain.Account, error) {
	return []*domain.Account{r.l.account}, nil
}

func (r memoryAccounts) UpdateBalance(id uuid.UUID, balance decimal.Decimal) error {
	if id != r.l.account.ID {
		return domain.ErrAccountNotFound
	}
	r.l.account.Balance = balance
	return nil
}

type memoryOperations struct{ l *memoryLedger }

func (r memoryOperations) Create(op *domain.Operation) error {
	r.l.ops = append(r.l.ops, op)
	return nil
}

func (r memoryOperations) ListByAccount(accountID uuid.UUID) ([]*domain.Operation, error) {
	var out []*domain.Operation
	for _, op := range r.l.ops {
		if op.Involves(accountID) {
			out = append(out, op)
		}
	}
	return out, nil
}

func (r memoryOperations) CountWithdrawalsOnDate(accountID uuid.UUID, day time.Time) (int64, error) {
	var n int64
	y, m, d := day.Date()
	for _, op := range r.l.ops {
		oy, om, od := op.Timestamp.Date()
		if op.Kind == domain.KindWithdrawal &&
			op.SourceID != nil && *op.SourceID == accountID &&
			oy == y && om == m && od == d {
			n++
		}
	}
	return n, nil
}

func TestWithdraw_ConcurrentCannotOverdraw(t *testing.T) {
	ledger := newMemoryLedger(activeAccount("11111111", "100"))
	svc := accountsvc.NewService(ledger, "0001", slog.Default())

	// Two withdrawals of 80 against a balance of 100: exactly one may
	// go through, whichever order the goroutines run in.
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Withdraw(context.Background(), dec("80"), "11111111")
		}(i)
	}
	wg.Wait()

	succeeded, rejected := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, domain.ErrInsufficientFunds):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)
	require.True(t, ledger.balance().Equal(dec("20")),
		"balance is %s, want 20", ledger.balance())
	assert.Len(t, ledger.ops, 1)
}

func TestWithdraw_ConcurrentDailyLimitHoldsAcrossCallers(t *testing.T) {
	ledger := newMemoryLedger(activeAccount("11111111", "1000"))
	svc := accountsvc.NewService(ledger, "0001", slog.Default())

	errs := make([]error, 5)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Withdraw(context.Background(), dec("10"), "11111111")
		}(i)
	}
	wg.Wait()

	succeeded, rejected := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, domain.ErrDailyLimitExceeded):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 3, succeeded)
	assert.Equal(t, 2, rejected)
	assert.True(t, ledger.balance().Equal(dec("970")))
}
