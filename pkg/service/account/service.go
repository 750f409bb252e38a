// Package account provides account opening, lookup and the operation
// rule engine: deposits, withdrawals and transfers are validated and
// applied here, with the balance write and the operation record
// committed as one unit of work. Nothing else mutates balances.
package account

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gobank/ledger/pkg/domain"
	"github.com/gobank/ledger/pkg/repository"
	"github.com/shopspring/decimal"
)

// maxOpenAttempts bounds retries when a generated account number
// collides with an existing one.
const maxOpenAttempts = 5

// maxDailyWithdrawals is the number of withdrawals allowed per
// account per calendar date. Transfers are not counted.
const maxDailyWithdrawals = 3

// withdrawalCap is the fixed per-transaction withdrawal ceiling.
// Transfers carry no cap.
var withdrawalCap = decimal.NewFromInt(500)

// Service implements account management and the operation rules.
type Service struct {
	uow           repository.UnitOfWork
	defaultAgency string
	logger        *slog.Logger
}

// NewService creates an account Service. An empty defaultAgency falls
// back to domain.DefaultAgency.
func NewService(uow repository.UnitOfWork, defaultAgency string, logger *slog.Logger) *Service {
	if defaultAgency == "" {
		defaultAgency = domain.DefaultAgency
	}
	return &Service{uow: uow, defaultAgency: defaultAgency, logger: logger}
}

// newAccountNumber draws a random 8-digit account number. Uniqueness
// is enforced by the store; Open retries on collision.
func newAccountNumber() string {
	digits := make([]byte, 8)
	for i := range digits {
		digits[i] = byte('0' + rand.Intn(10))
	}
	return string(digits)
}

// Open creates an active zero-balance account for the client
// registered under clientCPF.
func (s *Service) Open(ctx context.Context, clientCPF string) (*domain.Account, error) {
	logger := s.logger.With("cpf", clientCPF)
	var opened *domain.Account
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		clients, err := uow.ClientRepository()
		if err != nil {
			return err
		}
		c, err := clients.GetByCPF(clientCPF)
		if err != nil {
			return err
		}
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		for attempt := 0; ; attempt++ {
			a := domain.NewAccount(newAccountNumber(), s.defaultAgency, c.ID)
			err = accounts.Create(a)
			if err == nil {
				opened = a
				return nil
			}
			if !errors.Is(err, domain.ErrDuplicateAccountNumber) || attempt+1 >= maxOpenAttempts {
				return err
			}
		}
	})
	if err != nil {
		logger.Error("account open failed", "error", err)
		return nil, err
	}
	logger.Info("account opened", "number", opened.Number, "agency", opened.Agency)
	return opened, nil
}

// Get returns the account with the given number.
func (s *Service) Get(ctx context.Context, number string) (a *domain.Account, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		a, err = repo.GetByNumber(number)
		return err
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// List returns every account.
func (s *Service) List(ctx context.Context) (accounts []*domain.Account, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		accounts, err = repo.List()
		return err
	})
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// Deposit credits amount to the destination account and records a
// Deposit operation. Rules: amount must be positive, the account must
// be active.
func (s *Service) Deposit(ctx context.Context, amount decimal.Decimal, toNumber string) (*domain.Operation, error) {
	logger := s.logger.With("to", toNumber, "amount", amount)
	var op *domain.Operation
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if !amount.IsPositive() {
			return domain.ErrInvalidAmount
		}
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		to, err := accounts.GetByNumberForUpdate(toNumber)
		if err != nil {
			return err
		}
		if !to.Active {
			return domain.ErrAccountInactive
		}
		op, err = domain.NewDeposit(amount, to.ID)
		if err != nil {
			return err
		}
		if err = accounts.UpdateBalance(to.ID, to.Balance.Add(amount)); err != nil {
			return err
		}
		ops, err := uow.OperationRepository()
		if err != nil {
			return err
		}
		return ops.Create(op)
	})
	if err != nil {
		logger.Warn("deposit rejected", "error", err)
		return nil, err
	}
	logger.Info("deposit applied", "operationID", op.ID)
	return op, nil
}

// Withdraw debits amount from the source account and records a
// Withdrawal operation. Rules, in order: amount must be positive, the
// account must be active, the amount may not exceed the 500 cap or
// the current balance, and at most three withdrawals may be recorded
// per account per calendar date (server-local). The daily count is
// recomputed from the store on every call.
func (s *Service) Withdraw(ctx context.Context, amount decimal.Decimal, fromNumber string) (*domain.Operation, error) {
	logger := s.logger.With("from", fromNumber, "amount", amount)
	var op *domain.Operation
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if !amount.IsPositive() {
			return domain.ErrInvalidAmount
		}
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		from, err := accounts.GetByNumberForUpdate(fromNumber)
		if err != nil {
			return err
		}
		if !from.Active {
			return domain.ErrAccountInactive
		}
		if amount.GreaterThan(withdrawalCap) {
			return domain.ErrLimitExceeded
		}
		if amount.GreaterThan(from.Balance) {
			return domain.ErrInsufficientFunds
		}
		ops, err := uow.OperationRepository()
		if err != nil {
			return err
		}
		today, err := ops.CountWithdrawalsOnDate(from.ID, time.Now())
		if err != nil {
			return err
		}
		if today >= maxDailyWithdrawals {
			return domain.ErrDailyLimitExceeded
		}
		op, err = domain.NewWithdrawal(amount, from.ID)
		if err != nil {
			return err
		}
		if err = accounts.UpdateBalance(from.ID, from.Balance.Sub(amount)); err != nil {
			return err
		}
		return ops.Create(op)
	})
	if err != nil {
		logger.Warn("withdrawal rejected", "error", err)
		return nil, err
	}
	logger.Info("withdrawal applied", "operationID", op.ID)
	return op, nil
}

// Transfer moves amount between two accounts and records a Transfer
// operation. Rules, in order: both accounts must resolve, both must
// be active, the amount must be positive and may not exceed the
// source balance. No per-transaction cap and no daily count apply.
// A transfer to the same account is a valid no-op on the balance.
//
// Both account rows are locked in ascending account-number order so
// two concurrent transfers between the same pair cannot deadlock.
func (s *Service) Transfer(ctx context.Context, amount decimal.Decimal, fromNumber, toNumber string) (*domain.Operation, error) {
	logger := s.logger.With("from", fromNumber, "to", toNumber, "amount", amount)
	var op *domain.Operation
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		from, to, err := lockPair(accounts, fromNumber, toNumber)
		if err != nil {
			return err
		}
		if !from.Active || !to.Active {
			return domain.ErrAccountInactive
		}
		if !amount.IsPositive() {
			return domain.ErrInvalidAmount
		}
		if amount.GreaterThan(from.Balance) {
			return domain.ErrInsufficientFunds
		}
		op, err = domain.NewTransfer(amount, from.ID, to.ID)
		if err != nil {
			return err
		}
		if from.ID == to.ID {
			// Self-transfer: debit and credit cancel out.
			if err = accounts.UpdateBalance(from.ID, from.Balance); err != nil {
				return err
			}
		} else {
			if err = accounts.UpdateBalance(from.ID, from.Balance.Sub(amount)); err != nil {
				return err
			}
			if err = accounts.UpdateBalance(to.ID, to.Balance.Add(amount)); err != nil {
				return err
			}
		}
		ops, err := uow.OperationRepository()
		if err != nil {
			return err
		}
		return ops.Create(op)
	})
	if err != nil {
		logger.Warn("transfer rejected", "error", err)
		return nil, err
	}
	logger.Info("transfer applied", "operationID", op.ID)
	return op, nil
}

// lockPair fetches both accounts with row locks, acquiring them in
// ascending account-number order. A missing account surfaces as
// ErrInvalidAccounts regardless of which side it is; store failures
// pass through untranslated.
func lockPair(accounts repository.AccountRepository, fromNumber, toNumber string) (from, to *domain.Account, err error) {
	if fromNumber == toNumber {
		from, err = accounts.GetByNumberForUpdate(fromNumber)
		if err != nil {
			return nil, nil, pairError(err)
		}
		return from, from, nil
	}
	first, second := fromNumber, toNumber
	if second < first {
		first, second = second, first
	}
	a, err := accounts.GetByNumberForUpdate(first)
	if err != nil {
		return nil, nil, pairError(err)
	}
	b, err := accounts.GetByNumberForUpdate(second)
	if err != nil {
		return nil, nil, pairError(err)
	}
	if first == fromNumber {
		return a, b, nil
	}
	return b, a, nil
}

// pairError maps an unresolvable account reference to
// ErrInvalidAccounts and leaves every other error alone.
func pairError(err error) error {
	if errors.Is(err, domain.ErrAccountNotFound) {
		return domain.ErrInvalidAccounts
	}
	return err
}
