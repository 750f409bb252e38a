// Package statement builds account statements: every operation where
// the account is source or destination, grouped by calendar date in
// ascending order. Read-only; nothing here mutates the ledger.
package statement

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gobank/ledger/pkg/domain"
	"github.com/gobank/ledger/pkg/repository"
	"github.com/shopspring/decimal"
)

const (
	dateLayout = "02/01/2006"
	timeLayout = "15:04:05"
)

// Line is a single operation as rendered on a statement.
type Line struct {
	Time   string `json:"time"`
	Type   string `json:"type"`
	Way    string `json:"way"`
	Amount string `json:"amount"`
	// Balance is the account's current balance, repeated on every
	// line. It is not a running historical balance.
	Balance     string `json:"balance"`
	FromAccount string `json:"from_account,omitempty"`
	ToAccount   string `json:"to_account,omitempty"`
}

// DaySection groups the lines of one calendar date.
type DaySection struct {
	Date       string `json:"date"`
	Operations []Line `json:"operations"`
}

// Statement is the full report for an account.
type Statement struct {
	AccountNumber string       `json:"account_number"`
	Agency        string       `json:"agency"`
	Balance       string       `json:"balance"`
	Days          []DaySection `json:"statement"`
}

// Service builds statements.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewService creates a statement Service.
func NewService(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Build returns the statement for the account with the given number.
// Operations come back from the store in ascending timestamp order;
// grouping preserves that order within each date section.
func (s *Service) Build(ctx context.Context, accountNumber string) (*Statement, error) {
	var (
		account *domain.Account
		ops     []*domain.Operation
	)
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		account, err = accounts.GetByNumber(accountNumber)
		if err != nil {
			return err
		}
		opsRepo, err := uow.OperationRepository()
		if err != nil {
			return err
		}
		ops, err = opsRepo.ListByAccount(account.ID)
		return err
	})
	if err != nil {
		s.logger.Warn("statement build failed", "account", accountNumber, "error", err)
		return nil, err
	}

	st := &Statement{
		AccountNumber: account.Number,
		Agency:        account.Agency,
		Balance:       money(account.Balance),
		Days:          []DaySection{},
	}
	for _, op := range ops {
		date := op.Timestamp.Format(dateLayout)
		if len(st.Days) == 0 || st.Days[len(st.Days)-1].Date != date {
			st.Days = append(st.Days, DaySection{Date: date})
		}
		day := &st.Days[len(st.Days)-1]
		day.Operations = append(day.Operations, line(op, account))
	}
	return st, nil
}

// line renders one operation relative to the queried account. The
// counter-party number is shown only when a second, different
// account is involved.
func line(op *domain.Operation, account *domain.Account) Line {
	l := Line{
		Time:    op.Timestamp.Format(timeLayout),
		Type:    op.Kind.Label(),
		Way:     op.Way.Label(),
		Amount:  signedMoney(op, account),
		Balance: money(account.Balance),
	}
	// Counter-party numbers are hydrated by the repository alongside
	// the IDs, so no account refetch happens here.
	if op.SourceID != nil && *op.SourceID != account.ID {
		l.FromAccount = op.SourceNumber
	}
	if op.DestinationID != nil && *op.DestinationID != account.ID {
		l.ToAccount = op.DestinationNumber
	}
	return l
}

// signedMoney renders the amount signed relative to the account:
// inbound positive, outbound negative.
func signedMoney(op *domain.Operation, account *domain.Account) string {
	outbound := op.SourceID != nil && *op.SourceID == account.ID &&
		!(op.DestinationID != nil && *op.DestinationID == account.ID)
	if outbound {
		return "-" + money(op.Amount)
	}
	return "+" + money(op.Amount)
}

func money(d decimal.Decimal) string {
	return "R$" + d.StringFixed(2)
}

// Render produces the text form of the statement for the console
// front-end: one header per date, one line per operation, and the
// current balance at the end.
func (st *Statement) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Statement for account %s/%s\n", st.Agency, st.AccountNumber)
	for _, day := range st.Days {
		fmt.Fprintf(&b, "\n%s\n", day.Date)
		for _, l := range day.Operations {
			fmt.Fprintf(&b, "%s | %s | %s\n", l.Time, l.Type, l.Amount)
		}
	}
	fmt.Fprintf(&b, "\nBalance: %s\n", st.Balance)
	return b.String()
}
