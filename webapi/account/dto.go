package account

import (
	"github.com/gobank/ledger/pkg/domain"
)

// CreateAccountRequest is the request body for opening an account.
type CreateAccountRequest struct {
	ClientCPF string `json:"client_cpf" validate:"required,len=11,numeric"`
}

// DepositRequest is the request body for a deposit. Amount is a
// pointer so presence and positivity are checked separately: a
// missing amount is invalid request data, a non-positive one is an
// amount rule failure.
type DepositRequest struct {
	Amount    *float64 `json:"amount" validate:"required"`
	ToAccount string   `json:"to_account" validate:"required"`
}

// WithdrawalRequest is the request body for a withdrawal.
type WithdrawalRequest struct {
	Amount      *float64 `json:"amount" validate:"required"`
	FromAccount string   `json:"from_account" validate:"required"`
}

// TransferRequest is the request body for a transfer.
type TransferRequest struct {
	Amount      *float64 `json:"amount" validate:"required"`
	FromAccount string   `json:"from_account" validate:"required"`
	ToAccount   string   `json:"to_account" validate:"required"`
}

// AccountDTO is the API representation of an account.
type AccountDTO struct {
	AccountNumber string  `json:"account_number"`
	Agency        string  `json:"agency"`
	Balance       float64 `json:"balance"`
	Active        bool    `json:"active"`
}

// ToAccountDTO maps a domain account to its API representation.
func ToAccountDTO(a *domain.Account) AccountDTO {
	return AccountDTO{
		AccountNumber: a.Number,
		Agency:        a.Agency,
		Balance:       a.Balance.InexactFloat64(),
		Active:        a.Active,
	}
}

// OperationDTO is the API representation of a persisted operation.
type OperationDTO struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Way       string  `json:"way"`
	Amount    float64 `json:"amount"`
	Timestamp string  `json:"timestamp"`
}

// ToOperationDTO maps a domain operation to its API representation.
func ToOperationDTO(op *domain.Operation) OperationDTO {
	return OperationDTO{
		ID:        op.ID.String(),
		Type:      op.Kind.Label(),
		Way:       op.Way.Label(),
		Amount:    op.Amount.InexactFloat64(),
		Timestamp: op.Timestamp.Format("2006-01-02 15:04:05"),
	}
}
