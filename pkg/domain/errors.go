package domain

import "errors"

var (
	// ErrInvalidAmount is returned when an operation amount is not positive.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInvalidAccounts is returned when a transfer is missing one of its accounts.
	ErrInvalidAccounts = errors.New("both source and destination accounts are required")

	// ErrAccountInactive is returned when an operation targets a deactivated account.
	ErrAccountInactive = errors.New("account is inactive")

	// ErrInsufficientFunds is returned when an amount exceeds the account balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrLimitExceeded is returned when a withdrawal exceeds the per-transaction cap.
	ErrLimitExceeded = errors.New("withdrawal amount exceeds limit of 500")

	// ErrDailyLimitExceeded is returned when the daily withdrawal count is used up.
	ErrDailyLimitExceeded = errors.New("withdrawal limit exceeded for today")

	// ErrInvalidCPF is returned when a CPF fails checksum validation.
	ErrInvalidCPF = errors.New("invalid CPF")

	// ErrDuplicateCPF is returned when a client with the same CPF already exists.
	ErrDuplicateCPF = errors.New("a client with this CPF already exists")

	// ErrDuplicateAccountNumber is returned when an account number is already taken.
	ErrDuplicateAccountNumber = errors.New("account number already exists")

	// ErrClientNotFound is returned when a client cannot be found.
	ErrClientNotFound = errors.New("client not found")

	// ErrAccountNotFound is returned when an account cannot be found.
	ErrAccountNotFound = errors.New("account not found")
)
