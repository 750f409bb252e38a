// Package account exposes the account, operation and statement
// endpoints. Handlers translate requests into rule-engine calls and
// never touch balances themselves.
package account

import (
	accountsvc "github.com/gobank/ledger/pkg/service/account"
	statementsvc "github.com/gobank/ledger/pkg/service/statement"
	"github.com/gobank/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// Routes registers the account endpoints:
//   - POST /accounts            : open an account for a client
//   - GET  /accounts            : list accounts
//   - GET  /accounts/:number    : fetch one account
//   - POST /deposit             : credit an account
//   - POST /withdrawal          : debit an account
//   - POST /transfer            : move funds between accounts
//   - GET  /statement/:number   : account statement grouped by date
func Routes(app *fiber.App, accounts *accountsvc.Service, statements *statementsvc.Service) {
	app.Post("/accounts", Create(accounts))
	app.Get("/accounts", List(accounts))
	app.Get("/accounts/:number", Get(accounts))
	app.Post("/deposit", Deposit(accounts))
	app.Post("/withdrawal", Withdrawal(accounts))
	app.Post("/transfer", Transfer(accounts))
	app.Get("/statement/:number", Statement(statements))
}

// Create returns the handler for opening an account.
func Create(accounts *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return nil
		}
		opened, err := accounts.Open(c.Context(), input.ClientCPF)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusCreated, "Account created", ToAccountDTO(opened))
	}
}

// List returns the handler for listing every account.
func List(accounts *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		all, err := accounts.List(c.Context())
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		dtos := make([]AccountDTO, 0, len(all))
		for _, a := range all {
			dtos = append(dtos, ToAccountDTO(a))
		}
		return common.SuccessJSON(c, fiber.StatusOK, "Accounts retrieved", dtos)
	}
}

// Get returns the handler for fetching one account by number.
func Get(accounts *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a, err := accounts.Get(c.Context(), c.Params("number"))
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "Account retrieved", ToAccountDTO(a))
	}
}

// Deposit returns the handler for crediting an account.
func Deposit(accounts *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := common.BindAndValidate[DepositRequest](c)
		if input == nil {
			return nil
		}
		op, err := accounts.Deposit(c.Context(), decimal.NewFromFloat(*input.Amount), input.ToAccount)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusCreated, "Deposit successful", ToOperationDTO(op))
	}
}

// Withdrawal returns the handler for debiting an account.
func Withdrawal(accounts *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := common.BindAndValidate[WithdrawalRequest](c)
		if input == nil {
			return nil
		}
		op, err := accounts.Withdraw(c.Context(), decimal.NewFromFloat(*input.Amount), input.FromAccount)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusCreated, "Withdrawal successful", ToOperationDTO(op))
	}
}

// Transfer returns the handler for moving funds between accounts.
func Transfer(accounts *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := common.BindAndValidate[TransferRequest](c)
		if input == nil {
			return nil
		}
		op, err := accounts.Transfer(c.Context(),
			decimal.NewFromFloat(*input.Amount), input.FromAccount, input.ToAccount)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusCreated, "Transfer successful", ToOperationDTO(op))
	}
}

// Statement returns the handler for the account statement.
func Statement(statements *statementsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, err := statements.Build(c.Context(), c.Params("number"))
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, "Statement retrieved successfully", st)
	}
}
