// Package console is the interactive teller front-end: a numbered
// menu driving deposits, withdrawals and statements against a single
// account. It talks to the same services as the web API, so the same
// operation rules apply on both surfaces.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	accountsvc "github.com/gobank/ledger/pkg/service/account"
	statementsvc "github.com/gobank/ledger/pkg/service/statement"
)

// Console runs the teller menu loop over injected reader and writer.
type Console struct {
	accounts   *accountsvc.Service
	statements *statementsvc.Service
	in         *bufio.Scanner
	out        io.Writer

	title *color.Color
	ok    *color.Color
	fail  *color.Color
}

// New creates a Console reading choices from in and printing to out.
func New(accounts *accountsvc.Service, statements *statementsvc.Service, in io.Reader, out io.Writer) *Console {
	return &Console{
		accounts:   accounts,
		statements: statements,
		in:         bufio.NewScanner(in),
		out:        out,
		title:      color.New(color.FgCyan, color.Bold),
		ok:         color.New(color.FgGreen),
		fail:       color.New(color.FgRed),
	}
}

// Run drives the menu for one account until the operator picks exit
// or input runs out. Service errors are printed and the menu shown
// again; only I/O failures end the loop with an error.
func (c *Console) Run(ctx context.Context, accountNumber string) error {
	a, err := c.accounts.Get(ctx, accountNumber)
	if err != nil {
		return err
	}
	c.title.Fprintf(c.out, "Account %s/%s\n", a.Agency, a.Number)

	for {
		fmt.Fprint(c.out, "\n1 - Deposit\n2 - Withdrawal\n3 - Statement\n0 - Exit\n")
		choice, ok := c.prompt("Option: ")
		if !ok {
			return nil
		}
		switch choice {
		case "1":
			c.deposit(ctx, accountNumber)
		case "2":
			c.withdraw(ctx, accountNumber)
		case "3":
			c.statement(ctx, accountNumber)
		case "0":
			fmt.Fprintln(c.out, "Goodbye")
			return nil
		default:
			c.fail.Fprintln(c.out, "Unknown option, pick 0-3")
		}
	}
}

func (c *Console) deposit(ctx context.Context, accountNumber string) {
	amount, ok := c.promptAmount()
	if !ok {
		return
	}
	op, err := c.accounts.Deposit(ctx, amount, accountNumber)
	if err != nil {
		c.fail.Fprintln(c.out, err)
		return
	}
	c.ok.Fprintf(c.out, "Deposited R$%s\n", op.Amount.StringFixed(2))
}

func (c *Console) withdraw(ctx context.Context, accountNumber string) {
	amount, ok := c.promptAmount()
	if !ok {
		return
	}
	op, err := c.accounts.Withdraw(ctx, amount, accountNumber)
	if err != nil {
		c.fail.Fprintln(c.out, err)
		return
	}
	c.ok.Fprintf(c.out, "Withdrew R$%s\n", op.Amount.StringFixed(2))
}

func (c *Console) statement(ctx context.Context, accountNumber string) {
	st, err := c.statements.Build(ctx, accountNumber)
	if err != nil {
		c.fail.Fprintln(c.out, err)
		return
	}
	fmt.Fprint(c.out, st.Render())
}

// promptAmount keeps asking until the operator types a valid decimal
// or the input ends.
func (c *Console) promptAmount() (decimal.Decimal, bool) {
	for {
		raw, ok := c.prompt("Amount: ")
		if !ok {
			return decimal.Zero, false
		}
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			c.fail.Fprintln(c.out, "Not a number, try again")
			continue
		}
		return amount, true
	}
}

// prompt prints the label and reads one trimmed line. ok is false
// when input is exhausted.
func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// PromptAccountNumber asks for the account number to operate on,
// re-prompting while the line is empty.
func PromptAccountNumber(in io.Reader, out io.Writer) (string, error) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Account number: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", errors.New("no account number given")
		}
		if number := strings.TrimSpace(scanner.Text()); number != "" {
			return number, nil
		}
	}
}
