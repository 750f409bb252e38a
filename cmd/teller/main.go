package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/charmbracelet/log"

	"github.com/gobank/ledger/infra/initializer"
	"github.com/gobank/ledger/pkg/console"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	deps, err := initializer.Init(".env")
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	number := ""
	if len(os.Args) > 1 {
		number = os.Args[1]
	} else {
		number, err = console.PromptAccountNumber(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
	}

	c := console.New(deps.Accounts, deps.Statements, os.Stdin, os.Stdout)
	return c.Run(context.Background(), number)
}
