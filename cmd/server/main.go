package main

import (
	"fmt"

	log "github.com/charmbracelet/log"

	"github.com/gobank/ledger/infra/initializer"
	"github.com/gobank/ledger/webapi"
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

	app := webapi.NewApp(deps)

	addr := fmt.Sprintf("%s:%d", deps.Cfg.Host, deps.Cfg.Port)
	deps.Logger.Info("starting server",
		"env", deps.Cfg.Env,
		"address", addr,
	)
	return app.Listen(addr)
}
