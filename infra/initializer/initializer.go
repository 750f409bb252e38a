// Package initializer wires the application dependencies: logger,
// database, unit of work and services.
package initializer

import (
	"log/slog"

	"github.com/gobank/ledger/config"
	"github.com/gobank/ledger/infra"
	infrarepo "github.com/gobank/ledger/infra/repository"
	"github.com/gobank/ledger/pkg/repository"
	accountsvc "github.com/gobank/ledger/pkg/service/account"
	clientsvc "github.com/gobank/ledger/pkg/service/client"
	statementsvc "github.com/gobank/ledger/pkg/service/statement"
	"gorm.io/gorm"
)

// Deps bundles everything the entrypoints need.
type Deps struct {
	Cfg        *config.AppConfig
	Logger     *slog.Logger
	DB         *gorm.DB
	UoW        repository.UnitOfWork
	Clients    *clientsvc.Service
	Accounts   *accountsvc.Service
	Statements *statementsvc.Service
}

// Init loads config, connects the database and builds the services.
func Init(envFilePath ...string) (*Deps, error) {
	logger := slog.Default()
	cfg, err := config.Load(logger, envFilePath...)
	if err != nil {
		return nil, err
	}
	logger = SetupLogger(cfg.Log)

	db, err := infra.Connect(cfg.DB.URL)
	if err != nil {
		return nil, err
	}
	uow := infrarepo.NewUoW(db)

	return &Deps{
		Cfg:        cfg,
		Logger:     logger,
		DB:         db,
		UoW:        uow,
		Clients:    clientsvc.NewService(uow, logger),
		Accounts:   accountsvc.NewService(uow, cfg.Bank.DefaultAgency, logger),
		Statements: statementsvc.NewService(uow, logger),
	}, nil
}
