// Package infra owns the database connection.
package infra

import (
	"fmt"

	"github.com/gobank/ledger/infra/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the postgres connection and migrates the schema.
// TranslateError lets the repositories map driver duplicate-key
// failures onto the domain taxonomy.
func Connect(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := db.AutoMigrate(
		&repository.Client{},
		&repository.Account{},
		&repository.Operation{},
	); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, nil
}
