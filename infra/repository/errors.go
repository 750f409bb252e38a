package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// translate maps gorm errors to the domain taxonomy. The gorm.Config
// used by infra.Connect enables TranslateError, so driver duplicate
// key failures surface as gorm.ErrDuplicatedKey here.
func translate(err, notFound, duplicate error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return duplicate
	default:
		return fmt.Errorf("ledger store: %w", err)
	}
}
