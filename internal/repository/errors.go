package repository

import (
	"errors"
	"fmt"

	"review_project/internal/domain"

	"gorm.io/gorm"
)

// translateError maps gorm's translated unique-violation error to the domain sentinel.
// It relies on gorm.Config.TranslateError being enabled.
func translateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", domain.ErrDuplicateKey, err)
	}
	return err
}
