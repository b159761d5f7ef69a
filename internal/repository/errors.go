package repository

import (
	"errors"

	"github.com/lshigami/courseboard/internal/apperror"
	"gorm.io/gorm"
)

// wrap maps gorm errors onto the shared taxonomy. Lookups that miss become
// ErrNotFound; key collisions become ErrDuplicate; the rest are ErrRepository.
func wrap(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperror.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperror.ErrDuplicate
	default:
		return apperror.Repository(op, err)
	}
}
