package postgres

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/urbanfix/urbanfix"
)

// SQLSTATE classes worth distinguishing for callers.
//
// Cf., https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	uniqViolation      = "SQLSTATE 23505"
	fkViolation        = "SQLSTATE 23503"
	notNullViolation   = "SQLSTATE 23502"
	invalidTextRepr    = "SQLSTATE 22P02"
	syntaxErrViolation = "SQLSTATE 42601"
)

// translateError converts gorm and PostgreSQL errors into the module's sentinels
// so callers branch on errors.Is instead of driver internals.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %s", urbanfix.ErrNotExist, err)

	case strings.Contains(err.Error(), uniqViolation):
		return fmt.Errorf("%w: %s", urbanfix.ErrExists, err)

	case strings.Contains(err.Error(), fkViolation),
		strings.Contains(err.Error(), notNullViolation),
		strings.Contains(err.Error(), invalidTextRepr):
		return fmt.Errorf("%w: %s", urbanfix.ErrNotValid, err)

	case strings.Contains(err.Error(), syntaxErrViolation):
		return fmt.Errorf("%w: %s", urbanfix.ErrUnexpected, err)

	default:
		return fmt.Errorf("%w: %s", urbanfix.ErrUnexpected, err)
	}
}
