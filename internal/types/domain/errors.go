package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField = errors.New("pull request field is missing")
)

// MissingFieldError reports a pull request that lacks a field a statistic
// cannot do without.
type MissingFieldError struct {
	Number int
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("pull request #%d: missing %s", e.Number, e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
