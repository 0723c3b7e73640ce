package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"officeit/internal/catalog"
)

// ErrInvalidCredentials is returned when a login does not match a user.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError carries per-field messages for a rejected submission.
type ValidationError struct {
	Fields catalog.FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("validation failed: %s", strings.Join(keys, ", "))
}

func validationError(fields catalog.FieldErrors) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
