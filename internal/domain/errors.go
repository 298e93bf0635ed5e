package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidRevision = errors.New("invalid revision")
	ErrInvalidCourse   = errors.New("invalid course: end before start")
)

func invalidRevision(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidRevision, reason)
}
