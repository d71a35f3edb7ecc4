// Package schema validates and coerces raw transport input into well-typed
// domain records. Every entity has a full-record parser (PUT), an insertable
// parser (POST) and an updatable parser (PATCH); failures wrap
// entities.ErrInvalidArgument and name the offending field.
package schema

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"sprint-accomplishments/internal/entities"
)

// ParseID coerces a path parameter into a strictly positive identifier.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: id must be a positive integer", entities.ErrInvalidArgument)
	}
	return id, nil
}

func checkLength(field, value string, min, max int) error {
	n := utf8.RuneCountInString(value)
	if n < min || n > max {
		return fmt.Errorf("%w: %s must be %d-%d characters", entities.ErrInvalidArgument, field, min, max)
	}
	return nil
}

func checkRequired(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", entities.ErrInvalidArgument, field)
	}
	return nil
}

func checkBodyID(pathID int64, bodyID *int64) error {
	if bodyID != nil && *bodyID != pathID {
		return fmt.Errorf("%w: id in body does not match path", entities.ErrInvalidArgument)
	}
	return nil
}
