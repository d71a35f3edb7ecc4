// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrTemplateNotFound signals missing template.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrSprintNotFound signals missing sprint.
	ErrSprintNotFound = errors.New("sprint not found")
	// ErrMessageNotFound signals missing message.
	ErrMessageNotFound = errors.New("message not found")
	// ErrUserExists signals a user_name uniqueness conflict.
	ErrUserExists = errors.New("user exists")
	// ErrSprintExists signals a sprint_code uniqueness conflict.
	ErrSprintExists = errors.New("sprint exists")
	// ErrReferenced signals a write rejected by a foreign-key constraint.
	ErrReferenced = errors.New("entity referenced")
	// ErrDependencyUnavailable signals a failing external collaborator
	// (chat platform or image provider).
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	// ErrMemberNotFound signals a guild member missing on the chat platform.
	ErrMemberNotFound = errors.New("member not found")
)
