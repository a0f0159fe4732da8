package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrValidationEmail           = errors.New("email must be a valid address")
	ErrValidationPassword        = errors.New("password must be between 4 and 72 characters")
	ErrValidationTaskName        = errors.New("task name must be between 1 and 300 characters")
	ErrValidationTaskDescription = errors.New("task description must be at most 1000 characters")
	ErrValidationTaskState       = errors.New("task state must be backlog, in-progress or done")
	ErrValidationTagName         = errors.New("tag name must be between 3 and 50 characters")
	ErrValidationSortProperty    = errors.New("sort property must be created_at or name")
	ErrValidationSortDirection   = errors.New("sort direction must be asc or desc")
	ErrValidationLimit           = errors.New("limit must not be negative")
)
