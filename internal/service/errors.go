package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrValidationEmptyContent = errors.New("entry content must not be empty")
	ErrValidationEmptyRange   = errors.New("analysis range must have both start and end dates")
	ErrValidationRangeOrder   = errors.New("analysis range start must not be after end")
)
