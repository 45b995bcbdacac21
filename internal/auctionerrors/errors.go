package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrItemNotFound = errors.New("auction item not found")
	ErrBidNotFound  = errors.New("bid not found")
	ErrUserNotFound = errors.New("user not found")
)

// business logic errors
var (
	ErrValidation         = errors.New("invalid input")
	ErrBidTooLow          = errors.New("new bid must be higher than the current bid")
	ErrForbidden          = errors.New("unauthorized action")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
