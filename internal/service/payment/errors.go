package payment

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidParcelID       = errors.New("invalid parcel id")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrInvalidEmail          = errors.New("invalid email")

	ErrParcelNotFound = errors.New("parcel not found")
	ErrAlreadyPaid    = errors.New("parcel already paid")
)
