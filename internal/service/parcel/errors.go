package parcel

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidParcelID       = errors.New("invalid parcel id")
	ErrInvalidType           = errors.New("invalid parcel type")
	ErrInvalidWeight         = errors.New("invalid weight")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidStatus         = errors.New("invalid delivery status")

	ErrParcelNotFound     = errors.New("parcel not found")
	ErrInvalidTransition  = errors.New("illegal delivery status transition")
	ErrAlreadyPaid        = errors.New("parcel already paid")
	ErrTrackingIDConflict = errors.New("tracking id already exists")
)
