package rider

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidApplicationID  = errors.New("invalid application id")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidAge            = errors.New("invalid age")
	ErrInvalidStatus         = errors.New("invalid application status")

	ErrApplicationNotFound = errors.New("rider application not found")
	ErrAlreadyProcessed    = errors.New("application already processed")
	ErrConflict            = errors.New("application already exists")
	ErrInvalidRider        = errors.New("rider is not eligible for assignment")
)
