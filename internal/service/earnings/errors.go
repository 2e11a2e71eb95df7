package earnings

import "errors"

var ErrInvalidEmail = errors.New("invalid email")
