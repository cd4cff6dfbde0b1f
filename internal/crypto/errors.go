package crypto

import "errors"

var ErrUnknownHashScheme = errors.New("unknown hash scheme")
