package domain

import "errors"

var ErrUnknownGraphKind = errors.New("unknown graph kind")
