package models

import "errors"

// ErrUnknownMode is returned by [ParseMode] for names that match no mode.
var ErrUnknownMode = errors.New("unknown generation mode")
