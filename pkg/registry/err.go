package registry

import (
	"errors"

	"Baseband/internel/translate"
)

var f = translate.From

var (
	ErrUnknownScheme     = errors.New(f("unknown scheme"))
	ErrScramblingInvalid = errors.New(f("scrambling only applies to AMI"))
)

// ErrScheme names the scheme that could not be resolved.
type ErrScheme struct {
	Name string
	Err  error
}

func (err ErrScheme) Error() string {
	return f("scheme %q: %v", err.Name, err.Err)
}

func (err ErrScheme) Unwrap() error {
	return err.Err
}
