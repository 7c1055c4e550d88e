package symbol

import (
	"errors"

	"Baseband/internel/translate"
)

var f = translate.From

var (
	// ErrInvalidSymbol is returned, wrapped in an ErrSymbol, whenever an
	// input element falls outside the alphabet declared for a scheme.
	ErrInvalidSymbol = errors.New(f("invalid symbol"))
)

// ErrSymbol locates an invalid element inside an input sequence.
type ErrSymbol struct {
	Index    int
	Symbol   string
	Alphabet string
	Err      error
}

func (err ErrSymbol) Error() string {
	return f("%v: %q at position %v, expected %v", err.Err, err.Symbol, err.Index, err.Alphabet)
}

func (err ErrSymbol) Unwrap() error {
	return err.Err
}
