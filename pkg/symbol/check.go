package symbol

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
)

// Check returns an ErrSymbol for the first element of in that is not a
// member of alphabet.
func Check[T constraints.Integer](in []T, alphabet ...T) error {
	for i, v := range in {
		if !slices.Contains(alphabet, v) {
			return ErrSymbol{Index: i, Symbol: fmt.Sprint(v), Alphabet: describe(alphabet), Err: ErrInvalidSymbol}
		}
	}
	return nil
}

// CheckRange returns an ErrSymbol for the first element of in outside
// [lo, hi]. NaN is never in range.
func CheckRange[T constraints.Integer | constraints.Float](in []T, lo, hi T) error {
	for i, v := range in {
		if !(v >= lo && v <= hi) {
			return ErrSymbol{Index: i, Symbol: fmt.Sprint(v), Alphabet: fmt.Sprintf("[%v,%v]", lo, hi), Err: ErrInvalidSymbol}
		}
	}
	return nil
}

func describe[T constraints.Integer](alphabet []T) string {
	parts := make([]string, len(alphabet))
	for i, v := range alphabet {
		parts[i] = fmt.Sprint(v)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
