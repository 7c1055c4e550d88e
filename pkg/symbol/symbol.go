// Package symbol holds the value types shared by every codec: bit symbols,
// line levels, the small registers the transducers carry, and analog samples.
package symbol

import (
	"strconv"
	"strings"
)

// Bit is a two-valued symbol of a message.
type Bit uint8

const (
	Zero Bit = 0
	One  Bit = 1
)

// Level returns the bit value as a line level.
func (b Bit) Level() Level {
	return Level(b)
}

// Flip returns 1 - b.
func (b Bit) Flip() Bit {
	return 1 - b
}

func (b Bit) String() string {
	return strconv.Itoa(int(b))
}

// Bits is an ordered bit stream.
type Bits []Bit

// ParseBits reads a stream written as '0' and '1' characters.
func ParseBits(s string) (Bits, error) {
	bits := make(Bits, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			bits[i] = Zero
		case '1':
			bits[i] = One
		default:
			return nil, ErrSymbol{Index: i, Symbol: string(s[i]), Alphabet: "{0,1}", Err: ErrInvalidSymbol}
		}
	}
	return bits, nil
}

// Validate reports the first element that is neither 0 nor 1.
func (bs Bits) Validate() error {
	return Check(bs, Zero, One)
}

func (bs Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(bs))
	for _, b := range bs {
		if b == One {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Level is a signal level emitted by a line encoder.
type Level int8

// Alphabets of the line codes.
var (
	Binary  = []Level{0, 1}
	Bipolar = []Level{-1, 0, 1}
)

// Levels is an encoded line signal.
type Levels []Level

// Validate reports the first level outside alphabet.
func (ls Levels) Validate(alphabet []Level) error {
	return Check(ls, alphabet...)
}

// Polarity is the register of a bipolar coder. It holds +1 or -1, or the
// literal value of the last mark for coders that store the bit itself.
type Polarity int8

const (
	Negative Polarity = -1
	Positive Polarity = 1
)

func (p Polarity) Level() Level {
	return Level(p)
}

// Invert returns the opposite level of the register.
func (p Polarity) Invert() Level {
	return -Level(p)
}

// RunCounter counts consecutive zero symbols.
type RunCounter int

// Next returns the counter advanced by one zero.
func (r RunCounter) Next() RunCounter {
	return r + 1
}

// Sample is an analog sample, normally within [0,1].
type Sample float64

// Code is a quantized sample or a delta-modulation accumulator value.
type Code int32

// ParseSamples reads whitespace separated real numbers.
func ParseSamples(s string) ([]Sample, error) {
	fields := strings.Fields(s)
	samples := make([]Sample, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, ErrSymbol{Index: i, Symbol: field, Alphabet: "real numbers", Err: ErrInvalidSymbol}
		}
		samples[i] = Sample(v)
	}
	return samples, nil
}
