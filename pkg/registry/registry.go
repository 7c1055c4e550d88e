// Package registry resolves scheme names to their codecs.
package registry

import (
	"strings"

	"Baseband/pkg/analog"
	"Baseband/pkg/linecode"
	"Baseband/pkg/substitution"
)

// Scheme is a canonical, upper case scheme name.
type Scheme string

const (
	NRZL                   Scheme = "NRZ-L"
	NRZI                   Scheme = "NRZ-I"
	Manchester             Scheme = "MANCHESTER"
	DifferentialManchester Scheme = "DIFFERENTIAL MANCHESTER"
	AMI                    Scheme = "AMI"
	B8ZS                   Scheme = "B8ZS"
	HDB3                   Scheme = "HDB3"
	PCM                    Scheme = "PCM"
	DM                     Scheme = "DM"
)

// Kind tells whether a scheme consumes bits or analog samples.
type Kind int

const (
	Digital Kind = iota
	Analog
)

func (k Kind) String() string {
	if k == Analog {
		return "analog"
	}
	return "digital"
}

var lineCodecs = map[Scheme]linecode.Codec{
	NRZL:                   linecode.NRZL{},
	NRZI:                   linecode.NRZI{},
	Manchester:             linecode.Manchester{},
	DifferentialManchester: linecode.DifferentialManchester{},
	AMI:                    linecode.AMI{},
	B8ZS:                   substitution.B8ZS{},
	HDB3:                   substitution.HDB3{},
}

var scramblers = map[Scheme]linecode.Codec{
	B8ZS: substitution.B8ZS{},
	HDB3: substitution.HDB3{},
}

var modems = map[Scheme]analog.Modem{
	PCM: analog.PCM{},
	DM:  analog.DM{},
}

// Names lists every scheme, line codes first.
func Names() []Scheme {
	return []Scheme{NRZL, NRZI, Manchester, DifferentialManchester, AMI, B8ZS, HDB3, PCM, DM}
}

// Lookup canonicalizes name, ignoring case and surrounding space.
func Lookup(name string) (Scheme, error) {
	scheme := Scheme(strings.ToUpper(strings.TrimSpace(name)))
	if _, ok := lineCodecs[scheme]; ok {
		return scheme, nil
	}
	if _, ok := modems[scheme]; ok {
		return scheme, nil
	}
	return "", ErrScheme{Name: name, Err: ErrUnknownScheme}
}

// KindOf reports what input the named scheme takes.
func KindOf(name string) (Kind, error) {
	scheme, err := Lookup(name)
	if err != nil {
		return Digital, err
	}
	if _, ok := modems[scheme]; ok {
		return Analog, nil
	}
	return Digital, nil
}

// LineCoder returns the codec for a line code. A non-empty scrambling name
// (B8ZS or HDB3) is only accepted for AMI, whose encoder and decoder are
// then replaced by the substitution codec.
func LineCoder(name, scrambling string) (linecode.Codec, error) {
	scheme, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	codec, ok := lineCodecs[scheme]
	if !ok {
		return nil, ErrScheme{Name: name, Err: ErrUnknownScheme}
	}

	if strings.TrimSpace(scrambling) == "" {
		return codec, nil
	}
	if scheme != AMI {
		return nil, ErrScheme{Name: name, Err: ErrScramblingInvalid}
	}

	scrambler, ok := scramblers[Scheme(strings.ToUpper(strings.TrimSpace(scrambling)))]
	if !ok {
		return nil, ErrScheme{Name: scrambling, Err: ErrUnknownScheme}
	}
	return linecode.AMI{Scrambling: scrambler}, nil
}

// Modem returns the codec for an analog scheme.
func Modem(name string) (analog.Modem, error) {
	scheme, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	modem, ok := modems[scheme]
	if !ok {
		return nil, ErrScheme{Name: name, Err: ErrUnknownScheme}
	}
	return modem, nil
}
