package design

import (
	"fmt"
	"strings"
)

// Type selects the cookbook response.
type Type int

const (
	Lowpass Type = iota
	Highpass
	Bandpass
	Notch
	Peak
	LowShelf
	HighShelf

	// NumTypes is the number of filter types.
	NumTypes = int(HighShelf) + 1
)

var typeNames = [NumTypes]string{
	Lowpass:   "lowpass",
	Highpass:  "highpass",
	Bandpass:  "bandpass",
	Notch:     "notch",
	Peak:      "peak",
	LowShelf:  "lowshelf",
	HighShelf: "highshelf",
}

// Valid reports whether t is a known filter type.
func (t Type) Valid() bool {
	return t >= 0 && int(t) < NumTypes
}

func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("type(%d)", int(t))
	}

	return typeNames[t]
}

// HasGain reports whether gainDB affects the response of t.
func (t Type) HasGain() bool {
	return t == Peak || t == LowShelf || t == HighShelf
}

// ParseType resolves a filter type by name. Short names lpf, hpf, bpf,
// peq, lsh and hsh are accepted too.
func ParseType(name string) (Type, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "lpf":
		return Lowpass, nil
	case "hpf":
		return Highpass, nil
	case "bpf":
		return Bandpass, nil
	case "peq":
		return Peak, nil
	case "lsh":
		return LowShelf, nil
	case "hsh":
		return HighShelf, nil
	}

	for i, tn := range typeNames {
		if tn == n {
			return Type(i), nil
		}
	}

	return 0, fmt.Errorf("design: unknown filter type %q", name)
}
