package jsonresponse

import (
	"fmt"
	"strings"
)

// Mode selects how a wrapped handler's outcome is rendered.
type Mode int

const (
	Plain Mode = iota
	API
	Objects
)

var modeNames = map[Mode]string{
	Plain:   "plain",
	API:     "api",
	Objects: "objects",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// enveloped reports whether outcomes are wrapped and errors recovered.
func (m Mode) enveloped() bool {
	return m == API || m == Objects
}

// ParseMode maps "plain", "api" or "objects" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("jsonresponse: unknown mode %q", s)
}
