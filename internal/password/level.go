package password

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLevel is returned when a string does not name a strength level.
var ErrInvalidLevel = errors.New("invalid level")

// Level is a password strength tier.
type Level uint8

const (
	Low Level = iota
	Intermediate
	Strong
)

// Levels lists every level from weakest to strongest.
var Levels = []Level{Low, Intermediate, Strong}

var levelNames = [...]string{
	Low:          "Low",
	Intermediate: "Intermediate",
	Strong:       "Strong",
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return int(l) < len(levelNames)
}

func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Level(%d)", uint8(l))
	}
	return levelNames[l]
}

// ParseLevel parses a level name case-insensitively.
func ParseLevel(s string) (Level, error) {
	s = strings.TrimSpace(s)
	for _, l := range Levels {
		if strings.EqualFold(s, levelNames[l]) {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, uint8(l))
	}
	return []byte(levelNames[l]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
