package password

import (
	"strings"
	"unicode/utf8"
)

const (
	strongMinLength       = 12
	intermediateMinLength = 8
)

// Report is the full result of analyzing a password.
type Report struct {
	Level     Level
	Length    int
	Uppercase bool
	Lowercase bool
	Digit     bool
	Symbol    bool
	// Missing names what the password lacks to reach Strong.
	Missing []string
}

// Classify returns the strength level of pw. Every string, including the
// empty string, has a level.
func Classify(pw string) Level {
	return Analyze(pw).Level
}

// Analyze computes the character-class predicates of pw and its level.
func Analyze(pw string) Report {
	r := Report{
		Length:    utf8.RuneCountInString(pw),
		Uppercase: strings.ContainsAny(pw, Uppercase),
		Lowercase: strings.ContainsAny(pw, Lowercase),
		Digit:     strings.ContainsAny(pw, Digits),
		Symbol:    strings.ContainsAny(pw, Symbols),
	}

	switch {
	case r.Length >= strongMinLength && r.Uppercase && r.Lowercase && r.Digit && r.Symbol:
		r.Level = Strong
	case r.Length >= intermediateMinLength && r.Lowercase && r.Digit:
		r.Level = Intermediate
	default:
		r.Level = Low
	}

	r.Missing = missing(r)
	return r
}

func missing(r Report) []string {
	out := []string{}
	if r.Length < strongMinLength {
		out = append(out, "length of at least 12")
	}
	if !r.Uppercase {
		out = append(out, "uppercase letter")
	}
	if !r.Lowercase {
		out = append(out, "lowercase letter")
	}
	if !r.Digit {
		out = append(out, "digit")
	}
	if !r.Symbol {
		out = append(out, "symbol")
	}
	return out
}
