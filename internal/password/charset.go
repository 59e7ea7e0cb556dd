package password

import "strings"

// Character classes. Symbols is shared by classification and generation.
const (
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Digits    = "0123456789"
	Symbols   = `!@#$%^&*()_+[]{}<>?,.":|`
)

// Policy is the generation rule for one level. Min and Max are inclusive.
type Policy struct {
	Min     int
	Max     int
	Charset string
}

var policies = [...]Policy{
	Low:          {Min: 4, Max: 7, Charset: Lowercase},
	Intermediate: {Min: 8, Max: 10, Charset: Uppercase + Lowercase + Digits},
	Strong:       {Min: 12, Max: 16, Charset: Uppercase + Lowercase + Digits + Symbols},
}

// PolicyFor returns the generation policy for level.
// It panics if level is not a defined level.
func PolicyFor(level Level) Policy {
	if !level.Valid() {
		panic("password: unknown level " + level.String())
	}
	return policies[level]
}

// Conforms reports whether pw satisfies the length range and charset of p.
func (p Policy) Conforms(pw string) bool {
	n := 0
	for _, r := range pw {
		if !strings.ContainsRune(p.Charset, r) {
			return false
		}
		n++
	}
	return n >= p.Min && n <= p.Max
}
