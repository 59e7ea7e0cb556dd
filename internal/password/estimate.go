package password

import zxcvbn "github.com/ccojocar/zxcvbn-go"

// zxcvbn matching grows much faster than linearly with input length, so only
// a bounded prefix of the password and of each hint is estimated.
const (
	maxEstimateRunes = 100
	maxEstimateHints = 10
)

// Estimate is a zxcvbn guessability estimate. It is informational only and
// never changes the Level a password is classified as.
type Estimate struct {
	Score     int     `json:"score"`
	Entropy   float64 `json:"entropy"`
	CrackTime string  `json:"crack_time"`
}

// EstimateStrength runs zxcvbn over the first 100 runes of pw. hints are
// user-specific words such as a username that should count against the
// password; at most 10 are used.
func EstimateStrength(pw string, hints ...string) Estimate {
	if len(hints) > maxEstimateHints {
		hints = hints[:maxEstimateHints]
	}
	capped := make([]string, len(hints))
	for i, h := range hints {
		capped[i] = truncateRunes(h, maxEstimateRunes)
	}

	m := zxcvbn.PasswordStrength(truncateRunes(pw, maxEstimateRunes), capped)
	return Estimate{
		Score:     m.Score,
		Entropy:   m.Entropy,
		CrackTime: m.CrackTimeDisplay,
	}
}

func truncateRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
