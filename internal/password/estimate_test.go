package password

import (
	"strings"
	"testing"
	"time"
)

func TestEstimateStrength(t *testing.T) {
	weak := EstimateStrength("password")
	strong := EstimateStrength("Xk#9vQ!2mLp$7wRz&4Tn")

	if weak.Score < 0 || weak.Score > 4 || strong.Score < 0 || strong.Score > 4 {
		t.Fatalf("scores out of range: weak=%d strong=%d", weak.Score, strong.Score)
	}
	if weak.Score >= strong.Score {
		t.Errorf("EstimateStrength() weak score %d >= strong score %d", weak.Score, strong.Score)
	}
	if strong.CrackTime == "" {
		t.Error("EstimateStrength() CrackTime is empty")
	}
}

func TestEstimateStrengthHintsLowerEntropy(t *testing.T) {
	plain := EstimateStrength("alice2024")
	hinted := EstimateStrength("alice2024", "alice")

	if hinted.Entropy > plain.Entropy {
		t.Errorf("hinted entropy %.2f > plain entropy %.2f", hinted.Entropy, plain.Entropy)
	}
}

func TestEstimateStrengthLongInput(t *testing.T) {
	pw := strings.Repeat("aB1!xY9#", 1250)
	hints := make([]string, 50)
	for i := range hints {
		hints[i] = strings.Repeat("xY9#", 500)
	}

	start := time.Now()
	got := EstimateStrength(pw, hints...)
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("EstimateStrength() on %d chars took %v", len(pw), elapsed)
	}

	capped := make([]string, maxEstimateHints)
	for i := range capped {
		capped[i] = hints[i][:maxEstimateRunes]
	}
	want := EstimateStrength(pw[:maxEstimateRunes], capped...)
	if got != want {
		t.Errorf("EstimateStrength() = %+v, want estimate of the capped input %+v", got, want)
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"", 3, ""},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"héllo", 2, "hé"},
		{"日本語テキスト", 3, "日本語"},
	}

	for _, tt := range tests {
		if got := truncateRunes(tt.in, tt.n); got != tt.want {
			t.Errorf("truncateRunes(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
