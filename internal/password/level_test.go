package password

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "low", want: Low},
		{in: "LOW", want: Low},
		{in: "Intermediate", want: Intermediate},
		{in: " strong ", want: Strong},
		{in: "sTrOnG", want: Strong},
		{in: "medium", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidLevel) {
					t.Errorf("ParseLevel(%q) error = %v, want ErrInvalidLevel", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLevel(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	if Strong.String() != "Strong" {
		t.Errorf("Strong.String() = %q", Strong.String())
	}
	if Level(42).String() != "Level(42)" {
		t.Errorf("Level(42).String() = %q", Level(42).String())
	}
	if Level(3).Valid() {
		t.Error("Level(3).Valid() = true, want false")
	}
}

func TestLevelJSON(t *testing.T) {
	type payload struct {
		Level Level `json:"level"`
	}

	b, err := json.Marshal(payload{Level: Intermediate})
	if err != nil {
		t.Fatalf("json.Marshal() unexpected error: %v", err)
	}
	if string(b) != `{"level":"Intermediate"}` {
		t.Errorf("json.Marshal() = %s", b)
	}

	var p payload
	if err := json.Unmarshal([]byte(`{"level":"strong"}`), &p); err != nil {
		t.Fatalf("json.Unmarshal() unexpected error: %v", err)
	}
	if p.Level != Strong {
		t.Errorf("json.Unmarshal() Level = %v, want Strong", p.Level)
	}

	if err := json.Unmarshal([]byte(`{"level":"extreme"}`), &p); err == nil {
		t.Error("json.Unmarshal() expected error for unknown level")
	}

	if _, err := json.Marshal(payload{Level: Level(5)}); err == nil {
		t.Error("json.Marshal() expected error for undefined level")
	}
}
