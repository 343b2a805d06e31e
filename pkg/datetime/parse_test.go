package datetime

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Valid date", "2025-03-15", false},
		{"Valid first of month", "2025-01-01", false},
		{"Missing day", "2025-03", true},
		{"Wrong separator", "2025/03/15", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && FormatDate(parsed) != tt.input {
				t.Errorf("round trip of %q produced %q", tt.input, FormatDate(parsed))
			}
		})
	}
}

func TestMustParseTime(t *testing.T) {
	parsed := MustParseTime(DateTimeLayout, "2025-06-01")
	if parsed.Month() != time.June {
		t.Errorf("expected June, got %v", parsed.Month())
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid date")
		}
	}()
	MustParseTime(DateTimeLayout, "not-a-date")
}
