package heading

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  int
		want Heading
	}{
		{0, 0},
		{360, 0},
		{-1, 359},
		{450, 90},
		{359, 359},
		{720, 0},
		{-360, 0},
		{-450, 270},
		{1_000_003, 283},
	}

	for _, tt := range tests {
		if got := Normalize(tt.raw); got != tt.want {
			t.Errorf("Normalize(%d) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestNormalize_RangeAndPeriod(t *testing.T) {
	for raw := -1500; raw <= 1500; raw += 7 {
		h := Normalize(raw)
		if h < 0 || h >= FullCircle {
			t.Fatalf("Normalize(%d) = %d, outside [0, 360)", raw, h)
		}
		if other := Normalize(raw + FullCircle); other != h {
			t.Fatalf("Normalize(%d) = %d but Normalize(%d) = %d", raw, h, raw+FullCircle, other)
		}
	}
}

func TestHeading_Formatting(t *testing.T) {
	tests := []struct {
		h         Heading
		wantStr   string
		wantLabel string
	}{
		{0, "000", "000°"},
		{7, "007", "007°"},
		{90, "090", "090°"},
		{359, "359", "359°"},
	}

	for _, tt := range tests {
		if got := tt.h.String(); got != tt.wantStr {
			t.Errorf("Heading(%d).String() = %q, want %q", int(tt.h), got, tt.wantStr)
		}
		if got := tt.h.Label(); got != tt.wantLabel {
			t.Errorf("Heading(%d).Label() = %q, want %q", int(tt.h), got, tt.wantLabel)
		}
	}
}

func TestHeading_Add(t *testing.T) {
	if got := Heading(359).Add(1); got != 0 {
		t.Errorf("359 + 1 = %d, want 0", got)
	}
	if got := Heading(0).Add(-10); got != 350 {
		t.Errorf("0 - 10 = %d, want 350", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    int
		wantErr bool
	}{
		{"plain", "90", 90, false},
		{"padded", " 45 ", 45, false},
		{"negative", "-1", -1, false},
		{"plus sign", "+12", 12, false},
		{"out of range kept raw", "450", 450, false},
		{"letters", "abc", 0, true},
		{"empty", "", 0, true},
		{"blank", "   ", 0, true},
		{"fraction", "3.7", 0, true},
		{"trailing garbage", "12abc", 0, true},
		{"lone sign", "-", 0, true},
		{"overflow", "99999999999999999999999", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.text)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got %d", tt.text, got)
				}
				if !errors.Is(err, ErrNotInteger) {
					t.Errorf("Parse(%q) error = %v, want ErrNotInteger", tt.text, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}
