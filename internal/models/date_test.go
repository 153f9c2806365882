package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{"valid", "2024-06-01", NewDate(2024, time.June, 1), false},
		{"single digit padded", "2024-01-09", NewDate(2024, time.January, 9), false},
		{"empty", "", Date{}, true},
		{"slash separators", "2024/06/01", Date{}, true},
		{"with timestamp", "2024-06-01T00:00:00", Date{}, true},
		{"month out of range", "2024-13-01", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDateString(t *testing.T) {
	d := NewDate(2024, time.June, 1)
	if got := d.String(); got != "2024-06-01" {
		t.Errorf("String() = %q, want %q", got, "2024-06-01")
	}
}

func TestDateDisplay(t *testing.T) {
	d := NewDate(2024, time.June, 1)
	if got := d.Display(); got != "Jun 1, 2024" {
		t.Errorf("Display() = %q, want %q", got, "Jun 1, 2024")
	}
}

func TestDateAddDays(t *testing.T) {
	tests := []struct {
		name string
		d    Date
		n    int
		want Date
	}{
		{"same month", NewDate(2024, time.June, 1), 7, NewDate(2024, time.June, 8)},
		{"month rollover", NewDate(2024, time.June, 28), 7, NewDate(2024, time.July, 5)},
		{"year rollover", NewDate(2024, time.December, 30), 7, NewDate(2025, time.January, 6)},
		{"leap day", NewDate(2024, time.February, 28), 1, NewDate(2024, time.February, 29)},
		{"negative", NewDate(2024, time.June, 1), -1, NewDate(2024, time.May, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.AddDays(tt.n); got != tt.want {
				t.Errorf("%v.AddDays(%d) = %v, want %v", tt.d, tt.n, got, tt.want)
			}
		})
	}
}

func TestDateComparisons(t *testing.T) {
	earlier := NewDate(2024, time.June, 1)
	later := NewDate(2024, time.June, 2)

	if !earlier.Before(later) {
		t.Error("expected earlier.Before(later)")
	}
	if later.Before(earlier) {
		t.Error("did not expect later.Before(earlier)")
	}
	if earlier.Before(earlier) {
		t.Error("a date is not before itself")
	}
	if !later.After(earlier) {
		t.Error("expected later.After(earlier)")
	}
}

func TestDateDaysUntil(t *testing.T) {
	tests := []struct {
		name string
		from Date
		to   Date
		want int
	}{
		{"same day", NewDate(2024, time.June, 1), NewDate(2024, time.June, 1), 0},
		{"next day", NewDate(2024, time.June, 1), NewDate(2024, time.June, 2), 1},
		{"past", NewDate(2024, time.June, 2), NewDate(2024, time.June, 1), -1},
		{"across month", NewDate(2024, time.June, 28), NewDate(2024, time.July, 5), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.DaysUntil(tt.to); got != tt.want {
				t.Errorf("%v.DaysUntil(%v) = %d, want %d", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestDateJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Date
	}{
		{"plain date", `"2024-06-01"`, NewDate(2024, time.June, 1)},
		{"midnight timestamp", `"2024-06-01T00:00:00"`, NewDate(2024, time.June, 1)},
		{"empty string", `""`, Date{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Date
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	d := NewDate(2024, time.June, 1)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"2024-06-01"` {
		t.Errorf("Marshal = %s, want %q", data, `"2024-06-01"`)
	}
}

func TestDateUnmarshalInvalid(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"not-a-date"`), &d); err == nil {
		t.Error("expected error for invalid date string")
	}
}
