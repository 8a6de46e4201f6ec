package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParseFrom(t *testing.T) {
	today := New(2026, time.October, 15)

	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", New(2025, time.January, 15), false},
		{"2025-7-1", New(2025, time.July, 1), false},
		{" 2025-07-01 ", New(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},
		{"", Date{}, true},

		{"0d", today, false},
		{"-1d", today.Add(-1), false},
		{"+1d", today.Add(1), false},
		{"1d", Date{}, true},
		{"+2w", today.Add(14), false},
		{"+1m", New(2026, time.November, 15), false},
		{"-1y", New(2025, time.October, 15), false},
		{"+20d", New(2026, time.November, 4), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFrom(today, tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseFrom(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseFrom(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalization(t *testing.T) {
	if got, want := New(2025, time.February, 30), New(2025, time.March, 2); got != want {
		t.Errorf("New(2025-02-30) = %v, want %v", got, want)
	}
	if got, want := New(2025, time.December, 31).Add(1), New(2026, time.January, 1); got != want {
		t.Errorf("Add(1) = %v, want %v", got, want)
	}
}

func TestBeforeAfter(t *testing.T) {
	d1 := New(2025, 1, 1)
	d2 := New(2025, 1, 2)
	if !d1.Before(d2) || d2.Before(d1) || d1.Before(d1) {
		t.Errorf("Before is inconsistent for %v and %v", d1, d2)
	}
	if !d2.After(d1) || d1.After(d2) || d1.After(d1) {
		t.Errorf("After is inconsistent for %v and %v", d1, d2)
	}
	if got := d1.DaysUntil(d2); got != 1 {
		t.Errorf("DaysUntil = %d, want 1", got)
	}
	if got := d2.DaysUntil(d1); got != -1 {
		t.Errorf("DaysUntil = %d, want -1", got)
	}
}

func TestTodayOverride(t *testing.T) {
	t.Setenv(TestingTodayEnv, "2026-10-15")
	if got, want := Today(), New(2026, time.October, 15); got != want {
		t.Errorf("Today() = %v, want %v", got, want)
	}
}

func TestJSON(t *testing.T) {
	d := New(2025, 7, 1)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2025-07-01"` {
		t.Errorf("Marshal = %s, want \"2025-07-01\"", b)
	}
	var got Date
	if err := json.Unmarshal([]byte(`"2025-7-1"`), &got); err != nil {
		t.Fatal(err)
	}
	if got != d {
		t.Errorf("Unmarshal = %v, want %v", got, d)
	}
}

func TestRange(t *testing.T) {
	r := NewRange(New(2025, 1, 1), 3)
	for _, tt := range []struct {
		on   Date
		want bool
	}{
		{New(2024, 12, 31), false},
		{New(2025, 1, 1), true},
		{New(2025, 1, 4), true},
		{New(2025, 1, 5), false},
	} {
		if got := r.Contains(tt.on); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.on, got, tt.want)
		}
	}
	if got := r.Days(); got != 4 {
		t.Errorf("Days() = %d, want 4", got)
	}
}
