package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateRoundTrip(t *testing.T) {
	d := NewDate(2025, 3, 10)
	if got := d.String(); got != "2025-03-10" {
		t.Fatalf("String: got %q", got)
	}
	parsed, err := ParseDate("2025-03-10")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed != d {
		t.Fatalf("parse round trip: %v != %v", parsed, d)
	}
	if ts := d.Time(); ts.Year() != 2025 || ts.Month() != time.March || ts.Day() != 10 {
		t.Fatalf("Time: got %v", ts)
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, s := range []string{"", "10/03/2025", "2025-13-01", "not a date"} {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) should fail", s)
		}
	}
}

func TestDateAddDays(t *testing.T) {
	d := NewDate(2025, 2, 28)
	if got := d.AddDays(1).String(); got != "2025-03-01" {
		t.Fatalf("month rollover: got %q", got)
	}
	if got := d.AddDays(-28).String(); got != "2025-01-31" {
		t.Fatalf("negative add: got %q", got)
	}
}

func TestDateWeekStart(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2025-03-10", "2025-03-10"}, // Monday maps to itself
		{"2025-03-12", "2025-03-10"},
		{"2025-03-16", "2025-03-10"}, // Sunday closes the week
		{"2025-03-17", "2025-03-17"},
	}
	for _, tc := range cases {
		d, err := ParseDate(tc.date)
		if err != nil {
			t.Fatalf("parse %s: %v", tc.date, err)
		}
		if got := d.WeekStart().String(); got != tc.want {
			t.Errorf("WeekStart(%s): got %s want %s", tc.date, got, tc.want)
		}
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2025, 3, 10)
	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"2025-03-10"` {
		t.Fatalf("marshal: got %s", raw)
	}
	var back Date
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != d {
		t.Fatalf("json round trip: %v != %v", back, d)
	}
}
