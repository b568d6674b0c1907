package mpin

import (
	"testing"
	"time"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestDatePatterns_Length4(t *testing.T) {
	got := DatePatterns(date(1992, 8, 15), 4)

	want := []string{
		"1508", "0815", // dd+mm, mm+dd
		"1992",         // yyyy
		"1592", "9215", // dd+yy, yy+dd
		"0892", "9208", // mm+yy, yy+mm
		"1515", "0808", "9292", // dd+dd, mm+mm, yy+yy
	}
	if len(got) != len(want) {
		t.Fatalf("want %d patterns, got %d: %v", len(want), len(got), got)
	}
	for _, p := range want {
		if _, ok := got[p]; !ok {
			t.Errorf("missing pattern %q", p)
		}
	}
}

func TestDatePatterns_Length6(t *testing.T) {
	got := DatePatterns(date(1992, 8, 15), 6)

	want := []string{"150892", "081592", "920815", "921508"}
	if len(got) != len(want) {
		t.Fatalf("want %d patterns, got %d: %v", len(want), len(got), got)
	}
	for _, p := range want {
		if _, ok := got[p]; !ok {
			t.Errorf("missing pattern %q", p)
		}
	}
	// yyyy-based combinations are deliberately not part of the 6-digit set.
	if _, ok := got["199208"]; ok {
		t.Error("unexpected yyyy+mm pattern in 6-digit set")
	}
}

func TestDatePatterns_DuplicatesCollapse(t *testing.T) {
	// day == month == year%100: many patterns coincide.
	got := DatePatterns(date(2012, 12, 12), 4)
	if len(got) > 10 {
		t.Fatalf("4-digit set must stay <= 10, got %d", len(got))
	}
	// ddmm == mmdd == ddyy == ... == "1212"
	if _, ok := got["1212"]; !ok {
		t.Error("expected collapsed pattern 1212")
	}
	if len(got) != 2 { // {"1212", "2012"}
		t.Errorf("want 2 distinct patterns for 2012-12-12, got %d: %v", len(got), got)
	}
}

func TestDatePatterns_SizeBounds(t *testing.T) {
	dates := []time.Time{
		date(1970, 1, 1),
		date(1999, 12, 31),
		date(2004, 2, 29),
		date(2018, 11, 20),
	}
	for _, d := range dates {
		if n := len(DatePatterns(d, 4)); n > 10 {
			t.Errorf("%s: 4-digit set size %d > 10", d.Format("2006-01-02"), n)
		}
		if n := len(DatePatterns(d, 6)); n > 4 {
			t.Errorf("%s: 6-digit set size %d > 4", d.Format("2006-01-02"), n)
		}
	}
}

func TestDatePatterns_ZeroPadding(t *testing.T) {
	got := DatePatterns(date(2005, 3, 7), 6)
	if _, ok := got["070305"]; !ok {
		t.Errorf("expected zero-padded ddmmyy 070305, got %v", got)
	}
}
