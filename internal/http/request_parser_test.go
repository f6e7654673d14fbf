package http

import (
	"net/url"
	"testing"
	"time"
)

func TestParseDateParams(t *testing.T) {
	form := url.Values{
		"year":  {"2024"},
		"month": {"3"},
		"day":   {"15"},
	}
	got := ParseDateParams(form)
	if got.Year != 2024 || got.Month != 3 || got.Day != 15 {
		t.Fatalf("unexpected params %+v", got)
	}
}

func TestParseDateParamsDefaultsToToday(t *testing.T) {
	now := time.Now()
	got := ParseDateParams(url.Values{})
	if got.Year != now.Year() || got.Month != int(now.Month()) || got.Day != now.Day() {
		t.Fatalf("expected today's date as default, got %+v", got)
	}
}

func TestParseDateParamsIgnoresGarbage(t *testing.T) {
	now := time.Now()
	got := ParseDateParams(url.Values{"year": {"later"}, "month": {""}, "day": {"x"}})
	if got.Year != now.Year() || got.Month != int(now.Month()) || got.Day != now.Day() {
		t.Fatalf("garbage input should fall back to today, got %+v", got)
	}
}

func TestSanitizeInput(t *testing.T) {
	cases := []struct{ in, out string }{
		{"  hello  ", "hello"},
		{"a\x00b\x1fc", "abc"},
		{"line1\nline2", "line1\nline2"},
		{"tab\there", "tab\there"},
	}
	for _, tc := range cases {
		if got := sanitizeInput(tc.in); got != tc.out {
			t.Fatalf("%q expected %q, got %q", tc.in, tc.out, got)
		}
	}
}

func TestRateLimiterAllows(t *testing.T) {
	rl := newRateLimiter()
	defer rl.stop()

	for i := 0; i < 60; i++ {
		if !rl.allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.allow("1.2.3.4") {
		t.Fatalf("request 61 within a minute should be limited")
	}
	if !rl.allow("5.6.7.8") {
		t.Fatalf("other clients are not affected")
	}
}
