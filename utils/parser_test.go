package utils

import "testing"

func TestParseRating(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected float64
		ok       bool
	}{
		{"Comma Decimal", "Rating: 4,5 stars", 4.5, true},
		{"Dot Decimal", "4.8", 4.8, true},
		{"Plain Integer", "9", 9.0, true},
		{"Embedded In Russian Text", "Рейтинг 3,7 из 5", 3.7, true},
		{"No Number", "no score", 0, false},
		{"Empty String", "", 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, ok := ParseRating(tc.input)

			if ok != tc.ok {
				t.Fatalf("ParseRating(%q) ok = %v; want %v", tc.input, ok, tc.ok)
			}
			if result != tc.expected {
				t.Errorf("ParseRating(%q) = %f; want %f", tc.input, result, tc.expected)
			}
		})
	}
}

func TestUniqueStrings(t *testing.T) {
	got := UniqueStrings([]string{"A", "B", "A", "C", "B"})
	want := []string{"A", "B", "C"}
	if len(got) != len(want) {
		t.Fatalf("UniqueStrings returned %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("UniqueStrings[%d] = %q; want %q", i, got[i], want[i])
		}
	}
}

func TestRandBetween(t *testing.T) {
	if got := RandBetween(5, 5); got != 5 {
		t.Errorf("RandBetween(5, 5) = %d; want 5", got)
	}
	for i := 0; i < 100; i++ {
		got := RandBetween(3, 7)
		if got < 3 || got > 7 {
			t.Fatalf("RandBetween(3, 7) = %d; out of range", got)
		}
	}
}
