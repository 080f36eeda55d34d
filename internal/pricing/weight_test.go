package pricing

import "testing"

func TestFormatWeightGrams(t *testing.T) {
	cases := []struct {
		grams int
		want  string
	}{
		{250, "250g"},
		{500, "500g"},
		{999, "999g"},
		{1000, "1kg"},
		{1250, "1.25kg"},
		{1500, "1.50kg"},
		{2000, "2kg"},
	}

	for _, tc := range cases {
		if got := FormatWeightGrams(tc.grams); got != tc.want {
			t.Errorf("FormatWeightGrams(%d) = %q, want %q", tc.grams, got, tc.want)
		}
	}
}

func TestParseWeightKg(t *testing.T) {
	cases := []struct {
		label string
		want  float64
		ok    bool
	}{
		{"250g", 0.25, true},
		{"500g", 0.5, true},
		{"1kg", 1, true},
		{"1.5kg", 1.5, true},
		{" 2 KG ", 2, true},
		{"0.75", 0.75, true}, // unitless means kg
		{"", 0, false},
		{"abc", 0, false},
		{"0g", 0, false},
	}

	for _, tc := range cases {
		got, ok := ParseWeightKg(tc.label)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseWeightKg(%q) = (%f, %v), want (%f, %v)", tc.label, got, ok, tc.want, tc.ok)
		}
	}
}
