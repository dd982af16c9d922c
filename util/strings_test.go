package util

import "testing"

func TestCapitalizeFirst(t *testing.T) {
	cases := map[string]string{
		"":                 "",
		"medieval madness": "Medieval madness",
		"Attack":           "Attack",
		"éclair":           "Éclair",
		"x":                "X",
	}
	for in, want := range cases {
		if got := CapitalizeFirst(in); got != want {
			t.Errorf("CapitalizeFirst(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStem(t *testing.T) {
	cases := map[string]string{
		"tables/mm_v1.2.vpx": "mm_v1.2",
		"afm.vpx":            "afm",
		"dir/noext":          "noext",
	}
	for in, want := range cases {
		if got := Stem(in); got != want {
			t.Errorf("Stem(%q) = %q, want %q", in, got, want)
		}
	}
}
