package models

import (
	"errors"
	"testing"
)

func TestParseRiotID(t *testing.T) {
	cases := []struct {
		in       string
		gameName string
		tagLine  string
		wantErr  bool
	}{
		{"Tester#LAN", "Tester", "LAN", false},
		{"  Spaced  # LAN ", "Spaced", "LAN", false},
		{"Name#Tag#Extra", "Name", "Tag#Extra", false},
		{"notag", "", "", true},
		{"#LAN", "", "", true},
		{"Name#", "", "", true},
		{"", "", "", true},
	}

	for _, tc := range cases {
		gameName, tagLine, err := ParseRiotID(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidRiotID) {
				t.Errorf("ParseRiotID(%q): expected ErrInvalidRiotID, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRiotID(%q): unexpected error %v", tc.in, err)
			continue
		}
		if gameName != tc.gameName || tagLine != tc.tagLine {
			t.Errorf("ParseRiotID(%q) = %q, %q; want %q, %q",
				tc.in, gameName, tagLine, tc.gameName, tc.tagLine)
		}
	}
}
