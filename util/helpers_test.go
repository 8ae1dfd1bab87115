package util

import "testing"

func TestFriendlyList(t *testing.T) {
	testCases := []struct {
		items       []string
		apostrophes bool
		expected    string
	}{
		{[]string{}, false, ""},
		{[]string{"a"}, false, "a"},
		{[]string{"a", "b"}, false, "a & b"},
		{[]string{"a", "b", "c"}, false, "a, b & c"},
		{[]string{"a", "b"}, true, "'a' & 'b'"},
	}
	for _, tc := range testCases {
		obtained := FriendlyList(tc.items, tc.apostrophes)
		if obtained != tc.expected {
			t.Errorf("incorrect friendly list: got %q, expected %q", obtained, tc.expected)
		}
	}
}

func TestAbbreviate(t *testing.T) {
	obtained := Abbreviate([]string{"oscillator", "cartpole", "cartpolecost"}, 1, true)
	expected := []string{"O", "C", "Ca"}
	if len(obtained) != len(expected) {
		t.Fatalf("incorrect number of abbreviations: %d", len(obtained))
	}
	for i := range expected {
		if obtained[i] != expected[i] {
			t.Errorf("incorrect abbreviation at %d: got %q, expected %q", i, obtained[i], expected[i])
		}
	}
}
