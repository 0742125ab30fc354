package catalog

import "testing"

func TestParseToleratesCasingAndSeparators(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"oily", "oily", true},
		{"  Oily ", "oily", true},
		{"darkSpots", "darkSpots", true},
		{"dark_spots", "darkSpots", true},
		{"Dark Spots", "darkSpots", true},
		{"mid-range", "midRange", true},
		{"BUDGETFRIENDLY", "budgetFriendly", true},
		{"plastic", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		var got string
		var ok bool
		if v, found := ParseSkinType(tc.in); found {
			got, ok = string(v), true
		} else if v, found := ParseSkinConcern(tc.in); found {
			got, ok = string(v), true
		} else if v, found := ParseBudgetTier(tc.in); found {
			got, ok = string(v), true
		}
		if ok != tc.ok || got != tc.want {
			t.Fatalf("parse(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseAgeBracket(t *testing.T) {
	if v, ok := ParseAgeBracket("18-25"); !ok || v != Age18To25 {
		t.Fatalf("ParseAgeBracket(18-25) = (%q, %v)", v, ok)
	}
	if v, ok := ParseAgeBracket("Under 18"); !ok || v != AgeUnder18 {
		t.Fatalf("ParseAgeBracket(Under 18) = (%q, %v)", v, ok)
	}
	if _, ok := ParseAgeBracket("immortal"); ok {
		t.Fatalf("ParseAgeBracket(immortal) should fail")
	}
}

func TestStringSetHas(t *testing.T) {
	s := StringSet{"oily", "dry"}
	if !s.Has("oily") || s.Has("sensitive") {
		t.Fatalf("StringSet.Has misbehaves: %v", s)
	}
	var empty StringSet
	if empty.Has("oily") {
		t.Fatalf("empty set should contain nothing")
	}
}

func TestStringSetRoundTrip(t *testing.T) {
	s := StringSet{"acne", "darkSpots"}
	v, err := s.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var back StringSet
	if err := back.Scan(v); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(back) != 2 || !back.Has("acne") || !back.Has("darkSpots") {
		t.Fatalf("round trip lost data: %v", back)
	}

	var fromNil StringSet
	if err := fromNil.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if fromNil != nil {
		t.Fatalf("Scan(nil) = %v, want nil", fromNil)
	}
}
