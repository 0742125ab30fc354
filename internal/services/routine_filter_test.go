package services

import (
	"reflect"
	"testing"

	types "github.com/skinsage/skinsage-backend/internal/domain"
)

func TestAffordableTiers(t *testing.T) {
	cases := []struct {
		budget types.BudgetTier
		want   []types.BudgetTier
	}{
		{types.BudgetFriendly, []types.BudgetTier{types.BudgetFriendly}},
		{types.BudgetMidRange, []types.BudgetTier{types.BudgetFriendly, types.BudgetMidRange}},
		{types.BudgetPremium, []types.BudgetTier{types.BudgetFriendly, types.BudgetMidRange, types.BudgetPremium}},
	}
	for _, tc := range cases {
		got := affordableTiers(tc.budget)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("affordableTiers(%q) = %v, want %v", tc.budget, got, tc.want)
		}
	}
}

func TestCompatibleAgeBrackets(t *testing.T) {
	cases := []struct {
		age  string
		want []types.AgeBracket
	}{
		{"16", []types.AgeBracket{types.AgeUnder18, types.Age18To25}},
		{"21", []types.AgeBracket{types.AgeUnder18, types.Age18To25, types.Age26To35}},
		{"30", []types.AgeBracket{types.Age18To25, types.Age26To35, types.Age36To45}},
		{"50", []types.AgeBracket{types.Age36To45, types.Age46To55, types.AgeOver55}},
		{"70", []types.AgeBracket{types.Age46To55, types.AgeOver55}},
		// Unparseable and out-of-table ages use the middle-bracket fallback.
		{"abc", ageFallbackBrackets},
		{"", ageFallbackBrackets},
		{"200", ageFallbackBrackets},
		{"-3", ageFallbackBrackets},
	}
	for _, tc := range cases {
		got := compatibleAgeBrackets(tc.age)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("compatibleAgeBrackets(%q) = %v, want %v", tc.age, got, tc.want)
		}
	}
}

func TestBuildBaseFilterOmitsInvalidInput(t *testing.T) {
	np := normalizeProfile(types.SelectionProfile{
		SkinType: "plastic",
		Budget:   "infinite",
		Gender:   "starship",
		Age:      "",
	})
	f := buildBaseFilter(np)

	if f.SkinType != "" {
		t.Fatalf("invalid skin type should omit the clause, got %q", f.SkinType)
	}
	if f.Budgets != nil {
		t.Fatalf("invalid budget should omit the clause, got %v", f.Budgets)
	}
	if f.Genders != nil {
		t.Fatalf("invalid gender should omit the clause, got %v", f.Genders)
	}
	if f.AgeBrackets != nil {
		t.Fatalf("absent age should omit the clause, got %v", f.AgeBrackets)
	}
}

func TestBuildBaseFilterClauses(t *testing.T) {
	np := normalizeProfile(types.SelectionProfile{
		SkinType: "Oily",
		Budget:   "mid_range",
		Gender:   "female",
		Age:      "30",
	})
	f := buildBaseFilter(np)

	if f.SkinType != types.SkinTypeOily {
		t.Fatalf("SkinType = %q, want %q", f.SkinType, types.SkinTypeOily)
	}
	wantBudgets := []types.BudgetTier{types.BudgetFriendly, types.BudgetMidRange}
	if !reflect.DeepEqual(f.Budgets, wantBudgets) {
		t.Fatalf("Budgets = %v, want %v", f.Budgets, wantBudgets)
	}
	wantGenders := []types.Gender{types.GenderFemale, types.GenderUnisex}
	if !reflect.DeepEqual(f.Genders, wantGenders) {
		t.Fatalf("Genders = %v, want %v", f.Genders, wantGenders)
	}
	if len(f.AgeBrackets) != 3 {
		t.Fatalf("AgeBrackets = %v, want 3 widened brackets", f.AgeBrackets)
	}
}

func TestBuildBaseFilterUnisexProfile(t *testing.T) {
	np := normalizeProfile(types.SelectionProfile{Gender: "unisex"})
	f := buildBaseFilter(np)
	if !reflect.DeepEqual(f.Genders, []types.Gender{types.GenderUnisex}) {
		t.Fatalf("Genders = %v, want just unisex", f.Genders)
	}
}

func TestNormalizeProfileCollapsesDuplicateConcerns(t *testing.T) {
	np := normalizeProfile(types.SelectionProfile{
		SkinConcerns: []string{"acne", "ACNE", "dark_spots", "darkSpots", "made-up"},
	})
	want := []types.SkinConcern{types.ConcernAcne, types.ConcernDarkSpots}
	if !reflect.DeepEqual(np.concerns, want) {
		t.Fatalf("concerns = %v, want %v", np.concerns, want)
	}
}
