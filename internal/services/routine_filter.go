package services

import (
	"strconv"
	"strings"

	"github.com/skinsage/skinsage-backend/internal/data/repos"
	types "github.com/skinsage/skinsage-backend/internal/domain"
	"github.com/skinsage/skinsage-backend/internal/domain/catalog"
)

// normalizedProfile is a SelectionProfile after normalize-or-default: every
// recognized value is parsed into its vocabulary type, every unrecognized one
// is dropped so the filters it feeds widen instead of excluding everything.
type normalizedProfile struct {
	skinType    types.SkinType
	hasSkinType bool

	// concerns keeps caller order; duplicates are collapsed so scoring stays
	// per-distinct-concern.
	concerns []types.SkinConcern

	budget    types.BudgetTier
	hasBudget bool

	gender    types.Gender
	hasGender bool

	age string
}

func normalizeProfile(p types.SelectionProfile) normalizedProfile {
	var np normalizedProfile

	if p.SkinType != "" {
		if st, ok := catalog.ParseSkinType(p.SkinType); ok {
			np.skinType = st
			np.hasSkinType = true
		}
	}

	seen := map[types.SkinConcern]struct{}{}
	for _, raw := range p.SkinConcerns {
		c, ok := catalog.ParseSkinConcern(raw)
		if !ok {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		np.concerns = append(np.concerns, c)
	}

	if p.Budget != "" {
		if b, ok := catalog.ParseBudgetTier(p.Budget); ok {
			np.budget = b
			np.hasBudget = true
		}
	}

	if p.Gender != "" {
		if g, ok := catalog.ParseGender(p.Gender); ok {
			np.gender = g
			np.hasGender = true
		}
	}

	np.age = strings.TrimSpace(p.Age)
	return np
}

// buildBaseFilter translates a normalized profile into repository constraints.
// Missing or invalid profile fields omit their clause entirely, so the filter
// degrades toward "no constraint", never toward "no results".
func buildBaseFilter(np normalizedProfile) repos.ProductFilter {
	var f repos.ProductFilter

	if np.hasSkinType {
		f.SkinType = np.skinType
	}
	if np.hasBudget {
		f.Budgets = affordableTiers(np.budget)
	}
	if np.hasGender {
		f.Genders = []types.Gender{np.gender}
		if np.gender != types.GenderUnisex {
			f.Genders = append(f.Genders, types.GenderUnisex)
		}
	}
	if np.age != "" {
		f.AgeBrackets = compatibleAgeBrackets(np.age)
	}
	return f
}

var budgetOrder = []types.BudgetTier{
	types.BudgetFriendly,
	types.BudgetMidRange,
	types.BudgetPremium,
}

// affordableTiers returns the tiers a user at the given budget can buy from:
// their own tier and everything below it.
func affordableTiers(budget types.BudgetTier) []types.BudgetTier {
	var out []types.BudgetTier
	for _, t := range budgetOrder {
		out = append(out, t)
		if t == budget {
			return out
		}
	}
	return budgetOrder
}

// budgetRank is the total ordering budgetFriendly < midRange < premium.
// Unknown tiers rank as -1 and never earn affordability credit.
func budgetRank(budget types.BudgetTier) int {
	for i, t := range budgetOrder {
		if t == budget {
			return i
		}
	}
	return -1
}

// ageBracketRanges pairs each bracket with its year span, in ascending order.
// The overlaps applied by compatibleAgeBrackets treat bracket boundaries as
// soft recommendations rather than cutoffs; the window size is a tunable.
var ageBracketRanges = []struct {
	bracket  types.AgeBracket
	min, max int
}{
	{types.AgeUnder18, 0, 17},
	{types.Age18To25, 18, 25},
	{types.Age26To35, 26, 35},
	{types.Age36To45, 36, 45},
	{types.Age46To55, 46, 55},
	{types.AgeOver55, 56, 130},
}

// ageFallbackBrackets is the widest sensible default when an age cannot be
// parsed or matched: the three middle brackets.
var ageFallbackBrackets = []types.AgeBracket{
	types.Age18To25,
	types.Age26To35,
	types.Age36To45,
}

// compatibleAgeBrackets maps a literal age to its own bracket plus the
// adjacent bracket on each side.
func compatibleAgeBrackets(age string) []types.AgeBracket {
	years, err := strconv.Atoi(strings.TrimSpace(age))
	if err != nil {
		return ageFallbackBrackets
	}

	for i, r := range ageBracketRanges {
		if years < r.min || years > r.max {
			continue
		}
		lo, hi := i-1, i+1
		if lo < 0 {
			lo = 0
		}
		if hi > len(ageBracketRanges)-1 {
			hi = len(ageBracketRanges) - 1
		}
		out := make([]types.AgeBracket, 0, hi-lo+1)
		for _, r := range ageBracketRanges[lo : hi+1] {
			out = append(out, r.bracket)
		}
		return out
	}
	return ageFallbackBrackets
}

func normalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
