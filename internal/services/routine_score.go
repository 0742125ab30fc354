package services

import (
	"sort"

	types "github.com/skinsage/skinsage-backend/internal/domain"
)

// Scoring weights. Tunables, kept together so policy changes are data edits.
const (
	scoreSkinTypeMatch    = 10
	scorePerConcernMatch  = 5
	scoreBudgetExact      = 3
	scoreBudgetAffordable = 1
	scoreGenderMatch      = 2
)

// scoreProduct computes the additive relevance score of a product for a
// profile. Every matching rule applies; there is no early exit.
func scoreProduct(p *types.Product, np normalizedProfile) int {
	score := 0

	if np.hasSkinType && p.SkinTypes.Has(string(np.skinType)) {
		score += scoreSkinTypeMatch
	}

	for _, c := range np.concerns {
		if p.SkinConcerns.Has(string(c)) {
			score += scorePerConcernMatch
		}
	}

	if np.hasBudget {
		if p.Budget == np.budget {
			score += scoreBudgetExact
		} else if r := budgetRank(p.Budget); r >= 0 && r < budgetRank(np.budget) {
			score += scoreBudgetAffordable
		}
	}

	if np.hasGender && (p.Gender == np.gender || p.Gender == types.GenderUnisex) {
		score += scoreGenderMatch
	}

	return score
}

// rankProducts scores every product and sorts descending. The sort is stable:
// equal scores keep their assembly order, which makes selection deterministic.
func rankProducts(products []*types.Product, np normalizedProfile) []types.ScoredProduct {
	scored := make([]types.ScoredProduct, 0, len(products))
	for _, p := range products {
		scored = append(scored, types.ScoredProduct{Product: *p, Score: scoreProduct(p, np)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
