package routine

import (
	"github.com/skinsage/skinsage-backend/internal/domain/catalog"
)

// SelectionProfile is the caller-supplied input to routine selection. Every
// field is optional; unknown values widen or default instead of erroring.
type SelectionProfile struct {
	SkinType          string   `json:"skin_type,omitempty"`
	SkinConcerns      []string `json:"skin_concerns,omitempty"`
	Budget            string   `json:"budget,omitempty"`
	Gender            string   `json:"gender,omitempty"`
	Age               string   `json:"age,omitempty"`
	RoutineComplexity string   `json:"routine_complexity,omitempty"`
}

// ScoredProduct is a catalog product plus its relevance score for one profile.
// It exists only as selection output and is never persisted.
type ScoredProduct struct {
	catalog.Product
	Score int `json:"score"`
}

type SelectionResult struct {
	Products         []ScoredProduct `json:"products"`
	UsedFallbackTier bool            `json:"used_fallback_tier"`
	Note             string          `json:"note,omitempty"`
}
