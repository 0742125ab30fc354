package services

import (
	types "github.com/skinsage/skinsage-backend/internal/domain"
)

// RoutineTier describes one routine-complexity level: which product types a
// routine must carry, which are worth adding when room remains, and the hard
// cap on routine length. MaxProducts is always >= len(Required).
type RoutineTier struct {
	Name        string
	Required    []types.ProductType
	Preferred   []types.ProductType
	Optional    []types.ProductType
	MaxProducts int
}

const defaultTierName = "standard"

// routineTiers is deliberately a data table, not control flow: tests
// enumerate it exhaustively and new tiers slot in without touching the
// selector.
var routineTiers = map[string]RoutineTier{
	"minimal": {
		Name:        "minimal",
		Required:    []types.ProductType{types.TypeCleanser, types.TypeMoisturizer, types.TypeSunscreen},
		Preferred:   nil,
		Optional:    []types.ProductType{types.TypeSerum},
		MaxProducts: 4,
	},
	"standard": {
		Name:        "standard",
		Required:    []types.ProductType{types.TypeCleanser, types.TypeMoisturizer, types.TypeSunscreen},
		Preferred:   []types.ProductType{types.TypeSerum, types.TypeToner},
		Optional:    []types.ProductType{types.TypeEyeCream, types.TypeExfoliant},
		MaxProducts: 7,
	},
	"comprehensive": {
		Name:        "comprehensive",
		Required:    []types.ProductType{types.TypeCleanser, types.TypeToner, types.TypeSerum, types.TypeMoisturizer, types.TypeSunscreen},
		Preferred:   []types.ProductType{types.TypeEyeCream, types.TypeExfoliant},
		Optional:    []types.ProductType{types.TypeFaceMask, types.TypeFaceOil, types.TypeSpotTreatment},
		MaxProducts: 10,
	},
}

// concernPriority maps each skin concern to product types that address it,
// most relevant first. Concerns missing from the table contribute nothing.
var concernPriority = map[types.SkinConcern][]types.ProductType{
	types.ConcernAcne:          {types.TypeSpotTreatment, types.TypeCleanser, types.TypeSerum, types.TypeToner},
	types.ConcernAging:         {types.TypeSerum, types.TypeEyeCream, types.TypeMoisturizer, types.TypeSunscreen},
	types.ConcernDullness:      {types.TypeSerum, types.TypeExfoliant, types.TypeFaceMask, types.TypeToner},
	types.ConcernDryness:       {types.TypeMoisturizer, types.TypeFaceOil, types.TypeSerum, types.TypeCleanser},
	types.ConcernOiliness:      {types.TypeCleanser, types.TypeToner, types.TypeExfoliant, types.TypeMoisturizer},
	types.ConcernSensitivity:   {types.TypeCleanser, types.TypeMoisturizer, types.TypeSerum},
	types.ConcernDarkSpots:     {types.TypeSerum, types.TypeSunscreen, types.TypeExfoliant, types.TypeSpotTreatment},
	types.ConcernUnevenTexture: {types.TypeExfoliant, types.TypeSerum, types.TypeToner, types.TypeMoisturizer},
	types.ConcernRedness:       {types.TypeSerum, types.TypeMoisturizer, types.TypeCleanser},
	types.ConcernLargePores:    {types.TypeToner, types.TypeCleanser, types.TypeExfoliant, types.TypeSerum},
}

// resolveTier maps a caller-supplied complexity string to a tier. Absent input
// means standard; unknown input degrades to standard with usedFallback set so
// callers can surface a note instead of an error.
func resolveTier(complexity string) (RoutineTier, bool) {
	key := normalizeToken(complexity)
	if key == "" {
		return routineTiers[defaultTierName], false
	}
	tier, ok := routineTiers[key]
	if !ok {
		return routineTiers[defaultTierName], true
	}
	return tier, false
}
