package catalog

import "strings"

// Fixed vocabularies for the product catalog. Wire values are the canonical
// strings below; parsing is tolerant of casing and _-/space separators so that
// "midRange", "mid_range" and "Mid Range" all resolve to the same value.

type SkinType string

const (
	SkinTypeNormal      SkinType = "normal"
	SkinTypeDry         SkinType = "dry"
	SkinTypeOily        SkinType = "oily"
	SkinTypeCombination SkinType = "combination"
	SkinTypeSensitive   SkinType = "sensitive"
)

var SkinTypeValues = []SkinType{
	SkinTypeNormal,
	SkinTypeDry,
	SkinTypeOily,
	SkinTypeCombination,
	SkinTypeSensitive,
}

type SkinConcern string

const (
	ConcernAcne          SkinConcern = "acne"
	ConcernAging         SkinConcern = "aging"
	ConcernDullness      SkinConcern = "dullness"
	ConcernDryness       SkinConcern = "dryness"
	ConcernOiliness      SkinConcern = "oiliness"
	ConcernSensitivity   SkinConcern = "sensitivity"
	ConcernDarkSpots     SkinConcern = "darkSpots"
	ConcernUnevenTexture SkinConcern = "unevenTexture"
	ConcernRedness       SkinConcern = "redness"
	ConcernLargePores    SkinConcern = "largePores"
)

var SkinConcernValues = []SkinConcern{
	ConcernAcne,
	ConcernAging,
	ConcernDullness,
	ConcernDryness,
	ConcernOiliness,
	ConcernSensitivity,
	ConcernDarkSpots,
	ConcernUnevenTexture,
	ConcernRedness,
	ConcernLargePores,
}

type ProductType string

const (
	TypeCleanser      ProductType = "cleanser"
	TypeToner         ProductType = "toner"
	TypeSerum         ProductType = "serum"
	TypeMoisturizer   ProductType = "moisturizer"
	TypeSunscreen     ProductType = "sunscreen"
	TypeExfoliant     ProductType = "exfoliant"
	TypeFaceMask      ProductType = "faceMask"
	TypeEyeCream      ProductType = "eyeCream"
	TypeSpotTreatment ProductType = "spotTreatment"
	TypeFaceOil       ProductType = "faceOil"
)

var ProductTypeValues = []ProductType{
	TypeCleanser,
	TypeToner,
	TypeSerum,
	TypeMoisturizer,
	TypeSunscreen,
	TypeExfoliant,
	TypeFaceMask,
	TypeEyeCream,
	TypeSpotTreatment,
	TypeFaceOil,
}

type BudgetTier string

const (
	BudgetFriendly BudgetTier = "budgetFriendly"
	BudgetMidRange BudgetTier = "midRange"
	BudgetPremium  BudgetTier = "premium"
)

var BudgetTierValues = []BudgetTier{
	BudgetFriendly,
	BudgetMidRange,
	BudgetPremium,
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderUnisex Gender = "unisex"
)

var GenderValues = []Gender{
	GenderMale,
	GenderFemale,
	GenderUnisex,
}

type AgeBracket string

const (
	AgeUnder18 AgeBracket = "under18"
	Age18To25  AgeBracket = "18-25"
	Age26To35  AgeBracket = "26-35"
	Age36To45  AgeBracket = "36-45"
	Age46To55  AgeBracket = "46-55"
	AgeOver55  AgeBracket = "over55"
)

var AgeBracketValues = []AgeBracket{
	AgeUnder18,
	Age18To25,
	Age26To35,
	Age36To45,
	Age46To55,
	AgeOver55,
}

var (
	skinTypeByKey    = map[string]SkinType{}
	skinConcernByKey = map[string]SkinConcern{}
	productTypeByKey = map[string]ProductType{}
	budgetTierByKey  = map[string]BudgetTier{}
	genderByKey      = map[string]Gender{}
	ageBracketByKey  = map[string]AgeBracket{}
)

func init() {
	for _, v := range SkinTypeValues {
		skinTypeByKey[normalizeKey(string(v))] = v
	}
	for _, v := range SkinConcernValues {
		skinConcernByKey[normalizeKey(string(v))] = v
	}
	for _, v := range ProductTypeValues {
		productTypeByKey[normalizeKey(string(v))] = v
	}
	for _, v := range BudgetTierValues {
		budgetTierByKey[normalizeKey(string(v))] = v
	}
	for _, v := range GenderValues {
		genderByKey[normalizeKey(string(v))] = v
	}
	for _, v := range AgeBracketValues {
		ageBracketByKey[normalizeKey(string(v))] = v
	}
}

// normalizeKey lowercases and strips separators so user-supplied variants of a
// vocabulary value collapse to one lookup key.
func normalizeKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch r {
		case '_', '-', ' ':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func ParseSkinType(s string) (SkinType, bool) {
	v, ok := skinTypeByKey[normalizeKey(s)]
	return v, ok
}

func ParseSkinConcern(s string) (SkinConcern, bool) {
	v, ok := skinConcernByKey[normalizeKey(s)]
	return v, ok
}

func ParseProductType(s string) (ProductType, bool) {
	v, ok := productTypeByKey[normalizeKey(s)]
	return v, ok
}

func ParseBudgetTier(s string) (BudgetTier, bool) {
	v, ok := budgetTierByKey[normalizeKey(s)]
	return v, ok
}

func ParseGender(s string) (Gender, bool) {
	v, ok := genderByKey[normalizeKey(s)]
	return v, ok
}

func ParseAgeBracket(s string) (AgeBracket, bool) {
	v, ok := ageBracketByKey[normalizeKey(s)]
	return v, ok
}
