package domain

import (
	"github.com/skinsage/skinsage-backend/internal/domain/catalog"
	"github.com/skinsage/skinsage-backend/internal/domain/routine"
)

type Product = catalog.Product
type StringSet = catalog.StringSet

type SkinType = catalog.SkinType
type SkinConcern = catalog.SkinConcern
type ProductType = catalog.ProductType
type BudgetTier = catalog.BudgetTier
type Gender = catalog.Gender
type AgeBracket = catalog.AgeBracket

type SelectionProfile = routine.SelectionProfile
type ScoredProduct = routine.ScoredProduct
type SelectionResult = routine.SelectionResult

const (
	SkinTypeNormal      = catalog.SkinTypeNormal
	SkinTypeDry         = catalog.SkinTypeDry
	SkinTypeOily        = catalog.SkinTypeOily
	SkinTypeCombination = catalog.SkinTypeCombination
	SkinTypeSensitive   = catalog.SkinTypeSensitive
)

const (
	ConcernAcne          = catalog.ConcernAcne
	ConcernAging         = catalog.ConcernAging
	ConcernDullness      = catalog.ConcernDullness
	ConcernDryness       = catalog.ConcernDryness
	ConcernOiliness      = catalog.ConcernOiliness
	ConcernSensitivity   = catalog.ConcernSensitivity
	ConcernDarkSpots     = catalog.ConcernDarkSpots
	ConcernUnevenTexture = catalog.ConcernUnevenTexture
	ConcernRedness       = catalog.ConcernRedness
	ConcernLargePores    = catalog.ConcernLargePores
)

const (
	TypeCleanser      = catalog.TypeCleanser
	TypeToner         = catalog.TypeToner
	TypeSerum         = catalog.TypeSerum
	TypeMoisturizer   = catalog.TypeMoisturizer
	TypeSunscreen     = catalog.TypeSunscreen
	TypeExfoliant     = catalog.TypeExfoliant
	TypeFaceMask      = catalog.TypeFaceMask
	TypeEyeCream      = catalog.TypeEyeCream
	TypeSpotTreatment = catalog.TypeSpotTreatment
	TypeFaceOil       = catalog.TypeFaceOil
)

const (
	BudgetFriendly = catalog.BudgetFriendly
	BudgetMidRange = catalog.BudgetMidRange
	BudgetPremium  = catalog.BudgetPremium
)

const (
	GenderMale   = catalog.GenderMale
	GenderFemale = catalog.GenderFemale
	GenderUnisex = catalog.GenderUnisex
)

const (
	AgeUnder18 = catalog.AgeUnder18
	Age18To25  = catalog.Age18To25
	Age26To35  = catalog.Age26To35
	Age36To45  = catalog.Age36To45
	Age46To55  = catalog.Age46To55
	AgeOver55  = catalog.AgeOver55
)
