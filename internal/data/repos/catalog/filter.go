package catalog

import (
	types "github.com/skinsage/skinsage-backend/internal/domain"
)

// ProductFilter narrows catalog queries. Zero-valued fields are omitted from
// the query, so an empty filter matches the whole catalog. Set-valued product
// columns (skin types, concerns, age brackets) match on intersection.
type ProductFilter struct {
	Type         types.ProductType
	Types        []types.ProductType
	SkinType     types.SkinType
	Concern      types.SkinConcern
	Budgets      []types.BudgetTier
	Genders      []types.Gender
	AgeBrackets  []types.AgeBracket
	ExcludeTypes []types.ProductType
}

// Matches reports whether a product satisfies the filter. This is the
// reference semantics; the SQL built by the GORM repo must agree with it.
func (f ProductFilter) Matches(p *types.Product) bool {
	if p == nil {
		return false
	}
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	if len(f.Types) > 0 && !containsType(f.Types, p.Type) {
		return false
	}
	if len(f.ExcludeTypes) > 0 && containsType(f.ExcludeTypes, p.Type) {
		return false
	}
	if f.SkinType != "" && !p.SkinTypes.Has(string(f.SkinType)) {
		return false
	}
	if f.Concern != "" && !p.SkinConcerns.Has(string(f.Concern)) {
		return false
	}
	if len(f.Budgets) > 0 {
		ok := false
		for _, b := range f.Budgets {
			if p.Budget == b {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if len(f.Genders) > 0 {
		ok := false
		for _, g := range f.Genders {
			if p.Gender == g {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if len(f.AgeBrackets) > 0 {
		ok := false
		for _, b := range f.AgeBrackets {
			if p.AgeBrackets.Has(string(b)) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

func containsType(list []types.ProductType, t types.ProductType) bool {
	for _, e := range list {
		if e == t {
			return true
		}
	}
	return false
}
