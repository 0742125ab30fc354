package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/skinsage/skinsage-backend/internal/data/repos/testutil"
	types "github.com/skinsage/skinsage-backend/internal/domain"
)

func TestProductRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewProductRepo(db, testutil.Logger(t))
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	products := []*types.Product{
		{
			ID:           uuid.New(),
			Name:         "Old Gel Cleanser",
			Brand:        "Velora",
			Type:         types.TypeCleanser,
			SkinTypes:    types.StringSet{"oily"},
			SkinConcerns: types.StringSet{"acne", "oiliness"},
			Budget:       types.BudgetFriendly,
			Gender:       types.GenderUnisex,
			AgeBrackets:  types.StringSet{"18-25", "26-35"},
			CreatedAt:    now.Add(-2 * time.Hour),
			UpdatedAt:    now.Add(-2 * time.Hour),
		},
		{
			ID:           uuid.New(),
			Name:         "New Gel Cleanser",
			Brand:        "Velora",
			Type:         types.TypeCleanser,
			SkinTypes:    types.StringSet{"oily", "combination"},
			SkinConcerns: types.StringSet{"acne"},
			Budget:       types.BudgetMidRange,
			Gender:       types.GenderUnisex,
			AgeBrackets:  types.StringSet{"18-25"},
			CreatedAt:    now.Add(-1 * time.Hour),
			UpdatedAt:    now.Add(-1 * time.Hour),
		},
		{
			ID:           uuid.New(),
			Name:         "Night Repair Serum",
			Brand:        "Miskin",
			Type:         types.TypeSerum,
			SkinTypes:    types.StringSet{"dry", "sensitive"},
			SkinConcerns: types.StringSet{"aging", "redness"},
			Budget:       types.BudgetPremium,
			Gender:       types.GenderFemale,
			AgeBrackets:  types.StringSet{"36-45", "46-55"},
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}

	created, err := repo.Create(ctx, tx, products)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 3 {
		t.Fatalf("Create: expected 3 products, got %d", len(created))
	}

	got, err := repo.GetByIDs(ctx, tx, []uuid.UUID{products[2].ID})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Night Repair Serum" {
		t.Fatalf("GetByIDs: unexpected result %+v", got)
	}
	if !got[0].SkinConcerns.Has("redness") {
		t.Fatalf("GetByIDs: set column did not round-trip: %v", got[0].SkinConcerns)
	}

	// FindOne on type picks the newest matching row.
	one, err := repo.FindOne(ctx, tx, ProductFilter{Type: types.TypeCleanser})
	if err != nil {
		t.Fatalf("FindOne: %v", err)
	}
	if one == nil || one.Name != "New Gel Cleanser" {
		t.Fatalf("FindOne: got %+v, want the newest cleanser", one)
	}

	// JSON set containment.
	one, err = repo.FindOne(ctx, tx, ProductFilter{SkinType: types.SkinTypeSensitive})
	if err != nil {
		t.Fatalf("FindOne(skin type): %v", err)
	}
	if one == nil || one.Name != "Night Repair Serum" {
		t.Fatalf("FindOne(skin type): got %+v", one)
	}

	one, err = repo.FindOne(ctx, tx, ProductFilter{Concern: types.ConcernOiliness})
	if err != nil {
		t.Fatalf("FindOne(concern): %v", err)
	}
	if one == nil || one.Name != "Old Gel Cleanser" {
		t.Fatalf("FindOne(concern): got %+v", one)
	}

	// Age bracket intersection across several user brackets.
	many, err := repo.FindMany(ctx, tx, ProductFilter{
		AgeBrackets: []types.AgeBracket{types.Age26To35, types.Age36To45},
	}, 10)
	if err != nil {
		t.Fatalf("FindMany(age): %v", err)
	}
	if len(many) != 2 {
		t.Fatalf("FindMany(age): got %d rows, want 2", len(many))
	}

	// Budget IN and exclusion.
	many, err = repo.FindMany(ctx, tx, ProductFilter{
		Budgets:      []types.BudgetTier{types.BudgetFriendly, types.BudgetMidRange},
		ExcludeTypes: []types.ProductType{types.TypeSerum},
	}, 10)
	if err != nil {
		t.Fatalf("FindMany(budget): %v", err)
	}
	if len(many) != 2 {
		t.Fatalf("FindMany(budget): got %d rows, want the two cleansers", len(many))
	}
	if many[0].Name != "New Gel Cleanser" {
		t.Fatalf("FindMany(budget): expected recency order, got %q first", many[0].Name)
	}

	// No match is nil, not an error.
	one, err = repo.FindOne(ctx, tx, ProductFilter{Type: types.TypeFaceOil})
	if err != nil {
		t.Fatalf("FindOne(no match): %v", err)
	}
	if one != nil {
		t.Fatalf("FindOne(no match): got %+v, want nil", one)
	}

	// Update and delete round-trip.
	products[0].Price = 12.99
	if err := repo.Update(ctx, tx, products[0]); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err = repo.GetByIDs(ctx, tx, []uuid.UUID{products[0].ID})
	if err != nil {
		t.Fatalf("GetByIDs after update: %v", err)
	}
	if got[0].Price != 12.99 {
		t.Fatalf("Update: price = %v", got[0].Price)
	}

	if err := repo.Delete(ctx, tx, products[0].ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err = repo.GetByIDs(ctx, tx, []uuid.UUID{products[0].ID})
	if err != nil {
		t.Fatalf("GetByIDs after delete: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Delete: row still present")
	}
}
