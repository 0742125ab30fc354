package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/skinsage/skinsage-backend/internal/data/repos"
	perrors "github.com/skinsage/skinsage-backend/internal/pkg/errors"
	"github.com/skinsage/skinsage-backend/internal/pkg/logger"
)

func newTestProductService(t *testing.T) ProductService {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return NewProductService(log, repos.NewMemoryProductRepo())
}

func validInput() ProductInput {
	return ProductInput{
		Name:         "Foam Cleanser",
		Brand:        "Velora",
		Type:         "cleanser",
		SkinTypes:    []string{"oily", "combination"},
		SkinConcerns: []string{"acne"},
		Budget:       "midRange",
		Gender:       "unisex",
		AgeBrackets:  []string{"18-25", "26-35"},
		Price:        18.50,
	}
}

func TestCreateProductNormalizesVocabulary(t *testing.T) {
	svc := newTestProductService(t)
	ctx := context.Background()

	input := validInput()
	input.Type = "Cleanser"
	input.Budget = "mid_range"
	input.SkinConcerns = []string{"Dark Spots"}

	created, err := svc.CreateProduct(ctx, input)
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatalf("CreateProduct must assign an ID")
	}
	if string(created.Type) != "cleanser" {
		t.Fatalf("Type = %q, want canonical %q", created.Type, "cleanser")
	}
	if string(created.Budget) != "midRange" {
		t.Fatalf("Budget = %q, want canonical %q", created.Budget, "midRange")
	}
	if !created.SkinConcerns.Has("darkSpots") {
		t.Fatalf("SkinConcerns = %v, want canonical darkSpots", created.SkinConcerns)
	}
}

func TestCreateProductRejectsInvalidInput(t *testing.T) {
	svc := newTestProductService(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*ProductInput)
	}{
		{"missing name", func(in *ProductInput) { in.Name = "  " }},
		{"missing brand", func(in *ProductInput) { in.Brand = "" }},
		{"unknown type", func(in *ProductInput) { in.Type = "elixir" }},
		{"unknown skin type", func(in *ProductInput) { in.SkinTypes = []string{"plastic"} }},
		{"unknown concern", func(in *ProductInput) { in.SkinConcerns = []string{"boredom"} }},
		{"unknown budget", func(in *ProductInput) { in.Budget = "free" }},
		{"unknown gender", func(in *ProductInput) { in.Gender = "robot" }},
		{"unknown age bracket", func(in *ProductInput) { in.AgeBrackets = []string{"immortal"} }},
	}

	for _, tc := range cases {
		input := validInput()
		tc.mutate(&input)
		if _, err := svc.CreateProduct(ctx, input); !errors.Is(err, perrors.ErrInvalidArgument) {
			t.Fatalf("%s: err = %v, want ErrInvalidArgument", tc.name, err)
		}
	}
}

func TestProductLifecycle(t *testing.T) {
	svc := newTestProductService(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, validInput())
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	got, err := svc.GetProduct(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if got.Name != created.Name {
		t.Fatalf("GetProduct returned %q, want %q", got.Name, created.Name)
	}

	update := validInput()
	update.Name = "Foam Cleanser 2.0"
	updated, err := svc.UpdateProduct(ctx, created.ID, update)
	if err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("UpdateProduct changed the ID")
	}
	if updated.Name != "Foam Cleanser 2.0" {
		t.Fatalf("UpdateProduct name = %q", updated.Name)
	}

	listed, err := svc.ListProducts(ctx, 10, 0)
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("ListProducts returned %d products, want 1", len(listed))
	}

	if err := svc.DeleteProduct(ctx, created.ID); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}
	if _, err := svc.GetProduct(ctx, created.ID); !errors.Is(err, perrors.ErrNotFound) {
		t.Fatalf("GetProduct after delete: err = %v, want ErrNotFound", err)
	}
}

func TestGetProductUnknownID(t *testing.T) {
	svc := newTestProductService(t)
	if _, err := svc.GetProduct(context.Background(), uuid.New()); !errors.Is(err, perrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
