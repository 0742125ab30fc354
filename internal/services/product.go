package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/skinsage/skinsage-backend/internal/data/repos"
	types "github.com/skinsage/skinsage-backend/internal/domain"
	"github.com/skinsage/skinsage-backend/internal/domain/catalog"
	perrors "github.com/skinsage/skinsage-backend/internal/pkg/errors"
	"github.com/skinsage/skinsage-backend/internal/pkg/logger"
)

// ProductInput carries the writable fields of a product, as raw strings.
// Vocabulary fields are validated and normalized on the way in, so the
// catalog only ever stores canonical values.
type ProductInput struct {
	Name         string   `json:"name"`
	Brand        string   `json:"brand"`
	Type         string   `json:"type"`
	SkinTypes    []string `json:"skin_types"`
	SkinConcerns []string `json:"skin_concerns"`
	Budget       string   `json:"budget"`
	Gender       string   `json:"gender"`
	AgeBrackets  []string `json:"age_brackets"`
	Price        float64  `json:"price"`
	PurchaseLink string   `json:"purchase_link"`
	ImageURL     string   `json:"image_url"`
	Instructions string   `json:"instructions"`
	UseTime      string   `json:"use_time"`
	Texture      string   `json:"texture"`
	// Ingredients is an opaque payload stored and served unchanged.
	Ingredients json.RawMessage `json:"ingredients,omitempty"`
}

type ProductService interface {
	CreateProduct(ctx context.Context, input ProductInput) (*types.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input ProductInput) (*types.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	GetProduct(ctx context.Context, id uuid.UUID) (*types.Product, error)
	ListProducts(ctx context.Context, limit, offset int) ([]*types.Product, error)
}

type productService struct {
	log      *logger.Logger
	products repos.ProductRepo
}

func NewProductService(log *logger.Logger, products repos.ProductRepo) ProductService {
	return &productService{
		log:      log.With("service", "ProductService"),
		products: products,
	}
}

func (ps *productService) CreateProduct(ctx context.Context, input ProductInput) (*types.Product, error) {
	product, err := productFromInput(input)
	if err != nil {
		return nil, err
	}
	product.ID = uuid.New()

	created, err := ps.products.Create(ctx, nil, []*types.Product{product})
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	ps.log.Info("Product created", "id", created[0].ID, "brand", created[0].Brand, "name", created[0].Name)
	return created[0], nil
}

func (ps *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input ProductInput) (*types.Product, error) {
	existing, err := ps.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := productFromInput(input)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if err := ps.products.Update(ctx, nil, updated); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return updated, nil
}

func (ps *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := ps.GetProduct(ctx, id); err != nil {
		return err
	}
	if err := ps.products.Delete(ctx, nil, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	ps.log.Info("Product deleted", "id", id)
	return nil
}

func (ps *productService) GetProduct(ctx context.Context, id uuid.UUID) (*types.Product, error) {
	found, err := ps.products.GetByIDs(ctx, nil, []uuid.UUID{id})
	if err != nil {
		return nil, fmt.Errorf("fetch product: %w", err)
	}
	if len(found) == 0 || found[0] == nil {
		return nil, fmt.Errorf("product %s: %w", id, perrors.ErrNotFound)
	}
	return found[0], nil
}

func (ps *productService) ListProducts(ctx context.Context, limit, offset int) ([]*types.Product, error) {
	return ps.products.List(ctx, nil, limit, offset)
}

func productFromInput(input ProductInput) (*types.Product, error) {
	name := strings.TrimSpace(input.Name)
	brand := strings.TrimSpace(input.Brand)
	if name == "" || brand == "" {
		return nil, fmt.Errorf("name and brand are required: %w", perrors.ErrInvalidArgument)
	}

	productType, ok := catalog.ParseProductType(input.Type)
	if !ok {
		return nil, fmt.Errorf("unknown product type %q: %w", input.Type, perrors.ErrInvalidArgument)
	}

	skinTypes, err := parseSet(input.SkinTypes, "skin type", func(s string) (string, bool) {
		v, ok := catalog.ParseSkinType(s)
		return string(v), ok
	})
	if err != nil {
		return nil, err
	}

	concerns, err := parseSet(input.SkinConcerns, "skin concern", func(s string) (string, bool) {
		v, ok := catalog.ParseSkinConcern(s)
		return string(v), ok
	})
	if err != nil {
		return nil, err
	}

	brackets, err := parseSet(input.AgeBrackets, "age bracket", func(s string) (string, bool) {
		v, ok := catalog.ParseAgeBracket(s)
		return string(v), ok
	})
	if err != nil {
		return nil, err
	}

	budget, ok := catalog.ParseBudgetTier(input.Budget)
	if !ok {
		return nil, fmt.Errorf("unknown budget tier %q: %w", input.Budget, perrors.ErrInvalidArgument)
	}

	gender := types.GenderUnisex
	if strings.TrimSpace(input.Gender) != "" {
		gender, ok = catalog.ParseGender(input.Gender)
		if !ok {
			return nil, fmt.Errorf("unknown gender %q: %w", input.Gender, perrors.ErrInvalidArgument)
		}
	}

	var ingredients datatypes.JSON
	if len(input.Ingredients) > 0 {
		ingredients = datatypes.JSON(input.Ingredients)
	}

	return &types.Product{
		Name:         name,
		Brand:        brand,
		Type:         productType,
		SkinTypes:    skinTypes,
		SkinConcerns: concerns,
		Budget:       budget,
		Gender:       gender,
		AgeBrackets:  brackets,
		Price:        input.Price,
		PurchaseLink: strings.TrimSpace(input.PurchaseLink),
		ImageURL:     strings.TrimSpace(input.ImageURL),
		Instructions: input.Instructions,
		UseTime:      strings.TrimSpace(input.UseTime),
		Texture:      strings.TrimSpace(input.Texture),
		Ingredients:  ingredients,
	}, nil
}

func parseSet(values []string, label string, parse func(string) (string, bool)) (types.StringSet, error) {
	var out types.StringSet
	for _, raw := range values {
		v, ok := parse(raw)
		if !ok {
			return nil, fmt.Errorf("unknown %s %q: %w", label, raw, perrors.ErrInvalidArgument)
		}
		if !out.Has(v) {
			out = append(out, v)
		}
	}
	return out, nil
}
