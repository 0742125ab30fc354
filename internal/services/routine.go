package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/skinsage/skinsage-backend/internal/data/repos"
	types "github.com/skinsage/skinsage-backend/internal/domain"
	"github.com/skinsage/skinsage-backend/internal/pkg/logger"
)

// RoutineService assembles a skincare routine for a profile: fill the tier's
// required slots, spend remaining slots on the user's concerns, pad with
// filler, then dedupe, score and truncate. Business conditions (empty catalog,
// unknown enum values) degrade to smaller results; only repository failures
// surface as errors.
type RoutineService interface {
	SelectRoutine(ctx context.Context, profile types.SelectionProfile) (*types.SelectionResult, error)
}

type routineService struct {
	log      *logger.Logger
	products repos.ProductRepo
}

func NewRoutineService(log *logger.Logger, products repos.ProductRepo) RoutineService {
	return &routineService{
		log:      log.With("service", "RoutineService"),
		products: products,
	}
}

func (rs *routineService) SelectRoutine(ctx context.Context, profile types.SelectionProfile) (*types.SelectionResult, error) {
	np := normalizeProfile(profile)
	tier, usedFallback := resolveTier(profile.RoutineComplexity)

	required, err := rs.fetchRequired(ctx, np, tier.Required)
	if err != nil {
		return nil, fmt.Errorf("fetch required products: %w", err)
	}

	concern, err := rs.fetchConcernProducts(ctx, np, tier.MaxProducts-len(required))
	if err != nil {
		return nil, fmt.Errorf("fetch concern products: %w", err)
	}

	selected := append(append([]*types.Product{}, required...), concern...)

	filler, err := rs.fetchFiller(ctx, np, tier, tier.MaxProducts-len(selected), selected)
	if err != nil {
		return nil, fmt.Errorf("fetch filler products: %w", err)
	}

	merged := dedupeProducts(append(selected, filler...))
	ranked := rankProducts(merged, np)
	if len(ranked) > tier.MaxProducts {
		ranked = ranked[:tier.MaxProducts]
	}

	result := &types.SelectionResult{
		Products:         ranked,
		UsedFallbackTier: usedFallback,
	}
	if usedFallback {
		result.Note = fmt.Sprintf("unknown routine complexity %q, using %q", profile.RoutineComplexity, tier.Name)
	}

	rs.log.Debug("Routine selected",
		"tier", tier.Name,
		"used_fallback", usedFallback,
		"required", len(required),
		"concern", len(concern),
		"filler", len(filler),
		"returned", len(result.Products),
	)
	return result, nil
}

// fetchRequired fills one slot per required type, in tier order. A slot that
// finds nothing under the full profile filter is retried on type alone: any
// product of the right type beats an empty slot. Slots that still find
// nothing are omitted. The per-type queries are independent, so they run
// concurrently and land in an index-addressed slice to keep tier order.
func (rs *routineService) fetchRequired(ctx context.Context, np normalizedProfile, requiredTypes []types.ProductType) ([]*types.Product, error) {
	slots := make([]*types.Product, len(requiredTypes))

	g, gctx := errgroup.WithContext(ctx)
	for i, pt := range requiredTypes {
		i, pt := i, pt
		g.Go(func() error {
			filter := buildBaseFilter(np)
			filter.Type = pt

			found, err := rs.products.FindOne(gctx, nil, filter)
			if err != nil {
				return err
			}
			if found == nil {
				found, err = rs.products.FindOne(gctx, nil, repos.ProductFilter{Type: pt})
				if err != nil {
					return err
				}
			}
			slots[i] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*types.Product, 0, len(slots))
	for _, p := range slots {
		if p != nil {
			out = append(out, p)
		}
	}
	return out, nil
}

// fetchConcernProducts greedily allocates distinct product types across the
// profile's concerns, most-relevant type first, so a small slot budget spread
// over several concerns is not spent twice on the same type.
func (rs *routineService) fetchConcernProducts(ctx context.Context, np normalizedProfile, remainingSlots int) ([]*types.Product, error) {
	if remainingSlots <= 0 {
		return nil, nil
	}

	usedTypes := map[types.ProductType]struct{}{}
	var out []*types.Product

	for _, concern := range np.concerns {
		for _, pt := range concernPriority[concern] {
			if len(out) >= remainingSlots {
				return out, nil
			}
			if _, used := usedTypes[pt]; used {
				continue
			}

			filter := buildBaseFilter(np)
			filter.Type = pt
			filter.Concern = concern

			found, err := rs.products.FindOne(ctx, nil, filter)
			if err != nil {
				return nil, err
			}
			if found != nil {
				out = append(out, found)
				usedTypes[pt] = struct{}{}
			}
		}
	}
	return out, nil
}

// fetchFiller pads the routine toward the tier cap. The tier's preferred and
// then optional types are attempted first; whatever budget remains after that
// is filled by recency across all types not already selected.
func (rs *routineService) fetchFiller(ctx context.Context, np normalizedProfile, tier RoutineTier, remainingSlots int, alreadySelected []*types.Product) ([]*types.Product, error) {
	if remainingSlots <= 0 {
		return nil, nil
	}

	usedTypes := map[types.ProductType]struct{}{}
	var usedList []types.ProductType
	markUsed := func(pt types.ProductType) {
		if _, ok := usedTypes[pt]; !ok {
			usedTypes[pt] = struct{}{}
			usedList = append(usedList, pt)
		}
	}
	for _, p := range alreadySelected {
		markUsed(p.Type)
	}

	var out []*types.Product
	for _, pt := range append(append([]types.ProductType{}, tier.Preferred...), tier.Optional...) {
		if len(out) >= remainingSlots {
			return out, nil
		}
		if _, used := usedTypes[pt]; used {
			continue
		}

		filter := buildBaseFilter(np)
		filter.Type = pt

		found, err := rs.products.FindOne(ctx, nil, filter)
		if err != nil {
			return nil, err
		}
		if found != nil {
			out = append(out, found)
			markUsed(pt)
		}
	}

	if len(out) < remainingSlots {
		filter := buildBaseFilter(np)
		filter.ExcludeTypes = usedList

		more, err := rs.products.FindMany(ctx, nil, filter, remainingSlots-len(out))
		if err != nil {
			return nil, err
		}
		out = append(out, more...)
	}
	return out, nil
}

type productKey struct {
	brand string
	name  string
}

// dedupeProducts drops later occurrences of the same (brand, name) pair,
// preserving input order. Matching is case-sensitive: normalizing brand
// casing is the importer's job, not selection's.
func dedupeProducts(products []*types.Product) []*types.Product {
	seen := map[productKey]struct{}{}
	out := make([]*types.Product, 0, len(products))
	for _, p := range products {
		key := productKey{brand: p.Brand, name: p.Name}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}
