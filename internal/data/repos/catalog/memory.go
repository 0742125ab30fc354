package catalog

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	types "github.com/skinsage/skinsage-backend/internal/domain"
	"gorm.io/gorm"
)

// MemoryProductRepo is an in-memory ProductRepo used by tests and by the
// DB-less dev mode. The tx argument is ignored.
type MemoryProductRepo struct {
	mu   sync.RWMutex
	rows []memoryRow
	seq  int
}

type memoryRow struct {
	product *types.Product
	seq     int
}

func NewMemoryProductRepo() *MemoryProductRepo {
	return &MemoryProductRepo{}
}

func (mr *MemoryProductRepo) Create(ctx context.Context, _ *gorm.DB, products []*types.Product) ([]*types.Product, error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	for _, p := range products {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		mr.seq++
		mr.rows = append(mr.rows, memoryRow{product: p, seq: mr.seq})
	}
	return products, nil
}

func (mr *MemoryProductRepo) Update(ctx context.Context, _ *gorm.DB, product *types.Product) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	for i, row := range mr.rows {
		if row.product.ID == product.ID {
			mr.rows[i].product = product
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (mr *MemoryProductRepo) Delete(ctx context.Context, _ *gorm.DB, id uuid.UUID) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	for i, row := range mr.rows {
		if row.product.ID == id {
			mr.rows = append(mr.rows[:i], mr.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (mr *MemoryProductRepo) GetByIDs(ctx context.Context, _ *gorm.DB, ids []uuid.UUID) ([]*types.Product, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	var results []*types.Product
	for _, id := range ids {
		for _, row := range mr.rows {
			if row.product.ID == id {
				results = append(results, row.product)
				break
			}
		}
	}
	return results, nil
}

func (mr *MemoryProductRepo) List(ctx context.Context, _ *gorm.DB, limit, offset int) ([]*types.Product, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	matched := mr.matchSorted(ProductFilter{})
	if offset > 0 {
		if offset >= len(matched) {
			return nil, nil
		}
		matched = matched[offset:]
	}
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (mr *MemoryProductRepo) FindOne(ctx context.Context, _ *gorm.DB, filter ProductFilter) (*types.Product, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	matched := mr.matchSorted(filter)
	if len(matched) == 0 {
		return nil, nil
	}
	return matched[0], nil
}

func (mr *MemoryProductRepo) FindMany(ctx context.Context, _ *gorm.DB, filter ProductFilter, limit int) ([]*types.Product, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	if limit <= 0 {
		return nil, nil
	}
	matched := mr.matchSorted(filter)
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// matchSorted returns matching products newest first; insertion order breaks
// created-at ties so results stay deterministic.
func (mr *MemoryProductRepo) matchSorted(filter ProductFilter) []*types.Product {
	matched := make([]memoryRow, 0, len(mr.rows))
	for _, row := range mr.rows {
		if filter.Matches(row.product) {
			matched = append(matched, row)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.product.CreatedAt.Equal(b.product.CreatedAt) {
			return a.product.CreatedAt.After(b.product.CreatedAt)
		}
		return a.seq > b.seq
	})
	out := make([]*types.Product, len(matched))
	for i, row := range matched {
		out[i] = row.product
	}
	return out
}
