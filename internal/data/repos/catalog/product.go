package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	types "github.com/skinsage/skinsage-backend/internal/domain"
	"github.com/skinsage/skinsage-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type ProductRepo interface {
	Create(ctx context.Context, tx *gorm.DB, products []*types.Product) ([]*types.Product, error)
	Update(ctx context.Context, tx *gorm.DB, product *types.Product) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Product, error)
	List(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*types.Product, error)

	// FindOne returns the newest product matching the filter, or nil when
	// nothing matches. A nil result is not an error.
	FindOne(ctx context.Context, tx *gorm.DB, filter ProductFilter) (*types.Product, error)
	// FindMany returns up to limit matching products, newest first.
	FindMany(ctx context.Context, tx *gorm.DB, filter ProductFilter, limit int) ([]*types.Product, error)
}

type productRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	return &productRepo{db: db, log: baseLog.With("repo", "ProductRepo")}
}

func (pr *productRepo) Create(ctx context.Context, tx *gorm.DB, products []*types.Product) ([]*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if len(products) == 0 {
		return []*types.Product{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (pr *productRepo) Update(ctx context.Context, tx *gorm.DB, product *types.Product) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).Save(product).Error
}

func (pr *productRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Product{}).Error
}

func (pr *productRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.Product
	if len(ids) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *productRepo) List(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	q := transaction.WithContext(ctx).
		Model(&types.Product{}).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}

	var results []*types.Product
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *productRepo) FindOne(ctx context.Context, tx *gorm.DB, filter ProductFilter) (*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.Product
	if err := pr.applyFilter(transaction.WithContext(ctx), filter).
		Order("created_at DESC").
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (pr *productRepo) FindMany(ctx context.Context, tx *gorm.DB, filter ProductFilter, limit int) ([]*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.Product
	if limit <= 0 {
		return results, nil
	}

	if err := pr.applyFilter(transaction.WithContext(ctx), filter).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *productRepo) applyFilter(q *gorm.DB, f ProductFilter) *gorm.DB {
	q = q.Model(&types.Product{})

	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if len(f.Types) > 0 {
		q = q.Where("type IN ?", f.Types)
	}
	if len(f.ExcludeTypes) > 0 {
		q = q.Where("type NOT IN ?", f.ExcludeTypes)
	}
	if f.SkinType != "" {
		q = q.Where(pr.setContainsClause("skin_types"), string(f.SkinType))
	}
	if f.Concern != "" {
		q = q.Where(pr.setContainsClause("skin_concerns"), string(f.Concern))
	}
	if len(f.Budgets) > 0 {
		q = q.Where("budget IN ?", f.Budgets)
	}
	if len(f.Genders) > 0 {
		q = q.Where("gender IN ?", f.Genders)
	}
	if len(f.AgeBrackets) > 0 {
		clause := pr.setContainsClause("age_brackets")
		conds := make([]string, 0, len(f.AgeBrackets))
		args := make([]interface{}, 0, len(f.AgeBrackets))
		for _, b := range f.AgeBrackets {
			conds = append(conds, clause)
			args = append(args, string(b))
		}
		q = q.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
	return q
}

// setContainsClause builds dialect-specific SQL testing membership of a single
// value in a JSON-array column.
func (pr *productRepo) setContainsClause(column string) string {
	if pr.db.Dialector.Name() == "postgres" {
		return fmt.Sprintf("EXISTS (SELECT 1 FROM json_array_elements_text(%s::json) AS elem WHERE elem = ?)", column)
	}
	return fmt.Sprintf("EXISTS (SELECT 1 FROM json_each(%s) WHERE json_each.value = ?)", column)
}
