package repos

import (
	"github.com/skinsage/skinsage-backend/internal/data/repos/catalog"
)

type ProductRepo = catalog.ProductRepo
type ProductFilter = catalog.ProductFilter
type MemoryProductRepo = catalog.MemoryProductRepo

var NewProductRepo = catalog.NewProductRepo
var NewMemoryProductRepo = catalog.NewMemoryProductRepo
