package catalog

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StringSet is a set-valued column stored as a JSON array of strings.
type StringSet []string

func (s StringSet) Has(v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}

func (s StringSet) Value() (driver.Value, error) {
	if s == nil {
		s = StringSet{}
	}
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *StringSet) Scan(src interface{}) error {
	if src == nil {
		*s = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported StringSet source type %T", src)
	}
	if len(data) == 0 {
		*s = nil
		return nil
	}
	return json.Unmarshal(data, (*[]string)(s))
}

func (StringSet) GormDataType() string { return "json" }

// Product is a catalog record. Name+Brand is the identity used for dedup;
// numeric IDs are not assumed stable across backing stores.
type Product struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name  string    `gorm:"not null;column:name;index:idx_product_brand_name" json:"name"`
	Brand string    `gorm:"not null;column:brand;index:idx_product_brand_name" json:"brand"`
	Type  ProductType `gorm:"not null;column:type;index" json:"type"`

	SkinTypes    StringSet `gorm:"column:skin_types" json:"skin_types"`
	SkinConcerns StringSet `gorm:"column:skin_concerns" json:"skin_concerns"`
	Budget       BudgetTier `gorm:"column:budget;index" json:"budget"`
	Gender       Gender     `gorm:"column:gender" json:"gender"`
	AgeBrackets  StringSet  `gorm:"column:age_brackets" json:"age_brackets"`

	Price        float64        `gorm:"column:price" json:"price"`
	PurchaseLink string         `gorm:"column:purchase_link" json:"purchase_link"`
	ImageURL     string         `gorm:"column:image_url" json:"image_url"`
	Instructions string         `gorm:"column:instructions" json:"instructions"`
	UseTime      string         `gorm:"column:use_time" json:"use_time"`
	Texture      string         `gorm:"column:texture" json:"texture"`
	Ingredients  datatypes.JSON `gorm:"type:json;column:ingredients" json:"ingredients,omitempty"`

	CreatedAt time.Time `gorm:"not null;index;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;column:updated_at" json:"updated_at"`
}

func (Product) TableName() string { return "product" }
