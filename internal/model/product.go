package model

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	Name       string         `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	Color      string         `gorm:"type:varchar(255);not null" json:"color" validate:"required,max=255"`
	SupplierID *uuid.UUID     `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Supplier   *Supplier      `gorm:"foreignKey:SupplierID" json:"supplier,omitempty" validate:"-"`
	Images     pq.StringArray `gorm:"type:text[]" json:"images"`
	// Status is read by the dashboard rollup ("Selesai" counts as completed).
	// No write path sets it yet.
	Status string `gorm:"type:varchar(50)" json:"status,omitempty"`

	// Relasi: a product owns its variant set (replaced wholesale on update)
	Variants []ProductType `gorm:"foreignKey:ProductID" json:"variants,omitempty" validate:"-"`
}

// ProductType is a priced, stocked size variant belonging to one Product.
type ProductType struct {
	BaseModel
	Size      string          `gorm:"type:varchar(255);not null" json:"size" validate:"required,max=255"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock     int             `gorm:"not null;default:0" json:"stock"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	Product   *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty" validate:"-"`
}

// TotalStock sums stock across a variant set.
func TotalStock(variants []ProductType) int {
	total := 0
	for _, v := range variants {
		total += v.Stock
	}
	return total
}
