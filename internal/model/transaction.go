package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction records a dropshipper purchase against a product variant.
// GrandTotal is computed once at write time (subtotal * qty) and stored;
// reads never re-derive it. Soft-deleted rows keep deleted_at/deleted_by set
// but stay visible to List/Get (voided, not hidden).
type Transaction struct {
	BaseModel
	ProductTypeID uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_type_id" validate:"uuid_required"`
	ProductType   *ProductType    `gorm:"foreignKey:ProductTypeID" json:"product_type,omitempty" validate:"-"`
	Qty           int             `gorm:"not null" json:"qty" validate:"required,gt=0"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	GrandTotal    decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"grand_total"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id" validate:"uuid_required"`
	User          *User           `gorm:"foreignKey:UserID" json:"-" validate:"-"`
}

// ComputeGrandTotal derives subtotal * qty.
func (t *Transaction) ComputeGrandTotal() decimal.Decimal {
	return t.Subtotal.Mul(decimal.NewFromInt(int64(t.Qty)))
}
