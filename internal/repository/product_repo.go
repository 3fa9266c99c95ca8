package repository

import (
	"time"

	"go-dropship-api/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductRepository interface {
	CreateWithVariants(product *model.Product, variants []model.ProductType) error
	FindAll() ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindVariants(productID uuid.UUID) ([]model.ProductType, error)
	FindVariantByID(id uuid.UUID) (*model.ProductType, error)
	ReplaceWithVariants(product *model.Product, variants []model.ProductType) error
	DeleteWithVariants(id uuid.UUID) error
	Summary(since time.Time) (*DashboardSummary, error)
}

// DashboardSummary is the flat rollup returned by /dashboard/summary.
type DashboardSummary struct {
	TotalProducts  int64           `json:"total_products"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	ProductsToday  int64           `json:"products_today"`
	CompletedToday int64           `json:"completed_today"`
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

// CreateWithVariants writes the product and its variant set in one transaction
// so a reader never observes the product without its variants.
func (r *productRepo) CreateWithVariants(product *model.Product, variants []model.ProductType) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return err
		}
		for i := range variants {
			variants[i].ProductID = product.ID
		}
		if len(variants) > 0 {
			if err := tx.Create(&variants).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Supplier").Order("created_at DESC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Supplier").First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindVariants(productID uuid.UUID) ([]model.ProductType, error) {
	var variants []model.ProductType
	err := r.db.Where("product_id = ?", productID).Order("created_at ASC").Find(&variants).Error
	return variants, err
}

func (r *productRepo) FindVariantByID(id uuid.UUID) (*model.ProductType, error) {
	var variant model.ProductType
	err := r.db.Preload("Product").Preload("Product.Supplier").First(&variant, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &variant, nil
}

// ReplaceWithVariants saves the product scalars, deletes every existing variant
// row for the product and inserts the new set from scratch. Replace semantics,
// not merge, and atomic: the delete+insert runs inside one transaction.
func (r *productRepo) ReplaceWithVariants(product *model.Product, variants []model.ProductType) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(product).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.ProductType{}, "product_id = ?", product.ID).Error; err != nil {
			return err
		}
		for i := range variants {
			variants[i].ProductID = product.ID
		}
		if len(variants) > 0 {
			if err := tx.Create(&variants).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteWithVariants hard-deletes the product and cascades to its variant rows.
func (r *productRepo) DeleteWithVariants(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.ProductType{}, "product_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Product{}, "id = ?", id).Error
	})
}

// Summary computes the dashboard rollup in one pass over the catalog tables.
// Every metric falls back to zero on empty tables.
func (r *productRepo) Summary(since time.Time) (*DashboardSummary, error) {
	var summary DashboardSummary

	if err := r.db.Model(&model.Product{}).Count(&summary.TotalProducts).Error; err != nil {
		return nil, err
	}

	// Prices live on the variant rows in this schema; the rollup sums them all.
	if err := r.db.Model(&model.ProductType{}).
		Select("COALESCE(SUM(price), 0)").
		Scan(&summary.TotalPrice).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.Product{}).
		Where("created_at >= ?", since).
		Count(&summary.ProductsToday).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.Product{}).
		Where("created_at >= ? AND status = ?", since, "Selesai").
		Count(&summary.CompletedToday).Error; err != nil {
		return nil, err
	}

	return &summary, nil
}
