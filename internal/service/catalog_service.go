package service

import (
	"errors"
	"fmt"

	"go-dropship-api/internal/metrics"
	"go-dropship-api/internal/model"
	"go-dropship-api/internal/repository"
	"go-dropship-api/internal/ws"
	"go-dropship-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CatalogService interface {
	CreateProduct(req *CreateProductRequest, actor string) (*ProductDetail, error)
	ListProducts() ([]ProductDetail, error)
	GetProduct(id uuid.UUID) (*ProductDetail, error)
	UpdateProduct(id uuid.UUID, req *UpdateProductRequest, actor string) (*ProductDetail, error)
	DeleteProduct(id uuid.UUID, actor string) error
}

// VariantInput is a single size/price/stock entry in a create request.
// Stock only has to be an integer here; the update schema is stricter.
type VariantInput struct {
	Size  string          `json:"size" validate:"required,max=255"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock" validate:"gte=0"`
}

// UpdateVariantInput requires stock > 0, matching the asymmetric update schema.
type UpdateVariantInput struct {
	Size  string          `json:"size" validate:"required,max=255"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock" validate:"gt=0"`
}

type CreateProductRequest struct {
	Name       string         `json:"name" validate:"required,max=255"`
	Color      string         `json:"color" validate:"required,max=255"`
	SupplierID *uuid.UUID     `json:"supplier_id"`
	Images     []string       `json:"images"`
	Variants   []VariantInput `json:"product_types" validate:"dive"`
}

type UpdateProductRequest struct {
	Name       string               `json:"name" validate:"required,max=255"`
	Color      string               `json:"color" validate:"required,max=255"`
	SupplierID uuid.UUID            `json:"supplier_id" validate:"uuid_required"`
	Images     []string             `json:"images"`
	Variants   []UpdateVariantInput `json:"product_types" validate:"dive"`
}

// VariantDetail is the variant projection inside product responses.
type VariantDetail struct {
	ID    uuid.UUID       `json:"id"`
	Size  string          `json:"size"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

// ProductDetail is the denormalized product shape: scalars, resolved supplier,
// the current variant set and the aggregate stock across it.
type ProductDetail struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Color      string          `json:"color"`
	Images     []string        `json:"images"`
	Supplier   *model.Supplier `json:"supplier"`
	TotalStock int             `json:"total_stock"`
	Variants   []VariantDetail `json:"product_types"`
}

type catalogService struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	hub          *ws.Hub
}

func NewCatalogService(productRepo repository.ProductRepository, supplierRepo repository.SupplierRepository, hub *ws.Hub) CatalogService {
	return &catalogService{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		hub:          hub,
	}
}

func (s *catalogService) CreateProduct(req *CreateProductRequest, actor string) (*ProductDetail, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}
	for _, v := range req.Variants {
		if !v.Price.IsPositive() {
			return nil, fmt.Errorf("%w: variant price must be positive", ErrValidation)
		}
	}

	// Supplier is optional, but a given id has to resolve.
	var supplier *model.Supplier
	if req.SupplierID != nil {
		found, err := s.supplierRepo.FindByID(*req.SupplierID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrSupplierNotFound
			}
			return nil, err
		}
		supplier = found
	}

	product := &model.Product{
		Name:       req.Name,
		Color:      req.Color,
		SupplierID: req.SupplierID,
		Images:     req.Images,
	}
	product.CreatedBy = actor
	product.UpdatedBy = actor

	variants := make([]model.ProductType, len(req.Variants))
	for i, v := range req.Variants {
		variants[i] = model.ProductType{
			Size:  v.Size,
			Price: v.Price,
			Stock: v.Stock,
		}
		variants[i].CreatedBy = actor
		variants[i].UpdatedBy = actor
	}

	if err := s.productRepo.CreateWithVariants(product, variants); err != nil {
		return nil, err
	}
	metrics.RecordOperation("product", "create")

	detail := buildProductDetail(product, supplier, variants)
	s.hub.Publish("product_created", detail)
	return detail, nil
}

// ListProducts fans out one variant lookup per product. Fine for a small
// retail catalog; not a single aggregation query.
func (s *catalogService) ListProducts() ([]ProductDetail, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}

	details := make([]ProductDetail, 0, len(products))
	for i := range products {
		variants, err := s.productRepo.FindVariants(products[i].ID)
		if err != nil {
			return nil, err
		}
		details = append(details, *buildProductDetail(&products[i], products[i].Supplier, variants))
	}
	return details, nil
}

func (s *catalogService) GetProduct(id uuid.UUID) (*ProductDetail, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	variants, err := s.productRepo.FindVariants(product.ID)
	if err != nil {
		return nil, err
	}
	return buildProductDetail(product, product.Supplier, variants), nil
}

// UpdateProduct overwrites the product scalars and replaces the whole variant
// set with the request's list. Nothing from the prior set survives.
func (s *catalogService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest, actor string) (*ProductDetail, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}
	for _, v := range req.Variants {
		if !v.Price.IsPositive() {
			return nil, fmt.Errorf("%w: variant price must be positive", ErrValidation)
		}
	}

	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	supplier, err := s.supplierRepo.FindByID(req.SupplierID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}

	product.Name = req.Name
	product.Color = req.Color
	product.SupplierID = &req.SupplierID
	product.Images = req.Images
	product.UpdatedBy = actor
	product.Supplier = nil // avoid re-saving the association

	variants := make([]model.ProductType, len(req.Variants))
	for i, v := range req.Variants {
		variants[i] = model.ProductType{
			Size:  v.Size,
			Price: v.Price,
			Stock: v.Stock,
		}
		variants[i].CreatedBy = actor
		variants[i].UpdatedBy = actor
	}

	if err := s.productRepo.ReplaceWithVariants(product, variants); err != nil {
		return nil, err
	}
	metrics.RecordOperation("product", "update")

	detail := buildProductDetail(product, supplier, variants)
	s.hub.Publish("product_updated", detail)
	return detail, nil
}

func (s *catalogService) DeleteProduct(id uuid.UUID, actor string) error {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	if err := s.productRepo.DeleteWithVariants(product.ID); err != nil {
		return err
	}
	metrics.RecordOperation("product", "delete")

	s.hub.Publish("product_deleted", map[string]interface{}{
		"id":         product.ID,
		"name":       product.Name,
		"deleted_by": actor,
	})
	return nil
}

func buildProductDetail(product *model.Product, supplier *model.Supplier, variants []model.ProductType) *ProductDetail {
	detail := &ProductDetail{
		ID:         product.ID,
		Name:       product.Name,
		Color:      product.Color,
		Images:     product.Images,
		Supplier:   supplier,
		TotalStock: model.TotalStock(variants),
		Variants:   make([]VariantDetail, len(variants)),
	}
	for i, v := range variants {
		detail.Variants[i] = VariantDetail{
			ID:    v.ID,
			Size:  v.Size,
			Price: v.Price,
			Stock: v.Stock,
		}
	}
	return detail
}
