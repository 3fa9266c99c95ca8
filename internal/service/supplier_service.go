package service

import (
	"errors"
	"fmt"

	"go-dropship-api/internal/metrics"
	"go-dropship-api/internal/model"
	"go-dropship-api/internal/repository"
	"go-dropship-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupplierService interface {
	CreateSupplier(req *SupplierRequest, actor string) (*model.Supplier, error)
	ListSuppliers() ([]model.Supplier, error)
	GetSupplier(id uuid.UUID) (*model.Supplier, error)
	UpdateSupplier(id uuid.UUID, req *SupplierRequest, actor string) (*model.Supplier, error)
	DeleteSupplier(id uuid.UUID) error
}

type SupplierRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Address string `json:"address" validate:"required,max=255"`
	Phone   string `json:"phone" validate:"required,max=20"`
	Email   string `json:"email" validate:"required,email,max=255"`
}

type supplierService struct {
	supplierRepo repository.SupplierRepository
}

func NewSupplierService(supplierRepo repository.SupplierRepository) SupplierService {
	return &supplierService{supplierRepo: supplierRepo}
}

func (s *supplierService) CreateSupplier(req *SupplierRequest, actor string) (*model.Supplier, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}

	supplier := &model.Supplier{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
	}
	supplier.CreatedBy = actor
	supplier.UpdatedBy = actor

	if err := s.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	metrics.RecordOperation("supplier", "create")
	return supplier, nil
}

func (s *supplierService) ListSuppliers() ([]model.Supplier, error) {
	return s.supplierRepo.FindAll()
}

func (s *supplierService) GetSupplier(id uuid.UUID) (*model.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}
	return supplier, nil
}

// UpdateSupplier overwrites every field and stamps updated_by.
func (s *supplierService) UpdateSupplier(id uuid.UUID, req *SupplierRequest, actor string) (*model.Supplier, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}

	supplier, err := s.supplierRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}

	supplier.Name = req.Name
	supplier.Address = req.Address
	supplier.Phone = req.Phone
	supplier.Email = req.Email
	supplier.UpdatedBy = actor

	if err := s.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}
	metrics.RecordOperation("supplier", "update")
	return supplier, nil
}

func (s *supplierService) DeleteSupplier(id uuid.UUID) error {
	if _, err := s.supplierRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSupplierNotFound
		}
		return err
	}

	if err := s.supplierRepo.Delete(id); err != nil {
		return err
	}
	metrics.RecordOperation("supplier", "delete")
	return nil
}
