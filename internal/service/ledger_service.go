package service

import (
	"errors"
	"fmt"
	"time"

	"go-dropship-api/internal/metrics"
	"go-dropship-api/internal/model"
	"go-dropship-api/internal/repository"
	"go-dropship-api/internal/ws"
	"go-dropship-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type LedgerService interface {
	CreateTransaction(req *CreateTransactionRequest, actor string) (*TransactionDetail, error)
	ListTransactions() ([]TransactionDetail, error)
	GetTransaction(id uuid.UUID) (*TransactionDetail, error)
	UpdateTransaction(id uuid.UUID, req *UpdateTransactionRequest, actor string) (*TransactionDetail, error)
	DeleteTransaction(id uuid.UUID, actor string) error
}

// CreateTransactionRequest carries the raw purchase inputs. Subtotal comes
// from the caller and is trusted as-is; it is not recomputed from the
// variant's price.
type CreateTransactionRequest struct {
	ProductTypeID uuid.UUID       `json:"product_type_id" validate:"uuid_required"`
	Qty           int             `json:"qty" validate:"required,gt=0"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	UserID        uuid.UUID       `json:"user_id" validate:"uuid_required"`
}

// UpdateTransactionRequest is the explicit allow-list of mutable fields.
// Anything else in a request body is ignored, audit fields included.
type UpdateTransactionRequest struct {
	ProductTypeID *uuid.UUID       `json:"product_type_id"`
	Qty           *int             `json:"qty" validate:"omitempty,gt=0"`
	Subtotal      *decimal.Decimal `json:"subtotal"`
	UserID        *uuid.UUID       `json:"user_id"`
}

// TransactionDetail joins the transaction with its variant (parent product
// embedded) and the purchasing user, projected without the password hash.
type TransactionDetail struct {
	ID          uuid.UUID           `json:"id"`
	ProductType *model.ProductType  `json:"product_type"`
	Qty         int                 `json:"qty"`
	Subtotal    decimal.Decimal     `json:"subtotal"`
	GrandTotal  decimal.Decimal     `json:"grand_total"`
	User        *model.UserResponse `json:"user"`
	CreatedAt   time.Time           `json:"created_at"`
	CreatedBy   string              `json:"created_by"`
	UpdatedAt   time.Time           `json:"updated_at"`
	UpdatedBy   string              `json:"updated_by"`
	DeletedAt   *time.Time          `json:"deleted_at,omitempty"`
	DeletedBy   string              `json:"deleted_by,omitempty"`
}

type ledgerService struct {
	txRepo      repository.TransactionRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	hub         *ws.Hub
}

func NewLedgerService(txRepo repository.TransactionRepository, productRepo repository.ProductRepository, userRepo repository.UserRepository, hub *ws.Hub) LedgerService {
	return &ledgerService{
		txRepo:      txRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		hub:         hub,
	}
}

func (s *ledgerService) CreateTransaction(req *CreateTransactionRequest, actor string) (*TransactionDetail, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}
	if req.Subtotal.IsNegative() {
		return nil, fmt.Errorf("%w: subtotal must not be negative", ErrValidation)
	}

	// Both lookups run before the write. The referenced rows can disappear
	// in between; at this traffic level the window is accepted.
	variant, err := s.productRepo.FindVariantByID(req.ProductTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductTypeNotFound
		}
		return nil, err
	}

	user, err := s.userRepo.FindByID(req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	transaction := &model.Transaction{
		ProductTypeID: req.ProductTypeID,
		Qty:           req.Qty,
		Subtotal:      req.Subtotal,
		UserID:        req.UserID,
	}
	transaction.GrandTotal = transaction.ComputeGrandTotal()
	transaction.CreatedBy = actor
	transaction.UpdatedBy = actor

	if err := s.txRepo.Create(transaction); err != nil {
		return nil, err
	}
	metrics.RecordOperation("transaction", "create")

	detail := buildTransactionDetail(transaction, variant, user)
	s.hub.Publish("transaction_created", detail)
	return detail, nil
}

// ListTransactions returns every row of the ledger, voided ones included.
func (s *ledgerService) ListTransactions() ([]TransactionDetail, error) {
	transactions, err := s.txRepo.FindAll()
	if err != nil {
		return nil, err
	}

	details := make([]TransactionDetail, 0, len(transactions))
	for i := range transactions {
		details = append(details, *buildTransactionDetail(&transactions[i], transactions[i].ProductType, transactions[i].User))
	}
	return details, nil
}

func (s *ledgerService) GetTransaction(id uuid.UUID) (*TransactionDetail, error) {
	transaction, err := s.txRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return buildTransactionDetail(transaction, transaction.ProductType, transaction.User), nil
}

func (s *ledgerService) UpdateTransaction(id uuid.UUID, req *UpdateTransactionRequest, actor string) (*TransactionDetail, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}

	transaction, err := s.txRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}

	variant := transaction.ProductType
	if req.ProductTypeID != nil {
		variant, err = s.productRepo.FindVariantByID(*req.ProductTypeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProductTypeNotFound
			}
			return nil, err
		}
		transaction.ProductTypeID = *req.ProductTypeID
	}

	user := transaction.User
	if req.UserID != nil {
		user, err = s.userRepo.FindByID(*req.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		transaction.UserID = *req.UserID
	}

	if req.Qty != nil {
		transaction.Qty = *req.Qty
	}
	if req.Subtotal != nil {
		if req.Subtotal.IsNegative() {
			return nil, fmt.Errorf("%w: subtotal must not be negative", ErrValidation)
		}
		transaction.Subtotal = *req.Subtotal
	}
	if req.Qty != nil || req.Subtotal != nil {
		transaction.GrandTotal = transaction.ComputeGrandTotal()
	}
	transaction.UpdatedBy = actor

	// Drop preloaded associations so Save only touches the transaction row.
	transaction.ProductType = nil
	transaction.User = nil

	if err := s.txRepo.Update(transaction); err != nil {
		return nil, err
	}
	metrics.RecordOperation("transaction", "update")

	return buildTransactionDetail(transaction, variant, user), nil
}

// DeleteTransaction voids the row: deleted_at/deleted_by get stamped but the
// record stays persisted and visible to List/Get.
func (s *ledgerService) DeleteTransaction(id uuid.UUID, actor string) error {
	transaction, err := s.txRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTransactionNotFound
		}
		return err
	}

	now := time.Now()
	transaction.DeletedAt = &now
	transaction.DeletedBy = actor
	transaction.ProductType = nil
	transaction.User = nil

	if err := s.txRepo.Update(transaction); err != nil {
		return err
	}
	metrics.RecordOperation("transaction", "delete")
	return nil
}

func buildTransactionDetail(transaction *model.Transaction, variant *model.ProductType, user *model.User) *TransactionDetail {
	detail := &TransactionDetail{
		ID:          transaction.ID,
		ProductType: variant,
		Qty:         transaction.Qty,
		Subtotal:    transaction.Subtotal,
		GrandTotal:  transaction.GrandTotal,
		CreatedAt:   transaction.CreatedAt,
		CreatedBy:   transaction.CreatedBy,
		UpdatedAt:   transaction.UpdatedAt,
		UpdatedBy:   transaction.UpdatedBy,
		DeletedAt:   transaction.DeletedAt,
		DeletedBy:   transaction.DeletedBy,
	}
	if user != nil {
		resp := user.ToResponse()
		detail.User = &resp
	}
	return detail
}
