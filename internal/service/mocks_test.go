package service

import (
	"time"

	"go-dropship-api/internal/model"
	"go-dropship-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes. They assign UUIDs themselves since the gorm
// BeforeCreate hook never runs here.

type mockProductRepo struct {
	products  map[uuid.UUID]*model.Product
	variants  map[uuid.UUID]*model.ProductType
	summary   repository.DashboardSummary
	lastSince time.Time
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{
		products: make(map[uuid.UUID]*model.Product),
		variants: make(map[uuid.UUID]*model.ProductType),
	}
}

func (m *mockProductRepo) CreateWithVariants(product *model.Product, variants []model.ProductType) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	product.CreatedAt = time.Now()
	stored := *product
	m.products[product.ID] = &stored
	for i := range variants {
		if variants[i].ID == uuid.Nil {
			variants[i].ID = uuid.New()
		}
		variants[i].ProductID = product.ID
		v := variants[i]
		m.variants[v.ID] = &v
	}
	return nil
}

func (m *mockProductRepo) FindAll() ([]model.Product, error) {
	out := make([]model.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockProductRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *p
	return &found, nil
}

func (m *mockProductRepo) FindVariants(productID uuid.UUID) ([]model.ProductType, error) {
	out := []model.ProductType{}
	for _, v := range m.variants {
		if v.ProductID == productID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (m *mockProductRepo) FindVariantByID(id uuid.UUID) (*model.ProductType, error) {
	v, ok := m.variants[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *v
	if p, ok := m.products[v.ProductID]; ok {
		parent := *p
		found.Product = &parent
	}
	return &found, nil
}

func (m *mockProductRepo) ReplaceWithVariants(product *model.Product, variants []model.ProductType) error {
	stored := *product
	m.products[product.ID] = &stored
	for id, v := range m.variants {
		if v.ProductID == product.ID {
			delete(m.variants, id)
		}
	}
	for i := range variants {
		if variants[i].ID == uuid.Nil {
			variants[i].ID = uuid.New()
		}
		variants[i].ProductID = product.ID
		v := variants[i]
		m.variants[v.ID] = &v
	}
	return nil
}

func (m *mockProductRepo) DeleteWithVariants(id uuid.UUID) error {
	delete(m.products, id)
	for vid, v := range m.variants {
		if v.ProductID == id {
			delete(m.variants, vid)
		}
	}
	return nil
}

func (m *mockProductRepo) Summary(since time.Time) (*repository.DashboardSummary, error) {
	m.lastSince = since
	summary := m.summary
	return &summary, nil
}

type mockSupplierRepo struct {
	suppliers map[uuid.UUID]*model.Supplier
}

func newMockSupplierRepo() *mockSupplierRepo {
	return &mockSupplierRepo{suppliers: make(map[uuid.UUID]*model.Supplier)}
}

func (m *mockSupplierRepo) Create(supplier *model.Supplier) error {
	if supplier.ID == uuid.Nil {
		supplier.ID = uuid.New()
	}
	stored := *supplier
	m.suppliers[supplier.ID] = &stored
	return nil
}

func (m *mockSupplierRepo) FindAll() ([]model.Supplier, error) {
	out := make([]model.Supplier, 0, len(m.suppliers))
	for _, s := range m.suppliers {
		out = append(out, *s)
	}
	return out, nil
}

func (m *mockSupplierRepo) FindByID(id uuid.UUID) (*model.Supplier, error) {
	s, ok := m.suppliers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *s
	return &found, nil
}

func (m *mockSupplierRepo) Update(supplier *model.Supplier) error {
	stored := *supplier
	m.suppliers[supplier.ID] = &stored
	return nil
}

func (m *mockSupplierRepo) Delete(id uuid.UUID) error {
	delete(m.suppliers, id)
	return nil
}

type mockTransactionRepo struct {
	transactions map[uuid.UUID]*model.Transaction
}

func newMockTransactionRepo() *mockTransactionRepo {
	return &mockTransactionRepo{transactions: make(map[uuid.UUID]*model.Transaction)}
}

func (m *mockTransactionRepo) Create(transaction *model.Transaction) error {
	if transaction.ID == uuid.Nil {
		transaction.ID = uuid.New()
	}
	transaction.CreatedAt = time.Now()
	stored := *transaction
	m.transactions[transaction.ID] = &stored
	return nil
}

func (m *mockTransactionRepo) FindAll() ([]model.Transaction, error) {
	out := make([]model.Transaction, 0, len(m.transactions))
	for _, t := range m.transactions {
		out = append(out, *t)
	}
	return out, nil
}

func (m *mockTransactionRepo) FindByID(id uuid.UUID) (*model.Transaction, error) {
	t, ok := m.transactions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *t
	return &found, nil
}

func (m *mockTransactionRepo) Update(transaction *model.Transaction) error {
	stored := *transaction
	m.transactions[transaction.ID] = &stored
	return nil
}

type mockUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (m *mockUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *u
	return &found, nil
}

func (m *mockUserRepo) FindAll() ([]model.User, error) {
	out := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *mockUserRepo) Create(user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *mockUserRepo) Update(user *model.User) error {
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *mockUserRepo) Delete(id uuid.UUID) error {
	delete(m.users, id)
	return nil
}
