package service

import (
	"encoding/json"
	"testing"

	"go-dropship-api/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ledgerFixture struct {
	svc         LedgerService
	txRepo      *mockTransactionRepo
	productRepo *mockProductRepo
	userRepo    *mockUserRepo
	variantID   uuid.UUID
	userID      uuid.UUID
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()

	productRepo := newMockProductRepo()
	txRepo := newMockTransactionRepo()
	userRepo := newMockUserRepo()

	product := &model.Product{Name: "Shirt", Color: "Blue"}
	variants := []model.ProductType{
		{Size: "M", Price: decimal.NewFromInt(50), Stock: 10},
	}
	require.NoError(t, productRepo.CreateWithVariants(product, variants))

	user := &model.User{Role: model.RoleDropshipper, Name: "Dara", OutletName: "Dara Store", Email: "dara@example.com"}
	require.NoError(t, user.SetPassword("secret-password"))
	require.NoError(t, userRepo.Create(user))

	return &ledgerFixture{
		svc:         NewLedgerService(txRepo, productRepo, userRepo, nil),
		txRepo:      txRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		variantID:   variants[0].ID,
		userID:      user.ID,
	}
}

func TestCreateTransactionComputesGrandTotal(t *testing.T) {
	f := newLedgerFixture(t)

	detail, err := f.svc.CreateTransaction(&CreateTransactionRequest{
		ProductTypeID: f.variantID,
		Qty:           3,
		Subtotal:      decimal.NewFromInt(100),
		UserID:        f.userID,
	}, "tester")

	require.NoError(t, err)
	assert.True(t, detail.GrandTotal.Equal(decimal.NewFromInt(300)), "grandtotal = subtotal * qty, got %s", detail.GrandTotal)
	require.NotNil(t, detail.ProductType)
	require.NotNil(t, detail.ProductType.Product, "parent product embedded in the response")
	require.NotNil(t, detail.User)
	assert.Equal(t, "dara@example.com", detail.User.Email)
}

func TestCreateTransactionGrandTotalPairs(t *testing.T) {
	f := newLedgerFixture(t)

	cases := []struct {
		qty      int
		subtotal int64
		want     int64
	}{
		{1, 50, 50},
		{2, 75, 150},
		{7, 13, 91},
	}
	for _, tc := range cases {
		detail, err := f.svc.CreateTransaction(&CreateTransactionRequest{
			ProductTypeID: f.variantID,
			Qty:           tc.qty,
			Subtotal:      decimal.NewFromInt(tc.subtotal),
			UserID:        f.userID,
		}, "tester")
		require.NoError(t, err)
		assert.True(t, detail.GrandTotal.Equal(decimal.NewFromInt(tc.want)))
	}
}

func TestCreateTransactionUnknownVariant(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.svc.CreateTransaction(&CreateTransactionRequest{
		ProductTypeID: uuid.New(),
		Qty:           3,
		Subtotal:      decimal.NewFromInt(100),
		UserID:        f.userID,
	}, "tester")

	assert.ErrorIs(t, err, ErrProductTypeNotFound)
	assert.Empty(t, f.txRepo.transactions, "nothing persisted")
}

func TestCreateTransactionUnknownUser(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.svc.CreateTransaction(&CreateTransactionRequest{
		ProductTypeID: f.variantID,
		Qty:           3,
		Subtotal:      decimal.NewFromInt(100),
		UserID:        uuid.New(),
	}, "tester")

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, f.txRepo.transactions)
}

func TestCreateTransactionValidation(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.svc.CreateTransaction(&CreateTransactionRequest{
		ProductTypeID: f.variantID,
		Qty:           0,
		Subtotal:      decimal.NewFromInt(100),
		UserID:        f.userID,
	}, "tester")
	assert.ErrorIs(t, err, ErrValidation, "qty must be > 0")

	_, err = f.svc.CreateTransaction(&CreateTransactionRequest{
		ProductTypeID: f.variantID,
		Qty:           1,
		Subtotal:      decimal.NewFromInt(-5),
		UserID:        f.userID,
	}, "tester")
	assert.ErrorIs(t, err, ErrValidation, "negative subtotal rejected")
}

func TestDeleteTransactionStaysVisible(t *testing.T) {
	f := newLedgerFixture(t)

	created, err := f.svc.CreateTransaction(&CreateTransactionRequest{
		ProductTypeID: f.variantID,
		Qty:           2,
		Subtotal:      decimal.NewFromInt(40),
		UserID:        f.userID,
	}, "tester")
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteTransaction(created.ID, "remover"))

	// Voided rows remain readable through Get and List.
	got, err := f.svc.GetTransaction(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DeletedAt)
	assert.Equal(t, "remover", got.DeletedBy)

	list, err := f.svc.ListTransactions()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestUpdateTransactionRecomputesGrandTotal(t *testing.T) {
	f := newLedgerFixture(t)

	created, err := f.svc.CreateTransaction(&CreateTransactionRequest{
		ProductTypeID: f.variantID,
		Qty:           2,
		Subtotal:      decimal.NewFromInt(40),
		UserID:        f.userID,
	}, "tester")
	require.NoError(t, err)

	qty := 5
	updated, err := f.svc.UpdateTransaction(created.ID, &UpdateTransactionRequest{
		Qty: &qty,
	}, "editor")
	require.NoError(t, err)
	assert.True(t, updated.GrandTotal.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, "editor", updated.UpdatedBy)
}

func TestUpdateTransactionIgnoresUnknownFields(t *testing.T) {
	f := newLedgerFixture(t)

	created, err := f.svc.CreateTransaction(&CreateTransactionRequest{
		ProductTypeID: f.variantID,
		Qty:           2,
		Subtotal:      decimal.NewFromInt(40),
		UserID:        f.userID,
	}, "tester")
	require.NoError(t, err)

	// The update request type only carries the allow-listed fields; audit
	// fields in a payload never make it into the struct.
	var req UpdateTransactionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"qty": 3, "created_by": "intruder", "deleted_at": "2024-01-01T00:00:00Z"}`), &req))

	updated, err := f.svc.UpdateTransaction(created.ID, &req, "editor")
	require.NoError(t, err)
	assert.Equal(t, "tester", updated.CreatedBy)
	assert.Nil(t, updated.DeletedAt)
	assert.Equal(t, 3, updated.Qty)
}

func TestUpdateTransactionUnknownVariant(t *testing.T) {
	f := newLedgerFixture(t)

	created, err := f.svc.CreateTransaction(&CreateTransactionRequest{
		ProductTypeID: f.variantID,
		Qty:           2,
		Subtotal:      decimal.NewFromInt(40),
		UserID:        f.userID,
	}, "tester")
	require.NoError(t, err)

	missing := uuid.New()
	_, err = f.svc.UpdateTransaction(created.ID, &UpdateTransactionRequest{
		ProductTypeID: &missing,
	}, "editor")
	assert.ErrorIs(t, err, ErrProductTypeNotFound)
}

func TestTransactionResponseHidesPasswordHash(t *testing.T) {
	f := newLedgerFixture(t)

	detail, err := f.svc.CreateTransaction(&CreateTransactionRequest{
		ProductTypeID: f.variantID,
		Qty:           1,
		Subtotal:      decimal.NewFromInt(10),
		UserID:        f.userID,
	}, "tester")
	require.NoError(t, err)

	raw, err := json.Marshal(detail)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "$2a$", "no bcrypt hash leaks into the view")
}

func TestGetTransactionNotFound(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.svc.GetTransaction(uuid.New())
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}
