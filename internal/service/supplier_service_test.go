package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupplierCRUD(t *testing.T) {
	repo := newMockSupplierRepo()
	svc := NewSupplierService(repo)

	created, err := svc.CreateSupplier(&SupplierRequest{
		Name:    "PT Sumber Jaya",
		Address: "Jl. Merdeka 1",
		Phone:   "08123456789",
		Email:   "contact@sumberjaya.id",
	}, "admin")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "admin", created.CreatedBy)

	got, err := svc.GetSupplier(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "PT Sumber Jaya", got.Name)

	updated, err := svc.UpdateSupplier(created.ID, &SupplierRequest{
		Name:    "PT Sumber Jaya Baru",
		Address: "Jl. Merdeka 2",
		Phone:   "08123456780",
		Email:   "contact@sumberjaya.id",
	}, "admin2")
	require.NoError(t, err)
	assert.Equal(t, "PT Sumber Jaya Baru", updated.Name)
	assert.Equal(t, "admin2", updated.UpdatedBy)

	list, err := svc.ListSuppliers()
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.DeleteSupplier(created.ID))
	_, err = svc.GetSupplier(created.ID)
	assert.ErrorIs(t, err, ErrSupplierNotFound)
}

func TestCreateSupplierValidation(t *testing.T) {
	svc := NewSupplierService(newMockSupplierRepo())

	_, err := svc.CreateSupplier(&SupplierRequest{
		Name:    "No Contact Info",
		Address: "Jl. Merdeka 1",
	}, "admin")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateSupplier(&SupplierRequest{
		Name:    "Bad Email",
		Address: "Jl. Merdeka 1",
		Phone:   "08123456789",
		Email:   "not-an-email",
	}, "admin")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSupplierNotFound(t *testing.T) {
	svc := NewSupplierService(newMockSupplierRepo())
	missing := uuid.New()

	_, err := svc.GetSupplier(missing)
	assert.ErrorIs(t, err, ErrSupplierNotFound)

	_, err = svc.UpdateSupplier(missing, &SupplierRequest{
		Name:    "Ghost",
		Address: "Nowhere",
		Phone:   "0",
		Email:   "ghost@example.com",
	}, "admin")
	assert.ErrorIs(t, err, ErrSupplierNotFound)

	assert.ErrorIs(t, svc.DeleteSupplier(missing), ErrSupplierNotFound)
}
