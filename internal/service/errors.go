package service

import "errors"

var (
	ErrValidation = errors.New("validation failed")

	ErrProductNotFound     = errors.New("product not found")
	ErrProductTypeNotFound = errors.New("product type not found")
	ErrSupplierNotFound    = errors.New("supplier not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrTransactionNotFound = errors.New("transaction not found")

	ErrEmailUsed          = errors.New("email has been used")
	ErrInvalidCredentials = errors.New("authentication failed, please ensure your email and password are correct")
)

// IsNotFound reports whether err maps to the 404 branch of the error taxonomy.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrProductTypeNotFound) ||
		errors.Is(err, ErrSupplierNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}
