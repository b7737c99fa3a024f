package errs

import (
	"errors"

	"github.com/lib/pq"
)

var (
	ErrProductNotFound       = errors.New("product not found")
	ErrProductInactive       = errors.New("product is not active")
	ErrInsufficientStock     = errors.New("insufficient stock")
	ErrOrderNotFound         = errors.New("order not found")
	ErrPaymentMethodNotFound = errors.New("payment method not found")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrRepairNotFound        = errors.New("repair request not found")
	ErrDuplicate             = errors.New("duplicate record")
	ErrInvalidStatus         = errors.New("invalid status")
)

const uniqueViolation = "23505"

// IsUniqueViolation распознаёт нарушение уникального индекса в Postgres.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return false
}
