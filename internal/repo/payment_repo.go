package repo

import (
	"context"

	"tienda/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type PaymentMethodRepo struct {
	db *sqlx.DB
}

func NewPaymentMethodRepo(db *sqlx.DB) *PaymentMethodRepo {
	return &PaymentMethodRepo{db: db}
}

func (r *PaymentMethodRepo) ActiveMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	methods := []models.PaymentMethod{}
	err := r.db.SelectContext(ctx, &methods, `
		SELECT id, name, active
		FROM payment_methods
		WHERE active = true
		ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "select payment methods")
	}
	return methods, nil
}
