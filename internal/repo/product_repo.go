package repo

import (
	"context"
	"database/sql"

	"tienda/internal/errs"
	"tienda/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type ProductRepo struct {
	db *sqlx.DB
}

func NewProductRepo(db *sqlx.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

func (r *ProductRepo) CreateProduct(ctx context.Context, product *models.Product) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (name, description, unit_price, stock, category_id, image_url, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		product.Name, product.Description, product.Price, product.Stock,
		product.CategoryID, product.ImageURL, product.IsActive,
	).Scan(&product.ID, &product.CreatedAt)
	if err != nil {
		if errs.IsUniqueViolation(err) {
			return errs.ErrDuplicate
		}
		return errors.Wrap(err, "insert product")
	}
	return nil
}

func (r *ProductRepo) ProductByID(ctx context.Context, productID int) (*models.Product, error) {
	var product models.Product
	err := r.db.GetContext(ctx, &product, `
		SELECT id, name, description, unit_price, stock, category_id, image_url, active, created_at
		FROM products
		WHERE id = $1`, productID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.ErrProductNotFound
		}
		return nil, errors.Wrap(err, "select product")
	}
	return &product, nil
}

func (r *ProductRepo) ActiveProducts(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	err := r.db.SelectContext(ctx, &products, `
		SELECT id, name, description, unit_price, stock, category_id, image_url, active, created_at
		FROM products
		WHERE active = true
		ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "select active products")
	}
	return products, nil
}

func (r *ProductRepo) AllProducts(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	err := r.db.SelectContext(ctx, &products, `
		SELECT id, name, description, unit_price, stock, category_id, image_url, active, created_at
		FROM products
		ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "select products")
	}
	return products, nil
}

func (r *ProductRepo) ProductsByCategory(ctx context.Context, categoryID int) ([]models.Product, error) {
	products := []models.Product{}
	err := r.db.SelectContext(ctx, &products, `
		SELECT id, name, description, unit_price, stock, category_id, image_url, active, created_at
		FROM products
		WHERE active = true AND category_id = $1
		ORDER BY id`, categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "select products by category")
	}
	return products, nil
}

func (r *ProductRepo) UpdateProduct(ctx context.Context, product *models.Product) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name = $2, description = $3, unit_price = $4, stock = $5,
			category_id = $6, image_url = $7, active = $8
		WHERE id = $1`,
		product.ID, product.Name, product.Description, product.Price,
		product.Stock, product.CategoryID, product.ImageURL, product.IsActive,
	)
	if err != nil {
		return errors.Wrap(err, "update product")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if affected == 0 {
		return errs.ErrProductNotFound
	}
	return nil
}

// DeactivateProduct прячет товар из каталога, не трогая историю заказов.
func (r *ProductRepo) DeactivateProduct(ctx context.Context, productID int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET active = false WHERE id = $1`, productID,
	)
	if err != nil {
		return errors.Wrap(err, "deactivate product")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if affected == 0 {
		return errs.ErrProductNotFound
	}
	return nil
}
