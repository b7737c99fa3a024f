package repo

import (
	"context"

	"tienda/internal/errs"
	"tienda/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type CategoryRepo struct {
	db *sqlx.DB
}

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

func (r *CategoryRepo) CreateCategory(ctx context.Context, category *models.Category) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO categories (name, description, active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		category.Name, category.Description, category.IsActive,
	).Scan(&category.ID, &category.CreatedAt)
	if err != nil {
		if errs.IsUniqueViolation(err) {
			return errs.ErrDuplicate
		}
		return errors.Wrap(err, "insert category")
	}
	return nil
}

func (r *CategoryRepo) ActiveCategories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	err := r.db.SelectContext(ctx, &categories, `
		SELECT id, name, description, active, created_at
		FROM categories
		WHERE active = true
		ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "select categories")
	}
	return categories, nil
}

func (r *CategoryRepo) UpdateCategory(ctx context.Context, category *models.Category) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE categories
		SET name = $2, description = $3, active = $4
		WHERE id = $1`,
		category.ID, category.Name, category.Description, category.IsActive,
	)
	if err != nil {
		return errors.Wrap(err, "update category")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if affected == 0 {
		return errs.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepo) DeactivateCategory(ctx context.Context, categoryID int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE categories SET active = false WHERE id = $1`, categoryID,
	)
	if err != nil {
		return errors.Wrap(err, "deactivate category")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if affected == 0 {
		return errs.ErrCategoryNotFound
	}
	return nil
}
