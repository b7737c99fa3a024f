package repo

import (
	"context"
	"database/sql"

	"tienda/internal/errs"
	"tienda/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type UserRepo struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (name, email, password_hash, phone, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		user.Name, user.Email, user.PasswordHash, user.Phone, user.Role,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if errs.IsUniqueViolation(err) {
			return errs.ErrDuplicate
		}
		return errors.Wrap(err, "insert user")
	}
	return nil
}

func (r *UserRepo) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `
		SELECT id, name, email, password_hash, phone, role, created_at
		FROM users
		WHERE email = $1`, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "select user by email")
	}
	return &user, nil
}

func (r *UserRepo) UserByID(ctx context.Context, userID int64) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `
		SELECT id, name, email, password_hash, phone, role, created_at
		FROM users
		WHERE id = $1`, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "select user by id")
	}
	return &user, nil
}

func (r *UserRepo) AllUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	err := r.db.SelectContext(ctx, &users, `
		SELECT id, name, email, password_hash, phone, role, created_at
		FROM users
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "select users")
	}
	return users, nil
}

func (r *UserRepo) DeleteUser(ctx context.Context, userID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return errors.Wrap(err, "delete user")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if affected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}
