package repo

import (
	"context"
	"database/sql"

	"tienda/internal/errs"
	"tienda/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type RepairRepo struct {
	db *sqlx.DB
}

func NewRepairRepo(db *sqlx.DB) *RepairRepo {
	return &RepairRepo{db: db}
}

func (r *RepairRepo) CreateRequest(ctx context.Context, req *models.RepairRequest) error {
	req.TrackingCode = uuid.NewString()
	req.Status = models.RepairStatusReceived

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO repair_requests
			(tracking_code, customer_name, email, phone, device, issue_description, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		req.TrackingCode, req.CustomerName, req.Email, req.Phone,
		req.Device, req.Issue, req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return errors.Wrap(err, "insert repair request")
	}
	return nil
}

func (r *RepairRepo) RequestByTrackingCode(ctx context.Context, code string) (*models.RepairRequest, error) {
	var req models.RepairRequest
	err := r.db.GetContext(ctx, &req, `
		SELECT id, tracking_code, customer_name, email, phone, device,
			issue_description, status, created_at, updated_at
		FROM repair_requests
		WHERE tracking_code = $1`, code)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.ErrRepairNotFound
		}
		return nil, errors.Wrap(err, "select repair request")
	}
	return &req, nil
}

func (r *RepairRepo) RequestByID(ctx context.Context, requestID int) (*models.RepairRequest, error) {
	var req models.RepairRequest
	err := r.db.GetContext(ctx, &req, `
		SELECT id, tracking_code, customer_name, email, phone, device,
			issue_description, status, created_at, updated_at
		FROM repair_requests
		WHERE id = $1`, requestID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.ErrRepairNotFound
		}
		return nil, errors.Wrap(err, "select repair request")
	}
	return &req, nil
}

func (r *RepairRepo) AllRequests(ctx context.Context) ([]models.RepairRequest, error) {
	requests := []models.RepairRequest{}
	err := r.db.SelectContext(ctx, &requests, `
		SELECT id, tracking_code, customer_name, email, phone, device,
			issue_description, status, created_at, updated_at
		FROM repair_requests
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "select repair requests")
	}
	return requests, nil
}

func (r *RepairRepo) UpdateStatus(ctx context.Context, requestID int, status models.RepairStatus) error {
	if !models.ValidRepairStatus(status) {
		return errors.Wrapf(errs.ErrInvalidStatus, "status %q", status)
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE repair_requests
		SET status = $2, updated_at = now()
		WHERE id = $1`, requestID, status,
	)
	if err != nil {
		return errors.Wrap(err, "update repair status")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if affected == 0 {
		return errs.ErrRepairNotFound
	}
	return nil
}

func (r *RepairRepo) DeleteRequest(ctx context.Context, requestID int) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM repair_requests WHERE id = $1`, requestID,
	)
	if err != nil {
		return errors.Wrap(err, "delete repair request")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if affected == 0 {
		return errs.ErrRepairNotFound
	}
	return nil
}
