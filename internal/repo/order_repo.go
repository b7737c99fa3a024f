package repo

import (
	"context"
	"database/sql"
	"sort"

	"tienda/internal/errs"
	"tienda/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type OrderRepo struct {
	db *sqlx.DB
}

func NewOrderRepo(db *sqlx.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

type OrderLineInput struct {
	ProductID int
	Quantity  int
}

type CreateOrderInput struct {
	UserID          *int64
	PaymentMethodID int
	ShippingAddress string
	Lines           []OrderLineInput
}

// CreateOrder выполняет всё оформление заказа в одной транзакции:
// блокирует строки товаров (FOR UPDATE), проверяет остатки, фиксирует цены
// на момент покупки, создаёт заказ с позициями и списывает остатки.
// Любая ошибка откатывает всё целиком.
func (r *OrderRepo) CreateOrder(ctx context.Context, in CreateOrderInput) (*models.OrderWithItems, error) {
	// блокируем товары по возрастанию id, иначе два встречных
	// заказа могут взаимно заблокироваться
	lines := make([]OrderLineInput, len(in.Lines))
	copy(lines, in.Lines)
	sort.Slice(lines, func(i, j int) bool { return lines[i].ProductID < lines[j].ProductID })

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "begin tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var methodExists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM payment_methods WHERE id = $1 AND active = true)`,
		in.PaymentMethodID,
	).Scan(&methodExists)
	if err != nil {
		return nil, errors.Wrap(err, "check payment method")
	}
	if !methodExists {
		return nil, errs.ErrPaymentMethodNotFound
	}

	lockQuery := `
		SELECT unit_price, stock, active
		FROM products
		WHERE id = $1
		FOR UPDATE`

	var total float64
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		var (
			price  float64
			stock  int
			active bool
		)
		err := tx.QueryRowContext(ctx, lockQuery, line.ProductID).Scan(&price, &stock, &active)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, errors.Wrapf(errs.ErrProductNotFound, "product %d", line.ProductID)
			}
			return nil, errors.Wrap(err, "lock product row")
		}
		if !active {
			return nil, errors.Wrapf(errs.ErrProductInactive, "product %d", line.ProductID)
		}
		if line.Quantity > stock {
			return nil, errors.Wrapf(errs.ErrInsufficientStock,
				"product %d: requested %d, available %d", line.ProductID, line.Quantity, stock)
		}

		subtotal := price * float64(line.Quantity)
		total += subtotal
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: price,
			Subtotal:  subtotal,
		})
	}

	order := models.Order{
		UserID:          in.UserID,
		PaymentMethodID: in.PaymentMethodID,
		ShippingAddress: in.ShippingAddress,
		Status:          models.OrderStatusPending,
		Total:           total,
	}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, payment_method_id, shipping_address, status, total)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		order.UserID, order.PaymentMethodID, order.ShippingAddress, order.Status, order.Total,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "insert order")
	}

	for i := range items {
		items[i].OrderID = order.ID
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, unit_price, subtotal)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			items[i].OrderID, items[i].ProductID, items[i].Quantity,
			items[i].UnitPrice, items[i].Subtotal,
		).Scan(&items[i].ID)
		if err != nil {
			return nil, errors.Wrap(err, "insert order item")
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE products SET stock = stock - $1 WHERE id = $2`,
			items[i].Quantity, items[i].ProductID,
		)
		if err != nil {
			return nil, errors.Wrap(err, "decrement stock")
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "commit order")
	}

	return &models.OrderWithItems{Order: order, Items: items}, nil
}

// DeleteOrder удаляет заказ вместе с позициями и возвращает списанные
// остатки на склад, всё в одной транзакции.
func (r *OrderRepo) DeleteOrder(ctx context.Context, orderID int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var id int
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM orders WHERE id = $1 FOR UPDATE`, orderID,
	).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return errs.ErrOrderNotFound
		}
		return errors.Wrap(err, "lock order row")
	}

	rows, err := tx.QueryContext(ctx,
		`SELECT product_id, quantity FROM order_items WHERE order_id = $1`, orderID,
	)
	if err != nil {
		return errors.Wrap(err, "read order items")
	}

	type restore struct {
		productID int
		quantity  int
	}
	var restores []restore
	for rows.Next() {
		var rs restore
		if err := rows.Scan(&rs.productID, &rs.quantity); err != nil {
			rows.Close()
			return errors.Wrap(err, "scan order item")
		}
		restores = append(restores, rs)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return errors.Wrap(err, "iterate order items")
	}

	for _, rs := range restores {
		_, err = tx.ExecContext(ctx,
			`UPDATE products SET stock = stock + $1 WHERE id = $2`,
			rs.quantity, rs.productID,
		)
		if err != nil {
			return errors.Wrap(err, "restore stock")
		}
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = $1`, orderID); err != nil {
		return errors.Wrap(err, "delete order items")
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, orderID); err != nil {
		return errors.Wrap(err, "delete order")
	}

	return errors.Wrap(tx.Commit(), "commit delete")
}

// UpdateStatus меняет статус заказа, остатки не трогает.
func (r *OrderRepo) UpdateStatus(ctx context.Context, orderID int, status models.OrderStatus) error {
	if !models.ValidOrderStatus(status) {
		return errors.Wrapf(errs.ErrInvalidStatus, "status %q", status)
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = $2 WHERE id = $1`, orderID, status,
	)
	if err != nil {
		return errors.Wrap(err, "update order status")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if affected == 0 {
		return errs.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepo) OrderByID(ctx context.Context, orderID int) (*models.OrderWithItems, error) {
	var order models.Order
	err := r.db.GetContext(ctx, &order, `
		SELECT id, user_id, payment_method_id, shipping_address, status, total, created_at
		FROM orders
		WHERE id = $1`, orderID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.ErrOrderNotFound
		}
		return nil, errors.Wrap(err, "select order")
	}

	items, err := r.OrderItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &models.OrderWithItems{Order: order, Items: items}, nil
}

func (r *OrderRepo) OrderItems(ctx context.Context, orderID int) ([]models.OrderItem, error) {
	items := []models.OrderItem{}
	err := r.db.SelectContext(ctx, &items, `
		SELECT id, order_id, product_id, quantity, unit_price, subtotal
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "select order items")
	}
	return items, nil
}

func (r *OrderRepo) AllOrders(ctx context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	err := r.db.SelectContext(ctx, &orders, `
		SELECT id, user_id, payment_method_id, shipping_address, status, total, created_at
		FROM orders
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "select orders")
	}
	return orders, nil
}

func (r *OrderRepo) OrdersByUser(ctx context.Context, userID int64) ([]models.Order, error) {
	orders := []models.Order{}
	err := r.db.SelectContext(ctx, &orders, `
		SELECT id, user_id, payment_method_id, shipping_address, status, total, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, errors.Wrap(err, "select user orders")
	}
	return orders, nil
}
