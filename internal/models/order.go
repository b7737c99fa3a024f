package models

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID              int         `db:"id" json:"id_pedido"`
	UserID          *int64      `db:"user_id" json:"id_usuario"`
	PaymentMethodID int         `db:"payment_method_id" json:"id_metodo_pago"`
	ShippingAddress string      `db:"shipping_address" json:"direccion_envio"`
	Status          OrderStatus `db:"status" json:"estado_pedido"`
	Total           float64     `db:"total" json:"total"`
	CreatedAt       time.Time   `db:"created_at" json:"fecha_creacion"`
}

type OrderItem struct {
	ID        int     `db:"id" json:"id"`
	OrderID   int     `db:"order_id" json:"id_pedido"`
	ProductID int     `db:"product_id" json:"id_producto"`
	Quantity  int     `db:"quantity" json:"cantidad"`
	UnitPrice float64 `db:"unit_price" json:"precio_unitario"`
	Subtotal  float64 `db:"subtotal" json:"subtotal"`
}

type OrderWithItems struct {
	Order Order       `json:"pedido"`
	Items []OrderItem `json:"detalles_pedido"`
}
