package handlers

import (
	"context"
	"net/http"
	"strconv"

	"tienda/internal/models"
	"tienda/internal/notify"
	"tienda/internal/repo"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type OrderStore interface {
	CreateOrder(ctx context.Context, in repo.CreateOrderInput) (*models.OrderWithItems, error)
	DeleteOrder(ctx context.Context, orderID int) error
	UpdateStatus(ctx context.Context, orderID int, status models.OrderStatus) error
	OrderByID(ctx context.Context, orderID int) (*models.OrderWithItems, error)
	AllOrders(ctx context.Context) ([]models.Order, error)
	OrdersByUser(ctx context.Context, userID int64) ([]models.Order, error)
}

type OrderHandler struct {
	store    OrderStore
	notifier notify.Notifier
	log      *logrus.Logger
}

func NewOrderHandler(store OrderStore, notifier notify.Notifier, log *logrus.Logger) *OrderHandler {
	return &OrderHandler{store: store, notifier: notifier, log: log}
}

type orderLineRequest struct {
	ProductID int `json:"id_producto" binding:"required"`
	Quantity  int `json:"cantidad" binding:"required,gt=0"`
}

type createOrderRequest struct {
	UserID          *int64             `json:"id_usuario"`
	PaymentMethodID int                `json:"id_metodo_pago" binding:"required"`
	ShippingAddress string             `json:"direccion_envio" binding:"required"`
	Lines           []orderLineRequest `json:"detalles_pedido" binding:"required,min=1,dive"`
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var body createOrderRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "datos del pedido inválidos"})
		return
	}

	userID := body.UserID
	if userID == nil {
		// авторизованный пользователь — берём id из токена
		if v, ok := c.Get("userID"); ok {
			id := v.(int64)
			userID = &id
		}
	}

	in := repo.CreateOrderInput{
		UserID:          userID,
		PaymentMethodID: body.PaymentMethodID,
		ShippingAddress: body.ShippingAddress,
	}
	for _, line := range body.Lines {
		in.Lines = append(in.Lines, repo.OrderLineInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	result, err := h.store.CreateOrder(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	// уведомление вне транзакционной гарантии
	h.notifier.OrderCreated(result)

	c.JSON(http.StatusCreated, gin.H{
		"id_pedido": result.Order.ID,
		"total":     result.Order.Total,
	})
}

func (h *OrderHandler) GetOrders(c *gin.Context) {
	role, _ := c.Get("role")
	if role == models.RoleAdmin {
		orders, err := h.store.AllOrders(c.Request.Context())
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": orders})
		return
	}

	v, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "token requerido"})
		return
	}
	orders, err := h.store.OrdersByUser(c.Request.Context(), v.(int64))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": orders})
}

func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id de pedido inválido"})
		return
	}

	order, err := h.store.OrderByID(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": order})
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id de pedido inválido"})
		return
	}

	if err := h.store.DeleteOrder(c.Request.Context(), orderID); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pedido eliminado"})
}

type updateStatusRequest struct {
	Status models.OrderStatus `json:"estado_pedido" binding:"required"`
}

func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id de pedido inválido"})
		return
	}

	var body updateStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "cuerpo de la petición inválido"})
		return
	}

	if err := h.store.UpdateStatus(c.Request.Context(), orderID, body.Status); err != nil {
		respondError(c, h.log, err)
		return
	}

	h.notifier.OrderStatusChanged(orderID, body.Status)

	c.JSON(http.StatusOK, gin.H{"message": "estado actualizado"})
}
