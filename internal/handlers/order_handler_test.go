package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tienda/internal/errs"
	"tienda/internal/models"
	"tienda/internal/notify"
	"tienda/internal/repo"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderStore struct {
	lastCreateInput *repo.CreateOrderInput
	createResult    *models.OrderWithItems
	createErr       error
	deleteErr       error
	statusErr       error
	orders          []models.Order
	userOrders      []models.Order
}

func (f *fakeOrderStore) CreateOrder(_ context.Context, in repo.CreateOrderInput) (*models.OrderWithItems, error) {
	f.lastCreateInput = &in
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createResult, nil
}

func (f *fakeOrderStore) DeleteOrder(context.Context, int) error { return f.deleteErr }

func (f *fakeOrderStore) UpdateStatus(context.Context, int, models.OrderStatus) error {
	return f.statusErr
}

func (f *fakeOrderStore) OrderByID(context.Context, int) (*models.OrderWithItems, error) {
	if f.createResult == nil {
		return nil, errs.ErrOrderNotFound
	}
	return f.createResult, nil
}

func (f *fakeOrderStore) AllOrders(context.Context) ([]models.Order, error) { return f.orders, nil }

func (f *fakeOrderStore) OrdersByUser(context.Context, int64) ([]models.Order, error) {
	return f.userOrders, nil
}

func setupOrderRouter(store *fakeOrderStore, role string, userID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewOrderHandler(store, notify.Noop{}, logrus.New())

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if role != "" {
			c.Set("role", role)
			c.Set("userID", userID)
		}
	})
	r.POST("/api/orders", h.CreateOrder)
	r.GET("/api/orders", h.GetOrders)
	r.GET("/api/orders/:id", h.GetOrderByID)
	r.DELETE("/api/orders/:id", h.DeleteOrder)
	r.PUT("/api/orders/:id/estado", h.UpdateOrderStatus)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrderHandler(t *testing.T) {
	t.Run("success returns id and total", func(t *testing.T) {
		store := &fakeOrderStore{
			createResult: &models.OrderWithItems{
				Order: models.Order{ID: 42, Total: 30.0, Status: models.OrderStatusPending},
				Items: []models.OrderItem{{ProductID: 3, Quantity: 3, UnitPrice: 10, Subtotal: 30}},
			},
		}
		r := setupOrderRouter(store, models.RoleCustomer, 7)

		w := doJSON(r, http.MethodPost, "/api/orders", `{
			"id_metodo_pago": 1,
			"direccion_envio": "Calle Falsa 123",
			"detalles_pedido": [{"id_producto": 3, "cantidad": 3}]
		}`)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"id_pedido":42`)
		assert.Contains(t, w.Body.String(), `"total":30`)

		require.NotNil(t, store.lastCreateInput)
		require.NotNil(t, store.lastCreateInput.UserID)
		assert.Equal(t, int64(7), *store.lastCreateInput.UserID)
	})

	t.Run("client-supplied prices are ignored", func(t *testing.T) {
		store := &fakeOrderStore{
			createResult: &models.OrderWithItems{Order: models.Order{ID: 1, Total: 10}},
		}
		r := setupOrderRouter(store, models.RoleCustomer, 7)

		// злоумышленник прислал свою цену — в ввод она не попадает
		w := doJSON(r, http.MethodPost, "/api/orders", `{
			"id_metodo_pago": 1,
			"direccion_envio": "Calle Falsa 123",
			"detalles_pedido": [{"id_producto": 3, "cantidad": 1, "precio_unitario": 0.01}]
		}`)

		require.Equal(t, http.StatusCreated, w.Code)
		require.Len(t, store.lastCreateInput.Lines, 1)
		assert.Equal(t, repo.OrderLineInput{ProductID: 3, Quantity: 1}, store.lastCreateInput.Lines[0])
	})

	t.Run("empty line list is rejected before the store", func(t *testing.T) {
		store := &fakeOrderStore{}
		r := setupOrderRouter(store, models.RoleCustomer, 7)

		w := doJSON(r, http.MethodPost, "/api/orders", `{
			"id_metodo_pago": 1,
			"direccion_envio": "Calle Falsa 123",
			"detalles_pedido": []
		}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, store.lastCreateInput)
	})

	t.Run("zero quantity is rejected", func(t *testing.T) {
		store := &fakeOrderStore{}
		r := setupOrderRouter(store, models.RoleCustomer, 7)

		w := doJSON(r, http.MethodPost, "/api/orders", `{
			"id_metodo_pago": 1,
			"direccion_envio": "Calle Falsa 123",
			"detalles_pedido": [{"id_producto": 3, "cantidad": 0}]
		}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, store.lastCreateInput)
	})

	t.Run("insufficient stock maps to 400", func(t *testing.T) {
		store := &fakeOrderStore{createErr: errs.ErrInsufficientStock}
		r := setupOrderRouter(store, models.RoleCustomer, 7)

		w := doJSON(r, http.MethodPost, "/api/orders", `{
			"id_metodo_pago": 1,
			"direccion_envio": "Calle Falsa 123",
			"detalles_pedido": [{"id_producto": 3, "cantidad": 3}]
		}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "stock insuficiente")
	})

	t.Run("unknown payment method maps to 400", func(t *testing.T) {
		store := &fakeOrderStore{createErr: errs.ErrPaymentMethodNotFound}
		r := setupOrderRouter(store, models.RoleCustomer, 7)

		w := doJSON(r, http.MethodPost, "/api/orders", `{
			"id_metodo_pago": 99,
			"direccion_envio": "Calle Falsa 123",
			"detalles_pedido": [{"id_producto": 3, "cantidad": 1}]
		}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateOrderStatusHandler(t *testing.T) {
	t.Run("unknown order maps to 404", func(t *testing.T) {
		store := &fakeOrderStore{statusErr: errs.ErrOrderNotFound}
		r := setupOrderRouter(store, models.RoleAdmin, 1)

		w := doJSON(r, http.MethodPut, "/api/orders/999/estado", `{"estado_pedido": "shipped"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid status maps to 400", func(t *testing.T) {
		store := &fakeOrderStore{statusErr: errs.ErrInvalidStatus}
		r := setupOrderRouter(store, models.RoleAdmin, 1)

		w := doJSON(r, http.MethodPut, "/api/orders/42/estado", `{"estado_pedido": "paid"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		store := &fakeOrderStore{}
		r := setupOrderRouter(store, models.RoleAdmin, 1)

		w := doJSON(r, http.MethodPut, "/api/orders/42/estado", `{"estado_pedido": "shipped"}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestDeleteOrderHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		store := &fakeOrderStore{}
		r := setupOrderRouter(store, models.RoleAdmin, 1)

		w := doJSON(r, http.MethodDelete, "/api/orders/42", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "pedido eliminado")
	})

	t.Run("unknown order maps to 404", func(t *testing.T) {
		store := &fakeOrderStore{deleteErr: errs.ErrOrderNotFound}
		r := setupOrderRouter(store, models.RoleAdmin, 1)

		w := doJSON(r, http.MethodDelete, "/api/orders/999", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetOrdersHandler(t *testing.T) {
	t.Run("admin sees all orders", func(t *testing.T) {
		store := &fakeOrderStore{
			orders:     []models.Order{{ID: 1}, {ID: 2}},
			userOrders: []models.Order{{ID: 1}},
		}
		r := setupOrderRouter(store, models.RoleAdmin, 1)

		w := doJSON(r, http.MethodGet, "/api/orders", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id_pedido":2`)
	})

	t.Run("customer only sees own orders", func(t *testing.T) {
		store := &fakeOrderStore{
			orders:     []models.Order{{ID: 1}, {ID: 2}},
			userOrders: []models.Order{{ID: 1}},
		}
		r := setupOrderRouter(store, models.RoleCustomer, 7)

		w := doJSON(r, http.MethodGet, "/api/orders", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id_pedido":1`)
		assert.NotContains(t, w.Body.String(), `"id_pedido":2`)
	})
}
