package handlers

import (
	"context"
	"net/http"

	"tienda/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type PaymentMethodStore interface {
	ActiveMethods(ctx context.Context) ([]models.PaymentMethod, error)
}

type PaymentHandler struct {
	store PaymentMethodStore
	log   *logrus.Logger
}

func NewPaymentHandler(store PaymentMethodStore, log *logrus.Logger) *PaymentHandler {
	return &PaymentHandler{store: store, log: log}
}

func (h *PaymentHandler) GetMethods(c *gin.Context) {
	methods, err := h.store.ActiveMethods(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": methods})
}
