package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"tienda/internal/errs"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func parseID64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// respondError переводит доменную ошибку в HTTP-ответ вида {message}.
// Всё, что не входит в таксономию, отдаётся как 500 с общим текстом,
// подробности остаются в логе.
func respondError(c *gin.Context, log *logrus.Logger, err error) {
	switch {
	case errors.Is(err, errs.ErrInsufficientStock):
		c.JSON(http.StatusBadRequest, gin.H{"message": "stock insuficiente"})
	case errors.Is(err, errs.ErrProductInactive):
		c.JSON(http.StatusBadRequest, gin.H{"message": "producto no disponible"})
	case errors.Is(err, errs.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"message": "estado inválido"})
	case errors.Is(err, errs.ErrProductNotFound),
		errors.Is(err, errs.ErrPaymentMethodNotFound):
		// внутри оформления заказа отсутствие ссылки — ошибка запроса
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, errs.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "pedido no encontrado"})
	case errors.Is(err, errs.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "categoría no encontrada"})
	case errors.Is(err, errs.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "usuario no encontrado"})
	case errors.Is(err, errs.ErrRepairNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "solicitud no encontrada"})
	case errors.Is(err, errs.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"message": "registro duplicado"})
	default:
		log.WithError(err).Error("internal error")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "error interno del servidor"})
	}
}
