package handlers

import (
	"context"
	"net/http"
	"strconv"

	"tienda/internal/models"
	"tienda/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type RepairStore interface {
	CreateRequest(ctx context.Context, req *models.RepairRequest) error
	RequestByTrackingCode(ctx context.Context, code string) (*models.RepairRequest, error)
	RequestByID(ctx context.Context, requestID int) (*models.RepairRequest, error)
	AllRequests(ctx context.Context) ([]models.RepairRequest, error)
	UpdateStatus(ctx context.Context, requestID int, status models.RepairStatus) error
	DeleteRequest(ctx context.Context, requestID int) error
}

type RepairHandler struct {
	store    RepairStore
	notifier notify.Notifier
	log      *logrus.Logger
}

func NewRepairHandler(store RepairStore, notifier notify.Notifier, log *logrus.Logger) *RepairHandler {
	return &RepairHandler{store: store, notifier: notifier, log: log}
}

type repairRequest struct {
	CustomerName string `json:"nombre_cliente" binding:"required"`
	Email        string `json:"correo" binding:"required,email"`
	Phone        string `json:"telefono"`
	Device       string `json:"equipo" binding:"required"`
	Issue        string `json:"descripcion_problema" binding:"required"`
}

func (h *RepairHandler) CreateRequest(c *gin.Context) {
	var body repairRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "datos de la solicitud inválidos"})
		return
	}

	req := models.RepairRequest{
		CustomerName: body.CustomerName,
		Email:        body.Email,
		Phone:        body.Phone,
		Device:       body.Device,
		Issue:        body.Issue,
	}
	if err := h.store.CreateRequest(c.Request.Context(), &req); err != nil {
		respondError(c, h.log, err)
		return
	}

	h.notifier.RepairReceived(&req)

	c.JSON(http.StatusCreated, gin.H{"data": req})
}

func (h *RepairHandler) GetRequestByCode(c *gin.Context) {
	code := c.Param("codigo")

	req, err := h.store.RequestByTrackingCode(c.Request.Context(), code)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": req})
}

func (h *RepairHandler) GetRequestByID(c *gin.Context) {
	requestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id de solicitud inválido"})
		return
	}

	req, err := h.store.RequestByID(c.Request.Context(), requestID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": req})
}

func (h *RepairHandler) GetRequests(c *gin.Context) {
	requests, err := h.store.AllRequests(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": requests})
}

type repairStatusRequest struct {
	Status models.RepairStatus `json:"estado" binding:"required"`
}

func (h *RepairHandler) UpdateRequestStatus(c *gin.Context) {
	requestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id de solicitud inválido"})
		return
	}

	var body repairStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "cuerpo de la petición inválido"})
		return
	}

	if err := h.store.UpdateStatus(c.Request.Context(), requestID, body.Status); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "estado actualizado"})
}

func (h *RepairHandler) DeleteRequest(c *gin.Context) {
	requestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id de solicitud inválido"})
		return
	}

	if err := h.store.DeleteRequest(c.Request.Context(), requestID); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "solicitud eliminada"})
}
