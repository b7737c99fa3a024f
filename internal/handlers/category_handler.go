package handlers

import (
	"context"
	"net/http"
	"strconv"

	"tienda/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CategoryStore interface {
	CreateCategory(ctx context.Context, category *models.Category) error
	ActiveCategories(ctx context.Context) ([]models.Category, error)
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeactivateCategory(ctx context.Context, categoryID int) error
}

type CategoryHandler struct {
	store CategoryStore
	log   *logrus.Logger
}

func NewCategoryHandler(store CategoryStore, log *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{store: store, log: log}
}

type categoryRequest struct {
	Name        string `json:"nombre" binding:"required"`
	Description string `json:"descripcion"`
	IsActive    *bool  `json:"activo"`
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var body categoryRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "datos de la categoría inválidos"})
		return
	}

	active := true
	if body.IsActive != nil {
		active = *body.IsActive
	}
	category := models.Category{
		Name:        body.Name,
		Description: body.Description,
		IsActive:    active,
	}
	if err := h.store.CreateCategory(c.Request.Context(), &category); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": category})
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.store.ActiveCategories(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": categories})
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id de categoría inválido"})
		return
	}

	var body categoryRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "datos de la categoría inválidos"})
		return
	}

	active := true
	if body.IsActive != nil {
		active = *body.IsActive
	}
	category := models.Category{
		ID:          categoryID,
		Name:        body.Name,
		Description: body.Description,
		IsActive:    active,
	}
	if err := h.store.UpdateCategory(c.Request.Context(), &category); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": category})
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id de categoría inválido"})
		return
	}

	if err := h.store.DeactivateCategory(c.Request.Context(), categoryID); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "categoría eliminada"})
}
