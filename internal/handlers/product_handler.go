package handlers

import (
	"context"
	"net/http"
	"strconv"

	"tienda/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProductStore interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	ProductByID(ctx context.Context, productID int) (*models.Product, error)
	ActiveProducts(ctx context.Context) ([]models.Product, error)
	AllProducts(ctx context.Context) ([]models.Product, error)
	ProductsByCategory(ctx context.Context, categoryID int) ([]models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeactivateProduct(ctx context.Context, productID int) error
}

type ProductHandler struct {
	store ProductStore
	log   *logrus.Logger
}

func NewProductHandler(store ProductStore, log *logrus.Logger) *ProductHandler {
	return &ProductHandler{store: store, log: log}
}

type productRequest struct {
	Name        string  `json:"nombre" binding:"required"`
	Description string  `json:"descripcion"`
	Price       float64 `json:"precio" binding:"required,gt=0"`
	Stock       int     `json:"stock" binding:"gte=0"`
	CategoryID  int     `json:"id_categoria" binding:"required"`
	ImageURL    string  `json:"imagen_url"`
	IsActive    *bool   `json:"activo"`
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var body productRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "datos del producto inválidos"})
		return
	}

	active := true
	if body.IsActive != nil {
		active = *body.IsActive
	}
	product := models.Product{
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		Stock:       body.Stock,
		CategoryID:  body.CategoryID,
		ImageURL:    body.ImageURL,
		IsActive:    active,
	}
	if err := h.store.CreateProduct(c.Request.Context(), &product); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": product})
}

// GetProducts — публичный каталог: только активные товары, опционально
// отфильтрованные по категории (?id_categoria=N).
func (h *ProductHandler) GetProducts(c *gin.Context) {
	if raw := c.Query("id_categoria"); raw != "" {
		categoryID, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "id de categoría inválido"})
			return
		}
		products, err := h.store.ProductsByCategory(c.Request.Context(), categoryID)
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": products})
		return
	}

	products, err := h.store.ActiveProducts(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": products})
}

func (h *ProductHandler) GetProductsAdmin(c *gin.Context) {
	products, err := h.store.AllProducts(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": products})
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id de producto inválido"})
		return
	}

	product, err := h.store.ProductByID(c.Request.Context(), productID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": product})
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id de producto inválido"})
		return
	}

	var body productRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "datos del producto inválidos"})
		return
	}

	active := true
	if body.IsActive != nil {
		active = *body.IsActive
	}
	product := models.Product{
		ID:          productID,
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		Stock:       body.Stock,
		CategoryID:  body.CategoryID,
		ImageURL:    body.ImageURL,
		IsActive:    active,
	}
	if err := h.store.UpdateProduct(c.Request.Context(), &product); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": product})
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id de producto inválido"})
		return
	}

	if err := h.store.DeactivateProduct(c.Request.Context(), productID); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "producto eliminado"})
}
