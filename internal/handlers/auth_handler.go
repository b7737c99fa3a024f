package handlers

import (
	"context"
	"net/http"

	"tienda/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByID(ctx context.Context, userID int64) (*models.User, error)
	AllUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

type AuthHandler struct {
	store  UserStore
	secret string
	log    *logrus.Logger
}

func NewAuthHandler(store UserStore, secret string, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{store: store, secret: secret, log: log}
}

type registerRequest struct {
	Name     string `json:"nombre" binding:"required"`
	Email    string `json:"correo" binding:"required,email"`
	Password string `json:"contrasena" binding:"required,min=6"`
	Phone    string `json:"telefono"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var body registerRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "datos de registro inválidos"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	user := models.User{
		Name:         body.Name,
		Email:        body.Email,
		PasswordHash: string(hashed),
		Phone:        body.Phone,
		Role:         models.RoleCustomer,
	}
	if err := h.store.CreateUser(c.Request.Context(), &user); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": user})
}

type loginRequest struct {
	Email    string `json:"correo" binding:"required"`
	Password string `json:"contrasena" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var body loginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "credenciales inválidas"})
		return
	}

	user, err := h.store.UserByEmail(c.Request.Context(), body.Email)
	if err != nil {
		// не раскрываем, существует ли адрес
		c.JSON(http.StatusUnauthorized, gin.H{"message": "correo o contraseña incorrectos"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "correo o contraseña incorrectos"})
		return
	}

	token, err := GenerateToken(user, h.secret)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"usuario": gin.H{
			"id_usuario": user.ID,
			"nombre":     user.Name,
			"correo":     user.Email,
			"rol":        user.Role,
		},
	})
}

func (h *AuthHandler) GetUsers(c *gin.Context) {
	users, err := h.store.AllUsers(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users})
}

func (h *AuthHandler) DeleteUser(c *gin.Context) {
	userID, err := parseID64(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id de usuario inválido"})
		return
	}

	if err := h.store.DeleteUser(c.Request.Context(), userID); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "usuario eliminado"})
}
