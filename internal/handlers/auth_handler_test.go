package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"tienda/internal/errs"
	"tienda/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserStore struct {
	createdUser *models.User
	createErr   error
	byEmail     *models.User
	byEmailErr  error
}

func (f *fakeUserStore) CreateUser(_ context.Context, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	user.ID = 1
	f.createdUser = user
	return nil
}

func (f *fakeUserStore) UserByEmail(context.Context, string) (*models.User, error) {
	return f.byEmail, f.byEmailErr
}

func (f *fakeUserStore) UserByID(context.Context, int64) (*models.User, error) {
	return f.byEmail, f.byEmailErr
}

func (f *fakeUserStore) AllUsers(context.Context) ([]models.User, error) { return nil, nil }

func (f *fakeUserStore) DeleteUser(context.Context, int64) error { return nil }

func setupAuthRouter(store *fakeUserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewAuthHandler(store, testSecret, logrus.New())

	r := gin.New()
	r.POST("/api/registro", h.Register)
	r.POST("/api/login", h.Login)
	return r
}

func TestRegister(t *testing.T) {
	t.Run("success creates customer with hashed password", func(t *testing.T) {
		store := &fakeUserStore{}
		r := setupAuthRouter(store)

		w := doJSON(r, http.MethodPost, "/api/registro", `{
			"nombre": "Ana",
			"correo": "ana@example.com",
			"contrasena": "secreto1"
		}`)

		require.Equal(t, http.StatusCreated, w.Code)
		require.NotNil(t, store.createdUser)
		assert.Equal(t, models.RoleCustomer, store.createdUser.Role)
		assert.NoError(t, bcrypt.CompareHashAndPassword(
			[]byte(store.createdUser.PasswordHash), []byte("secreto1")))
		assert.NotContains(t, w.Body.String(), "secreto1")
	})

	t.Run("duplicate email maps to 409", func(t *testing.T) {
		store := &fakeUserStore{createErr: errs.ErrDuplicate}
		r := setupAuthRouter(store)

		w := doJSON(r, http.MethodPost, "/api/registro", `{
			"nombre": "Ana",
			"correo": "ana@example.com",
			"contrasena": "secreto1"
		}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("malformed email is rejected", func(t *testing.T) {
		store := &fakeUserStore{}
		r := setupAuthRouter(store)

		w := doJSON(r, http.MethodPost, "/api/registro", `{
			"nombre": "Ana",
			"correo": "no-es-un-correo",
			"contrasena": "secreto1"
		}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, store.createdUser)
	})
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto1"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		ID:           7,
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleCustomer,
	}

	t.Run("success returns a verifiable token", func(t *testing.T) {
		r := setupAuthRouter(&fakeUserStore{byEmail: user})

		w := doJSON(r, http.MethodPost, "/api/login", `{
			"correo": "ana@example.com",
			"contrasena": "secreto1"
		}`)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		claims, err := VerifyToken(resp.Token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, int64(7), claims.UserID)
		assert.Equal(t, models.RoleCustomer, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		r := setupAuthRouter(&fakeUserStore{byEmail: user})

		w := doJSON(r, http.MethodPost, "/api/login", `{
			"correo": "ana@example.com",
			"contrasena": "equivocada"
		}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown email gets the same message as wrong password", func(t *testing.T) {
		r := setupAuthRouter(&fakeUserStore{byEmailErr: errs.ErrUserNotFound})

		w := doJSON(r, http.MethodPost, "/api/login", `{
			"correo": "nadie@example.com",
			"contrasena": "secreto1"
		}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "correo o contraseña incorrectos")
	})
}
