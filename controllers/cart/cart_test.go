package cartControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Darrenmartin378/MidtermLabExam/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func newCartRouter(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	identify := func(c *gin.Context) { c.Set("user_id", userID) }
	r.GET("/api/cart", identify, GetCart(db))
	r.GET("/api/cart-count", identify, GetCartCount(db))
	r.POST("/api/cart", identify, AddCartItem(db))
	r.PUT("/api/cart/:id", identify, UpdateCartItem(db))
	r.DELETE("/api/cart/:id", identify, DeleteCartItem(db))
	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddCartItem(t *testing.T) {
	db := setupDB(t)
	product := models.Product{Name: "Widget", Price: 10, Stock: 5}
	require.NoError(t, db.Create(&product).Error)
	r := newCartRouter(db, 1)

	w := doJSON(r, http.MethodPost, "/api/cart", gin.H{"product_id": product.ID, "quantity": 2})
	require.Equal(t, http.StatusCreated, w.Code)

	// Same product again accumulates instead of adding a row.
	w = doJSON(r, http.MethodPost, "/api/cart", gin.H{"product_id": product.ID, "quantity": 1})
	require.Equal(t, http.StatusOK, w.Code)

	var items []models.CartItem
	require.NoError(t, db.Where("user_id = ?", 1).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestAddCartItem_UnknownProduct(t *testing.T) {
	db := setupDB(t)
	r := newCartRouter(db, 1)

	w := doJSON(r, http.MethodPost, "/api/cart", gin.H{"product_id": 999, "quantity": 1})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Product does not exist")
}

func TestAddCartItem_InvalidQuantity(t *testing.T) {
	db := setupDB(t)
	r := newCartRouter(db, 1)

	w := doJSON(r, http.MethodPost, "/api/cart", gin.H{"product_id": 1, "quantity": 0})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUpdateCartItem_ScopedToOwner(t *testing.T) {
	db := setupDB(t)
	product := models.Product{Name: "Widget", Price: 10, Stock: 5}
	require.NoError(t, db.Create(&product).Error)
	item := models.CartItem{UserID: 2, ProductID: product.ID, Quantity: 1}
	require.NoError(t, db.Create(&item).Error)

	// Caller 1 cannot touch caller 2's line.
	r := newCartRouter(db, 1)
	w := doJSON(r, http.MethodPut, fmt.Sprintf("/api/cart/%d", item.ID), gin.H{"quantity": 3})
	assert.Equal(t, http.StatusNotFound, w.Code)

	r = newCartRouter(db, 2)
	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/cart/%d", item.ID), gin.H{"quantity": 3})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.CartItem
	require.NoError(t, db.First(&updated, item.ID).Error)
	assert.Equal(t, 3, updated.Quantity)
}

func TestDeleteCartItem(t *testing.T) {
	db := setupDB(t)
	product := models.Product{Name: "Widget", Price: 10, Stock: 5}
	require.NoError(t, db.Create(&product).Error)
	item := models.CartItem{UserID: 1, ProductID: product.ID, Quantity: 1}
	require.NoError(t, db.Create(&item).Error)
	r := newCartRouter(db, 1)

	w := doJSON(r, http.MethodDelete, fmt.Sprintf("/api/cart/%d", item.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/cart/%d", item.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCartAndCount(t *testing.T) {
	db := setupDB(t)
	product := models.Product{Name: "Widget", Price: 10, Stock: 5}
	require.NoError(t, db.Create(&product).Error)
	require.NoError(t, db.Create(&models.CartItem{UserID: 1, ProductID: product.ID, Quantity: 2}).Error)
	require.NoError(t, db.Create(&models.CartItem{UserID: 2, ProductID: product.ID, Quantity: 7}).Error)
	r := newCartRouter(db, 1)

	w := doJSON(r, http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []models.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Product)
	assert.Equal(t, "Widget", items[0].Product.Name)

	w = doJSON(r, http.MethodGet, "/api/cart-count", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":2`)
}
