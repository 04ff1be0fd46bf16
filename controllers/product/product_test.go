package productcontroller

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

func newProductRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/products", GetProducts(db))
	r.GET("/api/products/:id", GetProductByID(db))
	r.POST("/api/products", CreateProduct(db))
	r.PUT("/api/products/:id", UpdateProduct(db))
	r.DELETE("/api/products/:id", DeleteProduct(db))
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

func TestCreateProduct(t *testing.T) {
	db := setupDB(t)
	r := newProductRouter(db)

	w := doJSON(r, http.MethodPost, "/api/products", gin.H{
		"name": "Widget", "description": "A widget", "price": 19.99, "stock": 7, "image": "https://example.com/w.png",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var product models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
	assert.NotZero(t, product.ID)
	assert.Equal(t, 19.99, product.Price)
	assert.Equal(t, 7, product.Stock)
}

func TestCreateProduct_Validation(t *testing.T) {
	db := setupDB(t)
	r := newProductRouter(db)

	// Missing price/stock.
	w := doJSON(r, http.MethodPost, "/api/products", gin.H{"name": "Widget"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Negative price.
	w = doJSON(r, http.MethodPost, "/api/products", gin.H{"name": "Widget", "price": -1, "stock": 1})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Negative stock.
	w = doJSON(r, http.MethodPost, "/api/products", gin.H{"name": "Widget", "price": 1, "stock": -1})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Zero values are legal (free item, out of stock).
	w = doJSON(r, http.MethodPost, "/api/products", gin.H{"name": "Widget", "price": 0, "stock": 0})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestGetProducts(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Create(&models.Product{Name: "A", Price: 1, Stock: 1}).Error)
	require.NoError(t, db.Create(&models.Product{Name: "B", Price: 2, Stock: 2}).Error)
	r := newProductRouter(db)

	w := doJSON(r, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 2)
}

func TestGetProductByID(t *testing.T) {
	db := setupDB(t)
	product := models.Product{Name: "A", Price: 1, Stock: 1}
	require.NoError(t, db.Create(&product).Error)
	r := newProductRouter(db)

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/api/products/%d", product.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/products/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodGet, "/api/products/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProduct_Partial(t *testing.T) {
	db := setupDB(t)
	product := models.Product{Name: "A", Description: "old", Price: 1, Stock: 1}
	require.NoError(t, db.Create(&product).Error)
	r := newProductRouter(db)

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/api/products/%d", product.ID), gin.H{"stock": 42})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Product
	require.NoError(t, db.First(&updated, product.ID).Error)
	assert.Equal(t, 42, updated.Stock)
	assert.Equal(t, "A", updated.Name)
	assert.Equal(t, "old", updated.Description)
	assert.Equal(t, 1.0, updated.Price)
}

func TestDeleteProduct(t *testing.T) {
	db := setupDB(t)
	product := models.Product{Name: "A", Price: 1, Stock: 1}
	require.NoError(t, db.Create(&product).Error)
	r := newProductRouter(db)

	w := doJSON(r, http.MethodDelete, fmt.Sprintf("/api/products/%d", product.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/products/%d", product.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
