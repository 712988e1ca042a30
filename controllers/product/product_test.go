package productcontroller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ngocthanh-dev/cafe-admin-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Product{}))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/products", CreateProduct(db))
	r.GET("/products", GetProducts(db))
	r.GET("/products/:id", GetProductByID(db))
	r.PUT("/products/:id", UpdateProduct(db))
	r.DELETE("/products/:id", DeleteProduct(db))
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateProduct(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, "POST", "/products", map[string]interface{}{
		"name": "Cà phê sữa", "price": 25000, "stock": 40,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Cà phê sữa", created.Name)
	assert.Equal(t, 25000.0, created.Price)
	assert.Equal(t, 40, created.Stock)
}

func TestCreateProductValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, "POST", "/products", map[string]interface{}{"name": "  ", "price": 1000})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "POST", "/products", map[string]interface{}{"name": "Trà đào", "price": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "POST", "/products", map[string]interface{}{"name": "Trà đào", "price": 1000, "stock": -5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProducts(t *testing.T) {
	r, db := newTestRouter(t)
	require.NoError(t, db.Create(&[]models.Product{
		{Name: "Cà phê đen", Price: 20000, Stock: 30},
		{Name: "Trà đào", Price: 30000, Stock: 15},
	}).Error)

	w := doJSON(t, r, "GET", "/products?search=trà", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Trà đào", products[0].Name)

	w = doJSON(t, r, "GET", "/products?sort_by=price&order=desc", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 2)
	assert.Equal(t, "Trà đào", products[0].Name)

	w = doJSON(t, r, "GET", "/products?sort_by=password", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProduct(t *testing.T) {
	r, db := newTestRouter(t)
	product := models.Product{Name: "Bạc xỉu", Price: 28000, Stock: 12}
	require.NoError(t, db.Create(&product).Error)

	w := doJSON(t, r, "PUT", "/products/1", map[string]interface{}{"price": 32000})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Product
	require.NoError(t, db.First(&updated, product.ID).Error)
	assert.Equal(t, 32000.0, updated.Price)
	assert.Equal(t, "Bạc xỉu", updated.Name) // untouched

	w = doJSON(t, r, "PUT", "/products/999", map[string]interface{}{"price": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProduct(t *testing.T) {
	r, db := newTestRouter(t)
	product := models.Product{Name: "Sinh tố bơ", Price: 35000, Stock: 8}
	require.NoError(t, db.Create(&product).Error)

	w := doJSON(t, r, "DELETE", "/products/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count)

	w = doJSON(t, r, "DELETE", "/products/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
