package cartControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/mathiuSpv/markap-back-apps-int/models"
	"github.com/mathiuSpv/markap-back-apps-int/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testUserID = "test-user"

// newRouter wires the cart endpoints over an in-memory database, with a
// stub identity middleware standing in for JWT validation.
func newRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
	))

	svc := services.NewCartService(db)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", testUserID)
		c.Next()
	})
	r.POST("/user/cart", CreateCart(svc))
	r.GET("/user/cart", GetActiveCart(svc))
	r.PUT("/user/cart/pay", MarkCartPaid(svc))
	r.POST("/user/cart/items", AddCartItem(svc))
	r.DELETE("/user/cart/items/:product_id", RemoveCartItem(svc))
	r.GET("/user/carts", GetCartHistory(svc))
	r.GET("/user/carts/:cart_id/items", ListCartItems(svc))

	return r, db
}

func seedProduct(t *testing.T, db *gorm.DB) *models.Product {
	t.Helper()

	category := &models.Category{Name: "cat-" + uuid.NewString()}
	require.NoError(t, db.Create(category).Error)
	product := &models.Product{
		Description: "test product",
		Price:       5,
		Stock:       50,
		CategoryID:  category.ID,
		UserID:      testUserID,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
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

func TestCreateCartEndpoint(t *testing.T) {
	r, _ := newRouter(t)

	w := doJSON(r, http.MethodPost, "/user/cart", nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Second create conflicts while the first cart is still active
	w = doJSON(r, http.MethodPost, "/user/cart", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetActiveCartEndpoint(t *testing.T) {
	r, _ := newRouter(t)

	w := doJSON(r, http.MethodGet, "/user/cart", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Cart *models.Cart `json:"cart"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Nil(t, body.Cart)

	doJSON(r, http.MethodPost, "/user/cart", nil)

	w = doJSON(r, http.MethodGet, "/user/cart", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Cart)
	assert.Equal(t, testUserID, body.Cart.UserID)
}

func TestAddItemEndpoint(t *testing.T) {
	r, db := newRouter(t)
	product := seedProduct(t, db)

	doJSON(r, http.MethodPost, "/user/cart", nil)

	w := doJSON(r, http.MethodPost, "/user/cart/items", gin.H{"product_id": product.ID, "quantity": 2})
	assert.Equal(t, http.StatusOK, w.Code)

	var item models.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, 2, item.Quantity)

	// Binding rejects a missing/zero quantity
	w = doJSON(r, http.MethodPost, "/user/cart/items", gin.H{"product_id": product.ID})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The engine rejects a negative one
	w = doJSON(r, http.MethodPost, "/user/cart/items", gin.H{"product_id": product.ID, "quantity": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown product is a 404
	w = doJSON(r, http.MethodPost, "/user/cart/items", gin.H{"product_id": 9999, "quantity": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveItemEndpoint(t *testing.T) {
	r, db := newRouter(t)
	product := seedProduct(t, db)

	doJSON(r, http.MethodPost, "/user/cart", nil)
	doJSON(r, http.MethodPost, "/user/cart/items", gin.H{"product_id": product.ID, "quantity": 5})

	w := doJSON(r, http.MethodDelete, "/user/cart/items/99999?quantity=1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodDelete, "/user/cart/items/"+itoa(product.ID)+"?quantity=9", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodDelete, "/user/cart/items/"+itoa(product.ID)+"?quantity=5", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMarkCartPaidEndpoint(t *testing.T) {
	r, _ := newRouter(t)

	// No active cart yet
	w := doJSON(r, http.MethodPut, "/user/cart/pay", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	doJSON(r, http.MethodPost, "/user/cart", nil)

	w = doJSON(r, http.MethodPut, "/user/cart/pay", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Second pay call finds no active cart
	w = doJSON(r, http.MethodPut, "/user/cart/pay", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartHistoryEndpoint(t *testing.T) {
	r, _ := newRouter(t)

	// No carts at all surfaces as a server-side invariant failure
	w := doJSON(r, http.MethodGet, "/user/carts", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	doJSON(r, http.MethodPost, "/user/cart", nil)

	w = doJSON(r, http.MethodGet, "/user/carts", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListCartItemsEndpoint(t *testing.T) {
	r, _ := newRouter(t)

	w := doJSON(r, http.MethodGet, "/user/carts/424242/items", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
