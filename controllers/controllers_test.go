package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/senga-cyber/facilite-app2/config"
	"github.com/senga-cyber/facilite-app2/middlewares"
	"github.com/senga-cyber/facilite-app2/models"
)

func init() {
	gin.SetMode(gin.TestMode)
	config.C.JWTSecret = "test-secret"
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.RefreshToken{},
		&models.Restaurant{}, &models.Menu{},
		&models.Hotel{}, &models.Room{}, &models.Reservation{},
		&models.Order{}, &models.OrderItem{},
		&models.Payment{}, &models.Delivery{},
	))
	return db
}

var phoneSeq int

func newUser(t *testing.T, db *gorm.DB, name, role string) models.User {
	t.Helper()
	phoneSeq++
	user := models.User{
		Name:        name,
		PhoneNumber: fmt.Sprintf("+243%09d", phoneSeq),
		Role:        role,
		IsActive:    true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func newRestaurant(t *testing.T, db *gorm.DB, owner models.User, lat, lon float64) models.Restaurant {
	t.Helper()
	restaurant := models.Restaurant{
		OwnerID:   owner.ID,
		Name:      "Chez " + owner.Name,
		Address:   "12 Avenue du Marche",
		Latitude:  &lat,
		Longitude: &lon,
	}
	require.NoError(t, db.Create(&restaurant).Error)
	return restaurant
}

func newOrder(t *testing.T, db *gorm.DB, client models.User, restaurant models.Restaurant) models.Order {
	t.Helper()
	order := models.Order{
		UserID:       client.ID,
		RestaurantID: restaurant.ID,
		Total:        25.0,
		Status:       models.OrderStatusPending,
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

// performAs invokes a handler with the identity the auth middleware would
// have resolved.
func performAs(t *testing.T, user models.User, handler gin.HandlerFunc, method, target string, body any, params ...gin.Param) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = params
	c.Set(middlewares.ContextUserID, user.ID)
	c.Set(middlewares.ContextUserRole, user.Role)

	handler(c)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
