package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/senga-cyber/facilite-app2/models"
)

func performGET(t *testing.T, handler gin.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	handler(c)
	return w
}

func TestDistanceEndpoint(t *testing.T) {
	// Paris to London
	w := performGET(t, Distance(), "/location/distance?lat1=48.8566&lon1=2.3522&lat2=51.5074&lon2=-0.1278")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		DistanceKm float64 `json:"distance_km"`
	}
	decodeJSON(t, w, &resp)
	assert.InDelta(t, 343.5, resp.DistanceKm, 2.0)

	w = performGET(t, Distance(), "/location/distance?lat1=48.8566&lon1=2.3522&lat2=51.5074")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performGET(t, Distance(), "/location/distance?lat1=abc&lon1=2&lat2=3&lon2=4")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNearbySortsAndFilters(t *testing.T) {
	db := setupTestDB(t)
	rManager := newUser(t, db, "Marie", models.RoleRestaurantManager)
	hManager := newUser(t, db, "Awa", models.RoleHotelManager)

	newRestaurant(t, db, rManager, -4.320, 15.310)
	farLat, farLon := -5.5, 16.5
	require.NoError(t, db.Create(&models.Restaurant{
		OwnerID: rManager.ID, Name: "Trop loin", Latitude: &farLat, Longitude: &farLon,
	}).Error)

	hotelLat, hotelLon := -4.321, 15.312
	require.NoError(t, db.Create(&models.Hotel{
		OwnerID: hManager.ID, Name: "Hotel Fleuve", PricePerNight: 80,
		Latitude: &hotelLat, Longitude: &hotelLon,
	}).Error)
	// hotel without coordinates never shows up
	require.NoError(t, db.Create(&models.Hotel{
		OwnerID: hManager.ID, Name: "Sans position", PricePerNight: 40,
	}).Error)

	w := performGET(t, Nearby(db), "/nearby?latitude=-4.3205&longitude=15.3105&radius_km=5")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Nearby []nearbyPlace `json:"nearby"`
	}
	decodeJSON(t, w, &resp)
	require.Len(t, resp.Nearby, 2)
	assert.True(t, resp.Nearby[0].DistanceKm <= resp.Nearby[1].DistanceKm)

	// type filter
	w = performGET(t, Nearby(db), "/nearby?latitude=-4.3205&longitude=15.3105&type=hotel")
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &resp)
	require.Len(t, resp.Nearby, 1)
	assert.Equal(t, "hotel", resp.Nearby[0].Type)

	// missing coordinates
	w = performGET(t, Nearby(db), "/nearby?latitude=-4.3205")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
