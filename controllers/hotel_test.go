package controllers

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/senga-cyber/facilite-app2/models"
)

func TestCreateHotelChecksManagerRole(t *testing.T) {
	db := setupTestDB(t)
	admin := newUser(t, db, "Root", models.RoleAdmin)
	manager := newUser(t, db, "Awa", models.RoleHotelManager)
	client := newUser(t, db, "Jean", models.RoleClient)

	w := performAs(t, manager, CreateHotel(db), http.MethodPost, "/hotels", gin.H{
		"name":            "Hotel Fleuve",
		"address":         "3 Boulevard du 30 Juin",
		"price_per_night": 80.0,
		"manager_id":      manager.ID,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = performAs(t, admin, CreateHotel(db), http.MethodPost, "/hotels", gin.H{
		"name":            "Hotel Fleuve",
		"address":         "3 Boulevard du 30 Juin",
		"price_per_night": 80.0,
		"manager_id":      client.ID,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performAs(t, admin, CreateHotel(db), http.MethodPost, "/hotels", gin.H{
		"name":            "Hotel Fleuve",
		"address":         "3 Boulevard du 30 Juin",
		"city":            "Kinshasa",
		"price_per_night": 80.0,
		"manager_id":      manager.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Hotel
	decodeJSON(t, w, &created)
	assert.Equal(t, manager.ID, created.OwnerID)
}

func TestUpdateHotelOwnership(t *testing.T) {
	db := setupTestDB(t)
	admin := newUser(t, db, "Root", models.RoleAdmin)
	owner := newUser(t, db, "Awa", models.RoleHotelManager)
	other := newUser(t, db, "Luc", models.RoleHotelManager)
	hotel := newHotel(t, db, owner, 80.0)
	idParam := gin.Param{Key: "id", Value: strconv.Itoa(int(hotel.ID))}

	w := performAs(t, other, UpdateHotel(db), http.MethodPut, "/hotels/1", gin.H{
		"price_per_night": 90.0,
	}, idParam)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// partial update keeps untouched fields
	w = performAs(t, owner, UpdateHotel(db), http.MethodPut, "/hotels/1", gin.H{
		"price_per_night": 90.0,
	}, idParam)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated models.Hotel
	decodeJSON(t, w, &updated)
	assert.Equal(t, 90.0, updated.PricePerNight)
	assert.Equal(t, hotel.Name, updated.Name)

	// delete stays with the admin
	w = performAs(t, owner, DeleteHotel(db), http.MethodDelete, "/hotels/1", nil, idParam)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = performAs(t, admin, DeleteHotel(db), http.MethodDelete, "/hotels/1", nil, idParam)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performAs(t, admin, DeleteHotel(db), http.MethodDelete, "/hotels/1", nil, idParam)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddAndListRooms(t *testing.T) {
	db := setupTestDB(t)
	owner := newUser(t, db, "Awa", models.RoleHotelManager)
	other := newUser(t, db, "Luc", models.RoleHotelManager)
	hotel := newHotel(t, db, owner, 80.0)
	idParam := gin.Param{Key: "id", Value: strconv.Itoa(int(hotel.ID))}

	w := performAs(t, other, AddRoom(db), http.MethodPost, "/hotels/1/rooms", gin.H{
		"room_number":     "101",
		"capacity":        2,
		"price_per_night": 60.0,
	}, idParam)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = performAs(t, owner, AddRoom(db), http.MethodPost, "/hotels/1/rooms", gin.H{
		"room_number":     "101",
		"capacity":        2,
		"price_per_night": 60.0,
	}, idParam)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = performAs(t, owner, ListRooms(db), http.MethodGet, "/hotels/1/rooms", nil, idParam)
	require.Equal(t, http.StatusOK, w.Code)
	var rooms []models.Room
	decodeJSON(t, w, &rooms)
	require.Len(t, rooms, 1)
	assert.Equal(t, "101", rooms[0].RoomNumber)
}
