package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/senga-cyber/facilite-app2/models"
)

// CreateHotel registers a hotel under an existing hotel_manager; admin only.
func CreateHotel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role, ok := currentUser(c)
		if !ok {
			return
		}
		if !requireRoles(c, role, models.RoleAdmin) {
			return
		}

		var input struct {
			Name          string   `json:"name" binding:"required"`
			Address       string   `json:"address" binding:"required"`
			City          string   `json:"city"`
			PricePerNight float64  `json:"price_per_night" binding:"required,gt=0"`
			Latitude      *float64 `json:"latitude"`
			Longitude     *float64 `json:"longitude"`
			ManagerID     uint     `json:"manager_id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var manager models.User
		if err := db.Where("id = ? AND role = ?", input.ManagerID, models.RoleHotelManager).First(&manager).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Manager not found or has the wrong role"})
			return
		}

		hotel := models.Hotel{
			OwnerID:       manager.ID,
			Name:          input.Name,
			Address:       input.Address,
			City:          input.City,
			PricePerNight: input.PricePerNight,
			Latitude:      input.Latitude,
			Longitude:     input.Longitude,
		}
		if err := db.Create(&hotel).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create hotel"})
			return
		}
		c.JSON(http.StatusCreated, hotel)
	}
}

func GetHotels(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var hotels []models.Hotel
		if err := db.Find(&hotels).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch hotels"})
			return
		}
		c.JSON(http.StatusOK, hotels)
	}
}

func GetHotel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var hotel models.Hotel
		if err := db.First(&hotel, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
			return
		}
		c.JSON(http.StatusOK, hotel)
	}
}

// UpdateHotel applies a partial update; admin or the owning manager.
func UpdateHotel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role, ok := currentUser(c)
		if !ok {
			return
		}

		var hotel models.Hotel
		if err := db.First(&hotel, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
			return
		}

		isAdmin := hasRole(role, models.RoleAdmin)
		isOwner := hasRole(role, models.RoleHotelManager) && hotel.OwnerID == userID
		if !isAdmin && !isOwner {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only the admin or the owning manager can edit this hotel"})
			return
		}

		var input struct {
			Name          *string  `json:"name"`
			Address       *string  `json:"address"`
			City          *string  `json:"city"`
			PricePerNight *float64 `json:"price_per_night"`
			Latitude      *float64 `json:"latitude"`
			Longitude     *float64 `json:"longitude"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.Name != nil {
			hotel.Name = *input.Name
		}
		if input.Address != nil {
			hotel.Address = *input.Address
		}
		if input.City != nil {
			hotel.City = *input.City
		}
		if input.PricePerNight != nil {
			hotel.PricePerNight = *input.PricePerNight
		}
		if input.Latitude != nil {
			hotel.Latitude = input.Latitude
		}
		if input.Longitude != nil {
			hotel.Longitude = input.Longitude
		}

		if err := db.Save(&hotel).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update hotel"})
			return
		}
		c.JSON(http.StatusOK, hotel)
	}
}

func DeleteHotel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role, ok := currentUser(c)
		if !ok {
			return
		}
		if !requireRoles(c, role, models.RoleAdmin) {
			return
		}

		var hotel models.Hotel
		if err := db.First(&hotel, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
			return
		}
		if err := db.Delete(&hotel).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete hotel"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Hotel deleted successfully"})
	}
}

// AddRoom adds a room to a hotel; admin or the owning manager.
func AddRoom(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role, ok := currentUser(c)
		if !ok {
			return
		}

		var hotel models.Hotel
		if err := db.First(&hotel, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
			return
		}

		isAdmin := hasRole(role, models.RoleAdmin)
		isOwner := hasRole(role, models.RoleHotelManager) && hotel.OwnerID == userID
		if !isAdmin && !isOwner {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only the admin or the owning manager can add rooms"})
			return
		}

		var input struct {
			RoomNumber    string  `json:"room_number" binding:"required"`
			Capacity      int     `json:"capacity" binding:"required,gt=0"`
			PricePerNight float64 `json:"price_per_night" binding:"required,gt=0"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		room := models.Room{
			HotelID:       hotel.ID,
			RoomNumber:    input.RoomNumber,
			Capacity:      input.Capacity,
			PricePerNight: input.PricePerNight,
		}
		if err := db.Create(&room).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add room"})
			return
		}
		c.JSON(http.StatusCreated, room)
	}
}

func ListRooms(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rooms []models.Room
		if err := db.Where("hotel_id = ?", c.Param("id")).Find(&rooms).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch rooms"})
			return
		}
		c.JSON(http.StatusOK, rooms)
	}
}

// CreateHotelReservation books a stay at the hotel in the path for the
// caller; pricing mirrors CreateReservation.
func CreateHotelReservation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _, ok := currentUser(c)
		if !ok {
			return
		}

		var hotel models.Hotel
		if err := db.First(&hotel, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
			return
		}

		var input struct {
			CheckIn   time.Time `json:"check_in" binding:"required"`
			CheckOut  time.Time `json:"check_out" binding:"required"`
			Latitude  *float64  `json:"latitude"`
			Longitude *float64  `json:"longitude"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		nights := int(input.CheckOut.Sub(input.CheckIn).Hours() / 24)
		if nights <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Check-out must be after check-in"})
			return
		}

		reservation := models.Reservation{
			UserID:     userID,
			HotelID:    hotel.ID,
			CheckIn:    input.CheckIn,
			CheckOut:   input.CheckOut,
			TotalPrice: float64(nights) * hotel.PricePerNight,
			Latitude:   input.Latitude,
			Longitude:  input.Longitude,
		}
		if err := db.Create(&reservation).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reservation"})
			return
		}
		c.JSON(http.StatusCreated, reservation)
	}
}

// ListHotelReservations lists a hotel's reservations; admin or the owning
// manager.
func ListHotelReservations(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role, ok := currentUser(c)
		if !ok {
			return
		}

		var hotel models.Hotel
		if err := db.First(&hotel, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
			return
		}

		isAdmin := hasRole(role, models.RoleAdmin)
		isOwner := hasRole(role, models.RoleHotelManager) && hotel.OwnerID == userID
		if !isAdmin && !isOwner {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		var reservations []models.Reservation
		if err := db.Where("hotel_id = ?", hotel.ID).Find(&reservations).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reservations"})
			return
		}
		c.JSON(http.StatusOK, reservations)
	}
}
