package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/senga-cyber/facilite-app2/models"
)

// CreateReservation books a hotel stay for the caller. Total price is
// nights * hotel.price_per_night; check_out must be after check_in.
func CreateReservation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _, ok := currentUser(c)
		if !ok {
			return
		}

		var input struct {
			HotelID   uint      `json:"hotel_id" binding:"required"`
			CheckIn   time.Time `json:"check_in" binding:"required"`
			CheckOut  time.Time `json:"check_out" binding:"required"`
			Latitude  *float64  `json:"latitude"`
			Longitude *float64  `json:"longitude"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var hotel models.Hotel
		if err := db.First(&hotel, input.HotelID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
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

func MyReservations(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _, ok := currentUser(c)
		if !ok {
			return
		}

		var reservations []models.Reservation
		if err := db.Where("user_id = ?", userID).Order("created_at desc").Find(&reservations).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reservations"})
			return
		}
		c.JSON(http.StatusOK, reservations)
	}
}

func AllReservations(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role, ok := currentUser(c)
		if !ok {
			return
		}
		if !requireRoles(c, role, models.RoleAdmin) {
			return
		}

		var reservations []models.Reservation
		if err := db.Order("created_at desc").Find(&reservations).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reservations"})
			return
		}
		c.JSON(http.StatusOK, reservations)
	}
}

// UpdateReservationLocation records the client's current position on their
// own reservation.
func UpdateReservationLocation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _, ok := currentUser(c)
		if !ok {
			return
		}

		var input struct {
			Latitude  float64 `json:"latitude" binding:"required"`
			Longitude float64 `json:"longitude" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var reservation models.Reservation
		if err := db.Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&reservation).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found or not yours"})
			return
		}

		reservation.Latitude = &input.Latitude
		reservation.Longitude = &input.Longitude
		if err := db.Save(&reservation).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update location"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":         "ok",
			"reservation_id": reservation.ID,
			"latitude":       input.Latitude,
			"longitude":      input.Longitude,
		})
	}
}

// TrackReservation returns the client's and hotel's positions.
func TrackReservation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reservation models.Reservation
		if err := db.First(&reservation, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
			return
		}

		var hotel models.Hotel
		resp := gin.H{
			"reservation_id": reservation.ID,
			"client_lat":     reservation.Latitude,
			"client_lon":     reservation.Longitude,
			"hotel_lat":      nil,
			"hotel_lon":      nil,
		}
		if err := db.First(&hotel, reservation.HotelID).Error; err == nil {
			resp["hotel_lat"] = hotel.Latitude
			resp["hotel_lon"] = hotel.Longitude
		}
		c.JSON(http.StatusOK, resp)
	}
}
