package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/senga-cyber/facilite-app2/models"
	"github.com/senga-cyber/facilite-app2/utils"
)

// CreateOrder places a restaurant order for the caller. The total is priced
// server-side from the menu rows; items must belong to the restaurant.
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _, ok := currentUser(c)
		if !ok {
			return
		}

		var input struct {
			RestaurantID uint `json:"restaurant_id" binding:"required"`
			Items        []struct {
				MenuID   uint `json:"menu_id" binding:"required"`
				Quantity int  `json:"quantity" binding:"required,gt=0"`
			} `json:"items" binding:"required,min=1"`
			Latitude  *float64 `json:"latitude"`
			Longitude *float64 `json:"longitude"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var restaurant models.Restaurant
		if err := db.First(&restaurant, input.RestaurantID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}

		tx := db.Begin()
		defer func() {
			if r := recover(); r != nil {
				tx.Rollback()
			}
		}()

		total := 0.0
		items := make([]models.OrderItem, 0, len(input.Items))
		for _, it := range input.Items {
			var menu models.Menu
			if err := tx.Where("id = ? AND restaurant_id = ?", it.MenuID, restaurant.ID).First(&menu).Error; err != nil {
				tx.Rollback()
				c.JSON(http.StatusNotFound, gin.H{"error": "Menu item " + strconv.Itoa(int(it.MenuID)) + " not found for this restaurant"})
				return
			}
			total += menu.Price * float64(it.Quantity)
			items = append(items, models.OrderItem{MenuID: menu.ID, Quantity: it.Quantity})
		}

		order := models.Order{
			UserID:       userID,
			RestaurantID: restaurant.ID,
			Total:        total,
			Status:       models.OrderStatusPending,
			Latitude:     input.Latitude,
			Longitude:    input.Longitude,
		}
		if err := tx.Create(&order).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save order items"})
			return
		}

		tx.Commit()

		var full models.Order
		if err := db.Preload("Items.Menu").First(&full, order.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order details"})
			return
		}
		c.JSON(http.StatusCreated, full)
	}
}

func MyOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _, ok := currentUser(c)
		if !ok {
			return
		}

		var orders []models.Order
		if err := db.Preload("Items.Menu").Where("user_id = ?", userID).Order("created_at desc").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func AllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role, ok := currentUser(c)
		if !ok {
			return
		}
		if !requireRoles(c, role, models.RoleAdmin) {
			return
		}

		var orders []models.Order
		if err := db.Preload("Items.Menu").Order("created_at desc").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// NearbyOrders lists a restaurant's orders within radius km of it.
func NearbyOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var restaurant models.Restaurant
		if err := db.First(&restaurant, c.Param("restaurantId")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}

		radius := 5.0
		if raw := c.Query("radius"); raw != "" {
			parsed, err := strconv.ParseFloat(raw, 64)
			if err != nil || parsed <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid radius"})
				return
			}
			radius = parsed
		}

		var orders []models.Order
		if err := db.Where("restaurant_id = ?", restaurant.ID).Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		nearby := make([]models.Order, 0)
		for _, order := range orders {
			if order.Latitude == nil || order.Longitude == nil || restaurant.Latitude == nil || restaurant.Longitude == nil {
				continue
			}
			dist := utils.HaversineKm(*order.Latitude, *order.Longitude, *restaurant.Latitude, *restaurant.Longitude)
			if dist <= radius {
				nearby = append(nearby, order)
			}
		}
		c.JSON(http.StatusOK, nearby)
	}
}

// UpdateOrderLocation records the client's current position on their own
// order.
func UpdateOrderLocation(db *gorm.DB) gin.HandlerFunc {
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

		var order models.Order
		if err := db.Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&order).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found or not yours"})
			return
		}

		order.Latitude = &input.Latitude
		order.Longitude = &input.Longitude
		if err := db.Save(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update location"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"order_id":  order.ID,
			"latitude":  input.Latitude,
			"longitude": input.Longitude,
		})
	}
}

// TrackOrder returns the client's and restaurant's positions.
func TrackOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.First(&order, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		resp := gin.H{
			"order_id":       order.ID,
			"client_lat":     order.Latitude,
			"client_lon":     order.Longitude,
			"restaurant_lat": nil,
			"restaurant_lon": nil,
		}
		var restaurant models.Restaurant
		if err := db.First(&restaurant, order.RestaurantID).Error; err == nil {
			resp["restaurant_lat"] = restaurant.Latitude
			resp["restaurant_lon"] = restaurant.Longitude
		}
		c.JSON(http.StatusOK, resp)
	}
}
