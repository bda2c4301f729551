package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/senga-cyber/facilite-app2/models"
)

// AssignDelivery attaches a courier to an order. Admin may assign any order;
// a restaurant_manager only orders of restaurants they own. One delivery per
// order: the pre-check gives a friendly message and the unique index on
// deliveries.order_id settles races.
func AssignDelivery(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role, ok := currentUser(c)
		if !ok {
			return
		}
		if !requireRoles(c, role, models.RoleAdmin, models.RoleRestaurantManager) {
			return
		}

		var input struct {
			OrderID          uint     `json:"order_id" binding:"required"`
			DeliveryPersonID uint     `json:"delivery_person_id" binding:"required"`
			Status           string   `json:"status"`
			Latitude         *float64 `json:"latitude"`
			Longitude        *float64 `json:"longitude"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		status := input.Status
		if status == "" {
			status = models.DeliveryPending
		}
		if !models.ValidDeliveryStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown delivery status"})
			return
		}

		var order models.Order
		if err := db.First(&order, input.OrderID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if order.Status == models.OrderStatusCancelled || order.Status == models.OrderStatusCompleted {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot assign a delivery to this order"})
			return
		}

		if hasRole(role, models.RoleRestaurantManager) {
			var restaurant models.Restaurant
			if err := db.First(&restaurant, order.RestaurantID).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
				return
			}
			if restaurant.OwnerID != userID {
				c.JSON(http.StatusForbidden, gin.H{"error": "You can only assign orders of your own restaurants"})
				return
			}
		}

		var courier models.User
		if err := db.First(&courier, input.DeliveryPersonID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Courier not found"})
			return
		}
		if courier.Role != models.RoleDeliveryPerson {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Selected user does not have the delivery_person role"})
			return
		}

		var existing models.Delivery
		if err := db.Where("order_id = ?", order.ID).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "A delivery is already assigned to this order"})
			return
		}

		delivery := models.Delivery{
			OrderID:          order.ID,
			DeliveryPersonID: courier.ID,
			Status:           status,
			Latitude:         input.Latitude,
			Longitude:        input.Longitude,
		}
		if err := db.Create(&delivery).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "A delivery is already assigned to this order"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign delivery"})
			return
		}
		c.JSON(http.StatusCreated, delivery)
	}
}

// MyDeliveries lists the caller's assigned deliveries; admin sees all.
func MyDeliveries(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role, ok := currentUser(c)
		if !ok {
			return
		}
		if !requireRoles(c, role, models.RoleDeliveryPerson, models.RoleAdmin) {
			return
		}

		var deliveries []models.Delivery
		query := db.Order("created_at desc")
		if !hasRole(role, models.RoleAdmin) {
			query = query.Where("delivery_person_id = ?", userID)
		}
		if err := query.Find(&deliveries).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch deliveries"})
			return
		}
		c.JSON(http.StatusOK, deliveries)
	}
}

// GetDeliveryByOrder returns the delivery tracking an order; admin, the
// client who placed the order, or the owning restaurant manager.
func GetDeliveryByOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role, ok := currentUser(c)
		if !ok {
			return
		}

		var delivery models.Delivery
		if err := db.Where("order_id = ?", c.Param("orderId")).First(&delivery).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No delivery for this order"})
			return
		}

		var order models.Order
		if err := db.First(&order, delivery.OrderID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		isAdmin := hasRole(role, models.RoleAdmin)
		isClient := order.UserID == userID
		isOwner := false
		if hasRole(role, models.RoleRestaurantManager) {
			var restaurant models.Restaurant
			if err := db.First(&restaurant, order.RestaurantID).Error; err == nil {
				isOwner = restaurant.OwnerID == userID
			}
		}
		if !isAdmin && !isClient && !isOwner {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.JSON(http.StatusOK, delivery)
	}
}

// UpdateDelivery applies a partial status/position update; admin or the
// assigned courier. Any of the five statuses is accepted; a transition
// outside the configured set is only logged.
func UpdateDelivery(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role, ok := currentUser(c)
		if !ok {
			return
		}

		var delivery models.Delivery
		if err := db.First(&delivery, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Delivery not found"})
			return
		}

		isAdmin := hasRole(role, models.RoleAdmin)
		isAssigned := delivery.DeliveryPersonID == userID
		if !isAdmin && !isAssigned {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only the admin or the assigned courier can update this delivery"})
			return
		}

		var input struct {
			Status    *string  `json:"status"`
			Latitude  *float64 `json:"latitude"`
			Longitude *float64 `json:"longitude"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.Status != nil {
			if !models.ValidDeliveryStatus(*input.Status) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown delivery status"})
				return
			}
			if *input.Status != delivery.Status && !models.DeliveryTransitionAllowed(delivery.Status, *input.Status) {
				log.Printf("delivery %d: unusual transition %s -> %s by user %d", delivery.ID, delivery.Status, *input.Status, userID)
			}
			delivery.Status = *input.Status
		}
		if input.Latitude != nil {
			delivery.Latitude = input.Latitude
		}
		if input.Longitude != nil {
			delivery.Longitude = input.Longitude
		}

		if err := db.Save(&delivery).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update delivery"})
			return
		}
		c.JSON(http.StatusOK, delivery)
	}
}

// GetDelivery returns one delivery; admin, the assigned courier, the order's
// client, or the owning restaurant manager.
func GetDelivery(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role, ok := currentUser(c)
		if !ok {
			return
		}

		var delivery models.Delivery
		if err := db.First(&delivery, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Delivery not found"})
			return
		}

		isAdmin := hasRole(role, models.RoleAdmin)
		isAssigned := delivery.DeliveryPersonID == userID
		isClient := false
		isOwner := false

		var order models.Order
		if err := db.First(&order, delivery.OrderID).Error; err == nil {
			isClient = order.UserID == userID
			if hasRole(role, models.RoleRestaurantManager) {
				var restaurant models.Restaurant
				if err := db.First(&restaurant, order.RestaurantID).Error; err == nil {
					isOwner = restaurant.OwnerID == userID
				}
			}
		}

		if !isAdmin && !isAssigned && !isClient && !isOwner {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.JSON(http.StatusOK, delivery)
	}
}

// DeleteDelivery removes a delivery; admin only.
func DeleteDelivery(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role, ok := currentUser(c)
		if !ok {
			return
		}
		if !requireRoles(c, role, models.RoleAdmin) {
			return
		}

		var delivery models.Delivery
		if err := db.First(&delivery, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Delivery not found"})
			return
		}
		if err := db.Delete(&delivery).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete delivery"})
			return
		}
		c.JSON(http.StatusNoContent, nil)
	}
}
