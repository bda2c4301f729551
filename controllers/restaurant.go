package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/senga-cyber/facilite-app2/models"
)

// CreateRestaurant registers a restaurant and hands it to an existing
// restaurant_manager; admin only.
func CreateRestaurant(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role, ok := currentUser(c)
		if !ok {
			return
		}
		if !requireRoles(c, role, models.RoleAdmin) {
			return
		}

		var input struct {
			Name        string   `json:"name" binding:"required"`
			Address     string   `json:"address"`
			Description string   `json:"description"`
			Latitude    *float64 `json:"latitude"`
			Longitude   *float64 `json:"longitude"`
			ManagerID   uint     `json:"manager_id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var manager models.User
		if err := db.Where("id = ? AND role = ?", input.ManagerID, models.RoleRestaurantManager).First(&manager).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Manager not found or has the wrong role"})
			return
		}

		restaurant := models.Restaurant{
			OwnerID:     manager.ID,
			Name:        input.Name,
			Address:     input.Address,
			Description: input.Description,
			Latitude:    input.Latitude,
			Longitude:   input.Longitude,
		}
		if err := db.Create(&restaurant).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
			return
		}
		c.JSON(http.StatusCreated, restaurant)
	}
}

func ListRestaurants(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var restaurants []models.Restaurant
		if err := db.Find(&restaurants).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch restaurants"})
			return
		}
		c.JSON(http.StatusOK, restaurants)
	}
}

// AddMenu attaches a dish to a restaurant's menu; admin or the owning
// manager.
func AddMenu(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role, ok := currentUser(c)
		if !ok {
			return
		}

		var restaurant models.Restaurant
		if err := db.First(&restaurant, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}

		isAdmin := hasRole(role, models.RoleAdmin)
		isOwner := hasRole(role, models.RoleRestaurantManager) && restaurant.OwnerID == userID
		if !isAdmin && !isOwner {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only the admin or the owning manager can edit this menu"})
			return
		}

		var input struct {
			Name        string  `json:"name" binding:"required"`
			Description string  `json:"description"`
			Category    string  `json:"category"`
			Price       float64 `json:"price" binding:"required,gt=0"`
			ImageURL    string  `json:"image_url"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		menu := models.Menu{
			RestaurantID: restaurant.ID,
			Name:         input.Name,
			Description:  input.Description,
			Category:     input.Category,
			Price:        input.Price,
			ImageURL:     input.ImageURL,
		}
		if err := db.Create(&menu).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add menu item"})
			return
		}
		c.JSON(http.StatusCreated, menu)
	}
}

func ListMenu(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var menus []models.Menu
		if err := db.Where("restaurant_id = ?", c.Param("id")).Find(&menus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu"})
			return
		}
		c.JSON(http.StatusOK, menus)
	}
}
