package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/senga-cyber/facilite-app2/models"
	"github.com/senga-cyber/facilite-app2/utils"
)

// CreateUser creates a user with an explicit role. Admin only; clients go
// through /auth/register/client.
func CreateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role, ok := currentUser(c)
		if !ok {
			return
		}
		if !requireRoles(c, role, models.RoleAdmin) {
			return
		}

		var input struct {
			Name        string  `json:"name" binding:"required"`
			PhoneNumber string  `json:"phone_number" binding:"required"`
			Email       *string `json:"email"`
			Password    string  `json:"password"`
			Role        string  `json:"role" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !hasRole(input.Role, models.RoleClient, models.RoleRestaurantManager, models.RoleHotelManager, models.RoleDeliveryPerson, models.RoleAdmin) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
			return
		}

		var existing models.User
		if err := db.Where("phone_number = ?", input.PhoneNumber).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
			return
		}

		user := models.User{
			Name:        input.Name,
			PhoneNumber: input.PhoneNumber,
			Email:       input.Email,
			Role:        input.Role,
			IsActive:    true,
		}
		if input.Password != "" {
			hashed, err := utils.HashPassword(input.Password)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
				return
			}
			user.Password = hashed
		}

		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

// GetAllUsers lists users; admin only.
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role, ok := currentUser(c)
		if !ok {
			return
		}
		if !requireRoles(c, role, models.RoleAdmin) {
			return
		}

		var users []models.User
		if err := db.Order("created_at desc").Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// ListCouriers lists delivery_person users for dispatch screens.
func ListCouriers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role, ok := currentUser(c)
		if !ok {
			return
		}
		if !requireRoles(c, role, models.RoleAdmin, models.RoleRestaurantManager) {
			return
		}

		var couriers []models.User
		if err := db.Where("role = ? AND is_active = ?", models.RoleDeliveryPerson, true).Find(&couriers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch couriers"})
			return
		}
		c.JSON(http.StatusOK, couriers)
	}
}
