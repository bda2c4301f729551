package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/senga-cyber/facilite-app2/models"
	"github.com/senga-cyber/facilite-app2/utils"
)

// RegisterClient handles open client signup. Password is optional: clients
// may authenticate by phone number alone.
func RegisterClient(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name        string  `json:"name" binding:"required"`
			PhoneNumber string  `json:"phone_number" binding:"required"`
			Email       *string `json:"email"`
			Password    string  `json:"password"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var existing models.User
		if err := db.Where("phone_number = ?", input.PhoneNumber).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number already registered"})
			return
		}

		user := models.User{
			Name:        input.Name,
			PhoneNumber: input.PhoneNumber,
			Email:       input.Email,
			Role:        models.RoleClient,
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

// RegisterManager creates staff accounts; admin only (enforced at the route).
func RegisterManager(db *gorm.DB) gin.HandlerFunc {
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
			Password    string  `json:"password" binding:"required,min=6"`
			Role        string  `json:"role" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if !hasRole(input.Role, models.RoleRestaurantManager, models.RoleHotelManager, models.RoleDeliveryPerson) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role for staff account"})
			return
		}

		var existing models.User
		if err := db.Where("phone_number = ?", input.PhoneNumber).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number already registered"})
			return
		}

		hashed, err := utils.HashPassword(input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		user := models.User{
			Name:        input.Name,
			PhoneNumber: input.PhoneNumber,
			Email:       input.Email,
			Password:    hashed,
			Role:        input.Role,
			IsActive:    true,
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		c.JSON(http.StatusCreated, user)
	}
}

// LoginClient authenticates a client by phone number alone.
func LoginClient(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			PhoneNumber string `json:"phone_number" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.Where("phone_number = ? AND role = ?", input.PhoneNumber, models.RoleClient).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Phone number not recognized as a client"})
			return
		}
		if !user.IsActive {
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is deactivated"})
			return
		}

		issueSession(c, db, &user)
	}
}

// LoginManager authenticates staff (managers, couriers, admin) with a
// phone number and password.
func LoginManager(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			PhoneNumber string `json:"phone_number" binding:"required"`
			Password    string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.Where("phone_number = ?", input.PhoneNumber).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		if user.Password == "" || !utils.CheckPasswordHash(input.Password, user.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		if !hasRole(user.Role, models.RoleRestaurantManager, models.RoleHotelManager, models.RoleDeliveryPerson, models.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"error": "This role cannot log in here"})
			return
		}
		if !user.IsActive {
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is deactivated"})
			return
		}

		issueSession(c, db, &user)
	}
}

func issueSession(c *gin.Context, db *gorm.DB, user *models.User) {
	token, err := utils.CreateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating access token"})
		return
	}

	refreshToken, hashedToken, err := utils.GenerateRefreshToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating refresh token"})
		return
	}

	expiresAt := time.Now().Add(7 * 24 * time.Hour)
	if err := utils.SaveRefreshToken(db, user.ID, hashedToken, expiresAt); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save refresh token"})
		return
	}

	c.SetCookie("refresh_token", refreshToken, int(time.Until(expiresAt).Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"role":         user.Role,
		"user": gin.H{
			"id":           user.ID,
			"name":         user.Name,
			"phone_number": user.PhoneNumber,
		},
	})
}

func RefreshTokenHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		refreshToken, err := c.Cookie("refresh_token")
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token required"})
			return
		}

		rt, err := utils.ValidateRefreshToken(db, refreshToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
			return
		}

		var user models.User
		if err := db.First(&user, rt.UserID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User no longer exists"})
			return
		}

		accessToken, err := utils.CreateToken(user.ID, user.Role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating access token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"access_token": accessToken, "token_type": "bearer"})
	}
}

func LogoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		refreshToken, err := c.Cookie("refresh_token")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Refresh token required"})
			return
		}

		if err := utils.DeleteRefreshToken(db, refreshToken); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not logout"})
			return
		}

		c.SetCookie("refresh_token", "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}
