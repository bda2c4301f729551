package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/senga-cyber/facilite-app2/config"
	"github.com/senga-cyber/facilite-app2/models"
	"github.com/senga-cyber/facilite-app2/utils"
)

type paymentResponse struct {
	models.Payment
	QRURL string `json:"qr_url,omitempty"`
}

func withQRURL(p models.Payment) paymentResponse {
	resp := paymentResponse{Payment: p}
	if p.TransactionCode != nil && p.QRPath != nil {
		resp.QRURL = "/static/qrcodes/" + *p.TransactionCode + ".png"
	}
	return resp
}

// CreatePayment records a simulated settlement for exactly one order or
// reservation, then issues the transaction code and QR artifact in a second
// phase. No gateway is called; status is recorded as "success".
func CreatePayment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _, ok := currentUser(c)
		if !ok {
			return
		}

		var input struct {
			OrderID       *uint   `json:"order_id"`
			ReservationID *uint   `json:"reservation_id"`
			Amount        float64 `json:"amount" binding:"required,gt=0"`
			PaymentMethod string  `json:"payment_method" binding:"required"`
			Discount      float64 `json:"discount"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// exactly one of order/reservation, never both, never neither
		if (input.OrderID == nil) == (input.ReservationID == nil) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A payment must reference exactly one order or reservation"})
			return
		}
		if !utils.IsSupportedMethod(input.PaymentMethod) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported payment method"})
			return
		}

		if input.OrderID != nil {
			var order models.Order
			if err := db.First(&order, *input.OrderID).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
		}
		if input.ReservationID != nil {
			var reservation models.Reservation
			if err := db.First(&reservation, *input.ReservationID).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
				return
			}
		}

		commission, err := utils.ComputeCommission(input.Amount, input.PaymentMethod)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported payment method"})
			return
		}

		payment := models.Payment{
			UserID:        userID,
			OrderID:       input.OrderID,
			ReservationID: input.ReservationID,
			Amount:        input.Amount,
			NetAmount:     input.Amount - commission,
			Commission:    commission,
			PaymentMethod: input.PaymentMethod,
			Status:        "success",
			IsUsed:        false,
			Discount:      input.Discount,
		}
		if err := db.Create(&payment).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment"})
			return
		}

		// second phase: issue the code and render the artifact, then persist
		// both back onto the row
		txCode := utils.EnsureTxCode()
		payload := utils.QRPayload{
			TransactionCode: txCode,
			UserID:          userID,
			OrderID:         input.OrderID,
			ReservationID:   input.ReservationID,
			Ts:              time.Now().UTC().Unix(),
		}
		qrDir := filepath.Join(config.C.StaticDir, "qrcodes")
		qrPath, err := utils.GenerateQRPNG(payload, qrDir, txCode+".png")
		if err != nil {
			log.Printf("payment %d: QR generation failed: %v", payment.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
			return
		}

		payment.TransactionCode = &txCode
		payment.QRPath = &qrPath
		if err := db.Save(&payment).Error; err != nil {
			if removeErr := os.Remove(qrPath); removeErr != nil {
				log.Printf("payment %d: orphan QR cleanup failed: %v", payment.ID, removeErr)
			}
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "Transaction code already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to finalize payment"})
			return
		}

		c.JSON(http.StatusCreated, withQRURL(payment))
	}
}

// ValidatePayment redeems a scanned QR code. Staff only; a code redeems
// exactly once.
func ValidatePayment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role, ok := currentUser(c)
		if !ok {
			return
		}
		if !requireRoles(c, role, models.RoleAdmin, models.RoleRestaurantManager, models.RoleHotelManager) {
			return
		}

		var input struct {
			TransactionCode string `json:"transaction_code" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var payment models.Payment
		if err := db.Where("transaction_code = ?", input.TransactionCode).First(&payment).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown transaction"})
			return
		}
		if payment.IsUsed {
			c.JSON(http.StatusBadRequest, gin.H{"error": "QR already redeemed"})
			return
		}

		if err := db.Model(&payment).Update("is_used", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to redeem payment"})
			return
		}

		// Best-effort cleanup: redemption is authoritative on is_used, not on
		// the artifact's existence.
		if payment.QRPath != nil {
			if err := os.Remove(*payment.QRPath); err != nil && !os.IsNotExist(err) {
				log.Printf("payment %d: QR artifact removal failed: %v", payment.ID, err)
			} else if err := db.Model(&payment).Update("qr_path", nil).Error; err != nil {
				log.Printf("payment %d: clearing qr_path failed: %v", payment.ID, err)
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":     "ok",
			"message":    "QR validated, access granted",
			"payment_id": payment.ID,
		})
	}
}

func MyPayments(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _, ok := currentUser(c)
		if !ok {
			return
		}

		var payments []models.Payment
		if err := db.Where("user_id = ?", userID).Order("created_at desc").Find(&payments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
			return
		}
		c.JSON(http.StatusOK, payments)
	}
}

func AllPayments(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role, ok := currentUser(c)
		if !ok {
			return
		}
		if !requireRoles(c, role, models.RoleAdmin) {
			return
		}

		var payments []models.Payment
		if err := db.Order("created_at desc").Find(&payments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
			return
		}
		c.JSON(http.StatusOK, payments)
	}
}

// GetPayment returns one payment; admin or the original payer.
func GetPayment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role, ok := currentUser(c)
		if !ok {
			return
		}

		var payment models.Payment
		if err := db.First(&payment, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		if !hasRole(role, models.RoleAdmin) && payment.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.JSON(http.StatusOK, withQRURL(payment))
	}
}

// CommissionStats returns per-calendar-month commission totals; admin only.
func CommissionStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role, ok := currentUser(c)
		if !ok {
			return
		}
		if !requireRoles(c, role, models.RoleAdmin) {
			return
		}

		var rows []struct {
			CreatedAt  time.Time
			Commission float64
		}
		if err := db.Model(&models.Payment{}).Select("created_at, commission").Scan(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch commission stats"})
			return
		}

		type monthStat struct {
			Month           string  `json:"month"`
			TotalCommission float64 `json:"total_commission"`
			PaymentCount    int64   `json:"payment_count"`
		}
		byMonth := map[string]*monthStat{}
		for _, r := range rows {
			key := r.CreatedAt.UTC().Format("2006-01")
			if byMonth[key] == nil {
				byMonth[key] = &monthStat{Month: key}
			}
			byMonth[key].TotalCommission += r.Commission
			byMonth[key].PaymentCount++
		}

		stats := make([]monthStat, 0, len(byMonth))
		for _, s := range byMonth {
			stats = append(stats, *s)
		}
		sort.Slice(stats, func(i, j int) bool { return stats[i].Month < stats[j].Month })

		c.JSON(http.StatusOK, stats)
	}
}

// TotalCommissions returns the all-time commission total and count; admin
// only.
func TotalCommissions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role, ok := currentUser(c)
		if !ok {
			return
		}
		if !requireRoles(c, role, models.RoleAdmin) {
			return
		}

		var total float64
		if err := db.Model(&models.Payment{}).Select("COALESCE(SUM(commission), 0)").Scan(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch commission total"})
			return
		}
		var count int64
		if err := db.Model(&models.Payment{}).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count payments"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"total_commissions": total,
			"payment_count":     count,
		})
	}
}

// SimulateMobileMoneyPayment exposes the mobile-money simulation leg.
func SimulateMobileMoneyPayment() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Amount      float64 `json:"amount" binding:"required,gt=0"`
			PhoneNumber string  `json:"phone_number" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, utils.SimulateMobileMoney(input.Amount, input.PhoneNumber))
	}
}
