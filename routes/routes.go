package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/senga-cyber/facilite-app2/config"
	"github.com/senga-cyber/facilite-app2/controllers"
	"github.com/senga-cyber/facilite-app2/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// QR artifacts are served from here until redeemed
	r.Static("/static", config.C.StaticDir)

	auth := r.Group("/auth")
	{
		auth.POST("/register/client", controllers.RegisterClient(db))
		auth.POST("/register/manager", middlewares.AuthMiddleware(), controllers.RegisterManager(db))
		auth.POST("/login/client", controllers.LoginClient(db))
		auth.POST("/login/manager", controllers.LoginManager(db))
		auth.POST("/refresh", controllers.RefreshTokenHandler(db))
		auth.POST("/logout", controllers.LogoutHandler(db))
	}

	users := r.Group("/users", middlewares.AuthMiddleware())
	{
		users.POST("", controllers.CreateUser(db))
		users.GET("", controllers.GetAllUsers(db))
		users.GET("/couriers", controllers.ListCouriers(db))
	}

	restaurants := r.Group("/restaurants")
	{
		restaurants.GET("", controllers.ListRestaurants(db))
		restaurants.GET("/:id/menu", controllers.ListMenu(db))
		restaurants.POST("", middlewares.AuthMiddleware(), controllers.CreateRestaurant(db))
		restaurants.POST("/:id/menu", middlewares.AuthMiddleware(), controllers.AddMenu(db))
	}

	hotels := r.Group("/hotels")
	{
		hotels.GET("", controllers.GetHotels(db))
		hotels.GET("/:id", controllers.GetHotel(db))
		hotels.GET("/:id/rooms", controllers.ListRooms(db))
		hotels.POST("", middlewares.AuthMiddleware(), controllers.CreateHotel(db))
		hotels.PUT("/:id", middlewares.AuthMiddleware(), controllers.UpdateHotel(db))
		hotels.DELETE("/:id", middlewares.AuthMiddleware(), controllers.DeleteHotel(db))
		hotels.POST("/:id/rooms", middlewares.AuthMiddleware(), controllers.AddRoom(db))
		hotels.POST("/:id/reservations", middlewares.AuthMiddleware(), controllers.CreateHotelReservation(db))
		hotels.GET("/:id/reservations", middlewares.AuthMiddleware(), controllers.ListHotelReservations(db))
	}

	reservations := r.Group("/reservations", middlewares.AuthMiddleware())
	{
		reservations.POST("", controllers.CreateReservation(db))
		reservations.GET("/me", controllers.MyReservations(db))
		reservations.GET("", controllers.AllReservations(db))
		reservations.POST("/:id/update-location", controllers.UpdateReservationLocation(db))
		reservations.GET("/:id/track", controllers.TrackReservation(db))
	}

	orders := r.Group("/orders", middlewares.AuthMiddleware())
	{
		orders.POST("", controllers.CreateOrder(db))
		orders.GET("/me", controllers.MyOrders(db))
		orders.GET("", controllers.AllOrders(db))
		orders.GET("/nearby/:restaurantId", controllers.NearbyOrders(db))
		orders.POST("/:id/update-location", controllers.UpdateOrderLocation(db))
		orders.GET("/:id/track", controllers.TrackOrder(db))
	}

	payments := r.Group("/payments", middlewares.AuthMiddleware())
	{
		payments.POST("", controllers.CreatePayment(db))
		payments.POST("/validate", controllers.ValidatePayment(db))
		payments.POST("/simulate", controllers.SimulateMobileMoneyPayment())
		payments.GET("/me", controllers.MyPayments(db))
		payments.GET("", controllers.AllPayments(db))
		payments.GET("/commissions/stats", controllers.CommissionStats(db))
		payments.GET("/commissions/total", controllers.TotalCommissions(db))
		payments.GET("/:id", controllers.GetPayment(db))
	}

	deliveries := r.Group("/deliveries", middlewares.AuthMiddleware())
	{
		deliveries.POST("", controllers.AssignDelivery(db))
		deliveries.GET("/me", controllers.MyDeliveries(db))
		deliveries.GET("/order/:orderId", controllers.GetDeliveryByOrder(db))
		deliveries.PATCH("/:id", controllers.UpdateDelivery(db))
		deliveries.GET("/:id", controllers.GetDelivery(db))
		deliveries.DELETE("/:id", controllers.DeleteDelivery(db))
	}

	location := r.Group("/location")
	{
		location.GET("/distance", controllers.Distance())
	}
	r.GET("/nearby", controllers.Nearby(db))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to facilite"})
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
	})

	return r
}
