package main

import (
	"log"

	"gorm.io/gorm"

	"github.com/senga-cyber/facilite-app2/config"
	"github.com/senga-cyber/facilite-app2/models"
	"github.com/senga-cyber/facilite-app2/routes"
	"github.com/senga-cyber/facilite-app2/utils"
)

func main() {
	config.Load()
	config.ConnectDatabase()
	db := config.DB

	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	utils.SeedAdmin(db)

	r := routes.SetupRouter(db)
	addr := ":" + config.C.Port
	log.Printf("server running on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{}, &models.RefreshToken{},
		&models.Restaurant{}, &models.Menu{},
		&models.Hotel{}, &models.Room{}, &models.Reservation{},
		&models.Order{}, &models.OrderItem{},
		&models.Payment{}, &models.Delivery{},
	)
}
