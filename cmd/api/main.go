package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/yasirSub/backend-mexo/internal/config"
	"github.com/yasirSub/backend-mexo/internal/db"
	"github.com/yasirSub/backend-mexo/internal/model"
	"github.com/yasirSub/backend-mexo/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	conn, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}

	if err := conn.AutoMigrate(
		&model.Seller{},
		&model.Customer{},
		&model.Category{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.Payment{},
		&model.DeliveryTracking{},
		&model.Notification{},
		&model.StoreSetting{},
	); err != nil {
		log.Fatalf("auto migrate error: %v", err)
	}

	srv := server.New(conn, cfg)

	addr := ":" + cfg.Port
	log.Printf("starting server on %s", addr)
	if err := srv.Start(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
