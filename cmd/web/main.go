package main

import (
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/faizaniiiking/Ecommerce/internal/config"
	apphttp "github.com/faizaniiiking/Ecommerce/internal/http"
	"github.com/faizaniiiking/Ecommerce/internal/modules/orders"
	"github.com/faizaniiiking/Ecommerce/internal/modules/products"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&products.Product{}, &orders.Order{}, &orders.OrderItem{}); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	r := apphttp.NewRouter(logger, db, cfg)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
