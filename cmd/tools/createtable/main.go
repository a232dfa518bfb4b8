// Command createtable creates or updates the database schema. Intended for
// local setup; cmd/web also migrates on boot.
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/faizaniiiking/Ecommerce/internal/modules/orders"
	"github.com/faizaniiiking/Ecommerce/internal/modules/products"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&products.Product{}, &orders.Order{}, &orders.OrderItem{}); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	log.Println("schema up to date")
}
