package main

import (
	"fmt"
	"log"

	"food_ordering/internal/config"
	"food_ordering/internal/database"
	"food_ordering/internal/models"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.OrderItem{},
		&models.Order{},
		&models.MenuItem{},
		&models.Category{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Create tables with proper schema
	fmt.Println("Creating tables...")
	err = db.AutoMigrate(
		&models.Category{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Load default catalog
	fmt.Println("Seeding default catalog...")
	if err := database.Seed(db); err != nil {
		log.Fatal("Failed to seed catalog:", err)
	}

	fmt.Println("Database initialization completed successfully!")
}
