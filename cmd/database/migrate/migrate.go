package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"nutricart-backend/entities"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CatalogFood{}); err != nil {
		log.Fatalf("Error migrating catalog food database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CatalogMeal{}); err != nil {
		log.Fatalf("Error migrating catalog meal database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Meal{}); err != nil {
		log.Fatalf("Error migrating meal database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MealEntry{}); err != nil {
		log.Fatalf("Error migrating meal entry database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
