package configs

import (
	"backend/entity"
	"backend/pkg/money"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin makes sure one staff account exists so the admin surface is
// reachable on a fresh database.
func SeedAdmin() error {
	var cnt int64
	if err := db.Model(&entity.User{}).
		Where("role = ?", entity.RoleAdminStaff).
		Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}

	email := getEnv("ADMIN_EMAIL", "admin@restaurant.local")
	password := getEnv("ADMIN_PASSWORD", "admin123")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username: getEnv("ADMIN_USERNAME", "admin"),
		Email:    email,
		Password: string(hash),
		Role:     entity.RoleAdminStaff,
	}
	return db.Create(&admin).Error
}

// SeedCatalog drops a small starter menu into an empty catalog so the
// mobile client has something to show in development.
func SeedCatalog() error {
	var cnt int64
	if err := db.Model(&entity.Category{}).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}

	burgers := entity.Category{Name: "Burgers", Description: "House burgers", Active: true}
	drinks := entity.Category{Name: "Drinks", Description: "Cold and hot drinks", Active: true}
	if err := db.Create(&burgers).Error; err != nil {
		return err
	}
	if err := db.Create(&drinks).Error; err != nil {
		return err
	}

	items := []entity.MenuItem{
		{CategoryID: burgers.ID, Name: "Classic Burger", Description: "Beef, lettuce, tomato, cheese", Price: money.FromFloat(12.99), Available: true},
		{CategoryID: burgers.ID, Name: "Double Burger", Description: "Double beef, double cheese", Price: money.FromFloat(16.50), Available: true},
		{CategoryID: drinks.ID, Name: "Lemonade", Description: "Fresh squeezed", Price: money.FromFloat(3.50), Available: true},
	}
	return db.Create(&items).Error
}
