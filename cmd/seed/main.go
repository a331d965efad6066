// Command seed creates a pair of demo users so transfers can be
// exercised right after a fresh deploy.
package main

import (
	"log"

	"sops/internal/config"
	"sops/internal/models"
	"sops/internal/repositories"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if repositories.DB != nil {
			if sqlDB, err := repositories.DB.DB(); err == nil {
				sqlDB.Close()
			}
		}
	}()

	seed := []models.User{
		{
			LegalName:      "Alice Example",
			DocumentType:   models.DocumentTypeCPF,
			DocumentNumber: "11122233344",
			Email:          "alice@example.com",
			Balance:        decimal.NewFromInt(1000),
			UserType:       models.UserTypeOrdinary,
		},
		{
			LegalName:      "Acme Store",
			DocumentType:   models.DocumentTypeCNPJ,
			DocumentNumber: "11222333000144",
			Email:          "store@acme.example.com",
			Balance:        decimal.NewFromInt(0),
			UserType:       models.UserTypeMerchant,
		},
	}

	password := config.GetEnv("SEED_PASSWORD", "changeme")
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	for _, u := range seed {
		var existing models.User
		if err := repositories.DB.Where("email = ?", u.Email).First(&existing).Error; err == nil {
			log.Printf("user %s already exists, skipping", u.Email)
			continue
		}

		u.Password = string(hashed)
		if err := repositories.DB.Create(&u).Error; err != nil {
			log.Fatalf("Failed to create user %s: %v", u.Email, err)
		}
		log.Printf("created user %s (id=%d)", u.Email, u.ID)
	}
}
