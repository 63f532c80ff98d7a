package localbackend

import (
	"os"

	"github.com/yeremiapane/restaurant-order-panel/models"
	"github.com/yeremiapane/restaurant-order-panel/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed loads a small development catalog and the admin account. It is a
// no-op when the database already holds products, so restarts keep
// whatever the admin panel changed.
func (s *Server) Seed() error {
	var count int64
	if err := s.DB.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := s.seedAdmin(); err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		categories := []models.Category{
			{Name: "Platos de fondo", Active: true},
			{Name: "Bebidas", Active: true},
		}
		if err := tx.Create(&categories).Error; err != nil {
			return err
		}

		ingredients := []models.Ingredient{
			{Name: "Cebolla"},
			{Name: "Ají"},
			{Name: "Cilantro"},
			{Name: "Hielo"},
		}
		if err := tx.Create(&ingredients).Error; err != nil {
			return err
		}

		sizes := []models.Size{{Name: "Personal"}, {Name: "Fuente"}}
		if err := tx.Create(&sizes).Error; err != nil {
			return err
		}

		options := []models.Option{{Name: "Pollo"}, {Name: "Carne"}}
		if err := tx.Create(&options).Error; err != nil {
			return err
		}

		products := []models.Product{
			{
				Name:       "Lomo saltado",
				Price:      28,
				Active:     true,
				CategoryID: categories[0].ID,
				Ingredients: []models.ProductIngredient{
					{IngredientID: ingredients[0].ID, Optional: true, Default: true},
					{IngredientID: ingredients[1].ID, Optional: true, Default: false},
					{IngredientID: ingredients[2].ID, Optional: false, Default: true},
				},
				Options: []models.ProductOption{
					{OptionID: options[0].ID},
					{OptionID: options[1].ID},
				},
				AvailableSizes: []models.ProductSize{
					{SizeID: sizes[0].ID, Price: 28},
					{SizeID: sizes[1].ID, Price: 48},
				},
			},
			{
				Name:       "Ceviche clásico",
				Price:      32,
				Active:     true,
				CategoryID: categories[0].ID,
				Ingredients: []models.ProductIngredient{
					{IngredientID: ingredients[0].ID, Optional: true, Default: true},
					{IngredientID: ingredients[1].ID, Optional: true, Default: true},
				},
			},
			{
				Name:       "Chicha morada",
				Price:      8,
				Active:     true,
				CategoryID: categories[1].ID,
				Ingredients: []models.ProductIngredient{
					{IngredientID: ingredients[3].ID, Optional: true, Default: true},
				},
			},
		}
		if err := tx.Create(&products).Error; err != nil {
			return err
		}

		utils.InfoLogger.Printf("Seeded %d products", len(products))
		return nil
	})
}

func (s *Server) seedAdmin() error {
	var count int64
	if err := s.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Name:     "Administrador",
		Email:    "admin@restaurante.local",
		Password: string(hashed),
		Role:     "admin",
	}
	if err := s.DB.Create(&admin).Error; err != nil {
		return err
	}
	utils.InfoLogger.Printf("Seeded admin account %s", admin.Email)
	return nil
}
