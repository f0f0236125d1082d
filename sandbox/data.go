package sandbox

import (
	"log"

	"github.com/ZeyadMahfouzz/supermarket-client/models"
	"golang.org/x/crypto/bcrypt"
)

// Seed credentials for local development.
const (
	AdminEmail    = "admin@supermarket.local"
	AdminPassword = "admin-password"
)

func (s *Server) seed() {
	hash, err := bcrypt.GenerateFromPassword([]byte(AdminPassword), bcryptCost)
	if err != nil {
		log.Fatalln("Failed to hash seed admin password:", err)
	}

	s.nextUserID++
	admin := &user{
		ID:           s.nextUserID,
		Name:         "Store Admin",
		Email:        AdminEmail,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	s.users[admin.ID] = admin
	s.usersByEmail[admin.Email] = admin.ID

	catalog := []models.Item{
		{Name: "Whole Milk 1L", Price: 38.50, Quantity: 120, Category: "Dairy", Description: "Fresh full-cream milk"},
		{Name: "Baladi Bread (5 pack)", Price: 7.00, Quantity: 200, Category: "Bakery", Description: "Traditional flatbread, baked daily"},
		{Name: "White Cheese 500g", Price: 92.00, Quantity: 45, Category: "Dairy", Description: "Domiati-style white cheese"},
		{Name: "Roma Tomatoes 1kg", Price: 24.75, Quantity: 80, Category: "Produce", Description: "Vine-ripened tomatoes"},
		{Name: "Basmati Rice 5kg", Price: 310.00, Quantity: 30, Category: "Pantry", Description: "Long-grain basmati rice"},
		{Name: "Sunflower Oil 1.5L", Price: 145.00, Quantity: 8, Category: "Pantry", Description: "Refined sunflower cooking oil"},
		{Name: "Ground Coffee 250g", Price: 185.00, Quantity: 4, Category: "Beverages", Description: "Dark roast with cardamom"},
		{Name: "Mango Juice 1L", Price: 42.00, Quantity: 0, Category: "Beverages", Description: "100% mango nectar"},
	}
	for i := range catalog {
		s.nextItemID++
		catalog[i].ID = s.nextItemID
		item := catalog[i]
		s.items[item.ID] = &item
	}
}
