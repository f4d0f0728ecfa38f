package database

import (
	"log"

	"food_ordering/internal/models"

	"gorm.io/gorm"
)

// SeedIfEmpty loads the default catalog on first boot. Existing data is
// never touched; scripts/init-db.go does the destructive reseed.
func SeedIfEmpty(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return Seed(db)
}

// Seed inserts the default categories and menu items.
func Seed(db *gorm.DB) error {
	categories := []*models.Category{
		{Name: "Pizza", Icon: "fa-pizza-slice"},
		{Name: "Burgers", Icon: "fa-burger"},
		{Name: "Asian", Icon: "fa-bowl-rice"},
		{Name: "Seafood", Icon: "fa-fish"},
		{Name: "Desserts", Icon: "fa-ice-cream"},
		{Name: "Drinks", Icon: "fa-mug-hot"},
	}

	for _, category := range categories {
		if err := db.Create(category).Error; err != nil {
			return err
		}
	}

	pizza := categories[0]
	burgers := categories[1]
	asian := categories[2]
	seafood := categories[3]
	desserts := categories[4]
	drinks := categories[5]

	items := []models.MenuItem{
		{
			Name:        "Margherita Pizza",
			Description: "Classic Italian pizza with fresh mozzarella and basil",
			Price:       14.99,
			CategoryID:  pizza.ID,
			ImageURL:    "https://images.unsplash.com/photo-1604382355076-af4b0eb60143?w=600",
			IsAvailable: true,
			IsPopular:   true,
		},
		{
			Name:        "Pepperoni Feast",
			Description: "Loaded with spicy pepperoni and extra cheese",
			Price:       16.99,
			CategoryID:  pizza.ID,
			ImageURL:    "https://images.unsplash.com/photo-1628840042765-356cda07504e?w=600",
			IsAvailable: true,
			IsPopular:   true,
		},
		{
			Name:        "Classic Cheeseburger",
			Description: "Juicy beef patty with cheddar, lettuce, and tomato",
			Price:       12.99,
			CategoryID:  burgers.ID,
			ImageURL:    "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=600",
			IsAvailable: true,
			IsPopular:   true,
		},
		{
			Name:        "Pad Thai",
			Description: "Stir-fried rice noodles with shrimp, peanuts, egg, and tamarind sauce",
			Price:       14.99,
			CategoryID:  asian.ID,
			ImageURL:    "https://images.unsplash.com/photo-1559314809-0d155014e29e?w=600",
			IsAvailable: true,
			IsPopular:   true,
		},
		{
			Name:        "Chicken Teriyaki Bowl",
			Description: "Grilled chicken with teriyaki glaze over steamed rice and vegetables",
			Price:       13.99,
			CategoryID:  asian.ID,
			ImageURL:    "https://images.unsplash.com/photo-1609183480237-ccb439e7e27e?w=600",
			IsAvailable: true,
		},
		{
			Name:        "Vegetable Fried Rice",
			Description: "Wok-fried rice with mixed vegetables, egg, and soy sauce",
			Price:       11.99,
			CategoryID:  asian.ID,
			ImageURL:    "https://images.unsplash.com/photo-1603133872878-684f208fb84b?w=600",
			IsAvailable: true,
		},
		{
			Name:        "Grilled Salmon",
			Description: "Fresh Atlantic salmon fillet with asparagus and lemon butter sauce",
			Price:       22.99,
			CategoryID:  seafood.ID,
			ImageURL:    "https://images.unsplash.com/photo-1467003909585-2f8a72700288?w=600",
			IsAvailable: true,
			IsPopular:   true,
		},
		{
			Name:        "Fish & Chips",
			Description: "Beer-battered cod with crispy fries and tartar sauce",
			Price:       15.99,
			CategoryID:  seafood.ID,
			ImageURL:    "https://images.unsplash.com/photo-1579208030886-b1a5ed1a7888?w=600",
			IsAvailable: true,
		},
		{
			Name:        "Chocolate Lava Cake",
			Description: "Warm chocolate cake with a molten center, served with vanilla ice cream",
			Price:       8.99,
			CategoryID:  desserts.ID,
			ImageURL:    "https://images.unsplash.com/photo-1624353365286-3f8d62daad51?w=600",
			IsAvailable: true,
			IsPopular:   true,
		},
		{
			Name:        "New York Cheesecake",
			Description: "Creamy classic cheesecake with strawberry topping",
			Price:       7.99,
			CategoryID:  desserts.ID,
			ImageURL:    "https://images.unsplash.com/photo-1508737804141-4c3b688e2546?w=600",
			IsAvailable: true,
		},
		{
			Name:        "Fresh Lemonade",
			Description: "Freshly squeezed lemons with a hint of mint",
			Price:       4.99,
			CategoryID:  drinks.ID,
			ImageURL:    "https://images.unsplash.com/photo-1621263764928-df1444c5e859?w=600",
			IsAvailable: true,
		},
		{
			Name:        "Mango Smoothie",
			Description: "Fresh mango blended with yogurt and honey",
			Price:       6.99,
			CategoryID:  drinks.ID,
			ImageURL:    "https://images.unsplash.com/photo-1623065422902-30a2d299bbe4?w=600",
			IsAvailable: true,
		},
	}

	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeded %d categories and %d menu items", len(categories), len(items))
	return nil
}
