package seeders

import "github.com/shashiranjanraj/foodshop/app/models"

func str(s string) *string { return &s }

// DemoProducts is the starter catalog inserted into an empty product
// collection. A fresh slice is returned on every call.
func DemoProducts() []models.Product {
	return []models.Product{
		{
			Title:       "Margherita Pizza",
			Description: str("Classic tomato, mozzarella, basil"),
			Price:       9.99,
			Category:    "Pizza",
			ImageURL:    str("https://images.unsplash.com/photo-1548365328-9f547fb0953d"),
			Rating:      4.7,
			InStock:     true,
		},
		{
			Title:       "Cheeseburger",
			Description: str("Juicy beef patty with cheddar"),
			Price:       8.49,
			Category:    "Burgers",
			ImageURL:    str("https://images.unsplash.com/photo-1550547660-d9450f859349"),
			Rating:      4.5,
			InStock:     true,
		},
		{
			Title:       "Caesar Salad",
			Description: str("Crisp romaine with parmesan"),
			Price:       7.25,
			Category:    "Salads",
			ImageURL:    str("https://images.unsplash.com/photo-1568605114967-8130f3a36994"),
			Rating:      4.3,
			InStock:     true,
		},
		{
			Title:       "Iced Latte",
			Description: str("Chilled espresso with milk"),
			Price:       4.5,
			Category:    "Drinks",
			ImageURL:    str("https://images.unsplash.com/photo-1541167760496-1628856ab772"),
			Rating:      4.6,
			InStock:     true,
		},
	}
}
