package catalog

import "github.com/shelfmart/storefront-api/internal/models"

func ratingOf(v float64) *float64 { return &v }

// Seed is the launch catalog. Prices are in rupees; image URLs point at
// the public CDN the storefront already serves covers from.
func Seed() []models.Book {
	return []models.Book{
		{
			ID: "b-001", Title: "Atomic Habits", Author: "James Clear",
			Category: models.CategorySelfHelp, Price: 350, Stock: 10,
			SellerID: "s-100", SellerName: "Page Turner Books",
			Description: "Tiny changes, remarkable results.",
			ImageURL:    "https://images.shelfmart.in/covers/atomic-habits.jpg",
			Rating:      ratingOf(4.8),
		},
		{
			ID: "b-002", Title: "Clean Code", Author: "Robert C. Martin",
			Category: models.CategoryTechnology, Price: 800, Stock: 5,
			SellerID: "s-101", SellerName: "TechReads",
			Description: "A handbook of agile software craftsmanship.",
			ImageURL:    "https://images.shelfmart.in/covers/clean-code.jpg",
			Rating:      ratingOf(4.6),
		},
		{
			ID: "b-003", Title: "The Midnight Library", Author: "Matt Haig",
			Category: models.CategoryNovels, Price: 420, Stock: 14,
			SellerID: "s-100", SellerName: "Page Turner Books",
			Description: "Between life and death there is a library.",
			ImageURL:    "https://images.shelfmart.in/covers/midnight-library.jpg",
			Rating:      ratingOf(4.2),
		},
		{
			ID: "b-004", Title: "Sapiens", Author: "Yuval Noah Harari",
			Category: models.CategoryHistory, Price: 550, Stock: 8,
			SellerID: "s-102", SellerName: "Harbour Book House",
			Description: "A brief history of humankind.",
			ImageURL:    "https://images.shelfmart.in/covers/sapiens.jpg",
			Rating:      ratingOf(4.7),
		},
		{
			ID: "b-005", Title: "The Pragmatic Programmer", Author: "Andrew Hunt",
			Category: models.CategoryTechnology, Price: 950, Stock: 0,
			SellerID: "s-101", SellerName: "TechReads",
			Description: "Your journey to mastery, 20th anniversary edition.",
			ImageURL:    "https://images.shelfmart.in/covers/pragmatic-programmer.jpg",
			Rating:      ratingOf(4.5),
		},
		{
			ID: "b-006", Title: "Wings of Fire", Author: "A.P.J. Abdul Kalam",
			Category: models.CategorySelfHelp, Price: 250, Stock: 30,
			SellerID: "s-102", SellerName: "Harbour Book House",
			Description: "An autobiography of the missile man of India.",
			ImageURL:    "https://images.shelfmart.in/covers/wings-of-fire.jpg",
			Rating:      ratingOf(4.9),
		},
		{
			ID: "b-007", Title: "The God of Small Things", Author: "Arundhati Roy",
			Category: models.CategoryNovels, Price: 399, Stock: 12,
			SellerID: "s-100", SellerName: "Page Turner Books",
			Description: "Booker Prize winning debut novel.",
			ImageURL:    "https://images.shelfmart.in/covers/god-of-small-things.jpg",
			Rating:      ratingOf(4.1),
		},
		{
			ID: "b-008", Title: "Introduction to Algorithms", Author: "Thomas H. Cormen",
			Category: models.CategoryAcademic, Price: 1200, Stock: 3,
			SellerID: "s-101", SellerName: "TechReads",
			Description: "The standard reference for algorithms courses.",
			ImageURL:    "https://images.shelfmart.in/covers/clrs.jpg",
			Rating:      ratingOf(4.4),
		},
		{
			ID: "b-009", Title: "Matilda", Author: "Roald Dahl",
			Category: models.CategoryChildren, Price: 280, Stock: 20,
			SellerID: "s-102", SellerName: "Harbour Book House",
			Description: "A little girl with extraordinary powers.",
			ImageURL:    "https://images.shelfmart.in/covers/matilda.jpg",
			Rating:      ratingOf(4.6),
		},
		{
			ID: "b-010", Title: "India After Gandhi", Author: "Ramachandra Guha",
			Category: models.CategoryHistory, Price: 700, Stock: 6,
			SellerID: "s-102", SellerName: "Harbour Book House",
			Description: "The history of the world's largest democracy.",
			ImageURL:    "https://images.shelfmart.in/covers/india-after-gandhi.jpg",
		},
	}
}
