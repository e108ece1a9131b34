package models

import (
	"errors"
	"strings"
)

// Category is the closed set of shelves a book can live on. Filtering
// matches categories exactly, so free-form strings are rejected at the
// edge instead of silently never matching.
type Category string

const (
	CategoryNovels     Category = "Novels"
	CategorySelfHelp   Category = "Self-Help"
	CategoryTechnology Category = "Technology"
	CategoryHistory    Category = "History"
	CategoryAcademic   Category = "Academic"
	CategoryChildren   Category = "Children"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryNovels,
	CategorySelfHelp,
	CategoryTechnology,
	CategoryHistory,
	CategoryAcademic,
	CategoryChildren,
}

var ErrUnknownCategory = errors.New("unknown category")

// ParseCategory resolves a user-supplied string to a Category
// (case-insensitive). "All" is not a category; it is a filter wildcard.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", ErrUnknownCategory
}

type Book struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Category    Category `json:"category"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	SellerID    string   `json:"seller_id"`
	SellerName  string   `json:"seller_name"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Rating      *float64 `json:"rating,omitempty"`
}
