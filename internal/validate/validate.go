package validate

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shelfmart/storefront-api/internal/models"
)

var spaceRe = regexp.MustCompile(`\s+`)

// SanitizeString trims, drops NULs, and collapses runs of whitespace.
func SanitizeString(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\x00", "")
	return spaceRe.ReplaceAllString(s, " ")
}

// RequireBounded trims and enforces rune-length bounds.
func RequireBounded(name, s string, min, max int) (string, error) {
	s = SanitizeString(s)
	if n := utf8.RuneCountInString(s); n < min || n > max {
		return "", errors.New(name + " must be between " + strconv.Itoa(min) +
			" and " + strconv.Itoa(max) + " characters")
	}
	return s, nil
}

// BookInput is what a seller submits when listing or editing a book.
type BookInput struct {
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Rating      *float64 `json:"rating,omitempty"`
}

// Book validates and sanitizes a seller submission, returning the clean
// field values.
func Book(in *BookInput) (models.Category, error) {
	var err error
	if in.Title, err = RequireBounded("title", in.Title, 1, 200); err != nil {
		return "", err
	}
	if in.Author, err = RequireBounded("author", in.Author, 1, 120); err != nil {
		return "", err
	}
	in.Description = SanitizeString(in.Description)
	if utf8.RuneCountInString(in.Description) > 2000 {
		return "", errors.New("description must be at most 2000 characters")
	}
	cat, err := models.ParseCategory(in.Category)
	if err != nil {
		return "", err
	}
	if in.Price < 0 {
		return "", errors.New("price must not be negative")
	}
	if in.Stock < 0 {
		return "", errors.New("stock must not be negative")
	}
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	if in.ImageURL != "" && !strings.HasPrefix(in.ImageURL, "http://") &&
		!strings.HasPrefix(in.ImageURL, "https://") {
		return "", errors.New("image_url must be an http(s) URL")
	}
	if in.Rating != nil && (*in.Rating < 0 || *in.Rating > 5) {
		return "", errors.New("rating must be between 0 and 5")
	}
	return cat, nil
}
