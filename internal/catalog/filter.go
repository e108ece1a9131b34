package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/shelfmart/storefront-api/internal/models"
)

// PriceBracket buckets books by price for the storefront filter bar.
type PriceBracket string

const (
	BracketAll  PriceBracket = "all"  // no price filter
	BracketLow  PriceBracket = "low"  // < 400
	BracketMid  PriceBracket = "mid"  // 400 <= p < 700
	BracketHigh PriceBracket = "high" // >= 700
)

// ParseBracket maps a query-string value onto a bracket. Empty and
// unknown values mean "no filter" so a stale UI never breaks browsing.
func ParseBracket(s string) PriceBracket {
	switch PriceBracket(strings.ToLower(strings.TrimSpace(s))) {
	case BracketLow:
		return BracketLow
	case BracketMid:
		return BracketMid
	case BracketHigh:
		return BracketHigh
	default:
		return BracketAll
	}
}

// CategoryAll is the wildcard value for FilterSpec.Category.
const CategoryAll = "All"

// FilterSpec describes one storefront query. It has no identity; callers
// rebuild it per request from query parameters.
type FilterSpec struct {
	Search   string
	Category string // CategoryAll or one exact models.Category value
	Bracket  PriceBracket
}

// Filter returns the books matching every predicate in spec, preserving
// catalog order. It never mutates its input and never fails: an empty
// catalog or a spec nothing matches yields an empty slice.
func Filter(books []models.Book, spec FilterSpec) []models.Book {
	needle := foldSearch(spec.Search)

	out := make([]models.Book, 0, len(books))
	for _, b := range books {
		if !matchesSearch(b, needle) {
			continue
		}
		if spec.Category != CategoryAll && spec.Category != "" &&
			string(b.Category) != spec.Category {
			continue
		}
		if !matchesBracket(b.Price, spec.Bracket) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func matchesSearch(b models.Book, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(foldSearch(b.Title), needle) ||
		strings.Contains(foldSearch(b.Author), needle)
}

func matchesBracket(price float64, br PriceBracket) bool {
	switch br {
	case BracketLow:
		return price < 400
	case BracketMid:
		return price >= 400 && price < 700
	case BracketHigh:
		return price >= 700
	default:
		return true
	}
}

// foldSearch lowercases and strips combining marks so "Córdoba" matches
// "cordoba". Same normalization chain as slug building.
func foldSearch(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
