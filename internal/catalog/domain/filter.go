package domain

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort keys accepted by the filter pipeline
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortRating    = "rating"
	SortName      = "name"

	DefaultSort = SortPriceAsc
)

// DefaultMaxPrice is the upper price bound applied when none is given
const DefaultMaxPrice = 1000

// Criteria describes one filter/sort request over the catalog.
// Zero values mean "no constraint" except MaxPrice, which callers normalize
// via Normalize before applying.
type Criteria struct {
	Search        string
	Category      string
	MinPrice      float64
	MaxPrice      float64
	Sort          string
	FavoritesOnly bool
}

// Normalize fills in defaults for unset fields
func (c Criteria) Normalize() Criteria {
	if c.MaxPrice <= 0 {
		c.MaxPrice = DefaultMaxPrice
	}
	if c.Sort == "" {
		c.Sort = DefaultSort
	}
	return c
}

// FavoriteChecker answers membership queries against the favorite set
type FavoriteChecker interface {
	IsFavorite(id int64) bool
}

// Filter returns the products matching criteria, stably sorted by the
// criteria's sort key. The input slice is not modified. Every predicate is
// independent; only the sort is order-sensitive and runs last.
func Filter(products []Product, c Criteria, favorites FavoriteChecker) []Product {
	c = c.Normalize()
	search := strings.ToLower(c.Search)

	matched := make([]Product, 0, len(products))
	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Title), search) {
			continue
		}
		if c.Category != "" && p.Category != c.Category {
			continue
		}
		if p.Price < c.MinPrice || p.Price > c.MaxPrice {
			continue
		}
		if c.FavoritesOnly && (favorites == nil || !favorites.IsFavorite(p.ID)) {
			continue
		}
		matched = append(matched, p)
	}

	sortProducts(matched, c.Sort)
	return matched
}

// sortProducts orders products in place. The sort is stable so that equal
// keys preserve original relative order.
func sortProducts(products []Product, key string) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating.Rate > products[j].Rating.Rate
		})
	case SortName:
		// Collator keeps an internal buffer, so build one per sort.
		cl := collate.New(language.Und, collate.IgnoreCase)
		sort.SliceStable(products, func(i, j int) bool {
			return cl.CompareString(products[i].Title, products[j].Title) < 0
		})
	}
}

// Paginate returns the first pageSize*page items of an ordered sequence and
// whether more items remain beyond them. Page numbering starts at 1.
func Paginate(items []Product, pageSize, page int) ([]Product, bool) {
	if pageSize <= 0 || page <= 0 {
		return items, false
	}
	last := pageSize * page
	if last >= len(items) {
		return items, false
	}
	return items[:last], true
}
