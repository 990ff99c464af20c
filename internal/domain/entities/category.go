package entities

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownCategory = errors.New("unknown category")

// Category groups words by subject.
type Category string

const (
	CategoryScience    Category = "Science"
	CategoryBusiness   Category = "Business"
	CategoryArts       Category = "Arts"
	CategoryTechnology Category = "Technology"
	CategoryAcademic   Category = "Academic"
	CategoryEveryday   Category = "Everyday"
)

// DefaultCategory is selected for new learners.
const DefaultCategory = CategoryEveryday

// Categories returns every known category in display order.
func Categories() []Category {
	return []Category{
		CategoryScience,
		CategoryBusiness,
		CategoryArts,
		CategoryTechnology,
		CategoryAcademic,
		CategoryEveryday,
	}
}

// ParseCategory matches a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories() {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
