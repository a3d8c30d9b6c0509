package enums

import "fmt"

// Category classifies every product in the catalog.
type Category string

const (
	// CategoryAll is the sentinel meaning "no category restriction". It is
	// never assigned to a product, only used in filter selections.
	CategoryAll Category = "all"

	CategoryChocolate Category = "chocolate"
	CategoryCream     Category = "cream"
	CategorySweet     Category = "sweet"
)

var validProductCategories = []Category{
	CategoryChocolate,
	CategoryCream,
	CategorySweet,
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// IsValid reports whether the category may be assigned to a product.
func (c Category) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCategory converts a raw string into a Category, accepting the "all"
// sentinel alongside product categories.
func ParseCategory(value string) (Category, error) {
	if Category(value) == CategoryAll {
		return CategoryAll, nil
	}
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid category %q", value)
}

// ProductCategories returns the assignable categories in display order.
func ProductCategories() []Category {
	out := make([]Category, len(validProductCategories))
	copy(out, validProductCategories)
	return out
}
