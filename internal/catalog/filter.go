package catalog

import (
	"strings"

	"github.com/douceurdz/storefront-backend/pkg/enums"
)

// Selection is the set of categories a visitor has picked. It always
// contains at least one member: when every explicit category is toggled
// off it falls back to the "all" sentinel instead of becoming empty.
type Selection map[enums.Category]struct{}

// NewSelection starts with the "all" sentinel.
func NewSelection() Selection {
	return Selection{enums.CategoryAll: {}}
}

// SelectionOf builds a selection from explicit categories, falling back to
// "all" when none are given.
func SelectionOf(categories ...enums.Category) Selection {
	sel := Selection{}
	for _, c := range categories {
		sel[c] = struct{}{}
	}
	if len(sel) == 0 {
		return NewSelection()
	}
	if _, ok := sel[enums.CategoryAll]; ok && len(sel) > 1 {
		// An explicit category supersedes the sentinel.
		delete(sel, enums.CategoryAll)
	}
	return sel
}

// Has reports membership.
func (s Selection) Has(c enums.Category) bool {
	_, ok := s[c]
	return ok
}

// Toggle flips one explicit category in or out of the selection, keeping
// the never-empty invariant: choosing a category drops the sentinel, and
// deselecting the last category restores it.
func (s Selection) Toggle(c enums.Category) Selection {
	if !c.IsValid() {
		return s
	}

	next := Selection{}
	for member := range s {
		next[member] = struct{}{}
	}

	if next.Has(c) {
		delete(next, c)
		if len(next) == 0 {
			next[enums.CategoryAll] = struct{}{}
		}
		return next
	}

	delete(next, enums.CategoryAll)
	next[c] = struct{}{}
	return next
}

// Categories returns the members in display order.
func (s Selection) Categories() []enums.Category {
	out := []enums.Category{}
	if s.Has(enums.CategoryAll) {
		out = append(out, enums.CategoryAll)
	}
	for _, c := range enums.ProductCategories() {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Filter narrows products by free-text query and category selection,
// preserving catalog order. A product passes only when both predicates
// pass: the query matches name, description or any flavor
// (case-insensitive substring, empty query matches everything), and the
// category is selected (the "all" sentinel selects every category).
func Filter(products []Product, query string, sel Selection) []Product {
	needle := strings.ToLower(strings.TrimSpace(query))
	matched := make([]Product, 0, len(products))

	for _, p := range products {
		if !matchesQuery(p, needle) {
			continue
		}
		if !sel.Has(enums.CategoryAll) && !sel.Has(p.Category) {
			continue
		}
		matched = append(matched, p)
	}

	return matched
}

func matchesQuery(p Product, needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), needle) {
		return true
	}
	for _, flavor := range p.Flavors {
		if strings.Contains(strings.ToLower(flavor), needle) {
			return true
		}
	}
	return false
}
