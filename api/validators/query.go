package validators

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/douceurdz/storefront-backend/internal/catalog"
	"github.com/douceurdz/storefront-backend/pkg/enums"
	pkgerrors "github.com/douceurdz/storefront-backend/pkg/errors"
)

// ParsePathInt converts a URL path segment into a positive integer id.
func ParsePathInt(raw, field string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "path parameter must be a positive integer").
			WithDetails(map[string]any{"field": field})
	}
	return value, nil
}

// ParseCategorySelection reads the comma-separated "categories" query
// parameter into a selection. An absent or empty parameter means "all";
// unknown category names are rejected.
func ParseCategorySelection(r *http.Request) (catalog.Selection, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("categories"))
	if raw == "" {
		return catalog.NewSelection(), nil
	}

	var categories []enums.Category
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		category, err := enums.ParseCategory(part)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown category").
				WithDetails(map[string]any{"field": "categories", "value": part})
		}
		categories = append(categories, category)
	}

	return catalog.SelectionOf(categories...), nil
}
