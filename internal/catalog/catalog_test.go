package catalog

import (
	"testing"

	"github.com/douceurdz/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsDuplicateIDs(t *testing.T) {
	t.Parallel()

	_, err := New([]Product{
		{ID: 1, Name: "A", Category: enums.CategorySweet},
		{ID: 1, Name: "B", Category: enums.CategoryCream},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate product id")
}

func TestNewRejectsNonPositiveID(t *testing.T) {
	t.Parallel()

	_, err := New([]Product{{ID: 0, Name: "A", Category: enums.CategorySweet}})
	require.Error(t, err)
}

func TestDefaultCatalogIsWellFormed(t *testing.T) {
	t.Parallel()

	cat, err := Default()
	require.NoError(t, err)
	require.Equal(t, 12, cat.Len())

	product, ok := cat.FindByID(1)
	require.True(t, ok)
	require.Equal(t, "Classic Chocolate Dream", product.Name)
	require.True(t, product.Price.Equal(decimal.NewFromInt(2000)))

	_, ok = cat.FindByID(999)
	require.False(t, ok)
}

func TestCollectionsKeepDisplayOrder(t *testing.T) {
	t.Parallel()

	cat, err := Default()
	require.NoError(t, err)

	ids := func(products []Product) []int {
		out := make([]int, len(products))
		for i, p := range products {
			out[i] = p.ID
		}
		return out
	}

	require.Equal(t, []int{9, 10, 11}, ids(cat.Traditional()))
	require.Equal(t, []int{12, 13, 14}, ids(cat.Festive()))
	require.Equal(t, []int{15, 18, 7}, ids(cat.French()))
}

func TestAllReturnsACopy(t *testing.T) {
	t.Parallel()

	cat, err := Default()
	require.NoError(t, err)

	first := cat.All()
	first[0].Name = "mutated"

	require.Equal(t, "Classic Chocolate Dream", cat.All()[0].Name)
}
