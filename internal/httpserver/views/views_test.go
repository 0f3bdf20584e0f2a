package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bitechx.com/catalog/internal/catalog/api"
	"bitechx.com/catalog/internal/catalog/browse"
	"bitechx.com/catalog/internal/catalog/imageurl"
)

func productFixture(id string) api.Product {
	return api.Product{
		ID:        id,
		Name:      "Widget " + id,
		Slug:      "widget-" + id,
		Price:     9.99,
		Category:  api.Category{ID: "cat-1", Name: "Widgets"},
		Images:    []string{"https://i.imgur.com/" + id + ".jpg"},
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestProductsLoadedState(t *testing.T) {
	t.Parallel()

	q := browse.NewQuery(2)
	page := browse.NewPage([]api.Product{productFixture("a"), productFixture("b")}, q)
	vm := Products(page, []api.Category{{ID: "cat-1", Name: "Widgets"}}, "")

	require.Equal(t, StateLoaded, vm.State)
	require.Len(t, vm.Rows, 2)
	require.Equal(t, "$9.99", vm.Rows[0].Price)
	require.Equal(t, "Widgets", vm.Rows[0].Category)
	require.True(t, vm.Rows[0].Optimize)
	require.Equal(t, "/dashboard/products/a/edit", vm.Rows[0].EditURL)
	require.Equal(t, "Mar 1, 2025", vm.Rows[0].Created)

	require.True(t, vm.Pagination.Show)
	require.True(t, vm.Pagination.HasMore)
	require.Equal(t, "/dashboard/products?offset=2", vm.Pagination.NextURL)
	require.False(t, vm.Pagination.HasPrev)
	require.Equal(t, 1, vm.Pagination.From)
	require.Equal(t, 2, vm.Pagination.To)
}

func TestProductsEmptyAndFailedStates(t *testing.T) {
	t.Parallel()

	q := browse.NewQuery(10)
	empty := Products(browse.NewPage([]api.Product{}, q), nil, "")
	require.Equal(t, StateEmpty, empty.State)

	failed := Products(browse.NewPage([]api.Product{}, q), nil, "Failed to load products")
	require.Equal(t, StateFailed, failed.State)
	require.Equal(t, "Failed to load products", failed.Error)
}

func TestProductRowFallsBackToPlaceholder(t *testing.T) {
	t.Parallel()

	p := productFixture("a")
	p.Images = []string{"https://via.placeholder.com/150"}
	vm := Products(browse.NewPage([]api.Product{p}, browse.NewQuery(10)), nil, "")

	require.Equal(t, imageurl.Placeholder, vm.Rows[0].Image)
	require.True(t, vm.Rows[0].Placeholder)
	require.False(t, vm.Rows[0].Optimize)

	p.Images = nil
	vm = Products(browse.NewPage([]api.Product{p}, browse.NewQuery(10)), nil, "")
	require.Equal(t, imageurl.Placeholder, vm.Rows[0].Image)
}

func TestProductsSearchStateCarriesTermOnly(t *testing.T) {
	t.Parallel()

	q := browse.NewQuery(10).WithCategory("cat-9").WithSearch("chair")
	vm := Products(browse.NewPage([]api.Product{}, q), nil, "")

	require.Equal(t, "chair", vm.SearchTerm)
	require.Empty(t, vm.CategoryID)
	require.True(t, vm.Pagination.Show)
}

func TestCategoriesSearchSuppressesPagination(t *testing.T) {
	t.Parallel()

	cats := []api.Category{{ID: "cat-1", Name: "Kitchen"}}

	plain := Categories(browse.NewPage(cats, browse.NewQuery(1)), "")
	require.True(t, plain.Pagination.Show)
	require.True(t, plain.Pagination.HasMore)

	searched := Categories(browse.NewPage(cats, browse.NewQuery(1).WithSearch("kit")), "")
	require.False(t, searched.Pagination.Show)
	require.Equal(t, "kit", searched.SearchTerm)
}

func TestCategoryRowDefaults(t *testing.T) {
	t.Parallel()

	vm := Categories(browse.NewPage([]api.Category{{ID: "c", Name: "Bare"}}, browse.NewQuery(10)), "")
	row := vm.Rows[0]
	require.Equal(t, "No description", row.Description)
	require.True(t, row.Placeholder)
	require.Empty(t, row.Image)
}

func TestShopDetailAlwaysHasAnImage(t *testing.T) {
	t.Parallel()

	vm := ShopDetail(api.Product{Name: "Bare", Price: 5}, "")
	require.Len(t, vm.Images, 1)
	require.True(t, vm.Images[0].Placeholder)
	require.Equal(t, "$5.00", vm.Price)
}

func TestPaginationPrevURLOmitsZeroOffset(t *testing.T) {
	t.Parallel()

	q := browse.NewQuery(10).Next() // offset 10
	page := browse.NewPage(make([]api.Product, 10), q)
	vm := Products(page, nil, "")

	require.True(t, vm.Pagination.HasPrev)
	require.Equal(t, "/dashboard/products", vm.Pagination.PrevURL)
	require.Equal(t, "/dashboard/products?offset=20", vm.Pagination.NextURL)
}
