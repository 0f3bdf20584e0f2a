package forms

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"bitechx.com/catalog/internal/catalog/api"
)

func validProductValues() url.Values {
	values := url.Values{}
	values.Set("name", "Widget")
	values.Set("description", "A fine widget")
	values.Set("price", "9.99")
	values.Set("category", "cat-1")
	values["images"] = []string{"https://good.host/a.jpg"}
	return values
}

func TestProductFormValid(t *testing.T) {
	t.Parallel()

	form := ParseProductForm(validProductValues())
	errs := form.Validate()
	require.True(t, errs.Valid(), "unexpected errors: %v", errs)
}

func TestProductFormFieldRules(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(url.Values)
		field  string
		msg    string
	}{
		{"missing name", func(v url.Values) { v.Set("name", "") }, "name", "Product name is required"},
		{"missing description", func(v url.Values) { v.Set("description", "") }, "description", "Description is required"},
		{"zero price", func(v url.Values) { v.Set("price", "0") }, "price", "Price must be greater than 0"},
		{"negative price", func(v url.Values) { v.Set("price", "-5") }, "price", "Price must be greater than 0"},
		{"unparsable price", func(v url.Values) { v.Set("price", "cheap") }, "price", "Price must be greater than 0"},
		{"missing category", func(v url.Values) { v.Set("category", "") }, "category", "Category is required"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			values := validProductValues()
			tc.mutate(values)
			errs := ParseProductForm(values).Validate()
			require.Equal(t, tc.msg, errs[tc.field])
		})
	}
}

func TestSubmitImagesDropsEmptyAndTemporaryEntries(t *testing.T) {
	t.Parallel()

	form := ProductForm{Images: []string{
		"https://good.host/a.jpg",
		"",
		"  ",
		"blob:https://app.local/9f81c2",
		"https://good.host/b.jpg",
	}}
	require.Equal(t, []string{"https://good.host/a.jpg", "https://good.host/b.jpg"}, form.SubmitImages())
}

func TestProductFormRejectedWhenNoUsableImageRemains(t *testing.T) {
	t.Parallel()

	combos := [][]string{
		{},
		{""},
		{"", "", ""},
		{"blob:https://app.local/1"},
		{"", "blob:https://app.local/1", "  "},
	}
	for _, images := range combos {
		values := validProductValues()
		values["images"] = images
		errs := ParseProductForm(values).Validate()
		require.Equal(t, "At least one image is required", errs["images"], "images=%v", images)
	}
}

func TestProductFormRejectsMalformedImageURL(t *testing.T) {
	t.Parallel()

	values := validProductValues()
	values["images"] = []string{"not-a-url"}
	errs := ParseProductForm(values).Validate()
	require.Equal(t, "Invalid image URL", errs["images"])
}

func TestProductRequestCarriesFilteredImages(t *testing.T) {
	t.Parallel()

	values := validProductValues()
	values["images"] = []string{"https://good.host/a.jpg", ""}

	form := ParseProductForm(values)
	require.True(t, form.Validate().Valid())

	req := form.Request()
	require.Equal(t, "Widget", req.Name)
	require.Equal(t, 9.99, req.Price)
	require.Equal(t, "cat-1", req.CategoryID)
	require.Equal(t, []string{"https://good.host/a.jpg"}, req.Images)
}

func TestProductFormFromKeepsOneImageSlot(t *testing.T) {
	t.Parallel()

	form := ProductFormFrom(api.Product{
		Name:     "Widget",
		Price:    5,
		Category: api.Category{ID: "cat-1"},
	})
	require.Equal(t, []string{""}, form.Images)
	require.Equal(t, "cat-1", form.CategoryID)
}

func TestCategoryFormRules(t *testing.T) {
	t.Parallel()

	errs := CategoryForm{}.Validate()
	require.Equal(t, "Category name is required", errs["name"])

	errs = CategoryForm{Name: "Kitchen", Image: "nope"}.Validate()
	require.Equal(t, "Invalid image URL", errs["image"])

	errs = CategoryForm{Name: "Kitchen", Image: "https://i.imgur.com/x.png"}.Validate()
	require.True(t, errs.Valid())

	errs = CategoryForm{Name: "Kitchen"}.Validate()
	require.True(t, errs.Valid())
}

func TestLoginFormRules(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Invalid email address", LoginForm{}.Validate()["email"])
	require.Equal(t, "Invalid email address", LoginForm{Email: "not-an-email"}.Validate()["email"])
	require.True(t, LoginForm{Email: "admin@example.com"}.Validate().Valid())
}
