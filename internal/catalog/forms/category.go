package forms

import (
	"net/url"
	"strings"

	"bitechx.com/catalog/internal/catalog/api"
	"bitechx.com/catalog/internal/catalog/imageurl"
)

var categoryMessages = map[string]string{
	"Name": "Category name is required",
}

// CategoryForm carries a category create/edit submission. Description and
// image are optional.
type CategoryForm struct {
	Name        string `validate:"required"`
	Description string
	Image       string
}

// ParseCategoryForm reads a submitted form.
func ParseCategoryForm(values url.Values) CategoryForm {
	return CategoryForm{
		Name:        strings.TrimSpace(values.Get("name")),
		Description: strings.TrimSpace(values.Get("description")),
		Image:       strings.TrimSpace(values.Get("image")),
	}
}

// CategoryFormFrom pre-populates the form for the edit screen.
func CategoryFormFrom(c api.Category) CategoryForm {
	return CategoryForm{
		Name:        c.Name,
		Description: c.Description,
		Image:       c.Image,
	}
}

// Validate applies the field rules. The image, when present, must parse as
// an absolute URL; temporary previews are rejected the same way.
func (f CategoryForm) Validate() Errors {
	errs := collect(f, categoryMessages)
	if f.Image != "" && !imageurl.Valid(f.Image) {
		errs["image"] = "Invalid image URL"
	}
	return errs
}

// Request maps the validated form onto the API create/update body.
func (f CategoryForm) Request() api.CategoryRequest {
	return api.CategoryRequest{
		Name:        f.Name,
		Description: f.Description,
		Image:       f.Image,
	}
}
