package forms

import (
	"net/url"
	"strconv"
	"strings"

	"bitechx.com/catalog/internal/catalog/api"
	"bitechx.com/catalog/internal/catalog/imageurl"
)

// temporaryPreviewScheme marks a locally-selected file preview. Those
// references exist only in the browser and must never be sent upstream.
const temporaryPreviewScheme = "blob:"

var productMessages = map[string]string{
	"Name":        "Product name is required",
	"Description": "Description is required",
	"Price":       "Price must be greater than 0",
	"CategoryID":  "Category is required",
}

// ProductForm carries a product create/edit submission. Images holds the raw
// slot values as entered, including empty slots and temporary previews.
type ProductForm struct {
	Name        string  `validate:"required"`
	Description string  `validate:"required"`
	Price       float64 `validate:"gt=0"`
	CategoryID  string  `validate:"required"`
	Images      []string
}

// ParseProductForm reads a submitted form. An unparsable price becomes zero
// and is rejected by validation rather than by a decode error.
func ParseProductForm(values url.Values) ProductForm {
	price, _ := strconv.ParseFloat(strings.TrimSpace(values.Get("price")), 64)
	images := values["images"]
	if len(images) == 0 {
		images = []string{""}
	}
	return ProductForm{
		Name:        strings.TrimSpace(values.Get("name")),
		Description: strings.TrimSpace(values.Get("description")),
		Price:       price,
		CategoryID:  strings.TrimSpace(values.Get("category")),
		Images:      images,
	}
}

// ProductFormFrom pre-populates the form from a fetched product for the edit
// screen. At least one image slot is always present.
func ProductFormFrom(p api.Product) ProductForm {
	images := append([]string(nil), p.Images...)
	if len(images) == 0 {
		images = []string{""}
	}
	return ProductForm{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.Category.ID,
		Images:      images,
	}
}

// SubmitImages is the image list that goes to the API: empty slots and
// temporary previews dropped, order preserved.
func (f ProductForm) SubmitImages() []string {
	kept := make([]string, 0, len(f.Images))
	for _, img := range f.Images {
		trimmed := strings.TrimSpace(img)
		if trimmed == "" || strings.HasPrefix(trimmed, temporaryPreviewScheme) {
			continue
		}
		kept = append(kept, trimmed)
	}
	return kept
}

// Validate applies every field rule. The image rule runs over the filtered
// submission list: it must be non-empty and each entry must be a well-formed
// absolute URL.
func (f ProductForm) Validate() Errors {
	errs := collect(f, productMessages)

	images := f.SubmitImages()
	if len(images) == 0 {
		errs["images"] = "At least one image is required"
		return errs
	}
	for _, img := range images {
		if !imageurl.Valid(img) {
			errs["images"] = "Invalid image URL"
			break
		}
	}
	return errs
}

// Request maps the validated form onto the API create/update body.
func (f ProductForm) Request() api.ProductRequest {
	return api.ProductRequest{
		Name:        f.Name,
		Description: f.Description,
		Price:       f.Price,
		CategoryID:  f.CategoryID,
		Images:      f.SubmitImages(),
	}
}
