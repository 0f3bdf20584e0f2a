package views

import (
	"bitechx.com/catalog/internal/catalog/api"
	"bitechx.com/catalog/internal/catalog/browse"
	"bitechx.com/catalog/internal/catalog/forms"
	"bitechx.com/catalog/internal/catalog/imageurl"
)

const productsPath = "/dashboard/products"

// ProductRow is one table row on the admin product list.
type ProductRow struct {
	ID          string
	Name        string
	Slug        string
	Price       string
	Category    string
	Image       string
	Optimize    bool
	Placeholder bool
	Created     string
	EditURL     string
	DeleteURL   string
}

// ProductsPage is the payload for the admin product list screen.
type ProductsPage struct {
	Title      string
	State      State
	Error      string
	SearchTerm string
	CategoryID string
	Categories []Option
	Rows       []ProductRow
	Pagination Pagination
	ListQuery  string
}

// Products derives the product list screen from a fetched page. A non-empty
// errMsg forces the failed state; the rows are whatever the last successful
// fetch produced (usually none).
func Products(page browse.Page[api.Product], categories []api.Category, errMsg string) ProductsPage {
	q := page.Query
	searchTerm, _ := q.Filter.Search()
	categoryID, _ := q.Filter.Category()

	rows := make([]ProductRow, 0, len(page.Items))
	for _, p := range page.Items {
		rows = append(rows, productRow(p))
	}

	return ProductsPage{
		Title:      "Products",
		State:      listState(len(rows), errMsg != ""),
		Error:      errMsg,
		SearchTerm: searchTerm,
		CategoryID: categoryID,
		Categories: categoryOptions(categories, categoryID),
		Rows:       rows,
		Pagination: pagination(page.From(), page.To(), page.HasPrev(), page.HasMore, productsPath, q, true),
		ListQuery:  q.Encode(),
	}
}

func productRow(p api.Product) ProductRow {
	image := imageurl.Placeholder
	if len(p.Images) > 0 {
		image = imageurl.Sanitize(p.Images[0])
	}
	return ProductRow{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Price:       FormatPrice(p.Price),
		Category:    p.Category.Name,
		Image:       image,
		Optimize:    imageurl.CanOptimize(image),
		Placeholder: image == imageurl.Placeholder,
		Created:     FormatDate(p.CreatedAt),
		EditURL:     productsPath + "/" + p.ID + "/edit",
		DeleteURL:   productsPath + "/" + p.ID + "/delete",
	}
}

// ProductFormPage is the payload for the create/edit product screens.
type ProductFormPage struct {
	Title      string
	Action     string
	Submit     string
	Form       forms.ProductForm
	Errors     forms.Errors
	Error      string
	Categories []Option
	BackURL    string
}

// ProductCreate builds the blank create screen.
func ProductCreate(form forms.ProductForm, errs forms.Errors, categories []api.Category, errMsg string) ProductFormPage {
	if len(form.Images) == 0 {
		form.Images = []string{""}
	}
	return ProductFormPage{
		Title:      "Create Product",
		Action:     productsPath + "/new",
		Submit:     "Create Product",
		Form:       form,
		Errors:     errs,
		Error:      errMsg,
		Categories: categoryOptions(categories, form.CategoryID),
		BackURL:    productsPath,
	}
}

// ProductEdit builds the pre-populated edit screen.
func ProductEdit(id string, form forms.ProductForm, errs forms.Errors, categories []api.Category, errMsg string) ProductFormPage {
	if len(form.Images) == 0 {
		form.Images = []string{""}
	}
	return ProductFormPage{
		Title:      "Edit Product",
		Action:     productsPath + "/" + id + "/edit",
		Submit:     "Update Product",
		Form:       form,
		Errors:     errs,
		Error:      errMsg,
		Categories: categoryOptions(categories, form.CategoryID),
		BackURL:    productsPath,
	}
}

func categoryOptions(categories []api.Category, selected string) []Option {
	opts := make([]Option, 0, len(categories))
	for _, c := range categories {
		opts = append(opts, Option{
			Value:    c.ID,
			Label:    c.Name,
			Selected: c.ID == selected,
		})
	}
	return opts
}

// pagination derives the navigation block. show=false suppresses the whole
// block (category search has no paging on its endpoint).
func pagination(from, to int, hasPrev, hasMore bool, basePath string, q browse.Query, show bool) Pagination {
	p := Pagination{
		Show:    show,
		From:    from,
		To:      to,
		HasPrev: hasPrev,
		HasMore: hasMore,
	}
	if !show {
		return p
	}
	if hasPrev {
		p.PrevURL = listURL(basePath, q.Prev())
	}
	if hasMore {
		p.NextURL = listURL(basePath, q.Next())
	}
	return p
}

func listURL(basePath string, q browse.Query) string {
	encoded := q.Encode()
	if encoded == "" {
		return basePath
	}
	return basePath + "?" + encoded
}
