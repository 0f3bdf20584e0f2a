package views

import (
	"bitechx.com/catalog/internal/catalog/api"
	"bitechx.com/catalog/internal/catalog/browse"
	"bitechx.com/catalog/internal/catalog/forms"
	"bitechx.com/catalog/internal/catalog/imageurl"
)

const categoriesPath = "/dashboard/categories"

// CategoryRow is one table row on the admin category list.
type CategoryRow struct {
	ID          string
	Name        string
	Description string
	Image       string
	Optimize    bool
	Placeholder bool
	Created     string
	EditURL     string
	DeleteURL   string
}

// CategoriesPage is the payload for the admin category list screen.
type CategoriesPage struct {
	Title      string
	State      State
	Error      string
	SearchTerm string
	Rows       []CategoryRow
	Pagination Pagination
	ListQuery  string
}

// Categories derives the category list screen. The search endpoint has no
// paging, so an active search suppresses the pagination block entirely.
func Categories(page browse.Page[api.Category], errMsg string) CategoriesPage {
	q := page.Query
	searchTerm, searching := q.Filter.Search()

	rows := make([]CategoryRow, 0, len(page.Items))
	for _, c := range page.Items {
		rows = append(rows, categoryRow(c))
	}

	return CategoriesPage{
		Title:      "Categories",
		State:      listState(len(rows), errMsg != ""),
		Error:      errMsg,
		SearchTerm: searchTerm,
		Rows:       rows,
		Pagination: pagination(page.From(), page.To(), page.HasPrev(), page.HasMore, categoriesPath, q, !searching),
		ListQuery:  q.Encode(),
	}
}

func categoryRow(c api.Category) CategoryRow {
	description := c.Description
	if description == "" {
		description = "No description"
	}
	image := ""
	optimize := false
	placeholder := true
	if c.Image != "" {
		image = imageurl.Sanitize(c.Image)
		placeholder = image == imageurl.Placeholder
		optimize = !placeholder && imageurl.CanOptimize(image)
	}
	return CategoryRow{
		ID:          c.ID,
		Name:        c.Name,
		Description: description,
		Image:       image,
		Optimize:    optimize,
		Placeholder: placeholder,
		Created:     FormatDate(c.CreatedAt),
		EditURL:     categoriesPath + "/" + c.ID + "/edit",
		DeleteURL:   categoriesPath + "/" + c.ID + "/delete",
	}
}

// CategoryFormPage is the payload for the create/edit category screens.
type CategoryFormPage struct {
	Title   string
	Action  string
	Submit  string
	Form    forms.CategoryForm
	Errors  forms.Errors
	Error   string
	BackURL string
}

// CategoryCreate builds the blank create screen.
func CategoryCreate(form forms.CategoryForm, errs forms.Errors, errMsg string) CategoryFormPage {
	return CategoryFormPage{
		Title:   "Create Category",
		Action:  categoriesPath + "/new",
		Submit:  "Create Category",
		Form:    form,
		Errors:  errs,
		Error:   errMsg,
		BackURL: categoriesPath,
	}
}

// CategoryEdit builds the pre-populated edit screen.
func CategoryEdit(id string, form forms.CategoryForm, errs forms.Errors, errMsg string) CategoryFormPage {
	return CategoryFormPage{
		Title:   "Edit Category",
		Action:  categoriesPath + "/" + id + "/edit",
		Submit:  "Update Category",
		Form:    form,
		Errors:  errs,
		Error:   errMsg,
		BackURL: categoriesPath,
	}
}
