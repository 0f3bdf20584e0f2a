package views

import (
	"bitechx.com/catalog/internal/catalog/api"
	"bitechx.com/catalog/internal/catalog/browse"
	"bitechx.com/catalog/internal/catalog/imageurl"
)

const shopPath = "/shop"

// ShopCard is one product tile on the storefront grid.
type ShopCard struct {
	Name        string
	Price       string
	Category    string
	Image       string
	Optimize    bool
	Placeholder bool
	DetailURL   string
}

// ShopPage is the payload for the storefront grid.
type ShopPage struct {
	Title      string
	State      State
	Error      string
	SearchTerm string
	Cards      []ShopCard
	Pagination Pagination
}

// Shop derives the storefront grid from a fetched product page.
func Shop(page browse.Page[api.Product], errMsg string) ShopPage {
	q := page.Query
	searchTerm, _ := q.Filter.Search()

	cards := make([]ShopCard, 0, len(page.Items))
	for _, p := range page.Items {
		cards = append(cards, shopCard(p))
	}

	return ShopPage{
		Title:      "Shop",
		State:      listState(len(cards), errMsg != ""),
		Error:      errMsg,
		SearchTerm: searchTerm,
		Cards:      cards,
		Pagination: pagination(page.From(), page.To(), page.HasPrev(), page.HasMore, shopPath, q, true),
	}
}

func shopCard(p api.Product) ShopCard {
	image := imageurl.Placeholder
	if len(p.Images) > 0 {
		image = imageurl.Sanitize(p.Images[0])
	}
	return ShopCard{
		Name:        p.Name,
		Price:       FormatPrice(p.Price),
		Category:    p.Category.Name,
		Image:       image,
		Optimize:    imageurl.CanOptimize(image),
		Placeholder: image == imageurl.Placeholder,
		DetailURL:   shopPath + "/product/" + p.Slug,
	}
}

// ShopDetailImage is one gallery entry on the product detail page.
type ShopDetailImage struct {
	URL         string
	Optimize    bool
	Placeholder bool
}

// ShopDetailPage is the payload for the storefront product detail screen.
type ShopDetailPage struct {
	Title       string
	Error       string
	Name        string
	Description string
	Price       string
	Category    string
	Images      []ShopDetailImage
	BackURL     string
}

// ShopDetail derives the product detail screen.
func ShopDetail(p api.Product, errMsg string) ShopDetailPage {
	images := make([]ShopDetailImage, 0, len(p.Images))
	for _, raw := range p.Images {
		safe := imageurl.Sanitize(raw)
		images = append(images, ShopDetailImage{
			URL:         safe,
			Optimize:    imageurl.CanOptimize(safe),
			Placeholder: safe == imageurl.Placeholder,
		})
	}
	if len(images) == 0 {
		images = []ShopDetailImage{{URL: imageurl.Placeholder, Placeholder: true}}
	}

	return ShopDetailPage{
		Title:       p.Name,
		Error:       errMsg,
		Name:        p.Name,
		Description: p.Description,
		Price:       FormatPrice(p.Price),
		Category:    p.Category.Name,
		Images:      images,
		BackURL:     shopPath,
	}
}
