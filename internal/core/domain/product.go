package domain

import (
	"time"

	"backoffice/internal/core/listing"
)

type ProductStatus string

const (
	ProductActive     ProductStatus = "active"
	ProductDraft      ProductStatus = "draft"
	ProductArchived   ProductStatus = "archived"
	ProductOutOfStock ProductStatus = "out_of_stock"
)

func (s ProductStatus) Valid() bool {
	return oneOf(s, ProductActive, ProductDraft, ProductArchived, ProductOutOfStock)
}

// Product is a catalog entry. Prices are cents.
type Product struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	SKU            string        `json:"sku"`
	Description    string        `json:"description"`
	Category       string        `json:"category"`
	Brand          string        `json:"brand"`
	Status         ProductStatus `json:"status"`
	Price          int64         `json:"price"`
	CompareAtPrice int64         `json:"compareAtPrice,omitempty"`
	Cost           int64         `json:"cost"`
	Stock          int64         `json:"stock"`
	Variants       []Variant     `json:"variants"`
	Images         []string      `json:"images"`
	Tags           []string      `json:"tags"`
	Rating         float64       `json:"rating"`
	Sales          int64         `json:"sales"`
	Revenue        int64         `json:"revenue"`
	CreatedAt      time.Time     `json:"createdAt"`
}

func (p Product) Key() string { return p.ID }

// SoldOut reports whether the product cannot be ordered.
func (p Product) SoldOut() bool {
	return p.Stock <= 0 || p.Status == ProductOutOfStock
}

type Variant struct {
	SKU   string `json:"sku"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Stock int64  `json:"stock"`
}

var ProductStatusBadges = listing.NewBadgeTable(listing.DefaultBadge, map[string]listing.Badge{
	string(ProductActive):     {Tone: "green", Icon: "check"},
	string(ProductDraft):      {Tone: "yellow", Icon: "edit"},
	string(ProductArchived):   {Tone: "gray", Icon: "archive"},
	string(ProductOutOfStock): {Tone: "red", Icon: "alert-circle"},
})
