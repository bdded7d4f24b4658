package port

import "backoffice/internal/core/listing"

// Page selects a window of the filtered records. A zero Limit means no
// limit.
type Page struct {
	Limit  int
	Offset int
}

// Row is one record of a listing together with its badge lookups.
type Row[T any] struct {
	Record T                        `json:"record"`
	Badges map[string]listing.Badge `json:"badges"`
}

// Listing is the view model of a console page. Stats always describe the
// full record set; Matched counts the filtered records before paging.
type Listing[T any, S any] struct {
	Items   []Row[T] `json:"items"`
	Matched int      `json:"matched"`
	Total   int      `json:"total"`
	Stats   S        `json:"stats"`
}

type BannerFilter struct {
	Search   string
	Status   string
	Position string
	Type     string
	// Live keeps only records whose schedule contains the current time.
	Live bool
	Page
}

type CouponFilter struct {
	Search string
	Status string
	Type   string
	// Live keeps only records whose schedule contains the current time.
	Live bool
	Page
}

type CustomerFilter struct {
	Search  string
	Status  string
	Segment string
	Page
}

type DealFilter struct {
	Search string
	Status string
	Type   string
	// Live keeps only records whose schedule contains the current time.
	Live bool
	Page
}

type DeliveryFilter struct {
	Search   string
	Status   string
	Priority string
	Carrier  string
	Page
}

type RequestFilter struct {
	Search   string
	Status   string
	Priority string
	Category string
	Page
}

type TransactionFilter struct {
	Search string
	Status string
	Type   string
	Method string
	Page
}

type VendorFilter struct {
	Search    string
	Status    string
	Tier      string
	KYCStatus string
	Page
}

type ProductFilter struct {
	Search   string
	Status   string
	Category string
	Page
}
