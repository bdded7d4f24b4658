package port

import (
	"context"

	"backoffice/internal/core/domain"
)

// ConsoleUseCase defines the business operations behind the console
// pages. It is the primary port into the application; the HTTP adapter
// and the CLI depend on it. Every List method computes its statistics
// over the full record set and applies the filter only to the returned
// items. Every Set*Status method accepts any member of the record's
// status set regardless of the current status.
type ConsoleUseCase interface {
	ListBanners(ctx context.Context, f BannerFilter) (*Listing[domain.Banner, BannerStats], error)
	GetBanner(ctx context.Context, id string) (*domain.Banner, error)
	SetBannerStatus(ctx context.Context, id string, status domain.BannerStatus) (*domain.Banner, error)

	ListCoupons(ctx context.Context, f CouponFilter) (*Listing[domain.Coupon, CouponStats], error)
	GetCoupon(ctx context.Context, code string) (*domain.Coupon, error)
	SetCouponStatus(ctx context.Context, code string, status domain.CouponStatus) (*domain.Coupon, error)

	ListCustomers(ctx context.Context, f CustomerFilter) (*Listing[domain.Customer, CustomerStats], error)
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
	SetCustomerStatus(ctx context.Context, id string, status domain.CustomerStatus) (*domain.Customer, error)

	ListDeals(ctx context.Context, f DealFilter) (*Listing[domain.Deal, DealStats], error)
	GetDeal(ctx context.Context, id string) (*domain.Deal, error)
	SetDealStatus(ctx context.Context, id string, status domain.DealStatus) (*domain.Deal, error)

	ListDeliveries(ctx context.Context, f DeliveryFilter) (*Listing[domain.Delivery, DeliveryStats], error)
	GetDelivery(ctx context.Context, trackingNumber string) (*domain.Delivery, error)
	SetDeliveryStatus(ctx context.Context, trackingNumber string, status domain.DeliveryStatus) (*domain.Delivery, error)

	ListProducts(ctx context.Context, f ProductFilter) (*Listing[domain.Product, ProductStats], error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	SetProductStatus(ctx context.Context, id string, status domain.ProductStatus) (*domain.Product, error)
	// ListCategories returns the product categories, preferring the
	// external catalog when one is configured.
	ListCategories(ctx context.Context) ([]string, error)
	// SyncCatalog imports products from the external catalog once. It
	// returns the number of imported products.
	SyncCatalog(ctx context.Context) (int, error)

	ListRequests(ctx context.Context, f RequestFilter) (*Listing[domain.CustomerRequest, RequestStats], error)
	GetRequest(ctx context.Context, ticketID string) (*domain.CustomerRequest, error)
	SetRequestStatus(ctx context.Context, ticketID string, status domain.RequestStatus) (*domain.CustomerRequest, error)

	ListTransactions(ctx context.Context, f TransactionFilter) (*Listing[domain.Transaction, TransactionStats], error)
	GetTransaction(ctx context.Context, id string) (*domain.Transaction, error)
	SetTransactionStatus(ctx context.Context, id string, status domain.TransactionStatus) (*domain.Transaction, error)

	ListVendors(ctx context.Context, f VendorFilter) (*Listing[domain.Vendor, VendorStats], error)
	GetVendor(ctx context.Context, id string) (*domain.Vendor, error)
	SetVendorStatus(ctx context.Context, id string, status domain.VendorStatus) (*domain.Vendor, error)

	// GetSettings returns the stored settings or the defaults.
	GetSettings(ctx context.Context) (*domain.SystemSettings, error)
	// UpdateSettings replaces the settings document after validation.
	UpdateSettings(ctx context.Context, s domain.SystemSettings) (*domain.SystemSettings, error)
	// ResetSettings restores the defaults.
	ResetSettings(ctx context.Context) (*domain.SystemSettings, error)

	// Overview returns every page's statistics.
	Overview(ctx context.Context) (*Overview, error)
}
