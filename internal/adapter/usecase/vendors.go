package usecase

import (
	"context"
	"math"

	"backoffice/internal/core/domain"
	"backoffice/internal/core/listing"
	"backoffice/internal/core/port"
)

func (u *ConsoleUseCase) vendorPage() page[domain.Vendor, port.VendorStats] {
	return page[domain.Vendor, port.VendorStats]{
		kind:   KindVendors,
		repo:   u.repos.Vendors,
		reduce: VendorStats,
		badges: func(v domain.Vendor) map[string]listing.Badge {
			return map[string]listing.Badge{
				"status": domain.VendorStatusBadges.Lookup(string(v.Status)),
				"kyc":    domain.KYCBadges.Lookup(string(v.KYCStatus)),
				"tier":   domain.VendorTierBadges.Lookup(string(v.Tier)),
			}
		},
	}
}

func MatchVendor(f port.VendorFilter, v domain.Vendor) bool {
	return listing.MatchesSearch(f.Search, v.Name, v.BusinessName, v.Email) &&
		listing.MatchesSelector(f.Status, string(v.Status)) &&
		listing.MatchesSelector(f.Tier, string(v.Tier)) &&
		listing.MatchesSelector(f.KYCStatus, string(v.KYCStatus))
}

// VendorStats reduces vendors into the page summary. Unrated vendors
// (rating 0) are left out of the average rating.
func VendorStats(vendors []domain.Vendor) port.VendorStats {
	var (
		s          port.VendorStats
		commission float64
		ratingSum  float64
		rated      int
	)
	for _, v := range vendors {
		s.Total++
		switch v.Status {
		case domain.VendorActive:
			s.Active++
		case domain.VendorPending:
			s.Pending++
		}
		if v.KYCStatus == domain.KYCVerified {
			s.KYCVerified++
		}
		s.TotalSales += v.TotalSales
		commission += float64(v.TotalSales) * v.CommissionRate / 100
		if v.Rating > 0 {
			ratingSum += v.Rating
			rated++
		}
	}
	s.Commission = int64(math.Round(commission))
	s.AvgRating = listing.Ratio(ratingSum, float64(rated))
	return s
}

func (u *ConsoleUseCase) ListVendors(ctx context.Context, f port.VendorFilter) (*port.Listing[domain.Vendor, port.VendorStats], error) {
	return u.vendorPage().list(ctx, func(v domain.Vendor) bool { return MatchVendor(f, v) }, f.Page)
}

func (u *ConsoleUseCase) GetVendor(ctx context.Context, id string) (*domain.Vendor, error) {
	return u.vendorPage().get(ctx, id)
}

func (u *ConsoleUseCase) SetVendorStatus(ctx context.Context, id string, status domain.VendorStatus) (*domain.Vendor, error) {
	return setStatus(ctx, u, u.vendorPage(), id, status, status.Valid(),
		func(v *domain.Vendor) *domain.VendorStatus { return &v.Status })
}
