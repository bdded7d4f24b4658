package usecase

import (
	"context"

	"backoffice/internal/core/domain"
	"backoffice/internal/core/listing"
	"backoffice/internal/core/port"
)

func (u *ConsoleUseCase) bannerPage() page[domain.Banner, port.BannerStats] {
	return page[domain.Banner, port.BannerStats]{
		kind:   KindBanners,
		repo:   u.repos.Banners,
		reduce: BannerStats,
		badges: func(b domain.Banner) map[string]listing.Badge {
			return map[string]listing.Badge{
				"status": domain.BannerStatusBadges.Lookup(string(b.Status)),
				"type":   domain.BannerTypeBadges.Lookup(string(b.Type)),
			}
		},
	}
}

// MatchBanner is the banners page predicate.
func MatchBanner(f port.BannerFilter, b domain.Banner) bool {
	return listing.MatchesSearch(f.Search, b.Title, b.Description, b.CreatedBy) &&
		listing.MatchesSelector(f.Status, string(b.Status)) &&
		listing.MatchesSelector(f.Position, string(b.Position)) &&
		listing.MatchesSelector(f.Type, string(b.Type))
}

// BannerStats reduces banners into the page summary. The average CTR is
// derived from the summed clicks and impressions, not from the stored
// per-banner CTR.
func BannerStats(banners []domain.Banner) port.BannerStats {
	var s port.BannerStats
	for _, b := range banners {
		s.Total++
		if b.Status == domain.BannerActive {
			s.Active++
		}
		s.Impressions += b.Performance.Impressions
		s.Clicks += b.Performance.Clicks
		s.Conversions += b.Performance.Conversions
		s.Revenue += b.Performance.Revenue
	}
	s.AvgCTR = listing.Percent(float64(s.Clicks), float64(s.Impressions))
	return s
}

func (u *ConsoleUseCase) ListBanners(ctx context.Context, f port.BannerFilter) (*port.Listing[domain.Banner, port.BannerStats], error) {
	live := u.running(f.Live)
	return u.bannerPage().list(ctx, func(b domain.Banner) bool { return MatchBanner(f, b) && live(b.Schedule) }, f.Page)
}

func (u *ConsoleUseCase) GetBanner(ctx context.Context, id string) (*domain.Banner, error) {
	return u.bannerPage().get(ctx, id)
}

func (u *ConsoleUseCase) SetBannerStatus(ctx context.Context, id string, status domain.BannerStatus) (*domain.Banner, error) {
	return setStatus(ctx, u, u.bannerPage(), id, status, status.Valid(),
		func(b *domain.Banner) *domain.BannerStatus { return &b.Status })
}
