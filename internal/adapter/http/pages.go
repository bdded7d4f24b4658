package httpadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/adapter/csvexport"
	"backoffice/internal/core/domain"
	"backoffice/internal/core/port"
)

// resource binds one console page to its use case operations.
type resource[T any, S any, F any] struct {
	name      string
	filter    func(url.Values, port.Page) F
	list      func(context.Context, F) (*port.Listing[T, S], error)
	get       func(context.Context, string) (*T, error)
	setStatus func(context.Context, string, string) (*T, error)
	table     csvexport.Table[T]
}

// page is a console resource with its routes and CSV export.
type page interface {
	key() string
	mount(h *Handler, r chi.Router)
	export(ctx context.Context, q url.Values) (csvWriter, error)
}

// csvWriter writes already loaded records as CSV.
type csvWriter func(w io.Writer) error

func (res resource[T, S, F]) key() string { return res.name }

// export loads the records matching q, ignoring paging. Nothing is
// written until the returned writer is called.
func (res resource[T, S, F]) export(ctx context.Context, q url.Values) (csvWriter, error) {
	out, err := res.list(ctx, res.filter(q, port.Page{}))
	if err != nil {
		return nil, err
	}
	recs := make([]T, len(out.Items))
	for i, row := range out.Items {
		recs[i] = row.Record
	}
	return func(w io.Writer) error { return res.table.Write(w, recs) }, nil
}

// mount registers:
//
//	GET   /{name}             filtered listing with stats and badges
//	GET   /{name}/export.csv  filtered records as CSV, unpaged
//	GET   /{name}/{id}        one record
//	PATCH /{name}/{id}/status {"status": "..."}
func (res resource[T, S, F]) mount(h *Handler, r chi.Router) {
	r.Route("/"+res.name, func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			pg, err := parsePage(q)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
				return
			}
			out, err := res.list(r.Context(), res.filter(q, pg))
			if err != nil {
				h.fail(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, out)
		})

		r.Get("/export.csv", func(w http.ResponseWriter, r *http.Request) {
			write, err := res.export(r.Context(), r.URL.Query())
			if err != nil {
				h.fail(w, r, err)
				return
			}
			w.Header().Set("Content-Type", "text/csv; charset=utf-8")
			w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.name+".csv"))
			if err = write(w); err != nil {
				h.logger.Error("export csv", slog.String("resource", res.name), slog.Any("error", err))
			}
		})

		r.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {
			rec, err := res.get(r.Context(), chi.URLParam(r, "id"))
			if err != nil {
				h.fail(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, rec)
		})

		r.Patch("/{id}/status", func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				Status string `json:"status"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid json"})
				return
			}
			rec, err := res.setStatus(r.Context(), chi.URLParam(r, "id"), body.Status)
			if err != nil {
				h.fail(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, rec)
		})
	})
}

func (h *Handler) mountPages(r chi.Router) {
	for _, p := range pages(h.svc) {
		p.mount(h, r)
	}
}

// Resources are the names of the exportable console resources.
var Resources = []string{"banners", "coupons", "customers", "deals", "deliveries", "products", "requests", "transactions", "vendors"}

// ExportCSV writes the records of the named resource matching the query
// parameters q as CSV. q uses the same keys as the listing endpoints.
func ExportCSV(ctx context.Context, svc port.ConsoleUseCase, name string, q url.Values, w io.Writer) error {
	for _, p := range pages(svc) {
		if p.key() == name {
			write, err := p.export(ctx, q)
			if err != nil {
				return err
			}
			return write(w)
		}
	}
	return fmt.Errorf("unknown resource %q", name)
}

func pages(svc port.ConsoleUseCase) []page {
	return []page{
		resource[domain.Banner, port.BannerStats, port.BannerFilter]{
			name: "banners", filter: bannerFilter, list: svc.ListBanners, get: svc.GetBanner, table: csvexport.Banners,
			setStatus: func(ctx context.Context, id, s string) (*domain.Banner, error) {
				return svc.SetBannerStatus(ctx, id, domain.BannerStatus(s))
			},
		},
		resource[domain.Coupon, port.CouponStats, port.CouponFilter]{
			name: "coupons", filter: couponFilter, list: svc.ListCoupons, get: svc.GetCoupon, table: csvexport.Coupons,
			setStatus: func(ctx context.Context, code, s string) (*domain.Coupon, error) {
				return svc.SetCouponStatus(ctx, code, domain.CouponStatus(s))
			},
		},
		resource[domain.Customer, port.CustomerStats, port.CustomerFilter]{
			name: "customers", filter: customerFilter, list: svc.ListCustomers, get: svc.GetCustomer, table: csvexport.Customers,
			setStatus: func(ctx context.Context, id, s string) (*domain.Customer, error) {
				return svc.SetCustomerStatus(ctx, id, domain.CustomerStatus(s))
			},
		},
		resource[domain.Deal, port.DealStats, port.DealFilter]{
			name: "deals", filter: dealFilter, list: svc.ListDeals, get: svc.GetDeal, table: csvexport.Deals,
			setStatus: func(ctx context.Context, id, s string) (*domain.Deal, error) {
				return svc.SetDealStatus(ctx, id, domain.DealStatus(s))
			},
		},
		resource[domain.Delivery, port.DeliveryStats, port.DeliveryFilter]{
			name: "deliveries", filter: deliveryFilter, list: svc.ListDeliveries, get: svc.GetDelivery, table: csvexport.Deliveries,
			setStatus: func(ctx context.Context, tn, s string) (*domain.Delivery, error) {
				return svc.SetDeliveryStatus(ctx, tn, domain.DeliveryStatus(s))
			},
		},
		resource[domain.Product, port.ProductStats, port.ProductFilter]{
			name: "products", filter: productFilter, list: svc.ListProducts, get: svc.GetProduct, table: csvexport.Products,
			setStatus: func(ctx context.Context, id, s string) (*domain.Product, error) {
				return svc.SetProductStatus(ctx, id, domain.ProductStatus(s))
			},
		},
		resource[domain.CustomerRequest, port.RequestStats, port.RequestFilter]{
			name: "requests", filter: requestFilter, list: svc.ListRequests, get: svc.GetRequest, table: csvexport.Requests,
			setStatus: func(ctx context.Context, ticket, s string) (*domain.CustomerRequest, error) {
				return svc.SetRequestStatus(ctx, ticket, domain.RequestStatus(s))
			},
		},
		resource[domain.Transaction, port.TransactionStats, port.TransactionFilter]{
			name: "transactions", filter: transactionFilter, list: svc.ListTransactions, get: svc.GetTransaction, table: csvexport.Transactions,
			setStatus: func(ctx context.Context, id, s string) (*domain.Transaction, error) {
				return svc.SetTransactionStatus(ctx, id, domain.TransactionStatus(s))
			},
		},
		resource[domain.Vendor, port.VendorStats, port.VendorFilter]{
			name: "vendors", filter: vendorFilter, list: svc.ListVendors, get: svc.GetVendor, table: csvexport.Vendors,
			setStatus: func(ctx context.Context, id, s string) (*domain.Vendor, error) {
				return svc.SetVendorStatus(ctx, id, domain.VendorStatus(s))
			},
		},
	}
}
