package httpadapter

import (
	"fmt"
	"net/url"
	"strconv"

	"backoffice/internal/core/port"
)

// parsePage reads limit and offset. Missing values mean no paging.
func parsePage(q url.Values) (port.Page, error) {
	var (
		pg  port.Page
		err error
	)
	if v := q.Get("limit"); v != "" {
		if pg.Limit, err = strconv.Atoi(v); err != nil || pg.Limit < 0 {
			return pg, fmt.Errorf("invalid limit %q", v)
		}
	}
	if v := q.Get("offset"); v != "" {
		if pg.Offset, err = strconv.Atoi(v); err != nil || pg.Offset < 0 {
			return pg, fmt.Errorf("invalid offset %q", v)
		}
	}
	return pg, nil
}

// flag reads a boolean query parameter. Missing or malformed values are
// false.
func flag(q url.Values, key string) bool {
	v, _ := strconv.ParseBool(q.Get(key))
	return v
}

// The filter parsers read the search box and the selectors of each page.
// Absent selectors behave like "all".

func bannerFilter(q url.Values, pg port.Page) port.BannerFilter {
	return port.BannerFilter{Search: q.Get("search"), Status: q.Get("status"), Position: q.Get("position"), Type: q.Get("type"), Live: flag(q, "live"), Page: pg}
}

func couponFilter(q url.Values, pg port.Page) port.CouponFilter {
	return port.CouponFilter{Search: q.Get("search"), Status: q.Get("status"), Type: q.Get("type"), Live: flag(q, "live"), Page: pg}
}

func customerFilter(q url.Values, pg port.Page) port.CustomerFilter {
	return port.CustomerFilter{Search: q.Get("search"), Status: q.Get("status"), Segment: q.Get("segment"), Page: pg}
}

func dealFilter(q url.Values, pg port.Page) port.DealFilter {
	return port.DealFilter{Search: q.Get("search"), Status: q.Get("status"), Type: q.Get("type"), Live: flag(q, "live"), Page: pg}
}

func deliveryFilter(q url.Values, pg port.Page) port.DeliveryFilter {
	return port.DeliveryFilter{Search: q.Get("search"), Status: q.Get("status"), Priority: q.Get("priority"), Carrier: q.Get("carrier"), Page: pg}
}

func productFilter(q url.Values, pg port.Page) port.ProductFilter {
	return port.ProductFilter{Search: q.Get("search"), Status: q.Get("status"), Category: q.Get("category"), Page: pg}
}

func requestFilter(q url.Values, pg port.Page) port.RequestFilter {
	return port.RequestFilter{Search: q.Get("search"), Status: q.Get("status"), Priority: q.Get("priority"), Category: q.Get("category"), Page: pg}
}

func transactionFilter(q url.Values, pg port.Page) port.TransactionFilter {
	return port.TransactionFilter{Search: q.Get("search"), Status: q.Get("status"), Type: q.Get("type"), Method: q.Get("method"), Page: pg}
}

func vendorFilter(q url.Values, pg port.Page) port.VendorFilter {
	return port.VendorFilter{Search: q.Get("search"), Status: q.Get("status"), Tier: q.Get("tier"), KYCStatus: q.Get("kyc"), Page: pg}
}
