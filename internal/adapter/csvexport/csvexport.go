// Package csvexport renders console listings as CSV.
package csvexport

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"backoffice/internal/core/domain"
)

// Table maps one record kind to CSV columns.
type Table[T any] struct {
	Header []string
	Row    func(T) []string
}

// Write writes the header followed by one line per record.
func (t Table[T]) Write(w io.Writer, recs []T) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	for _, r := range recs {
		if err := cw.Write(t.Row(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// money formats cents as a decimal amount.
func money(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return sign + strconv.FormatInt(cents/100, 10) + "." + pad2(cents%100)
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}

func num[N int | int64](n N) string { return strconv.FormatInt(int64(n), 10) }

func float(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) }

func date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func list(ss []string) string { return strings.Join(ss, ";") }

var Banners = Table[domain.Banner]{
	Header: []string{"id", "title", "status", "type", "position", "priority", "start", "end", "impressions", "clicks", "ctr", "conversions", "revenue"},
	Row: func(b domain.Banner) []string {
		return []string{b.ID, b.Title, string(b.Status), string(b.Type), string(b.Position), num(b.Priority),
			date(b.Schedule.Start), date(b.Schedule.End),
			num(b.Performance.Impressions), num(b.Performance.Clicks), float(b.Performance.CTR),
			num(b.Performance.Conversions), money(b.Performance.Revenue)}
	},
}

var Coupons = Table[domain.Coupon]{
	Header: []string{"code", "name", "status", "type", "value", "usage_limit", "used", "revenue", "discount", "start", "end"},
	Row: func(c domain.Coupon) []string {
		return []string{c.Code, c.Name, string(c.Status), string(c.Type), num(c.Value),
			num(c.Conditions.UsageLimit), num(c.Usage.Used), money(c.Usage.Revenue), money(c.Usage.Discount),
			date(c.Schedule.Start), date(c.Schedule.End)}
	},
}

var Customers = Table[domain.Customer]{
	Header: []string{"id", "name", "email", "phone", "status", "segment", "orders", "total_spent", "loyalty_points", "joined_at"},
	Row: func(c domain.Customer) []string {
		return []string{c.ID, c.Name, c.Email, c.Phone, string(c.Status), string(c.Segment),
			num(c.Orders), money(c.TotalSpent), num(c.LoyaltyPoints), date(c.JoinedAt)}
	},
}

var Deals = Table[domain.Deal]{
	Header: []string{"id", "title", "status", "type", "discount_percent", "products", "views", "orders", "revenue", "spend", "start", "end"},
	Row: func(d domain.Deal) []string {
		return []string{d.ID, d.Title, string(d.Status), string(d.Type), float(d.DiscountPercent), num(len(d.Products)),
			num(d.Performance.Views), num(d.Performance.Orders), money(d.Performance.Revenue), money(d.Performance.Spend),
			date(d.Schedule.Start), date(d.Schedule.End)}
	},
}

var Deliveries = Table[domain.Delivery]{
	Header: []string{"tracking_number", "order_id", "recipient", "carrier", "driver", "status", "priority", "cost", "attempts", "estimated_at", "delivered_at"},
	Row: func(d domain.Delivery) []string {
		delivered := ""
		if d.DeliveredAt != nil {
			delivered = date(*d.DeliveredAt)
		}
		return []string{d.TrackingNumber, d.OrderID, d.Recipient.Name, d.Carrier, d.Driver, string(d.Status), string(d.Priority),
			money(d.Cost), num(d.Attempts), date(d.EstimatedAt), delivered}
	},
}

var Products = Table[domain.Product]{
	Header: []string{"id", "sku", "name", "category", "brand", "status", "price", "stock", "sales", "revenue", "tags"},
	Row: func(p domain.Product) []string {
		return []string{p.ID, p.SKU, p.Name, p.Category, p.Brand, string(p.Status), money(p.Price),
			num(p.Stock), num(p.Sales), money(p.Revenue), list(p.Tags)}
	},
}

var Requests = Table[domain.CustomerRequest]{
	Header: []string{"ticket_id", "subject", "requester", "email", "category", "priority", "status", "assigned_to", "sla_breached", "created_at"},
	Row: func(r domain.CustomerRequest) []string {
		return []string{r.TicketID, r.Subject, r.Requester.Name, r.Requester.Email, string(r.Category), string(r.Priority),
			string(r.Status), r.AssignedTo, strconv.FormatBool(r.SLA.Breached), date(r.CreatedAt)}
	},
}

var Transactions = Table[domain.Transaction]{
	Header: []string{"id", "order_id", "party", "type", "status", "method", "amount", "fee", "net", "currency", "gateway", "created_at"},
	Row: func(t domain.Transaction) []string {
		return []string{t.ID, t.OrderID, t.Party.Name, string(t.Type), string(t.Status), string(t.Method),
			money(t.Amount), money(t.Fee), money(t.Net), t.Currency, t.Gateway, date(t.CreatedAt)}
	},
}

var Vendors = Table[domain.Vendor]{
	Header: []string{"id", "name", "business_name", "email", "status", "tier", "kyc_status", "rating", "products", "total_sales", "commission_rate"},
	Row: func(v domain.Vendor) []string {
		return []string{v.ID, v.Name, v.BusinessName, v.Email, string(v.Status), string(v.Tier), string(v.KYCStatus),
			float(v.Rating), num(v.ProductCount), money(v.TotalSales), float(v.CommissionRate)}
	},
}
