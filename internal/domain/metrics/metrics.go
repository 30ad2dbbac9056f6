// Package metrics derives sales figures from the order list. Every call recomputes from scratch.
package metrics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/storefront/internal/domain/model"
)

const (
	// TopProductsLimit caps the product ranking.
	TopProductsLimit = 5
	// TrendDays is the number of calendar days in the revenue trend, today included.
	TrendDays = 7
	// MinTrendScale keeps the trend scale positive on an all-zero week.
	MinTrendScale = 100
)

// ProductSales accumulates delivered units and revenue for a product name.
type ProductSales struct {
	Name     string
	Quantity int
	Revenue  float64
}

// DayRevenue is the delivered revenue of one local calendar day.
type DayRevenue struct {
	Day     time.Time
	Revenue float64
	// Ratio is Revenue relative to the report's TrendScale, in [0, 1].
	Ratio float64
}

// PaymentShare is delivered revenue grouped by payment method.
type PaymentShare struct {
	Method  string
	Revenue float64
}

// Report is the sales projection over delivered orders.
type Report struct {
	Revenue           float64
	DeliveredOrders   int
	AverageOrderValue float64
	TopProducts       []ProductSales
	Trend             []DayRevenue
	TrendScale        float64
	PaymentMethods    []PaymentShare
}

// Compute builds the report for orders as of now. Calendar days use now's location.
func Compute(orders []model.Order, now time.Time) Report {
	delivered := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == model.OrderStatusDelivered {
			delivered = append(delivered, o)
		}
	}

	revenue := decimal.Zero
	for _, o := range delivered {
		revenue = revenue.Add(decimal.NewFromFloat(o.Total))
	}

	report := Report{
		Revenue:         revenue.InexactFloat64(),
		DeliveredOrders: len(delivered),
		TopProducts:     rankProducts(delivered),
		PaymentMethods:  paymentDistribution(delivered),
	}
	if len(delivered) > 0 {
		report.AverageOrderValue = revenue.Div(decimal.NewFromInt(int64(len(delivered)))).InexactFloat64()
	}
	report.Trend, report.TrendScale = trend(delivered, now)
	return report
}

func rankProducts(delivered []model.Order) []ProductSales {
	type acc struct {
		qty     int
		revenue decimal.Decimal
	}
	byName := make(map[string]*acc)
	var order []string
	for _, o := range delivered {
		for _, item := range o.Items {
			a, ok := byName[item.Name]
			if !ok {
				a = &acc{revenue: decimal.Zero}
				byName[item.Name] = a
				order = append(order, item.Name)
			}
			a.qty += item.Qty
			a.revenue = a.revenue.Add(decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Qty))))
		}
	}

	ranking := make([]ProductSales, 0, len(order))
	for _, name := range order {
		a := byName[name]
		ranking = append(ranking, ProductSales{Name: name, Quantity: a.qty, Revenue: a.revenue.InexactFloat64()})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Quantity > ranking[j].Quantity
	})
	if len(ranking) > TopProductsLimit {
		ranking = ranking[:TopProductsLimit]
	}
	return ranking
}

func trend(delivered []model.Order, now time.Time) ([]DayRevenue, float64) {
	loc := now.Location()
	today := startOfDay(now)

	days := make([]DayRevenue, TrendDays)
	sums := make([]decimal.Decimal, TrendDays)
	for i := range days {
		days[i].Day = today.AddDate(0, 0, i-(TrendDays-1))
		sums[i] = decimal.Zero
	}

	for _, o := range delivered {
		day := startOfDay(o.CreatedAt.In(loc))
		for i := range days {
			if day.Equal(days[i].Day) {
				sums[i] = sums[i].Add(decimal.NewFromFloat(o.Total))
				break
			}
		}
	}

	scale := decimal.NewFromInt(MinTrendScale)
	for _, s := range sums {
		if s.GreaterThan(scale) {
			scale = s
		}
	}
	for i := range days {
		days[i].Revenue = sums[i].InexactFloat64()
		days[i].Ratio = sums[i].Div(scale).InexactFloat64()
	}
	return days, scale.InexactFloat64()
}

func paymentDistribution(delivered []model.Order) []PaymentShare {
	byMethod := make(map[string]decimal.Decimal)
	var order []string
	for _, o := range delivered {
		method := o.Payment()
		if _, ok := byMethod[method]; !ok {
			byMethod[method] = decimal.Zero
			order = append(order, method)
		}
		byMethod[method] = byMethod[method].Add(decimal.NewFromFloat(o.Total))
	}

	shares := make([]PaymentShare, 0, len(order))
	for _, method := range order {
		shares = append(shares, PaymentShare{Method: method, Revenue: byMethod[method].InexactFloat64()})
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Revenue > shares[j].Revenue
	})
	return shares
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
