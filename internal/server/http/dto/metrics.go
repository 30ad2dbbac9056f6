package dto

// ProductSalesResponse is a ranked product.
type ProductSalesResponse struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// DayRevenueResponse is one day of the revenue trend.
type DayRevenueResponse struct {
	Day     string  `json:"day"`
	Revenue float64 `json:"revenue"`
	Ratio   float64 `json:"ratio"`
}

// PaymentShareResponse is revenue by payment method.
type PaymentShareResponse struct {
	Method  string  `json:"method"`
	Revenue float64 `json:"revenue"`
}

// SummaryResponse holds dashboard headline numbers.
type SummaryResponse struct {
	ProductCount  int     `json:"productCount"`
	LowStockCount int     `json:"lowStockCount"`
	GrossSales    float64 `json:"grossSales"`
}

// MetricsResponse is the sales report.
type MetricsResponse struct {
	Revenue           float64                `json:"revenue"`
	DeliveredOrders   int                    `json:"deliveredOrders"`
	AverageOrderValue float64                `json:"averageOrderValue"`
	TopProducts       []ProductSalesResponse `json:"topProducts"`
	Trend             []DayRevenueResponse   `json:"trend"`
	TrendScale        float64                `json:"trendScale"`
	PaymentMethods    []PaymentShareResponse `json:"paymentMethods"`
	Summary           SummaryResponse        `json:"summary"`
}
