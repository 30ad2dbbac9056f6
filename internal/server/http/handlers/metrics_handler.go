package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/domain/metrics"
	"github.com/polkiloo/storefront/internal/server/http/dto"
)

const dayLayout = "2006-01-02"

// MetricsHandler serves the sales dashboard.
type MetricsHandler struct {
	facade OrderFacade
}

// NewMetricsHandler constructs MetricsHandler.
func NewMetricsHandler(facade OrderFacade) *MetricsHandler {
	return &MetricsHandler{facade: facade}
}

// Get handles GET /api/admin/metrics.
func (h *MetricsHandler) Get(c *gin.Context) {
	report, summary := h.facade.Metrics()
	c.JSON(http.StatusOK, toMetricsResponse(report, summary))
}

func toMetricsResponse(report metrics.Report, summary metrics.Summary) dto.MetricsResponse {
	resp := dto.MetricsResponse{
		Revenue:           report.Revenue,
		DeliveredOrders:   report.DeliveredOrders,
		AverageOrderValue: report.AverageOrderValue,
		TopProducts:       make([]dto.ProductSalesResponse, 0, len(report.TopProducts)),
		Trend:             make([]dto.DayRevenueResponse, 0, len(report.Trend)),
		TrendScale:        report.TrendScale,
		PaymentMethods:    make([]dto.PaymentShareResponse, 0, len(report.PaymentMethods)),
		Summary: dto.SummaryResponse{
			ProductCount:  summary.ProductCount,
			LowStockCount: summary.LowStockCount,
			GrossSales:    summary.GrossSales,
		},
	}
	for _, p := range report.TopProducts {
		resp.TopProducts = append(resp.TopProducts, dto.ProductSalesResponse{Name: p.Name, Quantity: p.Quantity, Revenue: p.Revenue})
	}
	for _, d := range report.Trend {
		resp.Trend = append(resp.Trend, dto.DayRevenueResponse{Day: d.Day.Format(dayLayout), Revenue: d.Revenue, Ratio: d.Ratio})
	}
	for _, p := range report.PaymentMethods {
		resp.PaymentMethods = append(resp.PaymentMethods, dto.PaymentShareResponse{Method: p.Method, Revenue: p.Revenue})
	}
	return resp
}
