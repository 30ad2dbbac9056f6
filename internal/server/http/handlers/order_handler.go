package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/server/http/dto"
)

// OrderHandler manages checkout and order administration endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Checkout handles POST /api/orders.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	lines := make([]model.CartLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, model.CartLine{ProductID: item.ProductID, Qty: item.Qty})
	}

	placed, err := h.facade.PlaceOrder(c.Request.Context(), model.CheckoutRequest{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		PaymentMethod:   req.PaymentMethod,
		DeliveryMethod:  model.DeliveryMethod(req.DeliveryMethod),
		ChangeDue:       req.Troco,
		Lines:           lines,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CheckoutResponse{
		Order:       toOrderResponse(placed.Order),
		Summary:     placed.Summary,
		WhatsappURL: placed.WhatsappURL,
	})
}

// List handles GET /api/admin/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders := h.facade.Orders()
	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// UpdateStatus handles PATCH /api/admin/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	status, ok := model.ParseOrderStatus(req.Status)
	if !ok {
		writeError(c, domainErrors.ErrInvalidStatus)
		return
	}

	order, note, err := h.facade.UpdateOrderStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{
		Order:        toOrderResponse(*order),
		Notification: toNotificationResponse(note),
	})
}

// Notify handles POST /api/admin/orders/:id/notify.
func (h *OrderHandler) Notify(c *gin.Context) {
	note, err := h.facade.NotifyOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toNotificationResponse(note))
}

// Confirm handles GET /confirm.
func (h *OrderHandler) Confirm(c *gin.Context) {
	result, err := h.facade.ConfirmDelivery(c.Request.Context(), c.Query("token"))
	if err != nil {
		status := statusFor(err)
		if errors.Is(err, domainErrors.ErrInvalidToken) {
			status = http.StatusBadRequest
		}
		msg := err.Error()
		if status >= http.StatusInternalServerError {
			_ = c.Error(err)
			msg = msgConfirmFailed
		}
		c.JSON(status, dto.ConfirmationResponse{State: string(result.State), OrderID: result.OrderID, Error: msg})
		return
	}
	c.JSON(http.StatusOK, dto.ConfirmationResponse{State: string(result.State), OrderID: result.OrderID})
}

func toOrderResponse(o model.Order) dto.OrderResponse {
	items := make([]dto.LineItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, dto.LineItemResponse{Name: item.Name, Qty: item.Qty, Price: item.Price})
	}
	return dto.OrderResponse{
		ID:                o.ID,
		CustomerName:      o.CustomerName,
		CustomerPhone:     o.CustomerPhone,
		Items:             items,
		Total:             o.Total,
		Timestamp:         o.CreatedAt,
		Status:            string(o.Status),
		ConfirmationToken: o.ConfirmationToken,
		PaymentMethod:     o.Payment(),
		DeliveryMethod:    string(o.Delivery()),
		CustomerAddress:   o.CustomerAddress,
		Troco:             o.ChangeDue,
	}
}

func toNotificationResponse(note *model.Notification) *dto.NotificationResponse {
	if note == nil {
		return nil
	}
	return &dto.NotificationResponse{Phone: note.Phone, Text: note.Text, URL: note.URL}
}
