package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/server/http/dto"
)

// StoreHandler exposes the store configuration and its open flag.
type StoreHandler struct {
	facade StoreFacade
}

// NewStoreHandler constructs StoreHandler.
func NewStoreHandler(facade StoreFacade) *StoreHandler {
	return &StoreHandler{facade: facade}
}

// Get handles GET /api/store.
func (h *StoreHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, toStoreResponse(h.facade.Store()))
}

// SetStatus handles PUT /api/admin/store/status.
func (h *StoreHandler) SetStatus(c *gin.Context) {
	var req dto.StoreStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsOpen == nil {
		c.Status(http.StatusBadRequest)
		return
	}

	cfg, err := h.facade.SetStoreOpen(c.Request.Context(), *req.IsOpen)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toStoreResponse(cfg))
}

func toStoreResponse(cfg model.StoreConfig) dto.StoreResponse {
	return dto.StoreResponse{
		StoreName:      cfg.StoreName,
		WhatsappNumber: cfg.WhatsappNumber,
		IsOpen:         cfg.IsOpen,
	}
}
