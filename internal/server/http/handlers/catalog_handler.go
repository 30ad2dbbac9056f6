package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/server/http/dto"
)

// CatalogHandler manages product endpoints.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// Categories handles GET /api/categories.
func (h *CatalogHandler) Categories(c *gin.Context) {
	categories := h.facade.Categories()
	response := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		response = append(response, dto.CategoryResponse{Name: cat.Name, Image: cat.Image})
	}
	c.JSON(http.StatusOK, response)
}

// Browse handles GET /api/products.
func (h *CatalogHandler) Browse(c *gin.Context) {
	products := h.facade.Products(c.Query("category"), c.Query("q"))
	response := make([]dto.PublicProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, dto.PublicProductResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Category:    p.Category,
			SellPrice:   p.SellPrice,
			ImageURL:    p.ImageURL,
		})
	}
	c.JSON(http.StatusOK, response)
}

// List handles GET /api/admin/products.
func (h *CatalogHandler) List(c *gin.Context) {
	products := h.facade.AdminProducts()
	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, toProductResponse(p))
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/admin/products.
func (h *CatalogHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), toProductInput(req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProductResponse(*product))
}

// Update handles PUT /api/admin/products/:id.
func (h *CatalogHandler) Update(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product, err := h.facade.UpdateProduct(c.Request.Context(), c.Param("id"), toProductInput(req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*product))
}

// Delete handles DELETE /api/admin/products/:id.
func (h *CatalogHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Assist handles POST /api/admin/products/assist.
// An unavailable suggestion answers 204 so the form keeps its fields.
func (h *CatalogHandler) Assist(c *gin.Context) {
	var req dto.AssistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	suggestion, ok := h.facade.SuggestProduct(c.Request.Context(), req.Name)
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dto.AssistResponse{
		Description: suggestion.Description,
		Category:    suggestion.Category,
		SKU:         suggestion.SKU,
	})
}

func toProductInput(req dto.ProductRequest) model.ProductInput {
	return model.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		CostPrice:   req.CostPrice,
		SellPrice:   req.SellPrice,
		Stock:       req.Stock,
		SKU:         req.SKU,
		ImageURL:    req.ImageURL,
	}
}

func toProductResponse(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		CostPrice:   p.CostPrice,
		SellPrice:   p.SellPrice,
		Stock:       p.Stock,
		LowStock:    p.LowStock(),
		SKU:         p.SKU,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
	}
}
