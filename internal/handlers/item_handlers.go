package handlers

import (
	"net/http"

	"stockflow/internal/common"
	"stockflow/internal/services"

	"github.com/labstack/echo/v4"
)

// ItemHandlers handles inventory-related HTTP requests
type ItemHandlers struct {
	inventoryService services.InventoryService
}

func NewItemHandlers(inventoryService services.InventoryService) *ItemHandlers {
	return &ItemHandlers{inventoryService: inventoryService}
}

// AddStockRequest represents the add-stock request payload
type AddStockRequest struct {
	Name              string `json:"name"`
	Brand             string `json:"brand"`
	Type              string `json:"type"`
	Quantity          int    `json:"quantity"`
	LowStockThreshold int    `json:"lowStockThreshold"`
}

// ListItems handles GET /v1/items
func (h *ItemHandlers) ListItems(c echo.Context) error {
	items, err := h.inventoryService.List(c.Request().Context())
	if err != nil {
		return common.SendServerError(c, "Failed to list items")
	}
	return c.JSON(http.StatusOK, items)
}

// AddStock handles POST /v1/items. The same payload either creates a new
// item or tops up the existing one with the matching natural key.
func (h *ItemHandlers) AddStock(c echo.Context) error {
	var req AddStockRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	item, err := h.inventoryService.AddStock(c.Request().Context(), req.Name, req.Brand, req.Type, req.Quantity, req.LowStockThreshold)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, item)
}

// ListLowStockItems handles GET /v1/items/lowstock
func (h *ItemHandlers) ListLowStockItems(c echo.Context) error {
	items, err := h.inventoryService.LowStockItems(c.Request().Context())
	if err != nil {
		return common.SendServerError(c, "Failed to list low stock items")
	}
	return c.JSON(http.StatusOK, items)
}
