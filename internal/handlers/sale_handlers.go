package handlers

import (
	"net/http"

	"stockflow/internal/common"
	"stockflow/internal/services"

	"github.com/labstack/echo/v4"
)

// SaleHandlers handles sale-related HTTP requests
type SaleHandlers struct {
	salesService services.SalesService
}

func NewSaleHandlers(salesService services.SalesService) *SaleHandlers {
	return &SaleHandlers{salesService: salesService}
}

// RecordSaleRequest represents the record-sale request payload
type RecordSaleRequest struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// ListSales handles GET /v1/sales, newest first
func (h *SaleHandlers) ListSales(c echo.Context) error {
	sales, err := h.salesService.List(c.Request().Context())
	if err != nil {
		return common.SendServerError(c, "Failed to list sales")
	}
	return c.JSON(http.StatusOK, sales)
}

// RecordSale handles POST /v1/sales
func (h *SaleHandlers) RecordSale(c echo.Context) error {
	var req RecordSaleRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	itemID, err := common.ValidateUUID(req.ItemID, "itemId")
	if err != nil {
		return common.SendValidationError(c, "itemId", err.Error())
	}

	sale, err := h.salesService.RecordSale(c.Request().Context(), itemID, req.Quantity)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, sale)
}
