package handlers

import (
	"net/http"

	"stockflow/internal/common"
	"stockflow/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CashFlowHandlers handles cash-flow HTTP requests
type CashFlowHandlers struct {
	cashFlowService services.CashFlowService
}

func NewCashFlowHandlers(cashFlowService services.CashFlowService) *CashFlowHandlers {
	return &CashFlowHandlers{cashFlowService: cashFlowService}
}

// AddCashFlowRequest represents the add-cash-flow request payload.
// decimal.Decimal accepts both JSON numbers and strings.
type AddCashFlowRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	IsInflow    bool            `json:"isInflow"`
}

// ListCashFlows handles GET /v1/cashflows, newest first
func (h *CashFlowHandlers) ListCashFlows(c echo.Context) error {
	cashFlows, err := h.cashFlowService.List(c.Request().Context())
	if err != nil {
		return common.SendServerError(c, "Failed to list cash flows")
	}
	return c.JSON(http.StatusOK, cashFlows)
}

// AddCashFlow handles POST /v1/cashflows
func (h *CashFlowHandlers) AddCashFlow(c echo.Context) error {
	var req AddCashFlowRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	cashFlow, err := h.cashFlowService.AddCashFlow(c.Request().Context(), req.Description, req.Amount, req.IsInflow)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, cashFlow)
}
