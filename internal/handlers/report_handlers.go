package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"stockflow/internal/common"
	"stockflow/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportHandlers serves the restock report and its CSV export
type ReportHandlers struct {
	inventoryService services.InventoryService
}

func NewReportHandlers(inventoryService services.InventoryService) *ReportHandlers {
	return &ReportHandlers{inventoryService: inventoryService}
}

// MonthlyReport handles GET /v1/reports/monthly
func (h *ReportHandlers) MonthlyReport(c echo.Context) error {
	report, err := h.inventoryService.MonthlyReport(c.Request().Context())
	if err != nil {
		return common.SendServerError(c, "Failed to build monthly report")
	}
	return c.JSON(http.StatusOK, report)
}

// MonthlyReportCSV handles GET /v1/reports/monthly/csv and streams the
// report as a CSV download.
func (h *ReportHandlers) MonthlyReportCSV(c echo.Context) error {
	report, err := h.inventoryService.MonthlyReport(c.Request().Context())
	if err != nil {
		return common.SendServerError(c, "Failed to build monthly report")
	}

	filename := fmt.Sprintf("monthly-report-%s.csv", time.Now().UTC().Format("2006-01"))
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Response().WriteHeader(http.StatusOK)

	writer := csv.NewWriter(c.Response())
	if err := writer.Write([]string{"Item Name", "Brand", "Type", "Current Stock", "Threshold", "Status"}); err != nil {
		return err
	}
	for _, row := range report {
		record := []string{
			row.Name,
			row.Brand,
			row.Type,
			strconv.Itoa(row.Quantity),
			strconv.Itoa(row.LowStockThreshold),
			row.Status,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
