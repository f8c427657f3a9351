package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/beanflow/beanflow/internal/apperrors"
	"github.com/beanflow/beanflow/internal/core/domain"
	portssvc "github.com/beanflow/beanflow/internal/core/ports/services"
	"github.com/beanflow/beanflow/internal/dto"
	"github.com/beanflow/beanflow/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the report routes. Every report accepts
// ?format=csv to stream typed export rows instead of JSON.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.trialBalance)
		reports.GET("/income-statement", h.incomeStatement)
		reports.GET("/ledger/:accountID", h.ledger)
	}
}

// writeCSV streams export rows as a CSV attachment.
func writeCSV(c *gin.Context, filename string, rows []domain.ExportRow) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	w := csv.NewWriter(c.Writer)
	for _, row := range rows {
		record := make([]string, len(row))
		for i, cell := range row {
			record[i] = cell.Render()
		}
		if err := w.Write(record); err != nil {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to write CSV row", slog.String("error", err.Error()))
			return
		}
	}
	w.Flush()
}

func (h *reportingHandler) reportError(c *gin.Context, err error, msg string) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}

// trialBalance godoc
// @Summary Trial balance report
// @Description Generates a trial balance for a currency as of a date
// @Tags reports
// @Produce  json
// @Param   currency query string true "Currency code"
// @Param   asOf query string false "As-of date (YYYY-MM-DD), defaults to today"
// @Param   format query string false "Set to csv for CSV export"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to build trial balance"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) trialBalance(c *gin.Context) {
	currencyCode := c.Query("currency")
	if currencyCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "currency query parameter is required"})
		return
	}

	asOf := time.Now()
	if asOfParam := c.Query("asOf"); asOfParam != "" {
		t, err := time.Parse(dateParamFormat, asOfParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOf date, expected YYYY-MM-DD"})
			return
		}
		asOf = t
	}

	if c.Query("format") == "csv" {
		rows, err := h.reportingService.TrialBalanceExport(c.Request.Context(), currencyCode, asOf)
		if err != nil {
			h.reportError(c, err, "Failed to build trial balance")
			return
		}
		writeCSV(c, "trial-balance.csv", rows)
		return
	}

	rows, err := h.reportingService.TrialBalance(c.Request.Context(), currencyCode, asOf)
	if err != nil {
		h.reportError(c, err, "Failed to build trial balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(currencyCode, asOf, rows))
}

// incomeStatement godoc
// @Summary Income statement report
// @Description Generates an income statement for a currency and period
// @Tags reports
// @Produce  json
// @Param   currency query string true "Currency code"
// @Param   from query string false "Period start (YYYY-MM-DD)"
// @Param   to query string false "Period end (YYYY-MM-DD)"
// @Param   format query string false "Set to csv for CSV export"
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to build income statement"
// @Security BearerAuth
// @Router /reports/income-statement [get]
func (h *reportingHandler) incomeStatement(c *gin.Context) {
	currencyCode := c.Query("currency")
	if currencyCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "currency query parameter is required"})
		return
	}

	period, err := parsePeriodParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
		return
	}

	if c.Query("format") == "csv" {
		rows, err := h.reportingService.IncomeStatementExport(c.Request.Context(), currencyCode, period)
		if err != nil {
			h.reportError(c, err, "Failed to build income statement")
			return
		}
		writeCSV(c, "income-statement.csv", rows)
		return
	}

	rows, err := h.reportingService.IncomeStatement(c.Request.Context(), currencyCode, period)
	if err != nil {
		h.reportError(c, err, "Failed to build income statement")
		return
	}
	c.JSON(http.StatusOK, dto.ToIncomeStatementResponse(currencyCode, period, rows))
}

// ledger godoc
// @Summary Account ledger report
// @Description Generates the ledger of an account with a running balance. The account ID "current-assets-and-liabilities" composes the current asset and liability accounts into one ledger.
// @Tags reports
// @Produce  json
// @Param   accountID path string true "Account ID or the current-assets-and-liabilities sentinel"
// @Param   currency query string true "Currency code"
// @Param   from query string false "Period start (YYYY-MM-DD)"
// @Param   to query string false "Period end (YYYY-MM-DD)"
// @Param   format query string false "Set to csv for CSV export"
// @Success 200 {object} dto.LedgerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account or currency not found"
// @Failure 500 {object} map[string]string "Failed to build ledger"
// @Security BearerAuth
// @Router /reports/ledger/{accountID} [get]
func (h *reportingHandler) ledger(c *gin.Context) {
	accountID := c.Param("accountID")
	currencyCode := c.Query("currency")
	if currencyCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "currency query parameter is required"})
		return
	}

	period, err := parsePeriodParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
		return
	}

	if c.Query("format") == "csv" {
		rows, err := h.reportingService.LedgerExport(c.Request.Context(), accountID, currencyCode, period)
		if err != nil {
			h.reportError(c, err, "Failed to build ledger")
			return
		}
		writeCSV(c, "ledger.csv", rows)
		return
	}

	account, rows, err := h.reportingService.Ledger(c.Request.Context(), accountID, currencyCode, period)
	if err != nil {
		h.reportError(c, err, "Failed to build ledger")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerResponse(account, currencyCode, period, rows))
}
