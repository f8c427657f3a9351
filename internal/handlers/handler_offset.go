package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/beanflow/beanflow/internal/apperrors"
	portssvc "github.com/beanflow/beanflow/internal/core/ports/services"
	"github.com/beanflow/beanflow/internal/dto"
	"github.com/beanflow/beanflow/internal/middleware"
	"github.com/gin-gonic/gin"
)

// offsetHandler handles HTTP requests for the offset-matching and
// unapplied-balance engine.
type offsetHandler struct {
	offsetService portssvc.OffsetSvcFacade
}

func newOffsetHandler(os portssvc.OffsetSvcFacade) *offsetHandler {
	return &offsetHandler{offsetService: os}
}

// registerOffsetRoutes registers the offset engine routes.
func registerOffsetRoutes(rg *gin.RouterGroup, offsetService portssvc.OffsetSvcFacade) {
	h := newOffsetHandler(offsetService)

	lineItems := rg.Group("/line-items")
	{
		lineItems.GET("/:lineItemID/offsets", h.listOffsets)
		lineItems.GET("/:lineItemID/net-balance", h.getNetBalance)
	}

	rg.GET("/unapplied-accounts", h.listUnappliedAccounts)
	rg.GET("/unmatched-accounts", h.listUnmatchedAccounts)
}

// listOffsets godoc
// @Summary List offsets of a line item
// @Description Retrieves the offsets applied to an original line item, ordered by entry date then entry no
// @Tags offsets
// @Produce  json
// @Param   lineItemID path string true "Line item ID"
// @Success 200 {array} dto.LineItemResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Line item not found"
// @Failure 500 {object} map[string]string "Failed to list offsets"
// @Security BearerAuth
// @Router /line-items/{lineItemID}/offsets [get]
func (h *offsetHandler) listOffsets(c *gin.Context) {
	lineItemID := c.Param("lineItemID")

	offsets, err := h.offsetService.ListOffsets(c.Request.Context(), lineItemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Line item not found"})
		} else {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list offsets", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list offsets"})
		}
		return
	}

	resp := make([]dto.LineItemResponse, len(offsets))
	for i, o := range offsets {
		resp[i] = dto.ToLineItemResponse(o)
	}
	c.JSON(http.StatusOK, resp)
}

// getNetBalance godoc
// @Summary Get the net balance of a line item
// @Description Computes the remaining balance of an original line item after its offsets. With no offsets the net balance equals the full amount.
// @Tags offsets
// @Produce  json
// @Param   lineItemID path string true "Line item ID"
// @Success 200 {object} dto.UnappliedLineItemResponse
// @Failure 400 {object} map[string]string "Line item is an offset"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Line item not found"
// @Failure 500 {object} map[string]string "Failed to compute net balance"
// @Security BearerAuth
// @Router /line-items/{lineItemID}/net-balance [get]
func (h *offsetHandler) getNetBalance(c *gin.Context) {
	lineItemID := c.Param("lineItemID")

	item, err := h.offsetService.GetNetBalance(c.Request.Context(), lineItemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Line item not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to compute net balance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute net balance"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToUnappliedLineItemResponse(*item))
}

// listUnappliedAccounts godoc
// @Summary List accounts with unapplied line items
// @Description Retrieves the accounts holding at least one unapplied original line item, ordered by base code then no
// @Tags offsets
// @Produce  json
// @Success 200 {object} dto.UnappliedAccountListResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Security BearerAuth
// @Router /unapplied-accounts [get]
func (h *offsetHandler) listUnappliedAccounts(c *gin.Context) {
	accounts, err := h.offsetService.ListAccountsWithUnapplied(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list accounts with unapplied line items", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list accounts"})
		return
	}
	c.JSON(http.StatusOK, dto.UnappliedAccountListResponse{
		Accounts: dto.ToAccountResponseSlice(accounts),
	})
}

// listUnmatchedAccounts godoc
// @Summary List accounts with unmatched line items
// @Description Retrieves need-offset accounts with line items in the given currency and period that await an offset but were never linked, with exact counts
// @Tags offsets
// @Produce  json
// @Param   currency query string true "Currency code"
// @Param   from query string false "Period start (YYYY-MM-DD)"
// @Param   to query string false "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.UnmatchedAccountListResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Security BearerAuth
// @Router /unmatched-accounts [get]
func (h *offsetHandler) listUnmatchedAccounts(c *gin.Context) {
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

	accounts, err := h.offsetService.ListAccountsWithUnmatched(c.Request.Context(), currencyCode, period)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list accounts with unmatched line items", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list accounts"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToUnmatchedAccountListResponse(currencyCode, period, accounts))
}
