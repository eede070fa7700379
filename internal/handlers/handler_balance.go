package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/contaflow/estados_backend/internal/apperrors"
	"github.com/contaflow/estados_backend/internal/core/domain"
	portssvc "github.com/contaflow/estados_backend/internal/core/ports/services"
	"github.com/contaflow/estados_backend/internal/dto"
	"github.com/contaflow/estados_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// balanceHandler handles read-only balance document lookups for UI consumers
type balanceHandler struct {
	balanceService portssvc.BalanceService
}

// registerBalanceRoutes registers the balance lookup routes
func registerBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceService) {
	h := &balanceHandler{balanceService: balanceService}

	balances := rg.Group("/balances")
	{
		balances.GET("/years", h.listYears)
		balances.GET("/years/:year/months", h.listMonths)
		balances.GET("/:period", h.getBalance)
	}
}

// getBalance serves `GET /balances/:period`: the stored trial balance for one month.
func (h *balanceHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	period, err := domain.ParsePeriod(c.Param("period"))
	if err != nil {
		logger.Warn("Invalid period parameter", slog.String("period", c.Param("period")))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid period format. Use YYYY-MM"))
		return
	}

	doc, err := h.balanceService.GetBalance(c.Request.Context(), period)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("No balance document for period", slog.String("period", period.String()))
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("No balance data for period "+period.String()))
			return
		}
		logger.Error("Failed to retrieve balance document", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to retrieve balance document"))
		return
	}

	c.JSON(http.StatusOK, doc)
}

// listMonths serves `GET /balances/years/:year/months`: the months with a
// stored balance in the given year, so the UI can populate its period picker.
func (h *balanceHandler) listMonths(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	year := c.Param("year")
	if !yearPattern.MatchString(year) {
		logger.Warn("Invalid year parameter", slog.String("year", year))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid year. Use YYYY"))
		return
	}

	months, err := h.balanceService.ListMonths(c.Request.Context(), year)
	if err != nil {
		logger.Error("Failed to list balance months", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to list balance months"))
		return
	}

	c.JSON(http.StatusOK, dto.BalanceMonthsResponse{Success: true, AvailableMonths: months})
}

// listYears serves `GET /balances/years`: the years with stored balances.
func (h *balanceHandler) listYears(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	years, err := h.balanceService.ListYears(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list balance years", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to list balance years"))
		return
	}

	c.JSON(http.StatusOK, dto.BalanceYearsResponse{Success: true, AvailableYears: years})
}
