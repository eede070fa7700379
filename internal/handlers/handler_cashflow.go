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

// cashFlowHandler handles HTTP requests for operating cash flow statements
type cashFlowHandler struct {
	cashFlowService portssvc.CashFlowService
}

// registerCashFlowRoutes registers the cash-flow query routes
func registerCashFlowRoutes(rg *gin.RouterGroup, cashFlowService portssvc.CashFlowService) {
	h := &cashFlowHandler{cashFlowService: cashFlowService}
	rg.GET("/cashflow", h.getCashFlow)
}

// getCashFlow serves `GET /cashflow?date=YYYY-MM` (single month) and
// `GET /cashflow?year=YYYY` (whole year). Exactly one of the two parameters
// must be present.
func (h *cashFlowHandler) getCashFlow(c *gin.Context) {
	if date := c.Query("date"); date != "" {
		h.getCashFlowForMonth(c, date)
		return
	}
	if year := c.Query("year"); year != "" {
		h.getCashFlowForYear(c, year)
		return
	}
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse("A date (YYYY-MM) or year (YYYY) parameter is required"))
}

func (h *cashFlowHandler) getCashFlowForMonth(c *gin.Context, date string) {
	logger := middleware.GetLoggerFromContext(c)

	period, err := domain.ParsePeriod(date)
	if err != nil {
		logger.Warn("Invalid date parameter", slog.String("date", date), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid date format. Use YYYY-MM"))
		return
	}

	logger = logger.With(slog.String("period", period.String()))
	logger.Info("Received request to generate cash flow statement")

	data, err := h.cashFlowService.CashFlowForMonth(c.Request.Context(), period)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("No balance data for requested period")
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("No balance data for period "+period.String()))
			return
		}
		logger.Error("Failed to generate cash flow statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to generate cash flow statement"))
		return
	}

	logger.Info("Cash flow statement generated successfully", slog.Int("warning_count", len(data.Warnings)))
	c.JSON(http.StatusOK, data)
}

func (h *cashFlowHandler) getCashFlowForYear(c *gin.Context, year string) {
	logger := middleware.GetLoggerFromContext(c)

	if !yearPattern.MatchString(year) {
		logger.Warn("Invalid year parameter", slog.String("year", year))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid year. Use YYYY"))
		return
	}

	logger = logger.With(slog.String("year", year))
	logger.Info("Received request to generate cash flow statements for year")

	data, months, err := h.cashFlowService.CashFlowForYear(c.Request.Context(), year)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("No balance data for requested year")
			c.JSON(http.StatusOK, dto.CashFlowYearResponse{
				Success:         false,
				Data:            map[string]domain.CashFlowData{},
				AvailableMonths: []string{},
			})
			return
		}
		logger.Error("Failed to generate cash flow statements", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to generate cash flow statements"))
		return
	}

	logger.Info("Cash flow statements generated successfully", slog.Int("month_count", len(months)))
	c.JSON(http.StatusOK, dto.ToCashFlowYearResponse(data, months))
}
