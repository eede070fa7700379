package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/contaflow/estados_backend/internal/apperrors"
	portssvc "github.com/contaflow/estados_backend/internal/core/ports/services"
	"github.com/contaflow/estados_backend/internal/dto"
	"github.com/contaflow/estados_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

var yearPattern = regexp.MustCompile(`^\d{4}$`)

// eerrHandler handles HTTP requests for income statements
type eerrHandler struct {
	eerrService portssvc.EERRService
}

// registerEERRRoutes registers the income-statement query routes
func registerEERRRoutes(rg *gin.RouterGroup, eerrService portssvc.EERRService) {
	h := &eerrHandler{eerrService: eerrService}
	rg.GET("/eerr", h.getEERRByYear)
}

// getEERRByYear serves `GET /eerr?year=YYYY`: one income statement per stored
// month of the year, with vertical and horizontal analysis attached. A year
// with no data is not a transport error; it yields success=false plus the
// years that do have data.
func (h *eerrHandler) getEERRByYear(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	year := c.Query("year")
	if !yearPattern.MatchString(year) {
		logger.Warn("Invalid year parameter", slog.String("year", year))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid year. Use YYYY"))
		return
	}

	logger = logger.With(slog.String("year", year))
	logger.Info("Received request to generate income statements for year")

	data, months, err := h.eerrService.EERRForYear(c.Request.Context(), year)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			availableYears, yearsErr := h.eerrService.AvailableYears(c.Request.Context())
			if yearsErr != nil {
				logger.Error("Failed to list available years", slog.String("error", yearsErr.Error()))
				availableYears = []string{}
			}
			logger.Warn("No balance data for requested year")
			c.JSON(http.StatusOK, dto.ToEERRYearNotFound(availableYears))
			return
		}
		logger.Error("Failed to generate income statements", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to generate income statements"))
		return
	}

	availableYears, err := h.eerrService.AvailableYears(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list available years", slog.String("error", err.Error()))
		availableYears = []string{}
	}

	logger.Info("Income statements generated successfully", slog.Int("month_count", len(months)))
	c.JSON(http.StatusOK, dto.ToEERRYearResponse(data, availableYears, months))
}
