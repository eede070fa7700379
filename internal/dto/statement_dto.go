package dto

import (
	"github.com/contaflow/estados_backend/internal/core/domain"
)

// ErrorResponse is the structured failure envelope. Missing top-level data is
// reported through it rather than a bare HTTP error body.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NewErrorResponse builds a failure envelope with the given message.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message}
}

// EERRYearResponse wraps one income statement per month of the requested
// year, keyed by month ("01".."12").
type EERRYearResponse struct {
	Success         bool                           `json:"success"`
	Data            map[string]domain.EERRDocument `json:"data"`
	AvailableYears  []string                       `json:"availableYears"`
	MonthsAvailable []string                       `json:"monthsAvailable"`
}

// ToEERRYearResponse builds the success envelope for the EERR-by-year query.
func ToEERRYearResponse(data map[string]domain.EERRDocument, availableYears, monthsAvailable []string) EERRYearResponse {
	if data == nil {
		data = map[string]domain.EERRDocument{}
	}
	if availableYears == nil {
		availableYears = []string{}
	}
	if monthsAvailable == nil {
		monthsAvailable = []string{}
	}
	return EERRYearResponse{
		Success:         true,
		Data:            data,
		AvailableYears:  availableYears,
		MonthsAvailable: monthsAvailable,
	}
}

// ToEERRYearNotFound builds the empty-year envelope: success=false with the
// years that do have data, so the UI can offer a valid pick.
func ToEERRYearNotFound(availableYears []string) EERRYearResponse {
	if availableYears == nil {
		availableYears = []string{}
	}
	return EERRYearResponse{
		Success:         false,
		Data:            map[string]domain.EERRDocument{},
		AvailableYears:  availableYears,
		MonthsAvailable: []string{},
	}
}

// CashFlowYearResponse wraps one cash-flow statement per month of the
// requested year, keyed by period ("YYYY-MM").
type CashFlowYearResponse struct {
	Success         bool                           `json:"success"`
	Data            map[string]domain.CashFlowData `json:"data"`
	AvailableMonths []string                       `json:"availableMonths"`
}

// ToCashFlowYearResponse builds the success envelope for the cash-flow-by-year query.
func ToCashFlowYearResponse(data map[string]domain.CashFlowData, availableMonths []string) CashFlowYearResponse {
	if data == nil {
		data = map[string]domain.CashFlowData{}
	}
	if availableMonths == nil {
		availableMonths = []string{}
	}
	return CashFlowYearResponse{
		Success:         true,
		Data:            data,
		AvailableMonths: availableMonths,
	}
}

// BalanceYearsResponse lists the years with stored balance documents.
type BalanceYearsResponse struct {
	Success        bool     `json:"success"`
	AvailableYears []string `json:"availableYears"`
}

// BalanceMonthsResponse lists the months of a year with a stored balance.
type BalanceMonthsResponse struct {
	Success         bool     `json:"success"`
	AvailableMonths []string `json:"availableMonths"`
}
