package services

import (
	"context"

	"github.com/contaflow/estados_backend/internal/core/domain"
)

// EERRService derives income statements from stored balance documents.
type EERRService interface {
	// EERRForYear builds one statement per stored month of the year, keyed by
	// month ("01".."12"), with horizontal analysis attached across the
	// sequence. The second return lists the months with data, ascending.
	// Returns apperrors.ErrNotFound when the year has no balance documents.
	EERRForYear(ctx context.Context, year string) (map[string]domain.EERRDocument, []string, error)

	// AvailableYears lists the years with at least one stored balance.
	AvailableYears(ctx context.Context) ([]string, error)
}

// CashFlowService derives indirect-method operating cash flow statements.
type CashFlowService interface {
	// CashFlowForMonth builds the cash flow for one period against its
	// immediate predecessor. Returns apperrors.ErrNotFound when the period
	// has no balance document; a missing predecessor is recovered with
	// zeroed deltas and a warning.
	CashFlowForMonth(ctx context.Context, period domain.Period) (*domain.CashFlowData, error)

	// CashFlowForYear builds one cash flow per stored month of the year,
	// keyed by period ("YYYY-MM"). The second return lists the available
	// months. Returns apperrors.ErrNotFound when the year has no data.
	CashFlowForYear(ctx context.Context, year string) (map[string]domain.CashFlowData, []string, error)
}

// BalanceService exposes read-only balance lookups for UI consumers.
type BalanceService interface {
	GetBalance(ctx context.Context, period domain.Period) (*domain.BalanceDocument, error)
	ListYears(ctx context.Context) ([]string, error)
	ListMonths(ctx context.Context, year string) ([]string, error)
}
