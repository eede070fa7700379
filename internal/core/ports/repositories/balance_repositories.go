package repositories

import (
	"context"

	"github.com/contaflow/estados_backend/internal/core/domain"
)

// BalanceRepository defines read operations over the monthly balance
// document store. Ingestion is an external process; this service never
// writes balances.
type BalanceRepository interface {
	// GetByPeriod fetches the balance document for one calendar month.
	// Returns apperrors.ErrNotFound when no document exists for the period.
	GetByPeriod(ctx context.Context, period domain.Period) (*domain.BalanceDocument, error)

	// GetByYear fetches every balance document whose period falls in the
	// given year, ordered by period ascending. An empty slice means the year
	// has no data.
	GetByYear(ctx context.Context, year string) ([]domain.BalanceDocument, error)

	// ListYears returns the distinct years with at least one stored balance,
	// ascending.
	ListYears(ctx context.Context) ([]string, error)

	// ListMonths returns the months ("MM") with a stored balance in the given
	// year, ascending.
	ListMonths(ctx context.Context, year string) ([]string, error)
}
