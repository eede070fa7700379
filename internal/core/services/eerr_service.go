package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/contaflow/estados_backend/internal/apperrors"
	"github.com/contaflow/estados_backend/internal/core/domain"
	portsrepo "github.com/contaflow/estados_backend/internal/core/ports/repositories"
	portssvc "github.com/contaflow/estados_backend/internal/core/ports/services"
	"github.com/contaflow/estados_backend/internal/utils/accounting"
)

// eerrService implements the EERRService interface
type eerrService struct {
	BaseService
	balanceRepo portsrepo.BalanceRepository
}

// NewEERRService creates a new income-statement service over the balance store
func NewEERRService(repo portsrepo.BalanceRepository) portssvc.EERRService {
	return &eerrService{balanceRepo: repo}
}

// Ensure eerrService implements the EERRService interface
var _ portssvc.EERRService = (*eerrService)(nil)

// EERRForYear builds the income statement for every stored month of a year.
// Statements use cumulative balances (no previous-month subtraction) and get
// horizontal analysis attached across the chronological sequence.
func (s *eerrService) EERRForYear(ctx context.Context, year string) (map[string]domain.EERRDocument, []string, error) {
	balances, err := s.balanceRepo.GetByYear(ctx, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve balance documents for year",
			slog.String("year", year))
		return nil, nil, fmt.Errorf("failed to retrieve balances for year %s: %w", year, err)
	}
	// Documents with an unparseable date cannot be placed in the month
	// sequence; skip them rather than failing the whole year.
	documents := balances[:0]
	for _, balance := range balances {
		if balance.Period() == "" {
			s.LogWarn(ctx, "Skipping balance document with malformed date", slog.String("date", balance.Date))
			continue
		}
		documents = append(documents, balance)
	}
	if len(documents) == 0 {
		s.LogWarn(ctx, "No balance documents stored for year", slog.String("year", year))
		return nil, nil, apperrors.ErrNotFound
	}

	sort.Slice(documents, func(i, j int) bool {
		return documents[i].Period() < documents[j].Period()
	})

	ordered := make([]*domain.EERRDocument, 0, len(documents))
	for _, balance := range documents {
		doc := accounting.BuildEERR(balance.Period(), balance.Data, nil)
		ordered = append(ordered, &doc)
	}
	accounting.ApplyHorizontalAnalysis(ordered)

	result := make(map[string]domain.EERRDocument, len(ordered))
	months := make([]string, 0, len(ordered))
	for _, doc := range ordered {
		result[doc.Period.Month()] = *doc
		months = append(months, doc.Period.Month())
	}

	s.LogInfo(ctx, "Income statements generated for year",
		slog.String("year", year),
		slog.Int("month_count", len(months)))
	return result, months, nil
}

// AvailableYears lists the years with at least one stored balance document.
func (s *eerrService) AvailableYears(ctx context.Context) ([]string, error) {
	years, err := s.balanceRepo.ListYears(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list available years")
		return nil, fmt.Errorf("failed to list available years: %w", err)
	}
	if years == nil {
		years = []string{}
	}
	return years, nil
}
