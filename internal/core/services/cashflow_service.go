package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/contaflow/estados_backend/internal/apperrors"
	"github.com/contaflow/estados_backend/internal/core/domain"
	portsrepo "github.com/contaflow/estados_backend/internal/core/ports/repositories"
	portssvc "github.com/contaflow/estados_backend/internal/core/ports/services"
	"github.com/contaflow/estados_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// cashFlowService implements the CashFlowService interface
type cashFlowService struct {
	BaseService
	balanceRepo portsrepo.BalanceRepository
	matcher     accounting.WorkingCapitalMatcher
}

// CashFlowServiceOption is a functional option for configuring the cash-flow service
type CashFlowServiceOption func(*cashFlowService)

// WithWorkingCapitalMatcher overrides the working-capital matching strategy.
func WithWorkingCapitalMatcher(matcher accounting.WorkingCapitalMatcher) CashFlowServiceOption {
	return func(s *cashFlowService) {
		s.matcher = matcher
	}
}

// NewCashFlowService creates a new cash-flow service with the provided options.
// The working-capital matcher defaults to the name-substring strategy.
func NewCashFlowService(repo portsrepo.BalanceRepository, options ...CashFlowServiceOption) portssvc.CashFlowService {
	svc := &cashFlowService{
		balanceRepo: repo,
		matcher:     accounting.NameMatcher{},
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure cashFlowService implements the CashFlowService interface
var _ portssvc.CashFlowService = (*cashFlowService)(nil)

// CashFlowForMonth builds the operating cash flow for one period against its
// immediate predecessor. A missing predecessor is not fatal: deltas default
// to zero, net income falls back to cumulative-to-date, and a warning is
// attached.
func (s *cashFlowService) CashFlowForMonth(ctx context.Context, period domain.Period) (*domain.CashFlowData, error) {
	current, err := s.balanceRepo.GetByPeriod(ctx, period)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "No balance document for requested period", slog.String("period", period.String()))
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to retrieve balance document", slog.String("period", period.String()))
		return nil, fmt.Errorf("failed to retrieve balance for %s: %w", period, err)
	}

	previousPeriod := period.Previous()
	previous, err := s.balanceRepo.GetByPeriod(ctx, previousPeriod)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to retrieve previous balance document",
				slog.String("period", previousPeriod.String()))
			return nil, fmt.Errorf("failed to retrieve balance for %s: %w", previousPeriod, err)
		}
		previous = nil
	}

	data := s.buildCashFlow(period, current, previous)

	s.LogInfo(ctx, "Cash flow statement generated",
		slog.String("period", period.String()),
		slog.Bool("has_previous", previous != nil),
		slog.Int("warning_count", len(data.Warnings)))
	return &data, nil
}

// CashFlowForYear builds one cash flow per stored month of the year. All
// documents are fetched first (including the prior December, so January has
// a real predecessor), then each month is computed against its already-known
// predecessor; months whose predecessor is absent degrade the same way the
// single-month path does.
func (s *cashFlowService) CashFlowForYear(ctx context.Context, year string) (map[string]domain.CashFlowData, []string, error) {
	balances, err := s.balanceRepo.GetByYear(ctx, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve balance documents for year", slog.String("year", year))
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

	byPeriod := make(map[domain.Period]*domain.BalanceDocument, len(documents)+1)
	for i := range documents {
		byPeriod[documents[i].Period()] = &documents[i]
	}

	// January needs December of the prior year as its predecessor.
	january, err := domain.ParsePeriod(year + "-01")
	if err != nil {
		return nil, nil, fmt.Errorf("invalid year %q: %w", year, err)
	}
	priorDecember := january.Previous()
	if prev, err := s.balanceRepo.GetByPeriod(ctx, priorDecember); err == nil {
		byPeriod[priorDecember] = prev
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to retrieve prior December balance",
			slog.String("period", priorDecember.String()))
		return nil, nil, fmt.Errorf("failed to retrieve balance for %s: %w", priorDecember, err)
	}

	result := make(map[string]domain.CashFlowData, len(documents))
	months := make([]string, 0, len(documents))
	for i := range documents {
		current := &documents[i]
		previous := byPeriod[current.Period().Previous()]
		result[current.Period().String()] = s.buildCashFlow(current.Period(), current, previous)
		months = append(months, current.Period().String())
	}

	s.LogInfo(ctx, "Cash flow statements generated for year",
		slog.String("year", year),
		slog.Int("month_count", len(months)))
	return result, months, nil
}

// buildCashFlow runs the derivation chain for one period: period EERR,
// working-capital deltas, cash balances, then the indirect-method statement.
// A predecessor document with no rows carries no comparable balances, so it
// degrades the same way a missing predecessor does.
func (s *cashFlowService) buildCashFlow(period domain.Period, current, previous *domain.BalanceDocument) domain.CashFlowData {
	hasPrevious := previous != nil && len(previous.Data) > 0
	var previousRows []domain.BalanceAccountRow
	if hasPrevious {
		previousRows = previous.Data
	}

	eerr := accounting.BuildEERR(period, current.Data, previousRows)
	deltas := accounting.ComputeWorkingCapitalDeltas(current.Data, previousRows, s.matcher)

	saldoFinal, hasCash := accounting.CashBalance(current.Data)
	saldoInicial := decimal.Zero
	if hasPrevious {
		saldoInicial, _ = accounting.CashBalance(previous.Data)
	}

	return accounting.BuildCashFlow(accounting.CashFlowInput{
		Period:         period,
		PreviousPeriod: period.Previous(),
		HasPrevious:    hasPrevious,
		EERR:           eerr,
		Deltas:         deltas,
		SaldoInicial:   saldoInicial,
		SaldoFinal:     saldoFinal,
		HasCashBalance: hasCash,
	})
}
