package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/contaflow/estados_backend/internal/apperrors"
	"github.com/contaflow/estados_backend/internal/core/domain"
	portsrepo "github.com/contaflow/estados_backend/internal/core/ports/repositories"
	portssvc "github.com/contaflow/estados_backend/internal/core/ports/services"
)

// balanceService implements the BalanceService interface
type balanceService struct {
	BaseService
	balanceRepo portsrepo.BalanceRepository
}

// NewBalanceService creates a new read-only balance lookup service
func NewBalanceService(repo portsrepo.BalanceRepository) portssvc.BalanceService {
	return &balanceService{balanceRepo: repo}
}

var _ portssvc.BalanceService = (*balanceService)(nil)

// GetBalance fetches the stored balance document for one period.
func (s *balanceService) GetBalance(ctx context.Context, period domain.Period) (*domain.BalanceDocument, error) {
	doc, err := s.balanceRepo.GetByPeriod(ctx, period)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to retrieve balance document", slog.String("period", period.String()))
		return nil, fmt.Errorf("failed to retrieve balance for %s: %w", period, err)
	}
	return doc, nil
}

// ListYears lists the years with at least one stored balance document.
func (s *balanceService) ListYears(ctx context.Context) ([]string, error) {
	years, err := s.balanceRepo.ListYears(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list balance years")
		return nil, fmt.Errorf("failed to list balance years: %w", err)
	}
	if years == nil {
		years = []string{}
	}
	return years, nil
}

// ListMonths lists the months with a stored balance in the given year.
func (s *balanceService) ListMonths(ctx context.Context, year string) ([]string, error) {
	months, err := s.balanceRepo.ListMonths(ctx, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to list balance months", slog.String("year", year))
		return nil, fmt.Errorf("failed to list balance months for year %s: %w", year, err)
	}
	if months == nil {
		months = []string{}
	}
	return months, nil
}
