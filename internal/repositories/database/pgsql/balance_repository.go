package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/contaflow/estados_backend/internal/apperrors"
	"github.com/contaflow/estados_backend/internal/core/domain"
	portsrepo "github.com/contaflow/estados_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// balanceRepository implements the BalanceRepository interface over a
// balances table holding one JSONB document per calendar month.
type balanceRepository struct {
	BaseRepository
}

// NewBalanceRepository creates a new balance document repository
func NewBalanceRepository(db *pgxpool.Pool) portsrepo.BalanceRepository {
	return &balanceRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetByPeriod retrieves the balance document stored for one calendar month
func (r *balanceRepository) GetByPeriod(ctx context.Context, period domain.Period) (*domain.BalanceDocument, error) {
	query := `SELECT doc FROM balances WHERE period = $1`

	var raw []byte
	err := r.Pool.QueryRow(ctx, query, period.String()).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error querying balance for period %s: %w", period, err)
	}

	var doc domain.BalanceDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("error decoding balance document for period %s: %w", period, err)
	}
	return &doc, nil
}

// GetByYear retrieves every balance document of a year, ordered by period ascending
func (r *balanceRepository) GetByYear(ctx context.Context, year string) ([]domain.BalanceDocument, error) {
	query := `SELECT doc FROM balances WHERE period LIKE $1 || '-%' ORDER BY period ASC`

	rows, err := r.Pool.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("error querying balances for year %s: %w", year, err)
	}
	defer rows.Close()

	var result []domain.BalanceDocument
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("error scanning balance row: %w", err)
		}
		var doc domain.BalanceDocument
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("error decoding balance document: %w", err)
		}
		result = append(result, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating balance rows: %w", err)
	}

	if len(result) == 0 {
		// Return empty slice instead of nil
		return []domain.BalanceDocument{}, nil
	}
	return result, nil
}

// ListYears returns the distinct years with at least one stored balance
func (r *balanceRepository) ListYears(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT substring(period from 1 for 4) AS year FROM balances ORDER BY year ASC`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying balance years: %w", err)
	}
	defer rows.Close()

	var years []string
	for rows.Next() {
		var year string
		if err := rows.Scan(&year); err != nil {
			return nil, fmt.Errorf("error scanning balance year: %w", err)
		}
		years = append(years, year)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating balance years: %w", err)
	}

	if years == nil {
		years = []string{}
	}
	return years, nil
}

// ListMonths returns the months with a stored balance in the given year
func (r *balanceRepository) ListMonths(ctx context.Context, year string) ([]string, error) {
	query := `SELECT substring(period from 6 for 2) AS month FROM balances WHERE period LIKE $1 || '-%' ORDER BY period ASC`

	rows, err := r.Pool.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("error querying balance months for year %s: %w", year, err)
	}
	defer rows.Close()

	var months []string
	for rows.Next() {
		var month string
		if err := rows.Scan(&month); err != nil {
			return nil, fmt.Errorf("error scanning balance month: %w", err)
		}
		months = append(months, month)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating balance months: %w", err)
	}

	if months == nil {
		months = []string{}
	}
	return months, nil
}
