package services_test

import (
	"context"
	"testing"

	"github.com/contaflow/estados_backend/internal/apperrors"
	"github.com/contaflow/estados_backend/internal/core/domain"
	portssvc "github.com/contaflow/estados_backend/internal/core/ports/services"
	"github.com/contaflow/estados_backend/internal/core/services"
	"github.com/contaflow/estados_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func cashFlowBalance(date string, revenue, receivables, cash int64) *domain.BalanceDocument {
	return &domain.BalanceDocument{
		Date: date,
		Data: []domain.BalanceAccountRow{
			{
				AccountNumber: "4101",
				AccountName:   "Ventas",
				Incomes:       decimal.NewFromInt(revenue),
			},
			{
				AccountNumber: "1201",
				AccountName:   "Cuentas por cobrar clientes",
				Debit:         decimal.NewFromInt(receivables),
			},
			{
				AccountNumber: "1101",
				AccountName:   "Caja general",
				Debit:         decimal.NewFromInt(cash),
			},
		},
	}
}

// --- Test Suite ---
type CashFlowServiceTestSuite struct {
	suite.Suite
	mockRepo *MockBalanceRepository
	service  portssvc.CashFlowService
}

func (suite *CashFlowServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBalanceRepository)
	suite.service = services.NewCashFlowService(suite.mockRepo)
}

func (suite *CashFlowServiceTestSuite) TestCashFlowForMonth_WithPrevious() {
	ctx := context.Background()
	current := cashFlowBalance("2024-02", 1000, 800, 500)
	previous := cashFlowBalance("2024-01", 600, 500, 300)

	suite.mockRepo.On("GetByPeriod", ctx, domain.Period("2024-02")).Return(current, nil).Once()
	suite.mockRepo.On("GetByPeriod", ctx, domain.Period("2024-01")).Return(previous, nil).Once()

	data, err := suite.service.CashFlowForMonth(ctx, "2024-02")

	suite.Require().NoError(err)
	suite.Require().NotNil(data)

	// Period-delta net income: 1000 − 600.
	suite.True(data.UtilidadNeta.Equal(decimal.NewFromInt(400)))
	// Receivables grew 500 → 800: 300 outflow.
	suite.True(data.CambiosCapitalTrabajo.CuentasPorCobrar.Equal(decimal.NewFromInt(-300)))
	// 400 + 0 − 300.
	suite.True(data.Total.Equal(decimal.NewFromInt(100)))
	suite.Equal(domain.Period("2024-01"), data.PreviousPeriod)
	suite.True(data.SaldoEfectivoInicial.Equal(decimal.NewFromInt(300)))
	suite.True(data.SaldoEfectivoFinal.Equal(decimal.NewFromInt(500)))
	suite.NotContains(data.Warnings, accounting.WarnNoPreviousPeriod)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CashFlowServiceTestSuite) TestCashFlowForMonth_NoPrevious() {
	ctx := context.Background()
	current := cashFlowBalance("2024-01", 1000, 800, 500)

	suite.mockRepo.On("GetByPeriod", ctx, domain.Period("2024-01")).Return(current, nil).Once()
	suite.mockRepo.On("GetByPeriod", ctx, domain.Period("2023-12")).Return(nil, apperrors.ErrNotFound).Once()

	data, err := suite.service.CashFlowForMonth(ctx, "2024-01")

	suite.Require().NoError(err)
	suite.Require().NotNil(data)

	// Without a predecessor net income is cumulative-to-date and deltas are zero.
	suite.True(data.UtilidadNeta.Equal(decimal.NewFromInt(1000)))
	suite.True(data.CambiosCapitalTrabajo.Total.IsZero())
	suite.True(data.Total.Equal(decimal.NewFromInt(1000)))
	suite.Contains(data.Warnings, accounting.WarnNoPreviousPeriod)
	suite.Equal(domain.Period(""), data.PreviousPeriod)
	suite.True(data.SaldoEfectivoInicial.IsZero())

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CashFlowServiceTestSuite) TestCashFlowForMonth_EmptyPreviousData() {
	ctx := context.Background()
	current := cashFlowBalance("2024-02", 1000, 800, 500)
	previous := &domain.BalanceDocument{Date: "2024-01"}

	suite.mockRepo.On("GetByPeriod", ctx, domain.Period("2024-02")).Return(current, nil).Once()
	suite.mockRepo.On("GetByPeriod", ctx, domain.Period("2024-01")).Return(previous, nil).Once()

	data, err := suite.service.CashFlowForMonth(ctx, "2024-02")

	suite.Require().NoError(err)
	suite.Require().NotNil(data)

	// A predecessor with no rows degrades like a missing predecessor.
	suite.Contains(data.Warnings, accounting.WarnNoPreviousPeriod)
	suite.True(data.UtilidadNeta.Equal(decimal.NewFromInt(1000)))
	suite.True(data.CambiosCapitalTrabajo.Total.IsZero())
	suite.Equal(domain.Period(""), data.PreviousPeriod)
	suite.True(data.SaldoEfectivoInicial.IsZero())

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CashFlowServiceTestSuite) TestCashFlowForMonth_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("GetByPeriod", ctx, domain.Period("2024-06")).Return(nil, apperrors.ErrNotFound).Once()

	data, err := suite.service.CashFlowForMonth(ctx, "2024-06")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(data)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CashFlowServiceTestSuite) TestCashFlowForYear() {
	ctx := context.Background()
	balances := []domain.BalanceDocument{
		*cashFlowBalance("2024-01", 600, 500, 300),
		*cashFlowBalance("2024-02", 1000, 800, 500),
	}

	suite.mockRepo.On("GetByYear", ctx, "2024").Return(balances, nil).Once()
	suite.mockRepo.On("GetByPeriod", ctx, domain.Period("2023-12")).Return(nil, apperrors.ErrNotFound).Once()

	result, months, err := suite.service.CashFlowForYear(ctx, "2024")

	suite.Require().NoError(err)
	suite.Equal([]string{"2024-01", "2024-02"}, months)

	january := result["2024-01"]
	suite.Contains(january.Warnings, accounting.WarnNoPreviousPeriod)

	february := result["2024-02"]
	suite.NotContains(february.Warnings, accounting.WarnNoPreviousPeriod)
	suite.Equal(domain.Period("2024-01"), february.PreviousPeriod)
	suite.True(february.UtilidadNeta.Equal(decimal.NewFromInt(400)))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CashFlowServiceTestSuite) TestCashFlowForYear_UsesPriorDecember() {
	ctx := context.Background()
	balances := []domain.BalanceDocument{
		*cashFlowBalance("2024-01", 1000, 800, 500),
	}
	december := cashFlowBalance("2023-12", 600, 500, 300)

	suite.mockRepo.On("GetByYear", ctx, "2024").Return(balances, nil).Once()
	suite.mockRepo.On("GetByPeriod", ctx, domain.Period("2023-12")).Return(december, nil).Once()

	result, _, err := suite.service.CashFlowForYear(ctx, "2024")

	suite.Require().NoError(err)
	january := result["2024-01"]
	suite.NotContains(january.Warnings, accounting.WarnNoPreviousPeriod)
	suite.True(january.UtilidadNeta.Equal(decimal.NewFromInt(400)))
	suite.Equal(domain.Period("2023-12"), january.PreviousPeriod)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CashFlowServiceTestSuite) TestCashFlowForYear_SkipsMalformedDates() {
	ctx := context.Background()
	balances := []domain.BalanceDocument{
		*cashFlowBalance("2024-01", 600, 500, 300),
		{Date: "whenever", Data: []domain.BalanceAccountRow{{AccountNumber: "4101", Incomes: decimal.NewFromInt(500)}}},
	}

	suite.mockRepo.On("GetByYear", ctx, "2024").Return(balances, nil).Once()
	suite.mockRepo.On("GetByPeriod", ctx, domain.Period("2023-12")).Return(nil, apperrors.ErrNotFound).Once()

	result, months, err := suite.service.CashFlowForYear(ctx, "2024")

	suite.Require().NoError(err)
	suite.Equal([]string{"2024-01"}, months)
	suite.Len(result, 1)
	suite.Contains(result, "2024-01")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CashFlowServiceTestSuite) TestCashFlowForYear_EmptyYear() {
	ctx := context.Background()

	suite.mockRepo.On("GetByYear", ctx, "2019").Return([]domain.BalanceDocument{}, nil).Once()

	result, months, err := suite.service.CashFlowForYear(ctx, "2019")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(result)
	suite.Nil(months)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CashFlowServiceTestSuite) TestPrefixMatcherOption() {
	ctx := context.Background()
	// Accounts named without the canonical terms only match by code prefix.
	current := &domain.BalanceDocument{
		Date: "2024-02",
		Data: []domain.BalanceAccountRow{
			{AccountNumber: "1201", AccountName: "Deudores comerciales", Debit: decimal.NewFromInt(800)},
		},
	}
	previous := &domain.BalanceDocument{
		Date: "2024-01",
		Data: []domain.BalanceAccountRow{
			{AccountNumber: "1201", AccountName: "Deudores comerciales", Debit: decimal.NewFromInt(500)},
		},
	}

	suite.mockRepo.On("GetByPeriod", ctx, domain.Period("2024-02")).Return(current, nil).Once()
	suite.mockRepo.On("GetByPeriod", ctx, domain.Period("2024-01")).Return(previous, nil).Once()

	svc := services.NewCashFlowService(suite.mockRepo,
		services.WithWorkingCapitalMatcher(accounting.DefaultPrefixMatcher()))

	data, err := svc.CashFlowForMonth(ctx, "2024-02")

	suite.Require().NoError(err)
	suite.True(data.CambiosCapitalTrabajo.CuentasPorCobrar.Equal(decimal.NewFromInt(-300)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCashFlowServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CashFlowServiceTestSuite))
}
