package accounting_test

import (
	"testing"

	"github.com/contaflow/estados_backend/internal/core/domain"
	"github.com/contaflow/estados_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func balanceRow(number, name string, debit, credit int64) domain.BalanceAccountRow {
	return domain.BalanceAccountRow{
		AccountNumber: number,
		AccountName:   name,
		Debit:         decimal.NewFromInt(debit),
		Credit:        decimal.NewFromInt(credit),
	}
}

func TestNameMatcher(t *testing.T) {
	matcher := accounting.NameMatcher{}

	testCases := []struct {
		name     string
		want     accounting.WorkingCapitalCategory
		matched  bool
	}{
		{"Cuentas por Cobrar Clientes", accounting.CategoryReceivables, true},
		{"CUENTAS POR COBRAR", accounting.CategoryReceivables, true},
		{"Inventario de productos", accounting.CategoryInventory, true},
		{"Existencias bodega", accounting.CategoryInventory, true},
		{"Cuentas por Pagar Proveedores", accounting.CategoryPayables, true},
		{"Caja general", 0, false},
		{"", 0, false},
	}

	for _, tc := range testCases {
		category, ok := matcher.Match(domain.BalanceAccountRow{AccountName: tc.name})
		assert.Equal(t, tc.matched, ok, "name %q", tc.name)
		if tc.matched {
			assert.Equal(t, tc.want, category, "name %q", tc.name)
		}
	}
}

func TestPrefixMatcher(t *testing.T) {
	matcher := accounting.DefaultPrefixMatcher()

	category, ok := matcher.Match(domain.BalanceAccountRow{AccountNumber: "1201", AccountName: "Deudores"})
	require.True(t, ok)
	assert.Equal(t, accounting.CategoryReceivables, category)

	category, ok = matcher.Match(domain.BalanceAccountRow{AccountNumber: "2105"})
	require.True(t, ok)
	assert.Equal(t, accounting.CategoryPayables, category)

	_, ok = matcher.Match(domain.BalanceAccountRow{AccountNumber: "4101"})
	assert.False(t, ok)

	// Zero value falls back to the default prefixes.
	category, ok = accounting.PrefixMatcher{}.Match(domain.BalanceAccountRow{AccountNumber: "1301"})
	require.True(t, ok)
	assert.Equal(t, accounting.CategoryInventory, category)
}

func TestCategoryBalance_SideAware(t *testing.T) {
	rows := []domain.BalanceAccountRow{
		balanceRow("1201", "Cuentas por cobrar clientes", 800, 100),
		balanceRow("2101", "Cuentas por pagar proveedores", 50, 400),
	}
	matcher := accounting.NameMatcher{}

	receivables := accounting.CategoryBalance(accounting.CategoryReceivables, rows, matcher)
	assert.True(t, receivables.Equal(decimal.NewFromInt(700)))

	// Payables run credit − debit.
	payables := accounting.CategoryBalance(accounting.CategoryPayables, rows, matcher)
	assert.True(t, payables.Equal(decimal.NewFromInt(350)))
}

func TestComputeWorkingCapitalDeltas(t *testing.T) {
	current := []domain.BalanceAccountRow{
		balanceRow("1201", "Cuentas por cobrar clientes", 800, 0),
		balanceRow("1301", "Inventario productos terminados", 450, 0),
		balanceRow("2101", "Cuentas por pagar proveedores", 0, 500),
	}
	previous := []domain.BalanceAccountRow{
		balanceRow("1201", "Cuentas por cobrar clientes", 500, 0),
		balanceRow("1301", "Inventario productos terminados", 400, 0),
		balanceRow("2101", "Cuentas por pagar proveedores", 0, 300),
	}

	deltas := accounting.ComputeWorkingCapitalDeltas(current, previous, accounting.NameMatcher{})

	// Receivables grew 500 → 800: 300 of cash tied up.
	assert.True(t, deltas.CuentasPorCobrar.Equal(decimal.NewFromInt(-300)))
	// Inventory grew 400 → 450: 50 outflow.
	assert.True(t, deltas.Inventarios.Equal(decimal.NewFromInt(-50)))
	// Payables grew 300 → 500: 200 of cash retained.
	assert.True(t, deltas.CuentasPorPagar.Equal(decimal.NewFromInt(200)))

	expectedTotal := deltas.CuentasPorCobrar.Add(deltas.Inventarios).Add(deltas.CuentasPorPagar)
	assert.True(t, deltas.Total.Equal(expectedTotal))
	assert.True(t, deltas.Total.Equal(decimal.NewFromInt(-150)))
}

func TestComputeWorkingCapitalDeltas_NoPrevious(t *testing.T) {
	current := []domain.BalanceAccountRow{
		balanceRow("1201", "Cuentas por cobrar clientes", 800, 0),
	}

	deltas := accounting.ComputeWorkingCapitalDeltas(current, nil, accounting.NameMatcher{})

	assert.True(t, deltas.CuentasPorCobrar.IsZero())
	assert.True(t, deltas.Inventarios.IsZero())
	assert.True(t, deltas.CuentasPorPagar.IsZero())
	assert.True(t, deltas.Total.IsZero())
}

func TestCashBalance(t *testing.T) {
	rows := []domain.BalanceAccountRow{
		balanceRow("1101", "Caja general", 300, 50),
		balanceRow("1102", "Banco Estado", 800, 100),
		balanceRow("1201", "Cuentas por cobrar clientes", 400, 0),
	}

	balance, found := accounting.CashBalance(rows)
	require.True(t, found)
	assert.True(t, balance.Equal(decimal.NewFromInt(950)))
}

func TestCashBalance_NoCashAccounts(t *testing.T) {
	rows := []domain.BalanceAccountRow{
		balanceRow("1201", "Cuentas por cobrar clientes", 400, 0),
	}

	balance, found := accounting.CashBalance(rows)
	assert.False(t, found)
	assert.True(t, balance.IsZero())
}
