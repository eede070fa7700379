package accounting

import (
	"strings"

	"github.com/contaflow/estados_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WorkingCapitalCategory names the balance items whose period movement
// adjusts net income to a cash basis.
type WorkingCapitalCategory int

const (
	CategoryReceivables WorkingCapitalCategory = iota
	CategoryInventory
	CategoryPayables
)

func (c WorkingCapitalCategory) String() string {
	switch c {
	case CategoryReceivables:
		return "cuentasPorCobrar"
	case CategoryInventory:
		return "inventarios"
	case CategoryPayables:
		return "cuentasPorPagar"
	}
	return "unknown"
}

// WorkingCapitalMatcher decides whether a balance row belongs to a
// working-capital category. The matching strategy is isolated here so it can
// be swapped (account renaming vs. renumbering resilience) without touching
// the delta arithmetic.
type WorkingCapitalMatcher interface {
	Match(row domain.BalanceAccountRow) (WorkingCapitalCategory, bool)
}

// NameMatcher matches rows by case-insensitive substring against canonical
// Spanish account labels. This reproduces the original lookup behavior: it
// survives chart-of-accounts renumbering but breaks if accounts are renamed.
type NameMatcher struct{}

var nameTerms = []struct {
	category WorkingCapitalCategory
	terms    []string
}{
	{CategoryReceivables, []string{"cuentas por cobrar"}},
	{CategoryInventory, []string{"inventario", "existencia"}},
	{CategoryPayables, []string{"cuentas por pagar"}},
}

func (NameMatcher) Match(row domain.BalanceAccountRow) (WorkingCapitalCategory, bool) {
	name := strings.ToLower(row.AccountName)
	for _, entry := range nameTerms {
		for _, term := range entry.terms {
			if strings.Contains(name, term) {
				return entry.category, true
			}
		}
	}
	return 0, false
}

// PrefixMatcher matches rows by account-code prefix, the explicit versioned
// alternative to NameMatcher. Zero value uses the default prefixes.
type PrefixMatcher struct {
	Receivables []string
	Inventory   []string
	Payables    []string
}

// DefaultPrefixMatcher carries the standard chart-of-accounts prefixes for
// the three working-capital items.
func DefaultPrefixMatcher() PrefixMatcher {
	return PrefixMatcher{
		Receivables: []string{"12"},
		Inventory:   []string{"13"},
		Payables:    []string{"21"},
	}
}

func (m PrefixMatcher) Match(row domain.BalanceAccountRow) (WorkingCapitalCategory, bool) {
	if m.Receivables == nil && m.Inventory == nil && m.Payables == nil {
		m = DefaultPrefixMatcher()
	}
	for _, prefix := range m.Receivables {
		if strings.HasPrefix(row.AccountNumber, prefix) {
			return CategoryReceivables, true
		}
	}
	for _, prefix := range m.Inventory {
		if strings.HasPrefix(row.AccountNumber, prefix) {
			return CategoryInventory, true
		}
	}
	for _, prefix := range m.Payables {
		if strings.HasPrefix(row.AccountNumber, prefix) {
			return CategoryPayables, true
		}
	}
	return 0, false
}

// CategoryBalance sums a category's balance across the given rows. Asset-side
// items (receivables, inventory) carry debit − credit balances; the
// liability-side payables carry credit − debit.
func CategoryBalance(category WorkingCapitalCategory, rows []domain.BalanceAccountRow, matcher WorkingCapitalMatcher) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		matched, ok := matcher.Match(row)
		if !ok || matched != category {
			continue
		}
		if category == CategoryPayables {
			total = total.Add(row.Credit.Sub(row.Debit))
		} else {
			total = total.Add(row.Debit.Sub(row.Credit))
		}
	}
	return total
}

// ComputeWorkingCapitalDeltas derives the signed cash-flow contribution of
// each working-capital item between two consecutive balances:
//
//	receivables or inventory increase → cash outflow (negative delta)
//	payables increase → cash inflow (positive delta)
//
// With no previous balance every delta is zero; the caller surfaces the
// missing-predecessor warning.
func ComputeWorkingCapitalDeltas(current, previous []domain.BalanceAccountRow, matcher WorkingCapitalMatcher) domain.WorkingCapitalDeltas {
	deltas := domain.WorkingCapitalDeltas{
		CuentasPorCobrar: decimal.Zero,
		Inventarios:      decimal.Zero,
		CuentasPorPagar:  decimal.Zero,
		Total:            decimal.Zero,
	}
	if previous == nil {
		return deltas
	}

	change := func(category WorkingCapitalCategory) decimal.Decimal {
		return CategoryBalance(category, current, matcher).
			Sub(CategoryBalance(category, previous, matcher))
	}

	deltas.CuentasPorCobrar = change(CategoryReceivables).Neg()
	deltas.Inventarios = change(CategoryInventory).Neg()
	deltas.CuentasPorPagar = change(CategoryPayables)
	deltas.Total = deltas.CuentasPorCobrar.Add(deltas.Inventarios).Add(deltas.CuentasPorPagar)
	return deltas
}

// cashTerms identify liquid-asset accounts for the saldo efectivo lookup.
var cashTerms = []string{"caja", "banco", "efectivo"}

// CashBalance locates the liquid cash position in a balance by account name.
// The boolean is false when no cash-like account exists, in which case the
// days-of-cash indicator is withheld.
func CashBalance(rows []domain.BalanceAccountRow) (decimal.Decimal, bool) {
	total := decimal.Zero
	found := false
	for _, row := range rows {
		name := strings.ToLower(row.AccountName)
		for _, term := range cashTerms {
			if strings.Contains(name, term) {
				total = total.Add(row.Debit.Sub(row.Credit))
				found = true
				break
			}
		}
	}
	return total, found
}
