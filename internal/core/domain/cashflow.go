package domain

import (
	"github.com/shopspring/decimal"
)

// WorkingCapitalDeltas holds the signed cash-flow contribution of each
// working-capital item between two consecutive balances. Increases in
// receivables and inventory consume cash (negative contribution); increases
// in payables free cash (positive contribution).
type WorkingCapitalDeltas struct {
	CuentasPorCobrar decimal.Decimal `json:"cuentasPorCobrar"`
	Inventarios      decimal.Decimal `json:"inventarios"`
	CuentasPorPagar  decimal.Decimal `json:"cuentasPorPagar"`
	Total            decimal.Decimal `json:"total"`
}

// NonCashAdjustments are the add-backs applied to net income in the indirect
// method. Depreciation is the only one derived from the trial balance.
type NonCashAdjustments struct {
	Depreciacion decimal.Decimal `json:"depreciacion"`
}

// CashFlowIndicators are the liquidity ratios derived from the operating cash
// flow. DiasEfectivoDisponible is nil when monthly operating expenses are
// zero or no cash balance is available, never Infinity or NaN.
type CashFlowIndicators struct {
	MargenFlujoOperativo   decimal.Decimal  `json:"margenFlujoOperativo"`
	CalidadIngresos        decimal.Decimal  `json:"calidadIngresos"`
	DiasEfectivoDisponible *decimal.Decimal `json:"diasEfectivoDisponible,omitempty"`
}

// CashFlowData is one period's indirect-method operating cash flow, derived
// from the period EERR and the working-capital movement between the current
// and previous balances. Request-scoped, never persisted.
type CashFlowData struct {
	Period                Period               `json:"period"`
	PreviousPeriod        Period               `json:"previousPeriod,omitempty"`
	UtilidadNeta          decimal.Decimal      `json:"utilidadNeta"`
	AjustesNoMonetarios   NonCashAdjustments   `json:"ajustesNoMonetarios"`
	CambiosCapitalTrabajo WorkingCapitalDeltas `json:"cambiosCapitalTrabajo"`
	Total                 decimal.Decimal      `json:"total"`
	SaldoEfectivoInicial  decimal.Decimal      `json:"saldoEfectivoInicial"`
	SaldoEfectivoFinal    decimal.Decimal      `json:"saldoEfectivoFinal"`
	Indicadores           CashFlowIndicators   `json:"indicadores"`
	Warnings              []string             `json:"warnings"`
}
