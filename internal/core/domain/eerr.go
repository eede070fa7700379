package domain

import (
	"github.com/shopspring/decimal"
)

// EERRLineType distinguishes raw income/expense lines from derived subtotals.
type EERRLineType string

const (
	LineIncome     EERRLineType = "income"
	LineExpense    EERRLineType = "expense"
	LineCalculated EERRLineType = "calculated"
)

// Line levels within the statement.
const (
	LevelLeaf     = 0
	LevelSubtotal = 1
	LevelResult   = 2
)

// AccountDetail is one ledger account's contribution to a statement line.
type AccountDetail struct {
	AccountNumber string          `json:"accountNumber"`
	AccountName   string          `json:"accountName"`
	Amount        decimal.Decimal `json:"amount"`
}

// HorizontalAnalysis captures the period-over-period variation of a line.
type HorizontalAnalysis struct {
	VariationAbsolute   decimal.Decimal `json:"variationAbsolute"`
	VariationPercentage decimal.Decimal `json:"variationPercentage"`
	ComparisonMonth     string          `json:"comparisonMonth"`
}

// EERRLine is one row of the income statement.
type EERRLine struct {
	Label              string              `json:"label"`
	Code               string              `json:"code,omitempty"`
	Amount             decimal.Decimal     `json:"amount"`
	Type               EERRLineType        `json:"type"`
	Level              int                 `json:"level"`
	VerticalAnalysis   decimal.Decimal     `json:"verticalAnalysis"`
	HorizontalAnalysis *HorizontalAnalysis `json:"horizontalAnalysis,omitempty"`
	Details            []AccountDetail     `json:"details,omitempty"`
}

// EERRLines holds the twelve canonical income-statement lines in statement
// order: eight classified buckets and four derived results.
type EERRLines struct {
	IngresosOperacionales   EERRLine `json:"ingresosOperacionales"`
	CostoVentas             EERRLine `json:"costoVentas"`
	MargenBruto             EERRLine `json:"margenBruto"`
	GastosAdministracion    EERRLine `json:"gastosAdministracion"`
	Depreciacion            EERRLine `json:"depreciacion"`
	ResultadoOperacional    EERRLine `json:"resultadoOperacional"`
	IngresosNoOperacionales EERRLine `json:"ingresosNoOperacionales"`
	GastosNoOperacionales   EERRLine `json:"gastosNoOperacionales"`
	CorreccionMonetaria     EERRLine `json:"correccionMonetaria"`
	ResultadoAntesImpuestos EERRLine `json:"resultadoAntesImpuestos"`
	ImpuestoRenta           EERRLine `json:"impuestoRenta"`
	UtilidadPerdida         EERRLine `json:"utilidadPerdida"`
}

// All returns the lines in statement order as mutable references, so callers
// can walk the statement without naming each field. The order is stable and
// matches the struct declaration.
func (l *EERRLines) All() []*EERRLine {
	return []*EERRLine{
		&l.IngresosOperacionales,
		&l.CostoVentas,
		&l.MargenBruto,
		&l.GastosAdministracion,
		&l.Depreciacion,
		&l.ResultadoOperacional,
		&l.IngresosNoOperacionales,
		&l.GastosNoOperacionales,
		&l.CorreccionMonetaria,
		&l.ResultadoAntesImpuestos,
		&l.ImpuestoRenta,
		&l.UtilidadPerdida,
	}
}

// EERRSummary flattens the statement amounts plus the headline percentages
// for chart-friendly consumption.
type EERRSummary struct {
	IngresosOperacionales   decimal.Decimal `json:"ingresosOperacionales"`
	CostoVentas             decimal.Decimal `json:"costoVentas"`
	MargenBruto             decimal.Decimal `json:"margenBruto"`
	GastosAdministracion    decimal.Decimal `json:"gastosAdministracion"`
	Depreciacion            decimal.Decimal `json:"depreciacion"`
	ResultadoOperacional    decimal.Decimal `json:"resultadoOperacional"`
	IngresosNoOperacionales decimal.Decimal `json:"ingresosNoOperacionales"`
	GastosNoOperacionales   decimal.Decimal `json:"gastosNoOperacionales"`
	CorreccionMonetaria     decimal.Decimal `json:"correccionMonetaria"`
	ResultadoAntesImpuestos decimal.Decimal `json:"resultadoAntesImpuestos"`
	ImpuestoRenta           decimal.Decimal `json:"impuestoRenta"`
	UtilidadPerdida         decimal.Decimal `json:"utilidadPerdida"`
	MargenBrutoPct          decimal.Decimal `json:"margenBrutoPct"`
	MargenNetoPct           decimal.Decimal `json:"margenNetoPct"`
}

// EERRDocument is a fully derived income statement for one period. It is a
// request-scoped value: built fresh from one or two balance documents and
// discarded after serialization, never persisted.
type EERRDocument struct {
	Period  Period      `json:"period"`
	Lines   EERRLines   `json:"lines"`
	Summary EERRSummary `json:"summary"`
}
