package accounting

import (
	"github.com/contaflow/estados_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// bucketAccumulator collects one bucket's running total and contributing
// accounts while a balance is folded. It is local to a single build; the
// finished statement is a read-only value.
type bucketAccumulator struct {
	total   decimal.Decimal
	details []domain.AccountDetail
}

func (a *bucketAccumulator) add(row domain.BalanceAccountRow, amount decimal.Decimal) {
	a.total = a.total.Add(amount)
	a.details = append(a.details, domain.AccountDetail{
		AccountNumber: row.AccountNumber,
		AccountName:   row.AccountName,
		Amount:        amount,
	})
}

// BuildEERR derives the income statement for one period from a trial balance.
//
// When previous is nil, each account contributes its cumulative balance
// directly (the standalone EERR-by-year mode). When previous is supplied,
// each account contributes current − previous, yielding the period movement;
// the cash-flow path uses this mode to get monthly rather than cumulative
// income and expenses.
//
// Only strictly positive contributions are accumulated. Negative and zero
// amounts, including contra-entries, are dropped; this mirrors the observed
// source behavior and is pinned by tests rather than corrected.
//
// BuildEERR never fails: absent or unclassifiable data yields an all-zero
// statement.
func BuildEERR(period domain.Period, rows []domain.BalanceAccountRow, previous []domain.BalanceAccountRow) domain.EERRDocument {
	var prevAmounts map[string]decimal.Decimal
	if previous != nil {
		prevAmounts = make(map[string]decimal.Decimal, len(previous))
		for _, row := range previous {
			if row.AccountNumber == "" {
				continue
			}
			prevAmounts[row.AccountNumber] = BucketAmount(row)
		}
	}

	accs := map[Bucket]*bucketAccumulator{
		BucketIngresosOperacionales:   {},
		BucketCostoVentas:             {},
		BucketGastosAdministracion:    {},
		BucketDepreciacion:            {},
		BucketIngresosNoOperacionales: {},
		BucketGastosNoOperacionales:   {},
		BucketCorreccionMonetaria:     {},
		BucketImpuestoRenta:           {},
	}

	for _, row := range rows {
		if row.AccountNumber == "" {
			continue
		}
		bucket := Classify(row)
		if bucket == BucketUnclassified {
			continue
		}
		amount := BucketAmount(row)
		if prevAmounts != nil {
			amount = amount.Sub(prevAmounts[row.AccountNumber])
		}
		if !amount.IsPositive() {
			continue
		}
		accs[bucket].add(row, amount)
	}

	doc := domain.EERRDocument{Period: period}
	lines := &doc.Lines

	bucketLine := func(bucket Bucket, label string, lineType domain.EERRLineType) domain.EERRLine {
		acc := accs[bucket]
		return domain.EERRLine{
			Label:   label,
			Code:    bucket.Code(),
			Amount:  acc.total,
			Type:    lineType,
			Level:   domain.LevelLeaf,
			Details: acc.details,
		}
	}

	lines.IngresosOperacionales = bucketLine(BucketIngresosOperacionales, "Ingresos Operacionales", domain.LineIncome)
	lines.CostoVentas = bucketLine(BucketCostoVentas, "Costo de Ventas", domain.LineExpense)
	lines.GastosAdministracion = bucketLine(BucketGastosAdministracion, "Gastos de Administración", domain.LineExpense)
	lines.Depreciacion = bucketLine(BucketDepreciacion, "Depreciación", domain.LineExpense)
	lines.IngresosNoOperacionales = bucketLine(BucketIngresosNoOperacionales, "Ingresos No Operacionales", domain.LineIncome)
	lines.GastosNoOperacionales = bucketLine(BucketGastosNoOperacionales, "Gastos No Operacionales", domain.LineExpense)
	lines.CorreccionMonetaria = bucketLine(BucketCorreccionMonetaria, "Corrección Monetaria", domain.LineExpense)
	lines.ImpuestoRenta = bucketLine(BucketImpuestoRenta, "Impuesto a la Renta", domain.LineExpense)

	margenBruto := lines.IngresosOperacionales.Amount.Sub(lines.CostoVentas.Amount)
	resultadoOperacional := margenBruto.Sub(lines.GastosAdministracion.Amount).Sub(lines.Depreciacion.Amount)
	resultadoAntesImpuestos := resultadoOperacional.
		Add(lines.IngresosNoOperacionales.Amount).
		Sub(lines.GastosNoOperacionales.Amount).
		Sub(lines.CorreccionMonetaria.Amount)
	utilidadPerdida := resultadoAntesImpuestos.Sub(lines.ImpuestoRenta.Amount)

	lines.MargenBruto = domain.EERRLine{
		Label:  "Margen Bruto",
		Amount: margenBruto,
		Type:   domain.LineCalculated,
		Level:  domain.LevelSubtotal,
	}
	lines.ResultadoOperacional = domain.EERRLine{
		Label:  "Resultado Operacional",
		Amount: resultadoOperacional,
		Type:   domain.LineCalculated,
		Level:  domain.LevelSubtotal,
	}
	lines.ResultadoAntesImpuestos = domain.EERRLine{
		Label:  "Resultado Antes de Impuestos",
		Amount: resultadoAntesImpuestos,
		Type:   domain.LineCalculated,
		Level:  domain.LevelSubtotal,
	}
	lines.UtilidadPerdida = domain.EERRLine{
		Label:  "Utilidad / Pérdida del Ejercicio",
		Amount: utilidadPerdida,
		Type:   domain.LineCalculated,
		Level:  domain.LevelResult,
	}

	applyVerticalAnalysis(lines)
	doc.Summary = summarize(lines)
	return doc
}

// applyVerticalAnalysis expresses every line as a percentage of operating
// income. Operating income itself is pinned at exactly 100; with zero revenue
// every percentage resolves to 0 rather than faulting.
func applyVerticalAnalysis(lines *domain.EERRLines) {
	revenue := lines.IngresosOperacionales.Amount
	for _, line := range lines.All() {
		if revenue.IsZero() {
			line.VerticalAnalysis = decimal.Zero
			continue
		}
		line.VerticalAnalysis = line.Amount.Div(revenue).Mul(hundred)
	}
	if !revenue.IsZero() {
		lines.IngresosOperacionales.VerticalAnalysis = hundred
	}
}

func summarize(lines *domain.EERRLines) domain.EERRSummary {
	return domain.EERRSummary{
		IngresosOperacionales:   lines.IngresosOperacionales.Amount,
		CostoVentas:             lines.CostoVentas.Amount,
		MargenBruto:             lines.MargenBruto.Amount,
		GastosAdministracion:    lines.GastosAdministracion.Amount,
		Depreciacion:            lines.Depreciacion.Amount,
		ResultadoOperacional:    lines.ResultadoOperacional.Amount,
		IngresosNoOperacionales: lines.IngresosNoOperacionales.Amount,
		GastosNoOperacionales:   lines.GastosNoOperacionales.Amount,
		CorreccionMonetaria:     lines.CorreccionMonetaria.Amount,
		ResultadoAntesImpuestos: lines.ResultadoAntesImpuestos.Amount,
		ImpuestoRenta:           lines.ImpuestoRenta.Amount,
		UtilidadPerdida:         lines.UtilidadPerdida.Amount,
		MargenBrutoPct:          lines.MargenBruto.VerticalAnalysis,
		MargenNetoPct:           lines.UtilidadPerdida.VerticalAnalysis,
	}
}

// ApplyHorizontalAnalysis attaches period-over-period variations across an
// ascending sequence of statements, mutating each document in place. The
// first document receives the zero variant with no comparison month.
func ApplyHorizontalAnalysis(ordered []*domain.EERRDocument) {
	for i, doc := range ordered {
		if i == 0 {
			for _, line := range doc.Lines.All() {
				line.HorizontalAnalysis = &domain.HorizontalAnalysis{}
			}
			continue
		}
		prev := ordered[i-1]
		prevLines := prev.Lines.All()
		for j, line := range doc.Lines.All() {
			line.HorizontalAnalysis = compareLine(line.Amount, prevLines[j].Amount, prev.Period)
		}
	}
}

func compareLine(current, previous decimal.Decimal, comparisonMonth domain.Period) *domain.HorizontalAnalysis {
	variation := current.Sub(previous)
	var pct decimal.Decimal
	switch {
	case previous.IsZero() && current.IsZero():
		pct = decimal.Zero
	case previous.IsZero():
		pct = hundred
	default:
		pct = variation.Div(previous.Abs()).Mul(hundred)
	}
	return &domain.HorizontalAnalysis{
		VariationAbsolute:   variation,
		VariationPercentage: pct,
		ComparisonMonth:     comparisonMonth.String(),
	}
}
