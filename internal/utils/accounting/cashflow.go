package accounting

import (
	"github.com/contaflow/estados_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	thirty           = decimal.NewFromInt(30)
	qualityThreshold = decimal.NewFromInt(80)
)

// Advisory warnings attached to a cash-flow statement. Non-fatal.
const (
	WarnNoPreviousPeriod = "Sin datos del mes anterior: los cambios de capital de trabajo se asumen en cero y la utilidad es acumulada a la fecha"
	WarnNegativeCashFlow = "Flujo de caja operativo negativo"
	WarnLowIncomeQuality = "Calidad de ingresos bajo 80%: la utilidad contable no se está convirtiendo en caja"
	WarnLowDaysOfCash    = "Menos de 30 días de efectivo disponible para gastos operacionales"
)

// CashFlowInput carries everything the indirect method needs for one period:
// the period EERR, the working-capital movement, and the cash balances from
// the two trial balances.
type CashFlowInput struct {
	Period         domain.Period
	PreviousPeriod domain.Period
	HasPrevious    bool
	EERR           domain.EERRDocument
	Deltas         domain.WorkingCapitalDeltas
	SaldoInicial   decimal.Decimal
	SaldoFinal     decimal.Decimal
	HasCashBalance bool
}

// BuildCashFlow derives the indirect-method operating cash flow: net income,
// plus the depreciation add-back, plus the working-capital movement. All
// ratio denominators are guarded; the function never fails.
func BuildCashFlow(in CashFlowInput) domain.CashFlowData {
	utilidadNeta := in.EERR.Summary.UtilidadPerdida
	depreciacion := in.EERR.Summary.Depreciacion
	total := utilidadNeta.Add(depreciacion).Add(in.Deltas.Total)

	data := domain.CashFlowData{
		Period:                in.Period,
		UtilidadNeta:          utilidadNeta,
		AjustesNoMonetarios:   domain.NonCashAdjustments{Depreciacion: depreciacion},
		CambiosCapitalTrabajo: in.Deltas,
		Total:                 total,
		SaldoEfectivoInicial:  in.SaldoInicial,
		SaldoEfectivoFinal:    in.SaldoFinal,
		Warnings:              []string{},
	}
	if in.HasPrevious {
		data.PreviousPeriod = in.PreviousPeriod
	}

	data.Indicadores = buildIndicators(in, total, utilidadNeta)

	if !in.HasPrevious {
		data.Warnings = append(data.Warnings, WarnNoPreviousPeriod)
	}
	if total.IsNegative() {
		data.Warnings = append(data.Warnings, WarnNegativeCashFlow)
	}
	if !utilidadNeta.IsZero() && data.Indicadores.CalidadIngresos.LessThan(qualityThreshold) {
		data.Warnings = append(data.Warnings, WarnLowIncomeQuality)
	}
	if data.Indicadores.DiasEfectivoDisponible != nil && data.Indicadores.DiasEfectivoDisponible.LessThan(thirty) {
		data.Warnings = append(data.Warnings, WarnLowDaysOfCash)
	}

	return data
}

func buildIndicators(in CashFlowInput, total, utilidadNeta decimal.Decimal) domain.CashFlowIndicators {
	indicators := domain.CashFlowIndicators{
		MargenFlujoOperativo: decimal.Zero,
		CalidadIngresos:      decimal.Zero,
	}

	revenue := in.EERR.Summary.IngresosOperacionales
	if !revenue.IsZero() {
		indicators.MargenFlujoOperativo = total.Div(revenue).Mul(hundred)
	}
	if !utilidadNeta.IsZero() {
		indicators.CalidadIngresos = total.Div(utilidadNeta).Mul(hundred)
	}

	// Days of cash only makes sense against a real monthly expense base and a
	// located cash balance; otherwise the indicator is withheld entirely.
	monthlyExpenses := in.EERR.Summary.GastosAdministracion.Add(in.EERR.Summary.CostoVentas)
	if in.HasCashBalance && monthlyExpenses.IsPositive() {
		days := in.SaldoFinal.Div(monthlyExpenses).Mul(thirty)
		indicators.DiasEfectivoDisponible = &days
	}

	return indicators
}
