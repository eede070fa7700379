package accounting

import (
	"github.com/contaflow/estados_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Bucket identifies the income-statement bucket a ledger account contributes
// to. It is the single classification shared by the EERR and cash-flow paths.
type Bucket int

const (
	BucketUnclassified Bucket = iota
	BucketIngresosOperacionales
	BucketCostoVentas
	BucketGastosAdministracion
	BucketDepreciacion
	BucketIngresosNoOperacionales
	BucketGastosNoOperacionales
	BucketCorreccionMonetaria
	BucketImpuestoRenta
)

var bucketNames = map[Bucket]string{
	BucketUnclassified:            "unclassified",
	BucketIngresosOperacionales:   "ingresosOperacionales",
	BucketCostoVentas:             "costoVentas",
	BucketGastosAdministracion:    "gastosAdministracion",
	BucketDepreciacion:            "depreciacion",
	BucketIngresosNoOperacionales: "ingresosNoOperacionales",
	BucketGastosNoOperacionales:   "gastosNoOperacionales",
	BucketCorreccionMonetaria:     "correccionMonetaria",
	BucketImpuestoRenta:           "impuestoRenta",
}

func (b Bucket) String() string {
	if name, ok := bucketNames[b]; ok {
		return name
	}
	return "unclassified"
}

// Code returns the two-character account-code prefix the bucket is mapped
// from, empty for BucketUnclassified.
func (b Bucket) Code() string {
	for prefix, bucket := range bucketByPrefix {
		if bucket == b {
			return prefix
		}
	}
	return ""
}

// bucketByPrefix maps the first two characters of an account number to its
// statement bucket. Class 3 prefixes are expense accounts, class 4 prefixes
// income accounts.
var bucketByPrefix = map[string]Bucket{
	"41": BucketIngresosOperacionales,
	"31": BucketCostoVentas,
	"32": BucketGastosAdministracion,
	"33": BucketDepreciacion,
	"42": BucketIngresosNoOperacionales,
	"34": BucketGastosNoOperacionales,
	"35": BucketCorreccionMonetaria,
	"36": BucketImpuestoRenta,
}

// Classify maps a trial-balance row to its statement bucket by account-code
// prefix. Rows with a missing or short account number are unclassifiable and
// skipped by callers.
func Classify(row domain.BalanceAccountRow) Bucket {
	if len(row.AccountNumber) < 2 {
		return BucketUnclassified
	}
	bucket, ok := bucketByPrefix[row.AccountNumber[:2]]
	if !ok {
		return BucketUnclassified
	}
	return bucket
}

// BucketAmount selects the balance column a classified row contributes:
// income-class accounts ("4x") contribute their incomes balance, expense
// class accounts ("3x") their expenses balance. Anything else contributes
// nothing to the EERR (the row may still matter for working capital).
func BucketAmount(row domain.BalanceAccountRow) decimal.Decimal {
	if len(row.AccountNumber) == 0 {
		return decimal.Zero
	}
	switch row.AccountNumber[0] {
	case '4':
		return row.Incomes
	case '3':
		return row.Expenses
	default:
		return decimal.Zero
	}
}
