package domain

import (
	"fmt"
	"strconv"

	"github.com/contaflow/estados_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Period identifies a calendar month in "YYYY-MM" form. The lexicographic
// ordering of the string form matches chronological ordering, which the
// comparative analysis relies on.
type Period string

// ParsePeriod validates and normalizes a period string. Full dates
// ("YYYY-MM-DD") are accepted and truncated to their month.
func ParsePeriod(s string) (Period, error) {
	if len(s) >= 10 {
		s = s[:7]
	}
	if len(s) != 7 || s[4] != '-' {
		return "", fmt.Errorf("invalid period %q: expected YYYY-MM: %w", s, apperrors.ErrValidation)
	}
	year, err := strconv.Atoi(s[:4])
	if err != nil || year < 1 {
		return "", fmt.Errorf("invalid period %q: bad year: %w", s, apperrors.ErrValidation)
	}
	month, err := strconv.Atoi(s[5:7])
	if err != nil || month < 1 || month > 12 {
		return "", fmt.Errorf("invalid period %q: bad month: %w", s, apperrors.ErrValidation)
	}
	return Period(fmt.Sprintf("%04d-%02d", year, month)), nil
}

// Previous returns the immediately preceding calendar month, rolling the
// year back when the period is a January. Malformed periods yield the empty
// period rather than panicking; stored dates are not under this service's
// control.
func (p Period) Previous() Period {
	if len(p) != 7 {
		return ""
	}
	year, yerr := strconv.Atoi(string(p[:4]))
	month, merr := strconv.Atoi(string(p[5:7]))
	if yerr != nil || merr != nil {
		return ""
	}
	month--
	if month == 0 {
		month = 12
		year--
	}
	return Period(fmt.Sprintf("%04d-%02d", year, month))
}

// Year returns the "YYYY" portion of the period, empty if malformed.
func (p Period) Year() string {
	if len(p) != 7 {
		return ""
	}
	return string(p[:4])
}

// Month returns the "MM" portion of the period, empty if malformed.
func (p Period) Month() string {
	if len(p) != 7 {
		return ""
	}
	return string(p[5:7])
}

func (p Period) String() string {
	return string(p)
}

// BalanceAccountRow is one ledger account in an 8-column trial balance:
// period debit/credit movement totals plus the period-end balance classified
// by account nature. Exactly one of Assets/Liabilities and one of
// Incomes/Expenses is populated for a well-formed row; the others are zero.
type BalanceAccountRow struct {
	AccountNumber string          `json:"accountNumber"`
	AccountName   string          `json:"accountName"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Assets        decimal.Decimal `json:"assets"`
	Liabilities   decimal.Decimal `json:"liabilities"`
	Incomes       decimal.Decimal `json:"incomes"`
	Expenses      decimal.Decimal `json:"expenses"`
}

// BalanceDocument is the trial balance for one calendar month. Documents are
// immutable once ingested; re-ingestion of a period replaces the document
// wholesale.
type BalanceDocument struct {
	Date string              `json:"date"`
	Data []BalanceAccountRow `json:"data"`
}

// Period returns the calendar month the document belongs to. Documents dated
// with a full "YYYY-MM-DD" are truncated to their month.
func (d BalanceDocument) Period() Period {
	p, err := ParsePeriod(d.Date)
	if err != nil {
		return ""
	}
	return p
}

// FindRow looks up a row by account number. Returns nil when the account is
// not present in the document.
func (d BalanceDocument) FindRow(accountNumber string) *BalanceAccountRow {
	for i := range d.Data {
		if d.Data[i].AccountNumber == accountNumber {
			return &d.Data[i]
		}
	}
	return nil
}
