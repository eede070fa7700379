package domain_test

import (
	"testing"

	"github.com/contaflow/estados_backend/internal/apperrors"
	"github.com/contaflow/estados_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    domain.Period
		wantErr bool
	}{
		{name: "plain month", input: "2024-03", want: "2024-03"},
		{name: "full date truncated to month", input: "2024-03-15", want: "2024-03"},
		{name: "december", input: "2023-12", want: "2023-12"},
		{name: "empty", input: "", wantErr: true},
		{name: "month out of range", input: "2024-13", wantErr: true},
		{name: "zero month", input: "2024-00", wantErr: true},
		{name: "missing separator", input: "202403", wantErr: true},
		{name: "garbage", input: "not-a-period", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := domain.ParsePeriod(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPeriodPrevious(t *testing.T) {
	assert.Equal(t, domain.Period("2024-02"), domain.Period("2024-03").Previous())
	assert.Equal(t, domain.Period("2023-12"), domain.Period("2024-01").Previous())
	assert.Equal(t, domain.Period("2024-11"), domain.Period("2024-12").Previous())
}

func TestPeriodAccessorsMalformed(t *testing.T) {
	// Stored dates come from an external ingestion process; accessors must
	// degrade to the empty period instead of panicking.
	for _, p := range []domain.Period{"", "whenever", "2024"} {
		assert.Equal(t, domain.Period(""), p.Previous(), "Previous(%q)", p)
		assert.Equal(t, "", p.Year(), "Year(%q)", p)
		assert.Equal(t, "", p.Month(), "Month(%q)", p)
	}
	// Right length, non-numeric parts.
	assert.Equal(t, domain.Period(""), domain.Period("20x4-03").Previous())
}

func TestPeriodParts(t *testing.T) {
	p := domain.Period("2024-07")
	assert.Equal(t, "2024", p.Year())
	assert.Equal(t, "07", p.Month())
	assert.Equal(t, "2024-07", p.String())
}

func TestBalanceDocumentPeriod(t *testing.T) {
	doc := domain.BalanceDocument{Date: "2024-05-31"}
	assert.Equal(t, domain.Period("2024-05"), doc.Period())

	malformed := domain.BalanceDocument{Date: "whenever"}
	assert.Equal(t, domain.Period(""), malformed.Period())
}

func TestBalanceDocumentFindRow(t *testing.T) {
	doc := domain.BalanceDocument{
		Date: "2024-05",
		Data: []domain.BalanceAccountRow{
			{AccountNumber: "4101", AccountName: "Ventas"},
			{AccountNumber: "3101", AccountName: "Costo de ventas"},
		},
	}

	row := doc.FindRow("3101")
	require.NotNil(t, row)
	assert.Equal(t, "Costo de ventas", row.AccountName)

	assert.Nil(t, doc.FindRow("9999"))
}
