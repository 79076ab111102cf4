package ingest

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finprobe/internal/domain"
)

func TestDecodeFixture(t *testing.T) {
	f, err := os.Open("testdata/acme.json")
	require.NoError(t, err)
	defer f.Close()

	rec, err := Decode(f)
	require.NoError(t, err)
	assert.Equal(t, "ACME INDUSTRIES PRIVATE LIMITED", rec.Company.LegalName)
	assert.Equal(t, "U74999KA2010PTC012345", rec.Company.CIN)
	require.Len(t, rec.Financials, 2)

	latest, ok := rec.Latest()
	require.True(t, ok)
	assert.Equal(t, 2022, latest.Year)
	assert.Equal(t, "600000000", latest.PnL.LineItems.NetRevenue.String())
	assert.Equal(t, "60000000", latest.BalanceSheet.Liabilities.LongTermBorrowings.String())
	assert.Equal(t, "11000000", latest.PnL.LineItems.Interest.String())
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantField string
	}{
		{"empty", ``, ""},
		{"not json", `{"data": [}`, ""},
		{"truncated", `{"data": {"company": `, ""},
		{"no data", `{}`, "data"},
		{"no company", `{"data": {"financials": []}}`, "data.company"},
		{"no legal name", `{"data": {"company": {}, "financials": []}}`, "data.company.legal_name"},
		{"no financials", `{"data": {"company": {"legal_name": "X"}}}`, "data.financials"},
		{"empty financials", `{"data": {"company": {"legal_name": "X"}, "financials": []}}`, "data.financials"},
		{"no year", `{"data": {"company": {"legal_name": "X"}, "financials": [{"pnl": {"lineItems": {"net_revenue": 1}}}]}}`, "data.financials[0].year"},
		{"no revenue", `{"data": {"company": {"legal_name": "X"}, "financials": [{"year": 2022, "pnl": {"lineItems": {}}}]}}`, "data.financials[0].pnl.lineItems.net_revenue"},
		{"duplicate year", `{"data": {"company": {"legal_name": "X"}, "financials": [
			{"year": 2022, "pnl": {"lineItems": {"net_revenue": 1}}},
			{"year": 2022, "pnl": {"lineItems": {"net_revenue": 2}}}]}}`, "data.financials[1].year"},
		{"year is text", `{"data": {"company": {"legal_name": "X"}, "financials": [{"year": "FY22"}]}}`, "data.financials.year"},
		{"trailing data", `{"data": {"company": {"legal_name": "X"}, "financials": [{"year": 2022, "pnl": {"lineItems": {"net_revenue": 1}}}]}} garbage{`, ""},
		{"second document", `{"data": {}} {"data": {}}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			require.Error(t, err)
			var malformed *domain.MalformedInputError
			require.True(t, errors.As(err, &malformed), "got %T: %v", err, err)
			assert.Equal(t, tt.wantField, malformed.Field)
			assert.NotEmpty(t, malformed.Error())
		})
	}
}

func TestDecodeAllowsTrailingWhitespace(t *testing.T) {
	_, err := Decode(strings.NewReader("{\"data\": {\"company\": {\"legal_name\": \"X\"}, \"financials\": [{\"year\": 2022, \"pnl\": {\"lineItems\": {\"net_revenue\": 1}}}]}}\n\n"))
	assert.NoError(t, err)
}

func TestDecodeBadAmountNamesValue(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"data": {"company": {"legal_name": "X"}, "financials": [{"year": 2022, "pnl": {"lineItems": {"net_revenue": "abc"}}}]}}`))
	var malformed *domain.MalformedInputError
	require.True(t, errors.As(err, &malformed), "got %T: %v", err, err)
	assert.Contains(t, malformed.Reason, "abc")
}

func TestDecodeIgnoresUnknownFields(t *testing.T) {
	rec, err := Decode(strings.NewReader(`{"data": {"company": {"legal_name": "X", "pan": "ABCDE1234F"},
		"financials": [{"year": 2022, "pnl": {"lineItems": {"net_revenue": "125.50", "other_income": 3}}}],
		"directors": []}}`))
	require.NoError(t, err)
	assert.Equal(t, "125.5", rec.Financials[0].PnL.LineItems.NetRevenue.String())
}
