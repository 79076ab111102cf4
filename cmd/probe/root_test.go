package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `{"data": {
  "company": {"legal_name": "ACME INDUSTRIES PRIVATE LIMITED"},
  "financials": [
    {"year": 2023,
     "bs": {"liabilities": {"long_term_borrowings": 60000000, "short_term_borrowings": 25000000}},
     "pnl": {"lineItems": {"net_revenue": 600000000, "depreciation": 9500000,
       "profit_before_interest_and_tax": 71000000, "interest": 11000000}}},
    {"year": 2022,
     "bs": {"liabilities": {"long_term_borrowings": 1, "short_term_borrowings": 1}},
     "pnl": {"lineItems": {"net_revenue": 400000000, "depreciation": 1,
       "profit_before_interest_and_tax": 1, "interest": 1}}}
  ]}}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("RULES_FILE", "")
	for _, k := range []string{"REVENUE_FLOOR", "REVENUE_BASIS", "BORROWING_TO_REVENUE_MAX", "ISCR_MIN"} {
		t.Setenv(k, "")
	}
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEvaluateTable(t *testing.T) {
	out, err := run(t, "", "evaluate", writeFile(t, "acme.json", doc))
	require.NoError(t, err)
	assert.Contains(t, out, "Company: ACME INDUSTRIES PRIVATE LIMITED")
	assert.Regexp(t, `TOTAL_REVENUE_5CR_FLAG\s+1\s+green`, out)
	assert.Regexp(t, `BORROWING_TO_REVENUE_FLAG\s+N/A\s+gray`, out)
	assert.Contains(t, out, "Detailed Insights")
	assert.Contains(t, out, "Total revenue exceeds ₹5 crore")
}

func TestEvaluateJSONWithRules(t *testing.T) {
	rules := writeFile(t, "rules.yaml", "borrowing_to_revenue:\n  max: 0.1\niscr:\n  min: 1.5\n")
	out, err := run(t, doc, "--rules", rules, "evaluate", "--json", "-")
	require.NoError(t, err)

	var got struct {
		Company string         `json:"company"`
		Flags   map[string]int `json:"flags"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "ACME INDUSTRIES PRIVATE LIMITED", got.Company)
	assert.Equal(t, map[string]int{
		"TOTAL_REVENUE_5CR_FLAG":    1,
		"BORROWING_TO_REVENUE_FLAG": 0,
		"ISCR_FLAG":                 1,
	}, got.Flags)
}

func TestChartFormats(t *testing.T) {
	path := writeFile(t, "acme.json", doc)

	out, err := run(t, "", "chart", path)
	require.NoError(t, err)
	var chart struct {
		Title  string `json:"title"`
		Points []struct {
			Year int `json:"year"`
		} `json:"points"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &chart))
	assert.Equal(t, "Company: ACME INDUSTRIES PRIVATE LIMITED", chart.Title)
	require.Len(t, chart.Points, 2)
	assert.Equal(t, 2022, chart.Points[0].Year)

	out, err = run(t, "", "chart", "--format", "plotly", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"lines+markers"`)

	_, err = run(t, "", "chart", "--format", "svg", path)
	assert.ErrorContains(t, err, "unknown format")
}

func TestMalformedDocument(t *testing.T) {
	_, err := run(t, `{"data": {"company": {"legal_name": "X"}, "financials": []}}`, "evaluate", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not evaluate document")
	assert.Contains(t, err.Error(), "data.financials")
}

func TestMissingFile(t *testing.T) {
	_, err := run(t, "", "evaluate", filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
