package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Core domain models used internally. API types are generated from OpenAPI and
// sit in internal/api; keep these decoupled where helpful.

// Crore is the Indian numbering unit, 1,00,00,000.
const Crore = 10_000_000

// RevenueFloor5Cr is the default floor for TOTAL_REVENUE_5CR_FLAG.
var RevenueFloor5Cr = decimal.NewFromInt(5 * Crore)

type Company struct {
	LegalName string `json:"legal_name"`
	CIN       string `json:"cin,omitempty"`
}

// LineItems is the subset of P&L line items the rules read. Pointers
// distinguish an absent field from an explicit zero.
type LineItems struct {
	NetRevenue                 *decimal.Decimal `json:"net_revenue"`
	Interest                   *decimal.Decimal `json:"interest,omitempty"`
	Depreciation               *decimal.Decimal `json:"depreciation,omitempty"`
	ProfitBeforeInterestAndTax *decimal.Decimal `json:"profit_before_interest_and_tax,omitempty"`
}

type PnL struct {
	LineItems LineItems `json:"lineItems"`
}

type Liabilities struct {
	LongTermBorrowings  *decimal.Decimal `json:"long_term_borrowings,omitempty"`
	ShortTermBorrowings *decimal.Decimal `json:"short_term_borrowings,omitempty"`
}

type BalanceSheet struct {
	Liabilities Liabilities `json:"liabilities"`
}

type YearlyEntry struct {
	Year         int          `json:"year"`
	PnL          PnL          `json:"pnl"`
	BalanceSheet BalanceSheet `json:"bs"`
}

type FinancialRecord struct {
	Company    Company       `json:"company"`
	Financials []YearlyEntry `json:"financials"`
}

// Latest returns the entry with the highest year.
func (r FinancialRecord) Latest() (YearlyEntry, bool) {
	if len(r.Financials) == 0 {
		return YearlyEntry{}, false
	}
	latest := r.Financials[0]
	for _, e := range r.Financials[1:] {
		if e.Year > latest.Year {
			latest = e
		}
	}
	return latest, true
}

type FlagName string

const (
	FlagTotalRevenue5Cr    FlagName = "TOTAL_REVENUE_5CR_FLAG"
	FlagBorrowingToRevenue FlagName = "BORROWING_TO_REVENUE_FLAG"
	FlagISCR               FlagName = "ISCR_FLAG"
)

// FlagNames lists the flags in display order.
var FlagNames = []FlagName{FlagTotalRevenue5Cr, FlagBorrowingToRevenue, FlagISCR}

// NotAvailable is shown for a flag that was not evaluated.
const NotAvailable = "N/A"

// FlagSet maps flag names to 0 or 1. A missing key means the rule did not run.
type FlagSet map[FlagName]int

// Display returns "1", "0" or NotAvailable.
func (f FlagSet) Display(name FlagName) string {
	v, ok := f[name]
	if !ok {
		return NotAvailable
	}
	if v == 1 {
		return "1"
	}
	return "0"
}

type RevenueBasis string

const (
	RevenueLatest RevenueBasis = "latest"
	RevenueSum    RevenueBasis = "sum"
)

// Thresholds configures the rule evaluator. Nil ratio limits disable their rule.
type Thresholds struct {
	RevenueFloor          decimal.Decimal
	RevenueBasis          RevenueBasis
	BorrowingToRevenueMax *decimal.Decimal
	ISCRMin               *decimal.Decimal
}

// DefaultThresholds has only the revenue rule enabled.
func DefaultThresholds() Thresholds {
	return Thresholds{RevenueFloor: RevenueFloor5Cr, RevenueBasis: RevenueLatest}
}

// Analysis is the evaluated result of one upload, scoped to a session.
type Analysis struct {
	ID         string        `json:"id"`
	SessionID  string        `json:"session_id"`
	Company    string        `json:"company"`
	Flags      FlagSet       `json:"flags"`
	Financials []YearlyEntry `json:"financials"`
	CreatedAt  time.Time     `json:"created_at"`
	ExpiresAt  time.Time     `json:"expires_at"`
}

func (a Analysis) Expired(now time.Time) bool {
	return !a.ExpiresAt.IsZero() && !now.Before(a.ExpiresAt)
}
