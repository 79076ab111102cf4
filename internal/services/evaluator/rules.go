package evaluator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"finprobe/internal/domain"
)

type rule struct {
	name domain.FlagName
	eval func(th domain.Thresholds, rec domain.FinancialRecord, latest domain.YearlyEntry) (bool, error)
}

// totalRevenue compares revenue against the floor, inclusive.
func totalRevenue(th domain.Thresholds, rec domain.FinancialRecord, latest domain.YearlyEntry) (bool, error) {
	var revenue decimal.Decimal
	switch th.RevenueBasis {
	case domain.RevenueSum:
		for _, e := range rec.Financials {
			v, err := required(e.PnL.LineItems.NetRevenue, e.Year, "pnl.lineItems.net_revenue")
			if err != nil {
				return false, err
			}
			revenue = revenue.Add(v)
		}
	default:
		v, err := required(latest.PnL.LineItems.NetRevenue, latest.Year, "pnl.lineItems.net_revenue")
		if err != nil {
			return false, err
		}
		revenue = v
	}
	return revenue.GreaterThanOrEqual(th.RevenueFloor), nil
}

// borrowingToRevenue is healthy when total borrowings over the latest year's
// net revenue stay strictly below the configured maximum.
func borrowingToRevenue(th domain.Thresholds, _ domain.FinancialRecord, latest domain.YearlyEntry) (bool, error) {
	revenue, err := required(latest.PnL.LineItems.NetRevenue, latest.Year, "pnl.lineItems.net_revenue")
	if err != nil {
		return false, err
	}
	long, err := required(latest.BalanceSheet.Liabilities.LongTermBorrowings, latest.Year, "bs.liabilities.long_term_borrowings")
	if err != nil {
		return false, err
	}
	short, err := required(latest.BalanceSheet.Liabilities.ShortTermBorrowings, latest.Year, "bs.liabilities.short_term_borrowings")
	if err != nil {
		return false, err
	}
	if !revenue.IsPositive() {
		return false, nil
	}
	ratio := long.Add(short).Div(revenue)
	return ratio.LessThan(*th.BorrowingToRevenueMax), nil
}

// interestServiceCoverage computes (PBIT + depreciation) / interest for the
// latest year. No interest expense means there is nothing to cover.
func interestServiceCoverage(th domain.Thresholds, _ domain.FinancialRecord, latest domain.YearlyEntry) (bool, error) {
	items := latest.PnL.LineItems
	interest, err := required(items.Interest, latest.Year, "pnl.lineItems.interest")
	if err != nil {
		return false, err
	}
	pbit, err := required(items.ProfitBeforeInterestAndTax, latest.Year, "pnl.lineItems.profit_before_interest_and_tax")
	if err != nil {
		return false, err
	}
	dep, err := required(items.Depreciation, latest.Year, "pnl.lineItems.depreciation")
	if err != nil {
		return false, err
	}
	if interest.IsZero() {
		return true, nil
	}
	iscr := pbit.Add(dep).Div(interest.Abs())
	return iscr.GreaterThan(*th.ISCRMin), nil
}

func required(v *decimal.Decimal, year int, field string) (decimal.Decimal, error) {
	if v == nil {
		return decimal.Decimal{}, &domain.MalformedInputError{
			Field:  fmt.Sprintf("data.financials[year=%d].%s", year, field),
			Reason: "is required for evaluation",
		}
	}
	return *v, nil
}
