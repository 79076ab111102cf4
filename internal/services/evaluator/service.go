package evaluator

import (
	"finprobe/internal/domain"
)

// Service evaluates the configured rules against a financial record.
type Service struct {
	th    domain.Thresholds
	rules []rule
}

func New(th domain.Thresholds) *Service {
	if th.RevenueBasis == "" {
		th.RevenueBasis = domain.RevenueLatest
	}
	s := &Service{th: th}
	s.rules = append(s.rules, rule{name: domain.FlagTotalRevenue5Cr, eval: totalRevenue})
	if th.BorrowingToRevenueMax != nil {
		s.rules = append(s.rules, rule{name: domain.FlagBorrowingToRevenue, eval: borrowingToRevenue})
	}
	if th.ISCRMin != nil {
		s.rules = append(s.rules, rule{name: domain.FlagISCR, eval: interestServiceCoverage})
	}
	return s
}

func (s *Service) Thresholds() domain.Thresholds { return s.th }

// Evaluate runs every enabled rule. Rules without a configured threshold are
// left out of the result.
func (s *Service) Evaluate(rec domain.FinancialRecord) (domain.FlagSet, error) {
	latest, ok := rec.Latest()
	if !ok {
		return nil, domain.Missing("data.financials")
	}
	flags := make(domain.FlagSet, len(s.rules))
	for _, r := range s.rules {
		hit, err := r.eval(s.th, rec, latest)
		if err != nil {
			return nil, err
		}
		flags[r.name] = boolFlag(hit)
	}
	return flags, nil
}

func boolFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}
