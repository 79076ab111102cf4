package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"finprobe/internal/domain"
)

// RulesFile is the YAML layout of RULES_FILE:
//
//	revenue:
//	  floor: 50000000
//	  basis: latest
//	borrowing_to_revenue:
//	  max: 0.5
//	iscr:
//	  min: 1.25
//
// A rule whose section is missing stays disabled.
type RulesFile struct {
	Revenue struct {
		Floor *float64 `yaml:"floor"`
		Basis string   `yaml:"basis"`
	} `yaml:"revenue"`
	BorrowingToRevenue *struct {
		Max *float64 `yaml:"max"`
	} `yaml:"borrowing_to_revenue"`
	ISCR *struct {
		Min *float64 `yaml:"min"`
	} `yaml:"iscr"`
}

// LoadThresholds starts from domain.DefaultThresholds, applies the rules file
// (if path is set) and then the REVENUE_FLOOR, REVENUE_BASIS,
// BORROWING_TO_REVENUE_MAX and ISCR_MIN environment variables.
func LoadThresholds(path string) (domain.Thresholds, error) {
	th := domain.DefaultThresholds()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return th, fmt.Errorf("read rules file: %w", err)
		}
		if err := ParseRules(b, &th); err != nil {
			return th, fmt.Errorf("rules file %s: %w", path, err)
		}
	}
	if err := applyEnv(&th); err != nil {
		return th, err
	}
	return th, validate(th)
}

// ParseRules overlays a YAML rules document onto th.
func ParseRules(b []byte, th *domain.Thresholds) error {
	var rf RulesFile
	if err := yaml.Unmarshal(b, &rf); err != nil {
		return err
	}
	if rf.Revenue.Floor != nil {
		th.RevenueFloor = decimal.NewFromFloat(*rf.Revenue.Floor)
	}
	if rf.Revenue.Basis != "" {
		th.RevenueBasis = domain.RevenueBasis(rf.Revenue.Basis)
	}
	if rf.BorrowingToRevenue != nil && rf.BorrowingToRevenue.Max != nil {
		v := decimal.NewFromFloat(*rf.BorrowingToRevenue.Max)
		th.BorrowingToRevenueMax = &v
	}
	if rf.ISCR != nil && rf.ISCR.Min != nil {
		v := decimal.NewFromFloat(*rf.ISCR.Min)
		th.ISCRMin = &v
	}
	return nil
}

func applyEnv(th *domain.Thresholds) error {
	if v := os.Getenv("REVENUE_FLOOR"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("REVENUE_FLOOR: %w", err)
		}
		th.RevenueFloor = d
	}
	if v := os.Getenv("REVENUE_BASIS"); v != "" {
		th.RevenueBasis = domain.RevenueBasis(v)
	}
	if v := os.Getenv("BORROWING_TO_REVENUE_MAX"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("BORROWING_TO_REVENUE_MAX: %w", err)
		}
		th.BorrowingToRevenueMax = &d
	}
	if v := os.Getenv("ISCR_MIN"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("ISCR_MIN: %w", err)
		}
		th.ISCRMin = &d
	}
	return nil
}

func validate(th domain.Thresholds) error {
	switch th.RevenueBasis {
	case domain.RevenueLatest, domain.RevenueSum:
	default:
		return fmt.Errorf("revenue basis must be %q or %q, got %q", domain.RevenueLatest, domain.RevenueSum, th.RevenueBasis)
	}
	if th.RevenueFloor.IsNegative() {
		return fmt.Errorf("revenue floor must not be negative")
	}
	if th.BorrowingToRevenueMax != nil && th.BorrowingToRevenueMax.IsNegative() {
		return fmt.Errorf("borrowing to revenue max must not be negative")
	}
	if th.ISCRMin != nil && th.ISCRMin.IsNegative() {
		return fmt.Errorf("iscr min must not be negative")
	}
	return nil
}
