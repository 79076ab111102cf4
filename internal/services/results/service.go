package results

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"finprobe/internal/domain"
	"finprobe/internal/services/charts"
)

// Card is one flag as shown on the results page.
type Card struct {
	Flag  domain.FlagName `json:"flag"`
	Label string          `json:"label"`
	Value string          `json:"value"`
	Color string          `json:"color"`
}

// View is everything the presentation layer needs for one analysis.
type View struct {
	Analysis     domain.Analysis  `json:"-"`
	Company      string           `json:"company"`
	Cards        []Card           `json:"cards"`
	Insights     []string         `json:"insights"`
	InsightsHTML string           `json:"-"`
	Chart        charts.LineChart `json:"chart"`
}

var labels = map[domain.FlagName]string{
	domain.FlagTotalRevenue5Cr:    "Total Revenue Flag",
	domain.FlagBorrowingToRevenue: "Borrowing to Revenue Flag",
	domain.FlagISCR:               "ISCR Flag for company",
}

// insight sentences indexed by display value.
var insights = map[domain.FlagName]map[string]string{
	domain.FlagTotalRevenue5Cr: {
		"1":                 "Total revenue exceeds ₹5 crore, indicating strong sales performance.",
		"0":                 "Total revenue is below ₹5 crore, which may indicate growth opportunities.",
		domain.NotAvailable: "Total revenue was not evaluated.",
	},
	domain.FlagBorrowingToRevenue: {
		"1":                 "The company maintains a healthy borrowing to revenue ratio.",
		"0":                 "The borrowing to revenue ratio is high, indicating potential over-leverage.",
		domain.NotAvailable: "The borrowing to revenue ratio was not evaluated; no threshold is configured.",
	},
	domain.FlagISCR: {
		"1":                 "The Interest Service Coverage Ratio is robust, suggesting good ability to cover interest payments.",
		"0":                 "The Company has a low ISCR, therefore indicating potential difficulty in meeting interest obligations.",
		domain.NotAvailable: "The Interest Service Coverage Ratio was not evaluated; no threshold is configured.",
	},
}

type Service struct {
	md goldmark.Markdown
}

func New() *Service { return &Service{md: goldmark.New()} }

// Build assembles cards, insights and the net revenue chart for a.
func (s *Service) Build(a domain.Analysis) (View, error) {
	v := View{
		Analysis: a,
		Company:  a.Company,
		Chart:    charts.NetRevenue(a.Company, a.Financials),
	}
	var md strings.Builder
	for _, name := range domain.FlagNames {
		display := a.Flags.Display(name)
		v.Cards = append(v.Cards, Card{
			Flag:  name,
			Label: labels[name],
			Value: display,
			Color: FlagColor(display),
		})
		text := insights[name][display]
		v.Insights = append(v.Insights, text)
		fmt.Fprintf(&md, "- %s\n", text)
	}
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(md.String()), &buf); err != nil {
		return View{}, fmt.Errorf("render insights: %w", err)
	}
	v.InsightsHTML = buf.String()
	return v, nil
}
