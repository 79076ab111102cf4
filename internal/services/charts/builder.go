// Package charts builds the net revenue line chart shown on the results page.
// Rendering is left to the browser; this package only describes the chart.
package charts

import (
	"sort"

	"github.com/shopspring/decimal"

	"finprobe/internal/domain"
)

const (
	XLabel = "Year"
	YLabel = "Net Revenue (₹)"
)

type Point struct {
	Year  int             `json:"year"`
	Value decimal.Decimal `json:"value"`
}

type LineChart struct {
	Title      string  `json:"title"`
	XLabel     string  `json:"x_label"`
	YLabel     string  `json:"y_label"`
	Markers    bool    `json:"markers"`
	ShowLegend bool    `json:"show_legend"`
	Points     []Point `json:"points"`
}

// NetRevenue plots net revenue per year, ordered by year. Entries without a
// net revenue figure are skipped.
func NetRevenue(company string, financials []domain.YearlyEntry) LineChart {
	points := make([]Point, 0, len(financials))
	for _, e := range financials {
		if e.PnL.LineItems.NetRevenue == nil {
			continue
		}
		points = append(points, Point{Year: e.Year, Value: *e.PnL.LineItems.NetRevenue})
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].Year < points[j].Year })
	return LineChart{
		Title:      "Company: " + company,
		XLabel:     XLabel,
		YLabel:     YLabel,
		Markers:    true,
		ShowLegend: true,
		Points:     points,
	}
}

// Figure returns a Plotly figure document (data + layout) for the chart.
func (c LineChart) Figure() map[string]any {
	xs := make([]int, len(c.Points))
	ys := make([]float64, len(c.Points))
	for i, p := range c.Points {
		xs[i] = p.Year
		ys[i] = p.Value.InexactFloat64()
	}
	mode := "lines"
	if c.Markers {
		mode = "lines+markers"
	}
	return map[string]any{
		"data": []map[string]any{{
			"type": "scatter",
			"mode": mode,
			"name": c.YLabel,
			"x":    xs,
			"y":    ys,
		}},
		"layout": map[string]any{
			"title":      map[string]any{"text": c.Title},
			"showlegend": c.ShowLegend,
			"xaxis":      map[string]any{"title": map[string]any{"text": c.XLabel}, "tickformat": "d"},
			"yaxis":      map[string]any{"title": map[string]any{"text": c.YLabel}},
		},
	}
}
