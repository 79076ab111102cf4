package results

import "finprobe/internal/domain"

const (
	ColorHealthy = "green"
	ColorAtRisk  = "red"
	ColorUnknown = "gray"
)

// FlagColor maps a displayed flag value to a card color. Anything other than
// "1" or "0" is treated as not available.
func FlagColor(display string) string {
	switch display {
	case "1":
		return ColorHealthy
	case "0":
		return ColorAtRisk
	case domain.NotAvailable:
		return ColorUnknown
	}
	return ColorUnknown
}
