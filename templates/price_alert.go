package templates

import (
	"fmt"
	"strings"

	"skyhunt-service/internal/domain/entity"
)

// BuildPriceAlert renders the WhatsApp message sent when a hunt's target
// price is hit
func BuildPriceAlert(hunt *entity.Hunt, price float64, zone entity.PriceZone, trend *entity.TrendResult) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("✈️ Price alert for %s\n", hunt.Route()))
	sb.WriteString(fmt.Sprintf("Travel date: %s (%s)\n", hunt.TravelDate.Format("2006-01-02"), hunt.ModeLabel()))
	sb.WriteString(fmt.Sprintf("Current price: ₹%.0f (target ₹%.0f)\n", price, hunt.TargetPrice))

	switch zone {
	case entity.ZoneBelowSteal:
		sb.WriteString("Verdict: below the historical minimum. Book now.\n")
	case entity.ZoneSteal:
		sb.WriteString("Verdict: steal zone. Book now.\n")
	case entity.ZoneFair:
		sb.WriteString("Verdict: fair zone.\n")
	case entity.ZoneRipOff:
		sb.WriteString("Verdict: above average for this route.\n")
	}

	if trend != nil && trend.Direction != entity.TrendInsufficientData {
		sb.WriteString(fmt.Sprintf("Market: %s (change ₹%.0f over %d samples)\n", trend.Direction, trend.Change, trend.Samples))
	}

	return sb.String()
}
