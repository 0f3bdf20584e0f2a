package views

import (
	"fmt"
	"time"
)

// FormatPrice renders a price for display. Prices are currency-agnostic
// units; the dollar sign is presentation only.
func FormatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

// FormatDate renders an entity timestamp for table rows.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("Jan 2, 2006")
}
