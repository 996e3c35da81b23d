// Package format renders numbers for the es-CL locale used across the
// dashboards.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("es-CL"))

// CLP renders an amount as Chilean pesos, no decimals.
func CLP(amount float64) string {
	return printer.Sprintf("$%v", number.Decimal(math.Round(amount), number.MaxFractionDigits(0)))
}

// Count renders an integer with locale grouping.
func Count(n int) string {
	return printer.Sprintf("%v", number.Decimal(n))
}
