package tabular

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Grouped renders v rounded to an integer with thousands separators: 123456.4 -> "123,456".
func Grouped(v float64) string {
	return printer.Sprintf("%.0f", v)
}

// Rupees renders an amount the way the dashboard shows money.
func Rupees(v float64) string {
	return "₹ " + Grouped(v)
}
