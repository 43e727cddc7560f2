// Package money formats amounts for display. The UI is Thai, amounts
// are shown the way th-TH locale formatting renders them.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Thai)

// Format renders the amount with thousands separators and two decimal
// places, e.g. "1,234.50".
func Format(amount decimal.Decimal) string {
	f, _ := amount.Float64()
	return printer.Sprint(number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
