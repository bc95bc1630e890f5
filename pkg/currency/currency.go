// Package currency formatea montos guardados en centavos para mostrarlos en el dashboard (USD, en-US).
package currency

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCents formatea centavos como dólares con separador de miles: 123456 -> "$1,234.56".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	dollars := printer.Sprint(number.Decimal(cents / 100))
	return fmt.Sprintf("%s$%s.%02d", sign, dollars, cents%100)
}
