package cartui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var brl = message.NewPrinter(language.BrazilianPortuguese)

// FormatPrice — цена в формате pt-BR с двумя знаками: 2999.9 → "R$ 2.999,90".
func FormatPrice(v float64) string {
	return brl.Sprintf("R$ %v", number.Decimal(v, number.Scale(2)))
}
