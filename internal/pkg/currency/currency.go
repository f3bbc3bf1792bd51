// Package currency converts UF (Unidad de Fomento) amounts to Chilean pesos
// and formats both for display.
package currency

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultUFRate is the display-only value of one UF in CLP
const DefaultUFRate = 35420

// DefaultLocale groups thousands with "." and separates decimals with ","
var DefaultLocale = language.Spanish

// Formatter converts UF amounts at a fixed rate
type Formatter struct {
	Rate   float64
	Locale language.Tag
}

// New returns a formatter using DefaultUFRate and DefaultLocale
func New() Formatter {
	return Formatter{Rate: DefaultUFRate, Locale: DefaultLocale}
}

// ToCLP converts a UF amount to CLP
func (f Formatter) ToCLP(uf float64) float64 {
	return uf * f.Rate
}

// FormatNumber renders v with locale grouping and at most three fraction digits
func (f Formatter) FormatNumber(v float64) string {
	p := message.NewPrinter(f.Locale)
	return p.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(3)))
}

// FormatCLP renders the CLP equivalent of a UF amount, e.g. "$106.260"
func (f Formatter) FormatCLP(uf float64) string {
	return "$" + f.FormatNumber(f.ToCLP(uf))
}

// FormatTotal renders an amount already expressed in CLP
func (f Formatter) FormatTotal(clp float64) string {
	return "$" + f.FormatNumber(clp)
}

// FormatUFAmount renders the bare UF amount, e.g. "1.5 UF"
func (f Formatter) FormatUFAmount(uf float64) string {
	return strconv.FormatFloat(uf, 'f', -1, 64) + " UF"
}

// FormatUF renders both units, e.g. "3 UF (106.260 CLP)"
func (f Formatter) FormatUF(uf float64) string {
	return f.FormatUFAmount(uf) + " (" + f.FormatNumber(f.ToCLP(uf)) + " CLP)"
}
