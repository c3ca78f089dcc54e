// Package money formatea montos monetarios en la moneda única del despliegue.
//
// El sistema opera con una sola moneda configurable (CURRENCY_CODE); todos los
// importes de ventas, cuotas y dashboard se presentan con el mismo formato.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formatea decimales como moneda con agrupación y decimales según locale.
type Formatter struct {
	unit    currency.Unit
	printer *message.Printer
}

// NewFormatter construye el formateador para un código ISO 4217 (ej. "DOP", "BOB").
func NewFormatter(code string) (*Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("moneda %q no reconocida: %w", code, err)
	}
	return &Formatter{
		unit:    unit,
		printer: message.NewPrinter(language.Spanish),
	}, nil
}

// Code devuelve el código ISO de la moneda configurada.
func (f *Formatter) Code() string { return f.unit.String() }

// Format devuelve el monto con símbolo y separadores de locale, ej. "DOP 50.000,00".
func (f *Formatter) Format(d decimal.Decimal) string {
	v, _ := d.Round(2).Float64()
	sym := f.printer.Sprint(currency.Symbol(f.unit))
	num := f.printer.Sprint(number.Decimal(v, number.Scale(2)))
	return sym + " " + num
}
