// Package format renderiza montos y fechas como texto según la configuración regional.
// Solo produce texto para mostrar; los cálculos siempre se hacen con decimal exacto.
package format

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formatea montos y fechas para una configuración regional fija.
type Formatter struct {
	tag      language.Tag
	printer  *message.Printer
	currency currency.Unit
}

// New construye un Formatter. Etiquetas o monedas inválidas caen a inglés / DZD.
func New(locale, currencyCode string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	cur, err := currency.ParseISO(currencyCode)
	if err != nil {
		cur = currency.MustParseISO("DZD")
	}
	return &Formatter{tag: tag, printer: message.NewPrinter(tag), currency: cur}
}

// Currency devuelve el código ISO de la moneda configurada.
func (f *Formatter) Currency() string { return f.currency.String() }

// Number formatea d con 2 decimales y separadores de miles de la región.
func (f *Formatter) Number(d decimal.Decimal) string {
	return f.printer.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2)))
}

// Money formatea d como monto con el código de la moneda: "107,576.00 DZD".
func (f *Formatter) Money(d decimal.Decimal) string {
	return f.Number(d) + " " + f.currency.String()
}

// Date formatea t como "10 <mes> 2025" con el nombre del mes en el idioma de la región.
func (f *Formatter) Date(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), f.monthName(t.Month()), t.Year())
}

// MonthLabel devuelve "<mes> 2025".
func (f *Formatter) MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", f.monthName(t.Month()), t.Year())
}

var monthNames = map[string][12]string{
	"ar": {"جانفي", "فيفري", "مارس", "أفريل", "ماي", "جوان", "جويلية", "أوت", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر"},
	"fr": {"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
	"es": {"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
	"en": {"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
}

func (f *Formatter) monthName(m time.Month) string {
	base, _ := f.tag.Base()
	names, ok := monthNames[base.String()]
	if !ok {
		names = monthNames["en"]
	}
	return names[m-1]
}
