package petition

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// brl groups digits the Brazilian way (1.234.567).
var brl = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL formats v as Brazilian currency, e.g. "R$ 1.234,56". Values are
// rounded half away from zero to cents.
func FormatBRL(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	_, cents, _ := strings.Cut(d.StringFixed(2), ".")
	return sign + "R$ " + brl.Sprintf("%d", d.IntPart()) + "," + cents
}

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// LongDate formats t as "17 de outubro de 2026".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), monthNames[t.Month()-1], t.Year())
}

// ShortDate formats an ISO date as dd/mm/yyyy. Unparseable input is
// returned as is, empty input as the placeholder.
func ShortDate(iso string) string {
	if strings.TrimSpace(iso) == "" {
		return "[xx/xx/xxxx]"
	}
	t, err := time.Parse("2006-01-02", iso[:min(len(iso), 10)])
	if err != nil {
		return iso
	}
	return t.Format("02/01/2006")
}
