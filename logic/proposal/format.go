package proposal

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var meses = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatDecimal formats v with Brazilian separators and two fraction digits: 7500 -> "7.500,00".
func FormatDecimal(v float64) string {
	return message.NewPrinter(language.BrazilianPortuguese).Sprintf("%.2f", v)
}

// FormatBRL is FormatDecimal with the currency symbol: "R$ 7.500,00".
func FormatBRL(v float64) string {
	return "R$ " + FormatDecimal(v)
}

// LongDate renders t as "5 de outubro de 2026".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), meses[t.Month()-1], t.Year())
}

// LongDate2 renders t with a two-digit day: "05 de outubro de 2026".
func LongDate2(t time.Time) string {
	return fmt.Sprintf("%02d de %s de %d", t.Day(), meses[t.Month()-1], t.Year())
}
