// Package format renders amounts, percentages and dates for table cells.
package format

import (
	"fmt"
	"strconv"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"gopkg.in/inf.v0"
)

const (
	DefaultLocale   = "pt-BR"
	DefaultCurrency = "BRL"
)

type Style string

const (
	StyleCurrency Style = "currency"
	StyleDecimal  Style = "decimal"
	StylePercent  Style = "percent"
)

type AmountOptions struct {
	Locale                string
	Currency              string
	ShowSymbol            bool
	MinimumFractionDigits int
	Style                 Style
	DisableNegative       bool
}

func (o AmountOptions) withDefaults() AmountOptions {
	if o.Locale == "" {
		o.Locale = DefaultLocale
	}
	if o.Currency == "" {
		o.Currency = DefaultCurrency
	}
	if o.MinimumFractionDigits <= 0 {
		o.MinimumFractionDigits = 2
	}
	if o.Style == "" {
		o.Style = StyleCurrency
	}
	return o
}

// Amount formats a number, numeric string or *inf.Dec. Anything that cannot be read as a number
// gives an empty string.
func Amount(value interface{}, opts AmountOptions) string {
	opts = opts.withDefaults()

	tag, err := language.Parse(opts.Locale)
	if err != nil {
		return ""
	}
	dec, err := toDec(value)
	if err != nil {
		return ""
	}
	if opts.DisableNegative {
		dec.Abs(dec)
	}

	scale := inf.Scale(opts.MinimumFractionDigits)
	rounded := new(inf.Dec).Round(dec, scale, inf.RoundHalfUp)
	f, err := strconv.ParseFloat(rounded.String(), 64)
	if err != nil {
		return ""
	}

	printer := message.NewPrinter(tag)
	switch opts.Style {
	case StylePercent:
		return printer.Sprint(number.Percent(f, number.Scale(opts.MinimumFractionDigits)))
	case StyleDecimal:
		return printer.Sprint(number.Decimal(f, number.Scale(opts.MinimumFractionDigits)))
	}

	formatted := printer.Sprint(number.Decimal(f, number.Scale(opts.MinimumFractionDigits)))
	if !opts.ShowSymbol {
		return formatted
	}
	unit, err := currency.ParseISO(opts.Currency)
	if err != nil {
		return ""
	}
	return printer.Sprint(currency.Symbol(unit)) + " " + formatted
}

func toDec(value interface{}) (*inf.Dec, error) {
	switch v := value.(type) {
	case *inf.Dec:
		if v == nil {
			return nil, fmt.Errorf("nil decimal")
		}
		return new(inf.Dec).Set(v), nil
	case string:
		return parseDec(v)
	case float64:
		return parseDec(strconv.FormatFloat(v, 'f', -1, 64))
	case float32:
		return parseDec(strconv.FormatFloat(float64(v), 'f', -1, 32))
	case int:
		return inf.NewDec(int64(v), 0), nil
	case int32:
		return inf.NewDec(int64(v), 0), nil
	case int64:
		return inf.NewDec(v, 0), nil
	default:
		return nil, fmt.Errorf("unsupported amount type %T", value)
	}
}

func parseDec(s string) (*inf.Dec, error) {
	dec, ok := new(inf.Dec).SetString(s)
	if !ok {
		return nil, fmt.Errorf("invalid decimal: %s", s)
	}
	return dec, nil
}
