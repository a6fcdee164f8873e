package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Percentage formats value, expressed in percent points (12.5 means 12.5%), in the default locale.
func Percentage(value *float64) string {
	return PercentageIn(DefaultLocale, value)
}

// PercentageIn formats with up to two fraction digits, and none for whole values.
func PercentageIn(locale string, value *float64) string {
	if value == nil {
		return ""
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}
	digits := 2
	if math.Floor(*value) == *value {
		digits = 0
	}
	return message.NewPrinter(tag).Sprint(number.Percent(*value/100, number.MaxFractionDigits(digits)))
}
