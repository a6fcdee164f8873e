package format

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gopkg.in/inf.v0"
)

func TestAmountDecimal(t *testing.T) {
	en := AmountOptions{Locale: "en"}
	assert.Equal(t, "1,234.50", Amount(1234.5, en))
	assert.Equal(t, "1,234.57", Amount("1234.567", en))
	assert.Equal(t, "10.00", Amount(10, en))
	assert.Equal(t, "0.13", Amount(inf.NewDec(125, 3), en))
	assert.Equal(t, "-3.00", Amount(int64(-3), en))
	assert.Equal(t, "3.00", Amount(-3, AmountOptions{Locale: "en", DisableNegative: true}))
	assert.Equal(t, "1,234.500", Amount(1234.5, AmountOptions{Locale: "en", MinimumFractionDigits: 3}))
}

func TestAmountInvalidInput(t *testing.T) {
	assert.Equal(t, "", Amount("abc", AmountOptions{}))
	assert.Equal(t, "", Amount(nil, AmountOptions{}))
	assert.Equal(t, "", Amount(struct{}{}, AmountOptions{}))
	assert.Equal(t, "", Amount(1, AmountOptions{Locale: "not a locale!"}))
	assert.Equal(t, "", Amount(1, AmountOptions{Locale: "en", ShowSymbol: true, Currency: "XX"}))
}

func TestAmountWithSymbol(t *testing.T) {
	out := Amount(1234.5, AmountOptions{Locale: "en", Currency: "USD", ShowSymbol: true})
	assert.True(t, strings.HasSuffix(out, " 1,234.50"), out)
	assert.True(t, strings.HasPrefix(out, "$") || strings.HasPrefix(out, "US$"), out)
}

func TestAmountDefaultLocale(t *testing.T) {
	assert.Equal(t, "1.234,50", Amount(1234.5, AmountOptions{}))
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, "", Percentage(nil))

	value := 25.0
	assert.Equal(t, "25%", PercentageIn("en", &value))

	value = 12.5
	assert.Equal(t, "12.5%", PercentageIn("en", &value))

	assert.Equal(t, "", PercentageIn("not a locale!", &value))
}

func TestDate(t *testing.T) {
	utc := time.UTC
	assert.Equal(t, "31/01/2024", Date("2024-01-31", "pt-BR", utc))
	assert.Equal(t, "01/31/2024", Date("2024-01-31", "en-US", utc))
	assert.Equal(t, "31/01/2024", Date("2024-01-31T10:00:00Z", "", utc))
	assert.Equal(t, "2024-01-31", Date("2024-01-31", "fr", utc))

	when := time.Date(2023, 12, 1, 8, 0, 0, 0, utc)
	assert.Equal(t, "01/12/2023", Date(when, "pt-BR", utc))
	assert.Equal(t, "01/12/2023", Date(&when, "pt-BR", utc))

	assert.Equal(t, "", Date("", "pt-BR", utc))
	assert.Equal(t, "", Date("2024-13", "pt-BR", utc))
	assert.Equal(t, "", Date(42, "pt-BR", utc))
	assert.Equal(t, "", Date((*time.Time)(nil), "pt-BR", utc))
}
