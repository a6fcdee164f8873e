package format

import (
	"strings"
	"time"
)

const isoDate = "2006-01-02"

// dateLayouts holds the numeric short date layout per locale.
var dateLayouts = map[string]string{
	"pt-BR": "02/01/2006",
	"pt":    "02/01/2006",
	"en-US": "01/02/2006",
	"en":    "01/02/2006",
	"en-GB": "02/01/2006",
	"es":    "2/1/2006",
	"de":    "2.1.2006",
}

// Date formats a time.Time, a plain "2006-01-02" date or an RFC 3339 timestamp as a short numeric
// date. Plain dates are read in loc so they never shift by a day; an empty or invalid value gives "".
func Date(value interface{}, locale string, loc *time.Location) string {
	if locale == "" {
		locale = DefaultLocale
	}
	if loc == nil {
		loc = time.Local
	}
	layout, ok := dateLayouts[locale]
	if !ok {
		layout = isoDate
	}

	var t time.Time
	switch v := value.(type) {
	case time.Time:
		t = v.In(loc)
	case *time.Time:
		if v == nil {
			return ""
		}
		t = v.In(loc)
	case string:
		parsed, err := parseDate(v, loc)
		if err != nil {
			return ""
		}
		t = parsed
	default:
		return ""
	}
	return t.Format(layout)
}

func parseDate(value string, loc *time.Location) (time.Time, error) {
	if strings.Contains(value, "T") {
		t, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return time.Time{}, err
		}
		return t.In(loc), nil
	}
	return time.ParseInLocation(isoDate, value, loc)
}
