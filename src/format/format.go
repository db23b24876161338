package format

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// Number renders v with locale-aware digit grouping and a fixed number of
// fraction digits. The tag falls back to English when empty or unparseable.
func Number(v float64, decimals int, locale string) string {
	tag := language.English
	if locale != "" {
		if parsed, err := language.Parse(locale); err == nil {
			tag = parsed
		}
	}
	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(v,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals),
	))
}

// Date renders t as a plain calendar date. The zero time renders empty.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// DateTime renders t with minute precision.
func DateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateTimeLayout)
}

// ShortID truncates an identifier to length runes and appends an ellipsis.
// Inputs at or under the limit come back unchanged; empty in, empty out.
func ShortID(id string, length int) string {
	if id == "" {
		return ""
	}
	runes := []rune(id)
	if length <= 0 || len(runes) <= length {
		return id
	}
	return string(runes[:length]) + "..."
}
