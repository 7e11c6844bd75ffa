// Package format produces the display strings embedded in stats responses.
//
// All helpers are pure functions: they take every input explicitly and never
// touch process-wide state. On any formatting problem they fall back to a
// plain representation instead of returning an error.
package format

import (
	"fmt"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// UnknownDate is returned for absent or unparsable timestamps.
const UnknownDate = "unknown date"

var (
	localeAR = language.Make("es-AR")
	localeUS = language.AmericanEnglish
)

// Price renders amount as a locale-appropriate currency string.
//
// ARS amounts use the es-AR locale, everything else en-US, mirroring the
// storefront region this proxy serves. If code is not a valid ISO 4217
// currency, the fallback is a plain "CODE amount" string.
func Price(amount float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%s %.2f", code, amount)
	}

	loc := localeUS
	if code == "ARS" {
		loc = localeAR
	}
	return message.NewPrinter(loc).Sprintf("%v", currency.Symbol(unit.Amount(amount)))
}

// Date renders t as a short "month year" string, or "day month year" when
// specific is true. A zero time yields the UnknownDate placeholder.
func Date(t time.Time, specific bool) string {
	if t.IsZero() {
		return UnknownDate
	}
	if specific {
		return t.Format("2 Jan 2006")
	}
	return t.Format("Jan 2006")
}

// DateUnix is Date for epoch-seconds timestamps. Zero and negative values
// yield the UnknownDate placeholder.
func DateUnix(sec int64, specific bool) string {
	if sec <= 0 {
		return UnknownDate
	}
	return Date(time.Unix(sec, 0).UTC(), specific)
}
