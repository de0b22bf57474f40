// Package dates parses and formats calendar dates under the per-locale
// grammars of the legacy pages. Every grammar is a fixed 3-token split:
// "January 23, 2025" for English, "23 janvier 2025" for French,
// "23 ינואר 2025" for Hebrew. Dates carry no time component and are held
// as ISO YYYY-MM-DD strings.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/danielengelsman/Isratest/core"
	"github.com/danielengelsman/Isratest/core/entity"
)

const isoLayout = "2006-01-02"

// Parse converts a locale-formatted date string to ISO YYYY-MM-DD.
// The text is entity-decoded and has one comma stripped before splitting.
// An unrecognized month name falls back to the first month of the table;
// input that does not split into exactly three tokens, or whose numeric
// tokens do not parse, is returned verbatim (best effort, never an error).
func Parse(loc *core.Locale, text string) string {
	decoded := strings.TrimSpace(entity.Decode(text))
	stripped := strings.Replace(decoded, ",", "", 1)

	fields := strings.Fields(stripped)
	if len(fields) != 3 {
		return decoded
	}

	var dayTok, monthTok, yearTok string
	if loc.DayFirst {
		dayTok, monthTok, yearTok = fields[0], fields[1], fields[2]
	} else {
		monthTok, dayTok, yearTok = fields[0], fields[1], fields[2]
	}

	day, err := strconv.Atoi(dayTok)
	if err != nil {
		return decoded
	}
	year, err := strconv.Atoi(yearTok)
	if err != nil {
		return decoded
	}

	return fmt.Sprintf("%04d-%02d-%02d", year, monthNumber(loc, monthTok), day)
}

// monthNumber resolves a month token against the locale table, defaulting
// to the first month when the token is unknown.
func monthNumber(loc *core.Locale, token string) int {
	for i, name := range loc.Months {
		if strings.EqualFold(name, token) {
			return i + 1
		}
	}
	return 1
}

// Format renders an ISO date as the locale's long-form display string.
// Parsing pins the value to UTC so local-time interpretation can never
// shift the day. Unparseable input is echoed verbatim.
func Format(loc *core.Locale, iso string) string {
	t, err := time.ParseInLocation(isoLayout, strings.TrimSpace(iso), time.UTC)
	if err != nil {
		return iso
	}
	t = t.UTC()

	month := loc.Months[int(t.Month())-1]
	if loc.DayFirst {
		return fmt.Sprintf("%d %s %d", t.Day(), month, t.Year())
	}
	return fmt.Sprintf("%s %d, %d", month, t.Day(), t.Year())
}
