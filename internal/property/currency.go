package property

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrNotNumeric is returned when an amount has no leading integer part.
var ErrNotNumeric = errors.New("amount is not numeric")

// NaNPrice is shown for amounts that could not be parsed.
const NaNPrice = "$NaN"

var printer = message.NewPrinter(language.English)

// ParseAmount reads the leading integer of s the way a browser's parseInt
// does: surrounding whitespace and an optional sign are accepted, the
// fraction and anything after the digits are dropped.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, ErrNotNumeric
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, ErrNotNumeric
	}
	return n, nil
}

// FormatAmount formats whole currency units with thousands separators.
func FormatAmount(n int64) string {
	return "$" + printer.Sprintf("%d", n)
}

// FormatCurrency parses s and formats it as a price: "1234567.89" becomes
// "$1,234,567". Unparseable input yields NaNPrice and ErrNotNumeric.
func FormatCurrency(s string) (string, error) {
	n, err := ParseAmount(s)
	if err != nil {
		return NaNPrice, err
	}
	return FormatAmount(n), nil
}
