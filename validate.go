package yml

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Feed timestamp layouts. Input is accepted in either; output is always the
// primary layout.
const (
	DateFormat    = "2006-01-02 15:04:05"
	AltDateFormat = "2006-01-02 15:04"
)

// CurrencyChoices lists the currency codes the dialect accepts, both for
// <currency id=...> and for an offer's currencyId reference.
var CurrencyChoices = []string{"RUR", "RUB", "USD", "BYN", "KZT", "EUR", "UAH"}

// RateChoices lists the "rate on request" tokens accepted instead of a
// numeric exchange rate.
var RateChoices = []string{"CBRF", "NBU", "NBK", "CB", "SUPPLIER"}

var (
	truthyTokens = []string{"yes", "true", "1"}
	falsyTokens  = []string{"no", "false", "0"}
)

// now is a hook for tests that exercise the default-to-current-time path.
var now = time.Now

func maxLength(field, value string, n int) error {
	if len([]rune(value)) > n {
		return errTooLong(field, value, n)
	}
	return nil
}

func choice(field, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return errInvalidEnum(field, value, allowed)
}

func numericOrChoice(field, value string, allowed []string) error {
	if _, err := strconv.ParseFloat(value, 64); err == nil {
		return nil
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return errNumericOrEnum(field, value, allowed)
}

// boolish normalizes a tri-state bool-like value: nil stays nil, a bool
// passes through and string tokens from either set are coerced,
// case-insensitively. Anything else fails listing both token sets.
func boolish(field string, v any, trueTokens, falseTokens []string) (*bool, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case bool:
		b := t
		return &b, nil
	case *bool:
		if t == nil {
			return nil, nil
		}
		b := *t
		return &b, nil
	case string:
		s := strings.ToLower(t)
		for _, tok := range trueTokens {
			if s == tok {
				b := true
				return &b, nil
			}
		}
		for _, tok := range falseTokens {
			if s == tok {
				b := false
				return &b, nil
			}
		}
	}
	return nil, errNotBoolish(field, v, trueTokens, falseTokens)
}

// datetimeWithFallback parses value with the primary layout, retries with
// the fallback and returns the result re-rendered in the primary layout. An
// empty value yields the current time.
func datetimeWithFallback(field, value, primary, fallback string) (string, error) {
	if value == "" {
		return now().Format(primary), nil
	}
	if t, err := time.Parse(primary, value); err == nil {
		return t.Format(primary), nil
	}
	if t, err := time.Parse(fallback, value); err == nil {
		return t.Format(primary), nil
	}
	return "", errBadDatetime(field, value, primary, fallback)
}

func intInRange(field string, v, lo, hi int) error {
	if v < lo || v > hi {
		return errOutOfRange(field, v, lo, hi)
	}
	return nil
}

var dayRangeRe = regexp.MustCompile(`^[0-9]+-[0-9]+$`)

// daysValue accepts a plain day count or a day-range token such as "1-3".
func daysValue(field, value string) error {
	if dayRangeRe.MatchString(value) {
		return nil
	}
	return numericOrChoice(field, value, nil)
}
