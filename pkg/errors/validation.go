package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxNotationLength bounds the notation text accepted at the outer surfaces.
const MaxNotationLength = 4096

// ValidateNotation checks raw notation text before it reaches a parser.
// The parsers themselves report grammar problems; this only rejects input
// that no notation could contain.
//
// Rules:
//   - No empty text
//   - Maximum length of MaxNotationLength bytes
//   - No control characters other than newlines, carriage returns and tabs
func ValidateNotation(text string) error {
	if strings.TrimSpace(text) == "" {
		return New(ErrCodeInvalidInput, "pattern notation cannot be empty")
	}

	if len(text) > MaxNotationLength {
		return New(ErrCodeInvalidInput, "pattern notation too long (max %d characters)", MaxNotationLength)
	}

	for _, r := range text {
		if r == '\n' || r == '\r' || r == '\t' {
			continue
		}
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "pattern notation contains invalid control characters")
		}
	}

	return nil
}

// slugRegex matches preset slugs: lowercase words joined by single dashes.
var slugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidateSlug validates a preset slug.
func ValidateSlug(slug string) error {
	if slug == "" {
		return New(ErrCodeInvalidInput, "preset slug cannot be empty")
	}

	if len(slug) > 128 {
		return New(ErrCodeInvalidInput, "preset slug too long (max 128 characters)")
	}

	if !slugRegex.MatchString(slug) {
		return New(ErrCodeInvalidInput, "invalid preset slug: %q", slug)
	}

	return nil
}

// MaxPeriod bounds the period of patterns accepted at the outer surfaces.
const MaxPeriod = MaxNotationLength

// MaxDurationPeriods bounds how many periods a single throw may span.
// Wrapping a throw into the period costs one step per period crossed.
const MaxDurationPeriods = 36

// ValidatePeriod rejects negative periods and periods above MaxPeriod.
func ValidatePeriod(period int) error {
	if period < 0 {
		return New(ErrCodeInvalidInput, "period must not be negative, got %d", period)
	}
	if period > MaxPeriod {
		return New(ErrCodeInvalidInput, "period too long (max %d beats), got %d", MaxPeriod, period)
	}
	return nil
}

// ValidateDuration checks a throw duration against the period of its
// pattern: it must not be negative or span more than MaxDurationPeriods
// periods.
func ValidateDuration(duration, period int) error {
	if duration < 0 {
		return New(ErrCodeInvalidInput, "throw duration must not be negative, got %d", duration)
	}
	if period > 0 && duration > MaxDurationPeriods*period {
		return New(ErrCodeInvalidInput, "throw duration %d too long for period %d (max %d)",
			duration, period, MaxDurationPeriods*period)
	}
	return nil
}

// ValidateJugglerCount validates the juggler count supplied for siteswap input.
func ValidateJugglerCount(n int) error {
	if n < 1 {
		return New(ErrCodeInvalidInput, "juggler count must be at least 1, got %d", n)
	}
	if n > 26 {
		return New(ErrCodeInvalidInput, "juggler count must be at most 26, got %d", n)
	}
	return nil
}
