package validate

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Options narrows what a value is allowed to be. Fields apply only where the
// declared type recognizes them; the zero value imposes no constraints.
type Options struct {
	Min       *float64
	Max       *float64
	MinLength *int
	MaxLength *int
	Required  bool
}

var (
	uuidRe        = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[1-5][0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)
	instructionRe = regexp.MustCompile(`^IS-\d{4}-\d{4}$`)
)

// Input reports whether value is acceptable as the given type. An empty typ
// defaults to "string". Unrecognized type tags always pass, so callers can
// feed arbitrary field kinds through without pre-filtering.
func Input(value, typ string, opts Options) bool {
	if typ == "" {
		typ = "string"
	}

	switch typ {
	case "number":
		n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return false
		}
		return inRange(n, opts)

	case "integer":
		trimmed := strings.TrimSpace(value)
		n, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return false
		}
		// Reject anything that does not survive a round trip: leading
		// zeros, decimals, a redundant plus sign.
		if strconv.FormatInt(n, 10) != trimmed {
			return false
		}
		return inRange(float64(n), opts)

	case "string":
		if opts.Required && strings.TrimSpace(value) == "" {
			return false
		}
		length := utf8.RuneCountInString(value)
		if opts.MinLength != nil && length < *opts.MinLength {
			return false
		}
		if opts.MaxLength != nil && length > *opts.MaxLength {
			return false
		}
		return true

	case "uuid":
		return uuidRe.MatchString(value)

	case "instruction_number":
		return instructionRe.MatchString(value)

	default:
		return true
	}
}

func inRange(n float64, opts Options) bool {
	if opts.Min != nil && n < *opts.Min {
		return false
	}
	if opts.Max != nil && n > *opts.Max {
		return false
	}
	return true
}
