package validators

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// Validator is a named predicate over a class value.
type Validator struct {
	Name  string
	Match func(value string) bool
}

var (
	tshirtUnitRegex    = regexp.MustCompile(`^(\d+(\.\d+)?)?(xs|sm|md|lg|xl)$`)
	lengthUnitRegex    = regexp.MustCompile(`\d+(%|px|r?em|[sdl]?v([hwib]|min|max)|pt|pc|in|cm|mm|cap|ch|ex|r?lh|cq(w|h|i|b|min|max))|\b(calc|min|max|clamp)\(.+\)|^0$`)
	colorFunctionRegex = regexp.MustCompile(`^(rgba?|hsla?|hwb|(ok)?(lab|lch))\(.+\)$`)
	shadowRegex        = regexp.MustCompile(`^(inset_)?-?((\d+)?\.?(\d+)[a-z]+|0)_-?((\d+)?\.?(\d+)[a-z]+|0)`)
	imageRegex         = regexp.MustCompile(`^(url|image|image-set|cross-fade|element|(repeating-)?(linear|radial|conic)-gradient)\(.+\)$`)
)

// Built-in validators.
var (
	Any               = Validator{Name: "any", Match: func(string) bool { return true }}
	Never             = Validator{Name: "never", Match: func(string) bool { return false }}
	Number            = Validator{Name: "number", Match: IsNumber}
	Integer           = Validator{Name: "integer", Match: IsInteger}
	Percent           = Validator{Name: "percent", Match: IsPercent}
	Length            = Validator{Name: "length", Match: IsLength}
	Fraction          = Validator{Name: "fraction", Match: IsFraction}
	TshirtSize        = Validator{Name: "tshirt", Match: IsTshirtSize}
	ArbitraryValue    = Validator{Name: "arbitrary-value", Match: IsArbitraryValue}
	ArbitraryLength   = Validator{Name: "arbitrary-length", Match: IsArbitraryLength}
	ArbitraryNumber   = Validator{Name: "arbitrary-number", Match: IsArbitraryNumber}
	ArbitrarySize     = Validator{Name: "arbitrary-size", Match: IsArbitrarySize}
	ArbitraryPosition = Validator{Name: "arbitrary-position", Match: IsArbitraryPosition}
	ArbitraryImage    = Validator{Name: "arbitrary-image", Match: IsArbitraryImage}
	ArbitraryShadow   = Validator{Name: "arbitrary-shadow", Match: IsArbitraryShadow}
	ArbitraryColor    = Validator{Name: "arbitrary-color", Match: IsArbitraryColor}
)

// IsNumber reports whether value is a plain decimal number ("4", "0.5", "-2", "1e3").
func IsNumber(value string) bool {
	_, ok := parseNumber(value)
	return ok
}

// IsInteger reports whether value is a number without a fractional part.
func IsInteger(value string) bool {
	f, ok := parseNumber(value)
	return ok && f == math.Trunc(f)
}

// IsPercent reports whether value is a number followed by "%".
func IsPercent(value string) bool {
	return strings.HasSuffix(value, "%") && IsNumber(value[:len(value)-1])
}

// IsFraction reports whether value has the shape "<digits>/<digits>".
func IsFraction(value string) bool {
	num, den, ok := strings.Cut(value, "/")
	return ok && isDigits(num) && isDigits(den)
}

// IsLength accepts the theme length scale: numbers, px, full, screen and fractions.
func IsLength(value string) bool {
	switch value {
	case "px", "full", "screen":
		return true
	}
	return IsNumber(value) || IsFraction(value)
}

// IsTshirtSize accepts xs..xl with an optional numeric multiplier (2xl, 7xl).
func IsTshirtSize(value string) bool {
	return tshirtUnitRegex.MatchString(value)
}

// IsArbitraryValue accepts any non-empty bracketed value.
func IsArbitraryValue(value string) bool {
	_, _, ok := splitArbitrary(value)
	return ok
}

// IsArbitraryLength accepts [10px], [calc(100%-1rem)] and [length:...].
func IsArbitraryLength(value string) bool {
	return matchArbitrary(value, isLengthOnly, "length")
}

// IsArbitraryNumber accepts [0.5] and [number:...].
func IsArbitraryNumber(value string) bool {
	return matchArbitrary(value, IsNumber, "number")
}

// IsArbitrarySize accepts only explicitly labelled sizes: [length:..], [size:..], [percentage:..].
func IsArbitrarySize(value string) bool {
	return matchArbitrary(value, never, "length", "size", "percentage")
}

// IsArbitraryPosition accepts only [position:...].
func IsArbitraryPosition(value string) bool {
	return matchArbitrary(value, never, "position")
}

// IsArbitraryImage accepts [url(...)], gradients and [image:..]/[url:..].
func IsArbitraryImage(value string) bool {
	return matchArbitrary(value, imageRegex.MatchString, "image", "url")
}

// IsArbitraryShadow accepts unlabelled shadow shapes such as [0_35px_60px_-15px_rgba(0,0,0,0.3)].
func IsArbitraryShadow(value string) bool {
	return matchArbitrary(value, shadowRegex.MatchString)
}

// IsArbitraryColor accepts [color:..] and bracketed values that parse as a CSS color.
// Underscores stand for spaces inside arbitrary values.
func IsArbitraryColor(value string) bool {
	return matchArbitrary(value, isColor, "color")
}

func isColor(value string) bool {
	if strings.Contains(value, "_") {
		value = strings.ReplaceAll(value, "_", " ")
	}
	_, err := csscolorparser.Parse(value)
	return err == nil
}

func isLengthOnly(value string) bool {
	return lengthUnitRegex.MatchString(value) && !colorFunctionRegex.MatchString(value)
}

func never(string) bool { return false }

// matchArbitrary checks a bracketed value. A type hint must be one of labels;
// an unlabelled value is handed to test.
func matchArbitrary(value string, test func(string) bool, labels ...string) bool {
	label, content, ok := splitArbitrary(value)
	if !ok {
		return false
	}
	if label != "" {
		for _, l := range labels {
			if strings.EqualFold(l, label) {
				return true
			}
		}
		return false
	}
	return test(content)
}

// splitArbitrary splits "[label:content]" into its parts without allocating.
func splitArbitrary(value string) (label, content string, ok bool) {
	if len(value) < 3 || value[0] != '[' || value[len(value)-1] != ']' {
		return "", "", false
	}
	inner := value[1 : len(value)-1]

	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c == ':' {
			if i > 0 && i < len(inner)-1 {
				return inner[:i], inner[i+1:], true
			}
			break
		}
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '-') {
			break
		}
	}
	return "", inner, true
}

// parseNumber guards strconv.ParseFloat with a cheap character scan so that
// non-numeric values are rejected without building an error value.
func parseNumber(value string) (float64, bool) {
	if value == "" {
		return 0, false
	}
	digits := false
	for i := 0; i < len(value); i++ {
		switch c := value[i]; {
		case c >= '0' && c <= '9':
			digits = true
		case c == '.' || c == '-' || c == '+' || c == 'e' || c == 'E':
		default:
			return 0, false
		}
	}
	if !digits {
		return 0, false
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
