// Package format renders raw record values into display form: currency,
// support time, ticket duration, date humanization, whitespace collapse and
// the empty-value placeholder. Every function is total: any input produces
// a defined string, never a panic.
package format

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/levelup-marketers/client-dashboard-service/internal/catalog"
)

// PlaceholderText is shown in place of an empty value. The renderer pairs
// it with the "not available" glyph.
const PlaceholderText = "Not available"

// RenderKind tells the rendering layer how to wrap the display text.
type RenderKind string

const (
	RenderText  RenderKind = "text"
	RenderURL   RenderKind = "url"
	RenderEmail RenderKind = "email"
)

// DisplayValue is the fully formatted projection of one field.
type DisplayValue struct {
	// DisplayText is single-line, whitespace-collapsed text suitable for
	// truncation. FullText keeps the formatted but uncollapsed form.
	DisplayText     string     `json:"display_text"`
	FullText        string     `json:"full_text,omitempty"`
	IsEmpty         bool       `json:"is_empty"`
	AllowsMultiline bool       `json:"allows_multiline"`
	Render          RenderKind `json:"render"`
	// Href carries the raw (not display-formatted) link target for url
	// fields and the obfuscated mailto target for email fields.
	Href string `json:"href,omitempty"`
}

var currencyFields = map[string]bool{
	"total_one_time_cost": true,
	"mrr":                 true,
	"arr":                 true,
}

var dateFields = map[string]bool{
	"client_since":      true,
	"start_date":        true,
	"end_date":          true,
	"creation_datetime": true,
	"start_time":        true,
	"end_time":          true,
	"created_at":        true,
	"updated_at":        true,
}

// FieldValue runs the full formatting pipeline for one field.
func FieldValue(field string, raw any, meta catalog.Field) DisplayValue {
	text := PrepareFieldText(raw)
	if strings.TrimSpace(text) == "" {
		return DisplayValue{
			DisplayText: PlaceholderText,
			IsEmpty:     true,
			Render:      RenderText,
		}
	}

	formatted := TransformFieldValue(field, text, meta)
	display := CollapseWhitespace(formatted)

	dv := DisplayValue{
		DisplayText:     display,
		FullText:        formatted,
		AllowsMultiline: allowsMultiline(display, meta.Kind),
		Render:          RenderText,
	}
	switch meta.Kind {
	case catalog.KindURL:
		dv.Render = RenderURL
		dv.Href = strings.TrimSpace(text)
	case catalog.KindEmail:
		dv.Render = RenderEmail
		dv.Href = "mailto:" + ObfuscateEmail(strings.TrimSpace(text))
	}
	return dv
}

// TransformFieldValue applies the field-specific value transforms in fixed
// order: currency, support time, duration, date humanization.
func TransformFieldValue(field, text string, meta catalog.Field) string {
	switch {
	case currencyFields[field] || meta.IsCurrency:
		return Currency(text)
	case field == "monthly_support_time":
		return SupportTime(text)
	case field == "duration_minutes":
		return DurationMinutes(text)
	case dateFields[field] || meta.Kind == catalog.KindDate || meta.Kind == catalog.KindDateTime:
		return HumanizeDate(text)
	}
	return text
}

// PrepareFieldText coerces a raw value to a string. Composite values are
// malformed input and coerce to "".
func PrepareFieldText(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format("2006-01-02 15:04:05")
	case *time.Time:
		if v == nil {
			return ""
		}
		return PrepareFieldText(*v)
	case fmt.Stringer:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", v)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case error:
		return v.Error()
	}
	switch reflect.ValueOf(raw).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct, reflect.Chan, reflect.Func:
		return ""
	case reflect.Ptr, reflect.Interface:
		rv := reflect.ValueOf(raw)
		if rv.IsNil() {
			return ""
		}
		return PrepareFieldText(rv.Elem().Interface())
	}
	return fmt.Sprintf("%v", raw)
}

var nonNumericRe = regexp.MustCompile(`[^0-9.\-]`)

// Currency formats a monetary amount as "$1,234.50" with the negative sign
// before the dollar sign. Values that do not reduce to a number pass
// through trimmed and unchanged.
func Currency(text string) string {
	cleaned := nonNumericRe.ReplaceAllString(text, "")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return strings.TrimSpace(text)
	}
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + "$" + groupThousands(strconv.FormatFloat(v, 'f', 2, 64))
}

// groupThousands inserts commas into the integer part of a plain decimal
// string like "1234567.89".
func groupThousands(s string) string {
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	n := len(intPart)
	if n <= 3 {
		if hasFrac {
			return intPart + "." + fracPart
		}
		return intPart
	}
	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}

const hourEpsilon = 1e-9

// SupportTime renders monthly support time (decimal hours) as
// "1 Hour" / "1.5 Hours". Precision is capped at two digits and never
// exceeds the significant fractional digits of the input.
func SupportTime(text string) string {
	trimmed := strings.TrimSpace(text)
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return trimmed
	}
	prec := significantFracDigits(trimmed)
	if prec > 2 {
		prec = 2
	}
	unit := "Hours"
	if diff := v - 1; diff < hourEpsilon && diff > -hourEpsilon {
		unit = "Hour"
	}
	return strconv.FormatFloat(v, 'f', prec, 64) + " " + unit
}

// significantFracDigits counts fractional digits after stripping trailing
// zeros, e.g. "2.50" has one.
func significantFracDigits(s string) int {
	_, frac, ok := strings.Cut(s, ".")
	if !ok {
		return 0
	}
	return len(strings.TrimRight(frac, "0"))
}

// DurationMinutes renders a ticket duration in whole minutes as
// "2 Hours, 5 Minutes". The hour segment is omitted at zero hours, the
// minute segment at zero minutes unless the whole duration is zero. A
// leading "-" survives for negative inputs.
func DurationMinutes(text string) string {
	trimmed := strings.TrimSpace(text)
	total, err := strconv.Atoi(trimmed)
	if err != nil {
		return trimmed
	}
	sign := ""
	if total < 0 {
		sign = "-"
		total = -total
	}
	hours := total / 60
	minutes := total % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, pluralize(hours, "Hour"))
	}
	if minutes > 0 || hours == 0 {
		parts = append(parts, pluralize(minutes, "Minute"))
	}
	return sign + strings.Join(parts, ", ")
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}

var (
	datePatternRe     = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	timePatternRe     = regexp.MustCompile(`\d{1,2}:\d{2}`)
	zeroDatePatternRe = regexp.MustCompile(`^0{4}-0{2}-0{2}([ T]0{2}:0{2}(:0{2})?)?$`)
)

// HumanizeDate renders date/time strings as "3/5/2024 - 2:30 PM",
// "2:30 PM" or "3/5/2024" depending on which components the raw value
// carries. The all-zero MySQL sentinel becomes "TBD"; unparsable strings
// pass through unchanged.
func HumanizeDate(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return trimmed
	}
	if zeroDatePatternRe.MatchString(trimmed) {
		return "TBD"
	}
	hasDate := datePatternRe.MatchString(trimmed)
	hasTime := timePatternRe.MatchString(trimmed)

	switch {
	case hasDate && hasTime:
		for _, layout := range []string{
			"2006-01-02 15:04:05",
			"2006-01-02T15:04:05Z07:00",
			"2006-01-02T15:04:05",
			"2006-01-02 15:04",
			"2006-01-02T15:04",
		} {
			if t, err := time.Parse(layout, trimmed); err == nil {
				return t.Format("1/2/2006 - 3:04 PM")
			}
		}
	case hasDate:
		if t, err := time.Parse("2006-01-02", trimmed); err == nil {
			return t.Format("1/2/2006")
		}
	case hasTime:
		for _, layout := range []string{"15:04:05", "15:04"} {
			if t, err := time.Parse(layout, trimmed); err == nil {
				return t.Format("3:04 PM")
			}
		}
	}
	return trimmed
}

var whitespaceRunRe = regexp.MustCompile(`\s+`)

// CollapseWhitespace folds line breaks and whitespace runs into single
// spaces and trims, producing the truncatable single-line form.
func CollapseWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRunRe.ReplaceAllString(text, " "))
}

// allowsMultiline reports whether a field may wrap instead of being forced
// to a single line.
func allowsMultiline(display string, kind catalog.Kind) bool {
	if kind == catalog.KindURL || kind == catalog.KindEmail {
		return false
	}
	return strings.ContainsAny(display, " \t\n")
}

// ObfuscateEmail encodes every byte of an address as a decimal HTML
// entity, the usual lightweight scraper deterrent.
func ObfuscateEmail(addr string) string {
	var b strings.Builder
	for _, r := range addr {
		fmt.Fprintf(&b, "&#%d;", r)
	}
	return b.String()
}
