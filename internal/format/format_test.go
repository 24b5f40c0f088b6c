package format_test

import (
	"testing"
	"time"

	"github.com/levelup-marketers/client-dashboard-service/internal/catalog"
	"github.com/levelup-marketers/client-dashboard-service/internal/format"
	"github.com/stretchr/testify/require"
)

func TestCurrency(t *testing.T) {
	cases := map[string]string{
		"1234.5":     "$1,234.50",
		"0":          "$0.00",
		"2000":       "$2,000.00",
		"1234567.89": "$1,234,567.89",
		"-99.9":      "-$99.90",
		"$2,000":     "$2,000.00",
		"  abc  ":    "abc",
	}
	for in, want := range cases {
		require.Equal(t, want, format.Currency(in), "input %q", in)
	}
}

func TestCurrency_Idempotent(t *testing.T) {
	once := format.Currency("1234.5")
	require.Equal(t, once, format.Currency(once))
}

func TestSupportTime(t *testing.T) {
	cases := map[string]string{
		"1":    "1 Hour",
		"1.0":  "1 Hour",
		"2":    "2 Hours",
		"1.5":  "1.5 Hours",
		"2.50": "2.5 Hours",
		"0":    "0 Hours",
		"0.25": "0.25 Hours",
		"n/a":  "n/a",
	}
	for in, want := range cases {
		require.Equal(t, want, format.SupportTime(in), "input %q", in)
	}
}

func TestDurationMinutes(t *testing.T) {
	cases := map[string]string{
		"125":  "2 Hours, 5 Minutes",
		"60":   "1 Hour",
		"61":   "1 Hour, 1 Minute",
		"45":   "45 Minutes",
		"1":    "1 Minute",
		"0":    "0 Minutes",
		"-90":  "-1 Hour, 30 Minutes",
		"soon": "soon",
	}
	for in, want := range cases {
		require.Equal(t, want, format.DurationMinutes(in), "input %q", in)
	}
}

func TestHumanizeDate(t *testing.T) {
	cases := map[string]string{
		"0000-00-00":          "TBD",
		"0000-00-00 00:00:00": "TBD",
		"2024-03-05 14:30:00": "3/5/2024 - 2:30 PM",
		"2024-03-05T14:30:00": "3/5/2024 - 2:30 PM",
		"2024-03-05":          "3/5/2024",
		"2024-12-25":          "12/25/2024",
		"14:30":               "2:30 PM",
		"09:05:00":            "9:05 AM",
		"next tuesday":        "next tuesday",
	}
	for in, want := range cases {
		require.Equal(t, want, format.HumanizeDate(in), "input %q", in)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	require.Equal(t, "a b c", format.CollapseWhitespace("  a\n b\t\tc  "))
	require.Equal(t, "", format.CollapseWhitespace("  \n\t "))
	require.Equal(t, "one", format.CollapseWhitespace("one"))
}

func TestObfuscateEmail(t *testing.T) {
	require.Equal(t, "&#97;&#64;&#98;", format.ObfuscateEmail("a@b"))
	require.Equal(t, "", format.ObfuscateEmail(""))
}

func TestPrepareFieldText(t *testing.T) {
	require.Equal(t, "", format.PrepareFieldText(nil))
	require.Equal(t, "hello", format.PrepareFieldText("hello"))
	require.Equal(t, "42", format.PrepareFieldText(42))
	require.Equal(t, "1.5", format.PrepareFieldText(1.5))

	ts := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	require.Equal(t, "2024-03-05 14:30:00", format.PrepareFieldText(ts))
	require.Equal(t, "2024-03-05 14:30:00", format.PrepareFieldText(&ts))
	require.Equal(t, "", format.PrepareFieldText((*time.Time)(nil)))
	require.Equal(t, "", format.PrepareFieldText(time.Time{}))

	require.Equal(t, "", format.PrepareFieldText([]string{"a"}))
	require.Equal(t, "", format.PrepareFieldText(map[string]int{"a": 1}))
}

func TestFieldValue_EmptyPlaceholder(t *testing.T) {
	for _, raw := range []any{nil, "", "   \n\t"} {
		dv := format.FieldValue("company_name", raw, catalog.Field{Kind: catalog.KindText})
		require.True(t, dv.IsEmpty, "raw %v", raw)
		require.Equal(t, format.PlaceholderText, dv.DisplayText)
		require.Equal(t, format.RenderText, dv.Render)
		require.Empty(t, dv.Href)
	}
}

func TestFieldValue_Currency(t *testing.T) {
	dv := format.FieldValue("mrr", 1234.5, catalog.Field{Kind: catalog.KindNumber, IsCurrency: true})
	require.False(t, dv.IsEmpty)
	require.Equal(t, "$1,234.50", dv.DisplayText)
}

func TestFieldValue_SupportTime(t *testing.T) {
	dv := format.FieldValue("monthly_support_time", 1.5, catalog.Field{Kind: catalog.KindNumber})
	require.Equal(t, "1.5 Hours", dv.DisplayText)
}

func TestFieldValue_Duration(t *testing.T) {
	dv := format.FieldValue("duration_minutes", 125, catalog.Field{Kind: catalog.KindNumber})
	require.Equal(t, "2 Hours, 5 Minutes", dv.DisplayText)
}

func TestFieldValue_Datetime(t *testing.T) {
	ts := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	dv := format.FieldValue("creation_datetime", ts, catalog.Field{Kind: catalog.KindDateTime})
	require.Equal(t, "3/5/2024 - 2:30 PM", dv.DisplayText)
}

func TestFieldValue_ZeroDateSentinel(t *testing.T) {
	dv := format.FieldValue("start_date", "0000-00-00", catalog.Field{Kind: catalog.KindDate})
	require.Equal(t, "TBD", dv.DisplayText)
	require.False(t, dv.IsEmpty)
}

func TestFieldValue_URL(t *testing.T) {
	dv := format.FieldValue("live_link", " https://example.com ", catalog.Field{Kind: catalog.KindURL})
	require.Equal(t, format.RenderURL, dv.Render)
	require.Equal(t, "https://example.com", dv.Href)
	require.False(t, dv.AllowsMultiline)
}

func TestFieldValue_Email(t *testing.T) {
	dv := format.FieldValue("email", "a@b", catalog.Field{Kind: catalog.KindEmail})
	require.Equal(t, format.RenderEmail, dv.Render)
	require.Equal(t, "mailto:&#97;&#64;&#98;", dv.Href)
	require.False(t, dv.AllowsMultiline)
}

func TestFieldValue_MultilineCollapse(t *testing.T) {
	dv := format.FieldValue("description", "line one\nline two", catalog.Field{Kind: catalog.KindTextarea})
	require.Equal(t, "line one line two", dv.DisplayText)
	require.Equal(t, "line one\nline two", dv.FullText)
	require.True(t, dv.AllowsMultiline)
}

func TestFieldValue_SingleWordNotMultiline(t *testing.T) {
	dv := format.FieldValue("status", "Completed", catalog.Field{Kind: catalog.KindText})
	require.False(t, dv.AllowsMultiline)
}
