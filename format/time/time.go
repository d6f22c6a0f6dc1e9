package time

import (
	"strings"
	"time"

	ftime "github.com/viant/tagly/format/time"
)

const (
	//DateLayout represents canonical date text form
	DateLayout = "2006-01-02"
	//TimestampLayout represents canonical timestamp text form
	TimestampLayout = "2006-01-02 15:04:05.999999999"
)

var detectLayouts = []string{
	time.RFC3339Nano,
	TimestampLayout,
	"2006-01-02T15:04:05.999999999",
	DateLayout,
	time.RFC1123Z,
	time.RFC1123,
}

// LayoutOf returns time layout for supplied go layout or ISO date format, go layout takes precedence
func LayoutOf(timeLayout, dateFormat string) string {
	if timeLayout != "" {
		return timeLayout
	}
	if dateFormat != "" {
		return ftime.DateFormatToTimeLayout(dateFormat)
	}
	return ""
}

// Parse parses value in UTC
func Parse(layout, value string) (time.Time, error) {
	return ParseInLocation(layout, value, time.UTC)
}

// ParseInLocation parses value with supplied layout, if layout is empty it is detected
func ParseInLocation(layout, value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	value = strings.TrimSpace(value)
	if layout != "" {
		return parse(layout, value, loc)
	}
	var err error
	var ts time.Time
	for _, candidate := range detectLayouts {
		if ts, err = time.ParseInLocation(candidate, value, loc); err == nil {
			return ts, nil
		}
	}
	return parse(time.RFC3339, value, loc)
}

// ParseDate parses value and truncates it to calendar day
func ParseDate(layout, value string, loc *time.Location) (time.Time, error) {
	ts, err := ParseInLocation(layout, value, loc)
	if err != nil {
		return ts, err
	}
	return TruncateDay(ts), nil
}

// TruncateDay returns midnight UTC of the time calendar day
func TruncateDay(ts time.Time) time.Time {
	year, month, day := ts.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// AppendDate appends date text form
func AppendDate(dst []byte, ts time.Time) []byte {
	return ts.AppendFormat(dst, DateLayout)
}

// AppendTimestamp appends timestamp text form, empty layout uses TimestampLayout
func AppendTimestamp(dst []byte, ts time.Time, layout string) []byte {
	if layout == "" {
		layout = TimestampLayout
	}
	return ts.AppendFormat(dst, layout)
}

func parse(layout, value string, loc *time.Location) (time.Time, error) {
	//adjust T fragment
	if strings.Contains(value, "T") != strings.Contains(layout, "T") {
		layout = strings.Replace(layout, "T", " ", 1)
		value = strings.Replace(value, "T", " ", 1)
	}
	ts, err := time.ParseInLocation(layout, value, loc)
	if err == nil {
		return ts, nil
	}
	if len(value) > len(layout) {
		return time.ParseInLocation(layout, value[:len(layout)], loc)
	}
	return time.ParseInLocation(layout[:len(value)], value, loc)
}
