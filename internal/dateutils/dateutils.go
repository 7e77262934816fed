// Package dateutils provides the date operations used to normalize statement
// fields: loose date parsing, statement periods and year inference for
// month/day line items.
package dateutils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"fjacquet/tdstatement/internal/logging"
)

var log logging.Logger = logging.NewLogrusAdapter("info", "json")

// SetLogger sets a custom logger for this package
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// Common date layouts used throughout the application
const (
	DateLayoutISO           = "2006-01-02"
	DateLayoutUS            = "1/2/2006"
	DateLayoutUSShortYear   = "1/2/06"
	DateLayoutMonthDayYear  = "Jan 2 2006"
	DateLayoutAuthorization = "010206"
)

// CommonFormats is the ordered list of layouts ParseDate tries after the
// input has been cleaned. Month names match case-insensitively.
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutUS,
	DateLayoutUSShortYear,
	DateLayoutMonthDayYear,
	"January 2 2006",
	"Jan 2/2006",
	"January 2/2006",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2006",
	"01/2006",
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	// "Mar 14 /2024" or "Mar. 14" style punctuation left over by layout text
	punctuationRe = regexp.MustCompile(`([A-Za-z])\.`)
)

// CleanDateString trims the input, drops commas and trailing periods after
// month abbreviations and collapses runs of whitespace.
func CleanDateString(dateStr string) string {
	dateStr = strings.ReplaceAll(dateStr, ",", " ")
	dateStr = punctuationRe.ReplaceAllString(dateStr, "$1")
	dateStr = whitespaceRe.ReplaceAllString(dateStr, " ")
	dateStr = strings.ReplaceAll(dateStr, " /", "/")
	return strings.TrimSpace(dateStr)
}

// ParseDate parses a loosely formatted date such as "Mar 01 2024",
// "February 16, 2024" or "03/14/2024". It returns the detected layout.
func ParseDate(dateStr string) (time.Time, string, error) {
	cleaned := CleanDateString(dateStr)
	if cleaned == "" {
		return time.Time{}, "", fmt.Errorf("unable to parse empty date")
	}

	for _, layout := range CommonFormats {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t, layout, nil
		}
	}

	log.Debug("No date layout matched", logging.Field{Key: logging.FieldValue, Value: dateStr})
	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// ParseAuthorizationDate parses the six digit MMDDYY authorization stamp
// found in card transaction descriptions.
func ParseAuthorizationDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) != 6 {
		return time.Time{}, fmt.Errorf("authorization date %q must have 6 digits", s)
	}
	if _, err := strconv.Atoi(s); err != nil {
		return time.Time{}, fmt.Errorf("authorization date %q is not numeric", s)
	}
	return time.Parse(DateLayoutAuthorization, s)
}

// Truncate drops the clock part of t and moves it to UTC.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// CompareDates compares two dates ignoring the time of day and returns -1,
// 0 or 1.
func CompareDates(date1, date2 time.Time) int {
	date1 = Truncate(date1)
	date2 = Truncate(date2)

	if date1.Before(date2) {
		return -1
	} else if date1.After(date2) {
		return 1
	}
	return 0
}
