// Package validation provides the field checks entity types run before
// they are admitted into a store.
package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Required reports an error when a mandatory string field is empty.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// Positive reports an error when an integer field is zero or negative.
func Positive(field string, v int) error {
	if v <= 0 {
		return fmt.Errorf("%s must be positive, got %d", field, v)
	}
	return nil
}

// NonNegativeInt reports an error when an integer field is negative.
func NonNegativeInt(field string, v int) error {
	if v < 0 {
		return fmt.Errorf("%s must not be negative, got %d", field, v)
	}
	return nil
}

// NonNegative reports an error when a numeric field is negative.
func NonNegative(field string, v float64) error {
	if v < 0 {
		return fmt.Errorf("%s must not be negative, got %v", field, v)
	}
	return nil
}

// OneOf reports an error when value is not one of the allowed values.
func OneOf(field, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("invalid value %q for %s", value, field)
}

// Date reports an error unless value is a "YYYY-MM-DD" calendar date.
func Date(field, value string) error {
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return fmt.Errorf("%s must be a YYYY-MM-DD date, got %q", field, value)
	}
	return nil
}

// ClockTime reports an error unless value is a 24-hour "HH:MM" string.
func ClockTime(field, value string) error {
	if _, _, err := ParseClock(value); err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	return nil
}

// Time12h reports an error unless value is a 12-hour "H:MM AM/PM" string.
func Time12h(field, value string) error {
	if _, _, err := ParseTime12h(value); err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	return nil
}

// ParseClock parses a 24-hour "HH:MM" wall-clock string.
func ParseClock(value string) (hour, minute int, err error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed clock time %q", value)
	}
	hour, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("malformed clock time %q", value)
	}
	minute, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("malformed clock time %q", value)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("clock time %q out of range", value)
	}
	return hour, minute, nil
}

// ParseTime12h parses a 12-hour "H:MM AM/PM" string into 24-hour parts.
// PM with an hour below 12 adds 12; 12 AM maps to hour 0.
func ParseTime12h(value string) (hour, minute int, err error) {
	fields := strings.Fields(value)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("malformed 12-hour time %q", value)
	}
	ampm := strings.ToUpper(fields[1])
	if ampm != "AM" && ampm != "PM" {
		return 0, 0, fmt.Errorf("malformed 12-hour time %q", value)
	}
	parts := strings.Split(fields[0], ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed 12-hour time %q", value)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed 12-hour time %q", value)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed 12-hour time %q", value)
	}
	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("12-hour time %q out of range", value)
	}
	if ampm == "PM" && hour < 12 {
		hour += 12
	}
	if ampm == "AM" && hour == 12 {
		hour = 0
	}
	return hour, minute, nil
}
