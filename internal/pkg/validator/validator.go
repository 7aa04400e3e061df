package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation ("YYYY-MM-DD")
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Documento validation (Colombian cédula: 6-12 digits)
func IsValidDocumento(documento string) bool {
	return len(documento) >= 6 && len(documento) <= 12 && IsNumeric(documento)
}

var clockTimeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// IsValidClockTime checks a wall-clock "HH:MM" string.
func IsValidClockTime(hm string) bool {
	return clockTimeRegex.MatchString(hm)
}

// ParseClockTime converts "HH:MM" to minutes since midnight.
func ParseClockTime(hm string) (int, error) {
	if !IsValidClockTime(hm) {
		return 0, &ClockTimeError{Value: hm}
	}
	h, _ := strconv.Atoi(hm[:2])
	m, _ := strconv.Atoi(hm[3:])
	return h*60 + m, nil
}

// ClockTimeError reports a malformed "HH:MM" value.
type ClockTimeError struct {
	Value string
}

func (e *ClockTimeError) Error() string {
	return "invalid clock time " + strconv.Quote(e.Value) + ": expected \"HH:MM\""
}

// Shift code validation: 1-10 chars, uppercase letters and digits ("M8", "N12").
var shiftCodeRegex = regexp.MustCompile(`^[A-Z0-9]{1,10}$`)

func IsValidShiftCode(code string) bool {
	return shiftCodeRegex.MatchString(code)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
