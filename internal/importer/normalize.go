package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// The normalizers below are total: any input they cannot make sense of comes
// back as an empty string (or, for phone numbers, unchanged) rather than an
// error. A bad cell never blocks its row.

// SplitFullName splits "Jane Mary Doe" into first name "Jane" and last name
// "Mary Doe".
func SplitFullName(s string) (firstName, lastName string) {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// FormatAustralianMobile rewrites an Australian mobile number to local
// 04xxxxxxxx form. Recognized digit shapes (after stripping everything
// non-numeric): 9 digits starting 4, 10 digits starting 04, and 11 digits
// starting 614 (with or without a leading +). Anything else passes through
// unchanged.
func FormatAustralianMobile(s string) string {
	digits := stripNonDigits(s)
	switch {
	case len(digits) == 9 && strings.HasPrefix(digits, "4"):
		return "0" + digits
	case len(digits) == 10 && strings.HasPrefix(digits, "04"):
		return digits
	case len(digits) == 11 && strings.HasPrefix(digits, "614"):
		return "0" + digits[2:]
	}
	return s
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// YearOfBirthToAge converts a four-digit birth year into an age string.
// Years outside [1900, current year] give an empty string.
func YearOfBirthToAge(s string) string {
	return yearOfBirthToAge(s, time.Now().Year())
}

func yearOfBirthToAge(s string, currentYear int) string {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || year < 1900 || year > currentYear {
		return ""
	}
	return strconv.Itoa(currentYear - year)
}

// ParseAustralianDate converts DD/MM/YYYY to ISO YYYY-MM-DD. Day and month
// are range-checked individually but not against each other, so 31/02 is
// accepted: the trainer pasted it, the trainer can fix it.
func ParseAustralianDate(s string) string {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return ""
	}
	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return ""
	}
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
