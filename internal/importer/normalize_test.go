package importer

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSplitFullName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantFirst string
		wantLast  string
	}{
		{"empty", "", "", ""},
		{"single token", "Jane", "Jane", ""},
		{"two tokens", "Jane Doe", "Jane", "Doe"},
		{"three tokens keep middle in last", "Jane Mary Doe", "Jane", "Mary Doe"},
		{"surrounding whitespace", "  Sarah   Mitchell  ", "Sarah", "Mitchell"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := SplitFullName(tt.input)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantLast, last)
		})
	}
}

func TestFormatAustralianMobile(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"412345678", "0412345678"},
		{"0412345678", "0412345678"},
		{"61412345678", "0412345678"},
		{"+61412345678", "0412345678"},
		{"0412 345 678", "0412345678"},
		{"123", "123"},                   // unrecognized shape passes through
		{"0298765432", "0298765432"},     // landline, untouched
		{"not a number", "not a number"}, // no digits at all
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAustralianMobile(tt.input))
		})
	}
}

func TestYearOfBirthToAge(t *testing.T) {
	currentYear := time.Now().Year()

	assert.Equal(t, strconv.Itoa(currentYear-1990), YearOfBirthToAge("1990"))
	assert.Equal(t, "0", YearOfBirthToAge(strconv.Itoa(currentYear)))
	assert.Equal(t, "", YearOfBirthToAge("1899"))
	assert.Equal(t, "", YearOfBirthToAge(strconv.Itoa(currentYear+1)))
	assert.Equal(t, "", YearOfBirthToAge("abc"))
	assert.Equal(t, "", YearOfBirthToAge(""))
}

func TestYearOfBirthToAgeFixedClock(t *testing.T) {
	assert.Equal(t, "35", yearOfBirthToAge("1990", 2025))
	assert.Equal(t, "125", yearOfBirthToAge("1900", 2025))
	assert.Equal(t, "", yearOfBirthToAge("1899", 2025))
}

func TestParseAustralianDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"standard", "05/03/2024", "2024-03-05"},
		{"no padding needed in input", "5/3/2024", "2024-03-05"},
		{"wrong separator", "2024-03-05", ""},
		{"day out of range", "32/01/2024", ""},
		{"month out of range", "01/13/2024", ""},
		{"two parts only", "05/2024", ""},
		{"non-numeric", "aa/bb/cccc", ""},
		{"day month not cross validated", "31/02/2024", "2024-02-31"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAustralianDate(tt.input))
		})
	}
}
