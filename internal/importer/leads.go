package importer

import (
	"sort"
	"strings"
)

// DraftLead is a normalized, not-yet-persisted lead record built from one
// pasted row. Field names match the upload payload wire format.
type DraftLead struct {
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Age         string `json:"age,omitempty"`
	Birthday    string `json:"birthday,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	YearOfBirth string `json:"yearOfBirth,omitempty"`
	Gender      string `json:"gender,omitempty"`
	Goals       string `json:"goals,omitempty"`
	LeadType    string `json:"leadType,omitempty"`
	JoinDate    string `json:"joinDate,omitempty"`
}

// IsValid reports whether the draft is worth importing: at least one of
// first name, last name, email or phone number is non-empty after trimming.
func (d *DraftLead) IsValid() bool {
	return strings.TrimSpace(d.FirstName) != "" ||
		strings.TrimSpace(d.LastName) != "" ||
		strings.TrimSpace(d.Email) != "" ||
		strings.TrimSpace(d.PhoneNumber) != ""
}

func (d *DraftLead) HasName() bool {
	return strings.TrimSpace(d.FirstName) != "" || strings.TrimSpace(d.LastName) != ""
}

func (d *DraftLead) HasContactInfo() bool {
	return strings.TrimSpace(d.Email) != "" || strings.TrimSpace(d.PhoneNumber) != ""
}

// BuildLeads applies a column mapping to the parsed grid and produces one
// draft lead per row. A mapped column is honoured only if at least one row
// in the whole grid has a value in it, so an entirely blank column never
// persists a field. Assignment is an explicit switch over the closed field
// set; fullName expands before the per-field columns apply, and a year of
// birth derives the age only when no age column already set it.
func BuildLeads(rows [][]string, mapping Mapping) []DraftLead {
	liveColumns := columnsWithValues(rows, mapping)

	// Stable column order so overlapping assignments resolve the same way
	// every time.
	cols := make([]int, 0, len(liveColumns))
	for col := range liveColumns {
		cols = append(cols, col)
	}
	sort.Ints(cols)

	leads := make([]DraftLead, 0, len(rows))
	for _, row := range rows {
		var d DraftLead

		for _, col := range cols {
			if mapping[col] != FieldFullName || col >= len(row) {
				continue
			}
			d.FirstName, d.LastName = SplitFullName(row[col])
		}

		for _, col := range cols {
			if col >= len(row) {
				continue
			}
			val := strings.TrimSpace(row[col])
			switch mapping[col] {
			case FieldFullName:
				// Already expanded above.
			case FieldFirstName:
				d.FirstName = val
			case FieldLastName:
				d.LastName = val
			case FieldEmail:
				d.Email = val
			case FieldPhoneNumber:
				d.PhoneNumber = FormatAustralianMobile(val)
			case FieldAge:
				d.Age = val
			case FieldBirthday:
				d.Birthday = val
			case FieldDateOfBirth:
				d.DateOfBirth = ParseAustralianDate(val)
			case FieldJoinDate:
				d.JoinDate = ParseAustralianDate(val)
			case FieldYearOfBirth:
				d.YearOfBirth = val
			case FieldGender:
				d.Gender = val
			case FieldGoals:
				d.Goals = val
			case FieldLeadType:
				d.LeadType = val
			}
		}

		if d.Age == "" && d.YearOfBirth != "" {
			d.Age = YearOfBirthToAge(d.YearOfBirth)
		}

		leads = append(leads, d)
	}
	return leads
}

// Clean re-runs the normalizers over a draft that arrived over the wire, so
// the server never trusts client-side normalization.
func (d DraftLead) Clean() DraftLead {
	d.FirstName = strings.TrimSpace(d.FirstName)
	d.LastName = strings.TrimSpace(d.LastName)
	d.Email = strings.TrimSpace(d.Email)
	d.PhoneNumber = FormatAustralianMobile(strings.TrimSpace(d.PhoneNumber))
	d.Age = strings.TrimSpace(d.Age)
	d.Birthday = strings.TrimSpace(d.Birthday)
	d.DateOfBirth = strings.TrimSpace(d.DateOfBirth)
	d.YearOfBirth = strings.TrimSpace(d.YearOfBirth)
	d.Gender = strings.TrimSpace(d.Gender)
	d.Goals = strings.TrimSpace(d.Goals)
	d.LeadType = strings.TrimSpace(d.LeadType)
	d.JoinDate = strings.TrimSpace(d.JoinDate)
	if d.Age == "" && d.YearOfBirth != "" {
		d.Age = YearOfBirthToAge(d.YearOfBirth)
	}
	return d
}

func columnsWithValues(rows [][]string, mapping Mapping) map[int]bool {
	live := make(map[int]bool, len(mapping))
	for col, field := range mapping {
		if !IsValidField(field) {
			continue
		}
		for _, row := range rows {
			if col < len(row) && strings.TrimSpace(row[col]) != "" {
				live[col] = true
				break
			}
		}
	}
	return live
}
