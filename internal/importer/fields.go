package importer

// Field is a lead attribute a pasted column can be mapped to.
type Field string

const (
	FieldFullName    Field = "fullName"
	FieldFirstName   Field = "firstName"
	FieldLastName    Field = "lastName"
	FieldPhoneNumber Field = "phoneNumber"
	FieldJoinDate    Field = "joinDate"
	FieldYearOfBirth Field = "yearOfBirth"
	FieldDateOfBirth Field = "dateOfBirth"
	FieldAge         Field = "age"
	FieldBirthday    Field = "birthday"
	FieldLeadType    Field = "leadType"
	FieldGender      Field = "gender"
	FieldEmail       Field = "email"
	FieldGoals       Field = "goals"
)

// AllFields is the closed set of mappable fields, in declaration order. The
// order doubles as the final tie-break when auto-map candidates are otherwise
// equal.
var AllFields = []Field{
	FieldFullName,
	FieldFirstName,
	FieldLastName,
	FieldPhoneNumber,
	FieldJoinDate,
	FieldYearOfBirth,
	FieldDateOfBirth,
	FieldAge,
	FieldBirthday,
	FieldLeadType,
	FieldGender,
	FieldEmail,
	FieldGoals,
}

var fieldRank = func() map[Field]int {
	m := make(map[Field]int, len(AllFields))
	for i, f := range AllFields {
		m[f] = i
	}
	return m
}()

func IsValidField(f Field) bool {
	_, ok := fieldRank[f]
	return ok
}

// Mapping assigns a field to a column index. Absent columns are skipped.
type Mapping map[int]Field
