package importer

import (
	"regexp"
	"strings"
)

var (
	fullNamePattern    = regexp.MustCompile(`^[A-Za-z]+\s+[A-Za-z]+`)
	mobilePattern      = regexp.MustCompile(`^(\+?61)?0?4\d{8}$`)
	yearOfBirthPattern = regexp.MustCompile(`^(19|20)\d{2}$`)
	slashDatePattern   = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
)

// leadSourceVocab are the words a gym's lead-source column tends to contain.
var leadSourceVocab = []string{"pack", "joiner", "referral", "trial", "membership", "new", "pt"}

// DetectColumnTypes scores a column's sample values against each detectable
// field. Scores are the fraction of non-empty samples matching, in [0,1];
// only fields scoring above zero appear in the result. A column with no
// non-empty samples yields nothing.
func DetectColumnTypes(samples []string) map[Field]float64 {
	var nonEmpty []string
	for _, s := range samples {
		if strings.TrimSpace(s) != "" {
			nonEmpty = append(nonEmpty, strings.TrimSpace(s))
		}
	}
	if len(nonEmpty) == 0 {
		return nil
	}

	scores := make(map[Field]float64)
	put := func(f Field, matches int) {
		if matches > 0 {
			scores[f] = float64(matches) / float64(len(nonEmpty))
		}
	}

	var names, phones, years, dates, sources int
	for _, v := range nonEmpty {
		if fullNamePattern.MatchString(v) {
			names++
		}
		if mobilePattern.MatchString(whitespacePattern.ReplaceAllString(v, "")) {
			phones++
		}
		if yearOfBirthPattern.MatchString(v) {
			years++
		}
		if slashDatePattern.MatchString(v) {
			dates++
		}
		if matchesLeadSource(v) {
			sources++
		}
	}

	put(FieldFullName, names)
	put(FieldPhoneNumber, phones)
	put(FieldYearOfBirth, years)
	put(FieldJoinDate, dates)
	put(FieldLeadType, sources)
	return scores
}

func matchesLeadSource(v string) bool {
	lower := strings.ToLower(v)
	for _, word := range leadSourceVocab {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
