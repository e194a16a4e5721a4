package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectColumnTypes(t *testing.T) {
	t.Run("full names", func(t *testing.T) {
		scores := DetectColumnTypes([]string{"Sarah Mitchell", "Tom Harris", "Priya Patel"})
		assert.Equal(t, 1.0, scores[FieldFullName])
	})

	t.Run("mobiles with mixed formatting", func(t *testing.T) {
		scores := DetectColumnTypes([]string{"0412 345 678", "+61498765432", "412111222"})
		assert.Equal(t, 1.0, scores[FieldPhoneNumber])
	})

	t.Run("years of birth", func(t *testing.T) {
		scores := DetectColumnTypes([]string{"1989", "2001", "1975"})
		assert.Equal(t, 1.0, scores[FieldYearOfBirth])
	})

	t.Run("slash dates score join date", func(t *testing.T) {
		scores := DetectColumnTypes([]string{"01/02/2024", "15/11/2023"})
		assert.Equal(t, 1.0, scores[FieldJoinDate])
	})

	t.Run("lead source vocabulary", func(t *testing.T) {
		scores := DetectColumnTypes([]string{"6 Week Pack", "New Joiner", "Referral"})
		assert.Equal(t, 1.0, scores[FieldLeadType])
	})

	t.Run("partial match scores fraction of non-empty", func(t *testing.T) {
		scores := DetectColumnTypes([]string{"Sarah Mitchell", "x", "", "Tom Harris"})
		// 2 of 3 non-empty samples look like names.
		assert.InDelta(t, 2.0/3.0, scores[FieldFullName], 1e-9)
	})

	t.Run("empty column yields no scores", func(t *testing.T) {
		assert.Empty(t, DetectColumnTypes([]string{"", "  ", ""}))
		assert.Empty(t, DetectColumnTypes(nil))
	})

	t.Run("zero scores are omitted", func(t *testing.T) {
		scores := DetectColumnTypes([]string{"1989"})
		_, hasName := scores[FieldFullName]
		assert.False(t, hasName)
	})
}
