package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategories(t *testing.T) {
	summaries := Categories()
	assert.Len(t, summaries, 12)

	// Display order is fixed.
	assert.Equal(t, "psychologie", summaries[0].Slug)
	assert.Equal(t, "maternite-famille", summaries[11].Slug)

	for _, s := range summaries {
		assert.NotEmpty(t, s.Slug)
		assert.NotEmpty(t, s.Name)
		assert.Greater(t, s.SpecialtiesCount, 0)
	}
}

func TestCategoryBySlug(t *testing.T) {
	category, ok := CategoryBySlug("hypnose")
	assert.True(t, ok)
	assert.Equal(t, "Hypnose & Thérapies brèves", category.Name)
	assert.Contains(t, category.Specialties, "Hypnothérapeute")

	_, ok = CategoryBySlug("does-not-exist")
	assert.False(t, ok)
}

func TestSpecialties(t *testing.T) {
	specialties := Specialties()
	assert.NotEmpty(t, specialties)

	total := 0
	for _, c := range Categories() {
		total += c.SpecialtiesCount
	}
	assert.Len(t, specialties, total)

	// Every specialty carries its category linkage.
	for _, s := range specialties {
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.CategorySlug)
		assert.NotEmpty(t, s.CategoryName)
	}
}

func TestSpecialtyByName(t *testing.T) {
	tests := []struct {
		name           string
		specialty      string
		found          bool
		categorySlug   string
		hasDescription bool
	}{
		{
			name:           "specialty with detail entry",
			specialty:      "Hypnothérapeute",
			found:          true,
			categorySlug:   "hypnose",
			hasDescription: true,
		},
		{
			name:           "specialty without detail entry",
			specialty:      "Acupuncteur",
			found:          true,
			categorySlug:   "medecine-chinoise",
			hasDescription: false,
		},
		{
			name:      "unknown specialty",
			specialty: "Astrologue",
			found:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			specialty, ok := SpecialtyByName(tt.specialty)
			assert.Equal(t, tt.found, ok)
			if !tt.found {
				return
			}
			assert.Equal(t, tt.specialty, specialty.Name)
			assert.Equal(t, tt.categorySlug, specialty.CategorySlug)
			if tt.hasDescription {
				assert.NotEmpty(t, specialty.ShortDescription)
				assert.NotEmpty(t, specialty.FullDescription)
			} else {
				assert.Empty(t, specialty.ShortDescription)
			}
		})
	}
}
