package repository

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSearchQuery_Filters(t *testing.T) {
	tests := []struct {
		name     string
		filter   SearchFilter
		expected bson.M
	}{
		{
			name:     "no filters matches everything",
			filter:   SearchFilter{},
			expected: bson.M{},
		},
		{
			name:   "specialty and city are case-insensitive substring matches",
			filter: SearchFilter{Specialty: "hypno", City: "Paris"},
			expected: bson.M{
				"specialty": primitive.Regex{Pattern: "hypno", Options: "i"},
				"city":      primitive.Regex{Pattern: "Paris", Options: "i"},
			},
		},
		{
			name:     "category is an exact match",
			filter:   SearchFilter{Category: "hypnose"},
			expected: bson.M{"category": "hypnose"},
		},
		{
			name:   "regex metacharacters are escaped",
			filter: SearchFilter{City: "Saint-Denis (93)"},
			expected: bson.M{
				"city": primitive.Regex{Pattern: regexp.QuoteMeta("Saint-Denis (93)"), Options: "i"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, _ := searchQuery(tt.filter)
			assert.Equal(t, tt.expected, query)
		})
	}
}

func TestSearchQuery_CityMatchesSubstring(t *testing.T) {
	// A record with city "paris-sud" must match a city=Paris filter.
	query, _ := searchQuery(SearchFilter{City: "Paris"})

	pattern, ok := query["city"].(primitive.Regex)
	assert.True(t, ok)
	assert.Equal(t, "i", pattern.Options)

	re, err := regexp.Compile("(?i)" + pattern.Pattern)
	assert.NoError(t, err)
	assert.True(t, re.MatchString("paris-sud"))
	assert.True(t, re.MatchString("PARIS"))
	assert.False(t, re.MatchString("Lyon"))
}

func TestSearchQuery_Options(t *testing.T) {
	_, opts := searchQuery(SearchFilter{})

	assert.Equal(t, int64(searchLimit), *opts.Limit)
	assert.Equal(t, bson.M{"_id": 0, "password": 0}, opts.Projection)
	assert.Equal(t, bson.D{{Key: "rating", Value: -1}}, opts.Sort)
}

func TestSortSpec(t *testing.T) {
	tests := []struct {
		name     string
		sortBy   string
		expected bson.D
	}{
		{
			name:     "rating descending by default",
			sortBy:   "",
			expected: bson.D{{Key: "rating", Value: -1}},
		},
		{
			name:     "rating descending",
			sortBy:   "rating",
			expected: bson.D{{Key: "rating", Value: -1}},
		},
		{
			name:     "reviews descending",
			sortBy:   "reviews",
			expected: bson.D{{Key: "reviews_count", Value: -1}},
		},
		{
			name:     "name ascending",
			sortBy:   "name",
			expected: bson.D{{Key: "full_name", Value: 1}},
		},
		{
			name:     "unknown value falls back to rating",
			sortBy:   "bogus",
			expected: bson.D{{Key: "rating", Value: -1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sortSpec(tt.sortBy))
		})
	}
}
