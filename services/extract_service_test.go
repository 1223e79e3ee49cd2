package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCalories(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   int
		wantOK bool
	}{
		{"plain figure", "Total Calories: 250 kcal", 250, true},
		{"no calorie info", "no calorie info", 0, false},
		{"case insensitive", "total calories: 90 KCAL", 90, true},
		{"no space before unit", "around 320kcal per serving", 320, true},
		{"first match wins", "Rice: 200 kcal\nTotal: 550 kcal", 200, true},
		{"digits without unit ignored", "weighs 150 grams", 0, false},
		{"empty text", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractCalories(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractMacros(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   MacroProfile
		wantOK bool
	}{
		{
			name:   "all three labeled",
			text:   "Protein: 30\nCarbs: 20\nFat: 10",
			want:   MacroProfile{Protein: 30, Carbs: 20, Fat: 10},
			wantOK: true,
		},
		{
			name:   "label suffixes",
			text:   "Fats: 12\nCarbohydrates: 45\nProtein: 8",
			want:   MacroProfile{Protein: 8, Carbs: 45, Fat: 12},
			wantOK: true,
		},
		{
			name:   "two of three is not a profile",
			text:   "Protein: 30\nCarbs: 20",
			wantOK: false,
		},
		{
			name:   "fat alone is not a profile",
			text:   "Fat: 9",
			wantOK: false,
		},
		{
			name:   "no macros at all",
			text:   "a tasty looking sandwich",
			wantOK: false,
		},
		{
			name:   "whitespace separators",
			text:   "protein 15 carbs 25 fat 5",
			want:   MacroProfile{Protein: 15, Carbs: 25, Fat: 5},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractMacros(tt.text)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestExtractFullAnalysisText(t *testing.T) {
	text := "Grilled Chicken Salad\n" +
		"Ingredients and Calories: ...\n" +
		"Total Calories: 350 kcal\n" +
		"Macronutrient Profile:\n" +
		"Protein: 30\n" +
		"Carbs: 20\n" +
		"Fat: 10\n" +
		"Fiber: 5 grams"

	cal, ok := ExtractCalories(text)
	require.True(t, ok)
	assert.Equal(t, 350, cal)

	profile, ok := ExtractMacros(text)
	require.True(t, ok)
	assert.Equal(t, MacroProfile{Protein: 30, Carbs: 20, Fat: 10}, profile)
	assert.Equal(t, 60, profile.Total())
}
