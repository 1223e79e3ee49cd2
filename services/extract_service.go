package services

import (
	"regexp"
	"strconv"
)

// The Gemini response is free text in a loose template; these patterns pull
// the structured bits back out. First match wins, later occurrences are ignored.
var (
	calorieRe = regexp.MustCompile(`(?i)(\d+)\s*kcal`)
	proteinRe = regexp.MustCompile(`(?i)Protein[:\s]+(\d+)`)
	carbRe    = regexp.MustCompile(`(?i)Carb\w*[:\s]+(\d+)`)
	fatRe     = regexp.MustCompile(`(?i)Fat\w*[:\s]+(\d+)`)
)

// MacroProfile holds the macronutrient grams parsed out of an analysis text.
// It is only ever produced fully populated.
type MacroProfile struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

func (p MacroProfile) Total() int {
	return p.Protein + p.Carbs + p.Fat
}

// ExtractCalories returns the first "<digits> kcal" figure in text.
// ok is false when the text carries no kcal figure at all; the caller
// decides its own fallback (history stores 0 in that case).
func ExtractCalories(text string) (int, bool) {
	m := calorieRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ExtractMacros parses the labeled Protein/Carb/Fat integers from text.
// All three must be present somewhere, in any order; if any one is missing
// the whole profile is unavailable. A partial profile is never returned.
func ExtractMacros(text string) (MacroProfile, bool) {
	p := proteinRe.FindStringSubmatch(text)
	c := carbRe.FindStringSubmatch(text)
	f := fatRe.FindStringSubmatch(text)
	if p == nil || c == nil || f == nil {
		return MacroProfile{}, false
	}

	protein, err1 := strconv.Atoi(p[1])
	carbs, err2 := strconv.Atoi(c[1])
	fat, err3 := strconv.Atoi(f[1])
	if err1 != nil || err2 != nil || err3 != nil {
		return MacroProfile{}, false
	}

	return MacroProfile{Protein: protein, Carbs: carbs, Fat: fat}, true
}
