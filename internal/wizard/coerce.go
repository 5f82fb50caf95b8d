package wizard

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/biisimvar/profile-wizard/internal/sanitize"
	"github.com/biisimvar/profile-wizard/internal/types"
)

var nonDigitRe = regexp.MustCompile(`[^\d]`)

// CoerceNumber turns an arbitrary JSON value into a non-negative integer.
// Strings are stripped of currency symbols and separators first. Returns
// nil for anything unusable.
func CoerceNumber(v any) *int {
	switch n := v.(type) {
	case nil:
		return nil
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
			return nil
		}
		i := int(n)
		return &i
	case int:
		if n < 0 {
			return nil
		}
		return &n
	case string:
		s := nonDigitRe.ReplaceAllString(n, "")
		if s == "" {
			return nil
		}
		i, err := strconv.Atoi(s)
		if err != nil {
			return nil
		}
		return &i
	default:
		return nil
	}
}

// CoerceStringArray turns an arbitrary JSON value into a slice of trimmed
// non-empty strings. Non-arrays yield an empty slice.
func CoerceStringArray(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// CoerceEnum matches a value against the allowed list, insensitive to case
// and Turkish diacritics. The canonical allowed spelling is returned.
func CoerceEnum(v any, allowed []string) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	norm := sanitize.Normalize(s)
	for _, option := range allowed {
		if sanitize.Normalize(option) == norm {
			return option, true
		}
	}
	return "", false
}

// FilterInsurance drops benefit entries that mention insurance or social
// security; those are legal requirements, never a selectable benefit.
func FilterInsurance(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if sanitize.MentionsInsurance(v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// ApplyUpdates merges LLM-proposed updates into the form with per-field
// coercion. Unknown keys are dropped; enum values that do not match the
// allowed list are dropped rather than stored.
func ApplyUpdates(form *types.FormState, updates map[string]any) {
	for key, value := range updates {
		switch key {
		case "p_name":
			form.Name = coerceText(value)
		case "p_birthday_year":
			form.BirthdayYear = coerceYear(value)
		case "p_gender":
			if v, ok := CoerceEnum(value, GenderOptions); ok {
				form.Gender = &v
			}
		case "p_start_day":
			if v, ok := CoerceEnum(value, StartDayOptions); ok {
				form.StartDay = &v
			}
		case "p_shift_prefs":
			form.ShiftPrefs = CoerceStringArray(value)
		case "p_benefits":
			form.Benefits = FilterInsurance(CoerceStringArray(value))
		case "p_attributes":
			form.Attributes = CoerceStringArray(value)
		case "p_salary_min":
			form.SalaryMin = CoerceNumber(value)
		case "p_salary_max":
			form.SalaryMax = CoerceNumber(value)
		case "p_tip_preference":
			if v, ok := CoerceEnum(value, TipOptions); ok {
				form.TipPreference = &v
			}
		case "p_experience":
			form.Experience = coerceText(value)
		case "p_bio":
			form.Bio = coerceText(value)
		case "p_interests":
			form.Interests = CoerceStringArray(value)
		}
	}
}

// coerceYear normalizes a birth year to its digit-string form; the model
// may return it as a number or as free text.
func coerceYear(v any) *string {
	n := CoerceNumber(v)
	if n == nil {
		return nil
	}
	s := strconv.Itoa(*n)
	return &s
}

func coerceText(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
