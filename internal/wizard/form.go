package wizard

import (
	"strings"

	"github.com/biisimvar/profile-wizard/internal/types"
)

// multiSelectFields may legitimately hold an empty array: the user saw the
// options and chose none.
var multiSelectFields = map[string]bool{
	"p_shift_prefs": true,
	"p_benefits":    true,
	"p_attributes":  true,
}

// ComputeNextStep finds the first incomplete field in step order. A field
// is complete when it holds a non-null, non-empty value; the multi-select
// arrays also count as complete when present but empty. The salary step is
// complete only when both bounds are inside [minSalary, maxSalary] and
// ordered.
func ComputeNextStep(form types.FormState, minSalary, maxSalary int) (nextStep int, finished bool) {
	for i, field := range StepFields {
		switch field {
		case "p_name":
			if emptyString(form.Name) {
				return i, false
			}
		case "p_birthday_year":
			if emptyString(form.BirthdayYear) {
				return i, false
			}
		case "p_gender":
			if emptyString(form.Gender) {
				return i, false
			}
		case "p_start_day":
			if emptyString(form.StartDay) {
				return i, false
			}
		case "p_shift_prefs":
			if incompleteArray(form.ShiftPrefs, field) {
				return i, false
			}
		case "p_benefits":
			if incompleteArray(form.Benefits, field) {
				return i, false
			}
		case "p_attributes":
			if incompleteArray(form.Attributes, field) {
				return i, false
			}
		case "p_salary_min":
			if !salaryComplete(form.SalaryMin, form.SalaryMax, minSalary, maxSalary) {
				return i, false
			}
		case "p_tip_preference":
			if emptyString(form.TipPreference) {
				return i, false
			}
		case "p_experience":
			if emptyString(form.Experience) {
				return i, false
			}
		case "p_bio":
			if emptyString(form.Bio) {
				return i, false
			}
		}
	}
	return len(StepFields), true
}

func emptyString(p *string) bool {
	return p == nil || strings.TrimSpace(*p) == ""
}

func incompleteArray(values []string, field string) bool {
	if values == nil {
		return true
	}
	if len(values) == 0 {
		return !multiSelectFields[field]
	}
	return false
}

func salaryComplete(min, max *int, lo, hi int) bool {
	if min == nil || max == nil {
		return false
	}
	if *min < lo || *min > hi || *max < lo || *max > hi {
		return false
	}
	return *min <= *max
}
