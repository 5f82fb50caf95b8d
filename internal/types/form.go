package types

// FormState is the jobseeker profile being filled in across wizard steps.
// Pointer and slice fields keep the distinction between "never answered"
// (null) and "answered with nothing" (empty), which the step completion
// rules depend on. Field names stay in Turkish-profile form on the wire.
// BirthdayYear is a digit string ("1986"), matching how callers store it.
type FormState struct {
	Name          *string  `json:"p_name"`
	BirthdayYear  *string  `json:"p_birthday_year"`
	Gender        *string  `json:"p_gender"`
	StartDay      *string  `json:"p_start_day"`
	ShiftPrefs    []string `json:"p_shift_prefs"`
	Benefits      []string `json:"p_benefits"`
	Attributes    []string `json:"p_attributes"`
	SalaryMin     *int     `json:"p_salary_min"`
	SalaryMax     *int     `json:"p_salary_max"`
	TipPreference *string  `json:"p_tip_preference"`
	Experience    *string  `json:"p_experience"`
	Bio           *string  `json:"p_bio"`
	Interests     []string `json:"p_interests"`
}

// Clone returns a deep copy so step processing never mutates the caller's
// view of the form.
func (f FormState) Clone() FormState {
	out := f
	out.Name = clonePtr(f.Name)
	out.BirthdayYear = clonePtr(f.BirthdayYear)
	out.Gender = clonePtr(f.Gender)
	out.StartDay = clonePtr(f.StartDay)
	out.ShiftPrefs = cloneSlice(f.ShiftPrefs)
	out.Benefits = cloneSlice(f.Benefits)
	out.Attributes = cloneSlice(f.Attributes)
	out.SalaryMin = clonePtr(f.SalaryMin)
	out.SalaryMax = clonePtr(f.SalaryMax)
	out.TipPreference = clonePtr(f.TipPreference)
	out.Experience = clonePtr(f.Experience)
	out.Bio = clonePtr(f.Bio)
	out.Interests = cloneSlice(f.Interests)
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneSlice(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
