package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/biisimvar/profile-wizard/internal/types"
)

const (
	testMinSalary = 22104
	testMaxSalary = 100000
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func completeForm() types.FormState {
	return types.FormState{
		Name:          strPtr("Ayşe Yılmaz"),
		BirthdayYear:  strPtr("1995"),
		Gender:        strPtr("kadın"),
		StartDay:      strPtr("yarın"),
		ShiftPrefs:    []string{"sabah"},
		Benefits:      []string{"yemek"},
		Attributes:    []string{"titiz"},
		SalaryMin:     intPtr(40000),
		SalaryMax:     intPtr(45000),
		TipPreference: strPtr("ortak bahşiş"),
		Experience:    strPtr("3 yıl garsonluk yaptım."),
		Bio:           strPtr("Hizmet sektöründe çalıştım. Sipariş aldım. Servis yaptım."),
	}
}

func TestComputeNextStep_EmptyFormStartsAtZero(t *testing.T) {
	next, finished := ComputeNextStep(types.FormState{}, testMinSalary, testMaxSalary)
	assert.Equal(t, 0, next)
	assert.False(t, finished)
}

func TestComputeNextStep_Finished(t *testing.T) {
	next, finished := ComputeNextStep(completeForm(), testMinSalary, testMaxSalary)
	assert.Equal(t, len(StepFields), next)
	assert.True(t, finished)
}

func TestComputeNextStep_FirstGapWins(t *testing.T) {
	form := completeForm()
	form.Gender = nil
	form.Experience = nil

	next, finished := ComputeNextStep(form, testMinSalary, testMaxSalary)
	assert.Equal(t, 2, next)
	assert.False(t, finished)
}

func TestComputeNextStep_EmptyStringIncomplete(t *testing.T) {
	form := completeForm()
	form.Name = strPtr("   ")

	next, _ := ComputeNextStep(form, testMinSalary, testMaxSalary)
	assert.Equal(t, 0, next)
}

func TestComputeNextStep_EmptyMultiSelectArraysComplete(t *testing.T) {
	form := completeForm()
	form.ShiftPrefs = []string{}
	form.Benefits = []string{}
	form.Attributes = []string{}

	_, finished := ComputeNextStep(form, testMinSalary, testMaxSalary)
	assert.True(t, finished)
}

func TestComputeNextStep_NilMultiSelectIncomplete(t *testing.T) {
	form := completeForm()
	form.Benefits = nil

	next, _ := ComputeNextStep(form, testMinSalary, testMaxSalary)
	assert.Equal(t, 5, next)
}

func TestComputeNextStep_SalaryRules(t *testing.T) {
	salaryStep := 7

	tests := []struct {
		name     string
		min, max *int
		complete bool
	}{
		{"both in range", intPtr(40000), intPtr(45000), true},
		{"equal bounds", intPtr(30000), intPtr(30000), true},
		{"min missing", nil, intPtr(45000), false},
		{"max missing", intPtr(40000), nil, false},
		{"min below floor", intPtr(10000), intPtr(45000), false},
		{"max above ceiling", intPtr(40000), intPtr(5000000), false},
		{"inverted", intPtr(45000), intPtr(40000), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := completeForm()
			form.SalaryMin = tt.min
			form.SalaryMax = tt.max

			next, finished := ComputeNextStep(form, testMinSalary, testMaxSalary)
			if tt.complete {
				assert.True(t, finished)
			} else {
				assert.Equal(t, salaryStep, next)
				assert.False(t, finished)
			}
		})
	}
}

func TestStepFields_Order(t *testing.T) {
	assert.Equal(t, []string{
		"p_name", "p_birthday_year", "p_gender", "p_start_day",
		"p_shift_prefs", "p_benefits", "p_attributes", "p_salary_min",
		"p_tip_preference", "p_experience", "p_bio",
	}, StepFields)
}
