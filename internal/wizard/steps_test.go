package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biisimvar/profile-wizard/internal/types"
)

func TestRelevantEnums(t *testing.T) {
	assert.Empty(t, RelevantEnums(0))
	assert.Equal(t, map[string][]string{"p_gender": GenderOptions}, RelevantEnums(2))
	assert.Equal(t, map[string][]string{"p_benefits": BenefitOptions}, RelevantEnums(5))
	assert.Equal(t, map[string][]string{"p_tip_preference": TipOptions}, RelevantEnums(8))
	assert.Empty(t, RelevantEnums(42))
}

func TestBuildStepInstruction_Salary(t *testing.T) {
	got := BuildStepInstruction(7, "tr", types.FormState{}, 22104, 100000)

	assert.Contains(t, got, "Current STEP = 7")
	assert.Contains(t, got, "22104")
	assert.Contains(t, got, "100000")
	assert.Contains(t, got, "Ben yapay zeka olduğum için bir gelirim yok.")
	assert.NotContains(t, got, "{{.")
}

func TestBuildStepInstruction_EnumStep(t *testing.T) {
	got := BuildStepInstruction(3, "en", types.FormState{}, 22104, 100000)

	assert.Contains(t, got, `"yarın"`)
	assert.Contains(t, got, "Please choose a clear option")
	assert.Contains(t, got, "Relevant enums for this step:")
}

func TestBuildStepInstruction_BioUsesRedactedForm(t *testing.T) {
	form := types.FormState{
		Name:       strPtr("Ayşe"),
		SalaryMin:  intPtr(40000),
		Experience: strPtr("3 yıl garsonluk"),
	}

	got := BuildStepInstruction(10, "tr", RedactForBio(form), 22104, 100000)

	assert.Contains(t, got, "3 yıl garsonluk")
	assert.NotContains(t, got, "Ayşe")
	assert.NotContains(t, got, "40000")
}

func TestBuildStepInstruction_OutOfRange(t *testing.T) {
	got := BuildStepInstruction(99, "tr", types.FormState{}, 22104, 100000)
	assert.Contains(t, got, "out of configured range")
}

func TestRedactForBio(t *testing.T) {
	form := types.FormState{
		Name:         strPtr("Ayşe"),
		BirthdayYear: strPtr("1995"),
		Gender:       strPtr("kadın"),
		SalaryMin:    intPtr(40000),
		SalaryMax:    intPtr(45000),
		Experience:   strPtr("garsonluk"),
		Attributes:   []string{"titiz"},
	}

	redacted := RedactForBio(form)

	assert.Nil(t, redacted.Name)
	assert.Nil(t, redacted.BirthdayYear)
	assert.Nil(t, redacted.Gender)
	assert.Nil(t, redacted.SalaryMin)
	assert.Nil(t, redacted.SalaryMax)
	require.NotNil(t, redacted.Experience)
	assert.Equal(t, "garsonluk", *redacted.Experience)
	assert.Equal(t, []string{"titiz"}, redacted.Attributes)

	// Original untouched.
	assert.NotNil(t, form.Name)
}

func TestQuestion(t *testing.T) {
	assert.Contains(t, Question("tr", 1), "Doğum yılın")
	assert.Contains(t, Question("en", 1), "year of birth")
	assert.Contains(t, Question("tr", 99), "Tüm soruları tamamladık")
	assert.Contains(t, Question("en", -1), "All questions are completed")
}
