package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownKeys(t *testing.T) {
	ClearCache()

	system, err := Get(WizardFile, "system-parse")
	require.NoError(t, err)
	assert.Contains(t, system, "{{.CurrentField}}")
	assert.Contains(t, system, "step_done")

	fallback, err := Get(MessagesFile, "fallback-tr")
	require.NoError(t, err)
	assert.Contains(t, fallback, "Üzgünüm")

	bioSystem, err := Get(BioFile, "system")
	require.NoError(t, err)
	assert.Contains(t, bioSystem, "Türkçe yazan bir editörsün.")
	assert.Contains(t, bioSystem, "{{.TargetMin}}")
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get(WizardFile, "no-such-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-key")
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("missing.json", "any")
	require.Error(t, err)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet(WizardFile, "definitely-not-here")
	})
}

func TestFormat(t *testing.T) {
	template := "Current STEP = {{.StepIndex}} for field {{.Field}}."
	result := Format(template, map[string]string{
		"StepIndex": "7",
		"Field":     "p_salary_min",
	})
	assert.Equal(t, "Current STEP = 7 for field p_salary_min.", result)
}

func TestFormat_SalaryBounds(t *testing.T) {
	msg := MustGet(MessagesFile, "salary-out-of-range-tr")
	result := Format(msg, map[string]string{
		"MinSalary": "22104",
		"MaxSalary": "100000",
	})
	assert.Contains(t, result, "22104 TL")
	assert.Contains(t, result, "100000 TL")
	assert.NotContains(t, result, "{{.")
}

func TestList(t *testing.T) {
	keys, err := List(WizardFile)
	require.NoError(t, err)
	assert.Contains(t, keys, "system-parse")
	assert.Contains(t, keys, "step-bio-generation")

	var stepKeys int
	for _, k := range keys {
		if strings.HasPrefix(k, "step-") {
			stepKeys++
		}
	}
	// 11 wizard steps plus the out-of-range template.
	assert.Equal(t, 12, stepKeys)
}

func TestClearCache(t *testing.T) {
	_, err := Get(BioFile, "user")
	require.NoError(t, err)
	ClearCache()
	again, err := Get(BioFile, "user")
	require.NoError(t, err)
	assert.Contains(t, again, "{{.RawBio}}")
}
