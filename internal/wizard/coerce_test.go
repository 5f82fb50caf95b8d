package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biisimvar/profile-wizard/internal/types"
)

func TestCoerceNumber(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want *int
	}{
		{"plain number", float64(40000), intPtr(40000)},
		{"string with separators", "40.000", intPtr(40000)},
		{"string with currency", "45000 TL", intPtr(45000)},
		{"string with comma", "22,104", intPtr(22104)},
		{"negative rejected", float64(-5), nil},
		{"empty string", "", nil},
		{"no digits", "çok para", nil},
		{"nil", nil, nil},
		{"bool rejected", true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoerceNumber(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func TestCoerceStringArray(t *testing.T) {
	got := CoerceStringArray([]any{" sabah ", "", "akşam", 42, nil})
	assert.Equal(t, []string{"sabah", "akşam"}, got)

	assert.Empty(t, CoerceStringArray("not an array"))
	assert.Empty(t, CoerceStringArray(nil))
}

func TestCoerceEnum(t *testing.T) {
	v, ok := CoerceEnum("KADIN", GenderOptions)
	require.True(t, ok)
	assert.Equal(t, "kadın", v)

	v, ok = CoerceEnum("  Yarın ", StartDayOptions)
	require.True(t, ok)
	assert.Equal(t, "yarın", v)

	// Diacritic-free spelling still matches the canonical option.
	v, ok = CoerceEnum("bahsis yok", TipOptions)
	require.True(t, ok)
	assert.Equal(t, "bahşiş yok", v)

	_, ok = CoerceEnum("belki", GenderOptions)
	assert.False(t, ok)

	_, ok = CoerceEnum(3, GenderOptions)
	assert.False(t, ok)
}

func TestFilterInsurance(t *testing.T) {
	got := FilterInsurance([]string{"yemek", "sigorta", "SGK primi", "ulaşım"})
	assert.Equal(t, []string{"yemek", "ulaşım"}, got)
}

func TestApplyUpdates_CoercesAndDrops(t *testing.T) {
	form := types.FormState{}
	ApplyUpdates(&form, map[string]any{
		"p_name":           "  Ali Veli ",
		"p_birthday_year":  "1990",
		"p_gender":         "ERKEK",
		"p_start_day":      "hemen",
		"p_salary_min":     "40.000",
		"p_salary_max":     float64(45000),
		"p_benefits":       []any{"yemek", "sigorta"},
		"p_shift_prefs":    []any{"sabah", " akşam "},
		"p_unknown_field":  "ignored",
		"p_tip_preference": "ORTAK BAHŞİŞ",
	})

	require.NotNil(t, form.Name)
	assert.Equal(t, "Ali Veli", *form.Name)
	require.NotNil(t, form.BirthdayYear)
	assert.Equal(t, "1990", *form.BirthdayYear)
	require.NotNil(t, form.Gender)
	assert.Equal(t, "erkek", *form.Gender)
	assert.Nil(t, form.StartDay, "non-matching enum value dropped")
	assert.Equal(t, 40000, *form.SalaryMin)
	assert.Equal(t, 45000, *form.SalaryMax)
	assert.Equal(t, []string{"yemek"}, form.Benefits, "insurance never stored")
	assert.Equal(t, []string{"sabah", "akşam"}, form.ShiftPrefs)
	require.NotNil(t, form.TipPreference)
	assert.Equal(t, "ortak bahşiş", *form.TipPreference)
}

func TestApplyUpdates_NumericYearStoredAsDigits(t *testing.T) {
	form := types.FormState{}
	ApplyUpdates(&form, map[string]any{"p_birthday_year": float64(1986)})

	require.NotNil(t, form.BirthdayYear)
	assert.Equal(t, "1986", *form.BirthdayYear)
}

func TestApplyUpdates_NullClearsField(t *testing.T) {
	form := types.FormState{SalaryMin: intPtr(40000), SalaryMax: intPtr(45000)}
	ApplyUpdates(&form, map[string]any{
		"p_salary_min": nil,
		"p_salary_max": nil,
	})

	assert.Nil(t, form.SalaryMin)
	assert.Nil(t, form.SalaryMax)
}
