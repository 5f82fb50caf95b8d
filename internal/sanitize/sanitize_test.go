package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_TurkishDiacritics(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"çok", "cok"},
		{"ÇOK", "cok"},
		{"şerefsiz", "serefsiz"},
		{"ŞEREFSİZ", "serefsiz"},
		{"gerizekalı", "gerizekali"},
		{"GERİZEKALI", "gerizekali"},
		{"öğün", "ogun"},
		{"ÜZÜM", "uzum"},
		{"Istanbul", "istanbul"}, // ASCII I lowers to dotless ı, then folds to i
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Normalize(tt.input), "input %q", tt.input)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"ÇOK güzel", "Şerefsiz", "amk", "Merhaba Dünya", "İYİ"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNormalize_CaseInsensitive(t *testing.T) {
	assert.Equal(t, Normalize("çok"), Normalize("ÇOK"))
	assert.Equal(t, Normalize("piç"), Normalize("PİÇ"))
}

func TestExact_MasksWholeWordKeepsPunctuation(t *testing.T) {
	cleaned, replaced := Exact("Bu amk bir örnek.")

	assert.Equal(t, "Bu *** bir örnek.", cleaned)
	assert.Equal(t, []string{"amk"}, replaced)
}

func TestExact_CasingAndDiacriticVariants(t *testing.T) {
	tests := []string{"AMK", "Amk", "Şerefsiz", "SEREFSIZ", "gerizekali", "GERİZEKALI", "Piç", "PIC"}

	for _, word := range tests {
		cleaned, replaced := Exact("önce " + word + " sonra")
		assert.Equal(t, "önce *** sonra", cleaned, "word %q", word)
		require.Len(t, replaced, 1, "word %q", word)
		assert.Equal(t, word, replaced[0])
	}
}

func TestExact_CleanTextUntouched(t *testing.T) {
	input := "3 yıl restoranda garson olarak çalıştım."
	cleaned, replaced := Exact(input)

	assert.Equal(t, input, cleaned)
	assert.Empty(t, replaced)
}

func TestExact_DistinctSurfaceForms(t *testing.T) {
	_, replaced := Exact("amk amk AMK salak")
	assert.Equal(t, []string{"amk", "AMK", "salak"}, replaced)
}

func TestFuzzy_SeparatorObfuscation(t *testing.T) {
	tests := []string{"a.m.k", "a-m-k", "a m k", "s,i,k", "m.a.l"}

	for _, obfuscated := range tests {
		cleaned, matched := Fuzzy(obfuscated)
		assert.Equal(t, Mask, cleaned, "input %q", obfuscated)
		assert.NotEmpty(t, matched, "input %q", obfuscated)
	}
}

func TestFuzzy_InnocentTextUntouched(t *testing.T) {
	input := "kasap dükkanında çalıştım"
	cleaned, matched := Fuzzy(input)

	assert.Equal(t, input, cleaned)
	assert.Empty(t, matched)
}

func TestClean_BothPasses(t *testing.T) {
	out := Clean("amk ve a.m.k burada")

	assert.NotContains(t, out, "amk")
	assert.NotContains(t, out, "a.m.k")
	assert.Contains(t, out, Mask)
	assert.Contains(t, out, "burada")
}

func TestClean_NeverEmptyOnCleanInput(t *testing.T) {
	input := "Merhaba, ben garsonum."
	assert.Equal(t, input, Clean(input))
}

func TestDetect(t *testing.T) {
	terms := Detect("sen bir salak ve a.m.k adamsın")

	require.NotEmpty(t, terms)
	assert.Contains(t, terms, "salak")

	found := false
	for _, term := range terms {
		if strings.Contains(term, "a") && strings.Contains(term, ".") {
			found = true
		}
	}
	assert.True(t, found, "obfuscated form should be reported: %v", terms)
}

func TestMentionsInsurance(t *testing.T) {
	assert.True(t, MentionsInsurance("sigorta istiyorum"))
	assert.True(t, MentionsInsurance("SİGORTA olacak mı"))
	assert.True(t, MentionsInsurance("sgk primim yatsın"))
	assert.True(t, MentionsInsurance("SGK"))
	assert.False(t, MentionsInsurance("yemek ve ulaşım"))
	assert.False(t, MentionsInsurance(""))
}
