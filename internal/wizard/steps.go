// Package wizard implements the multi-step conversational form that
// collects jobseeker profile fields, one LLM-assisted step per request.
package wizard

import (
	"encoding/json"
	"strconv"

	"github.com/biisimvar/profile-wizard/internal/prompts"
	"github.com/biisimvar/profile-wizard/internal/types"
)

// StepKind selects the extraction and validation behavior of a step.
type StepKind string

const (
	KindName          StepKind = "name"
	KindBirthYear     StepKind = "birth_year"
	KindGender        StepKind = "gender"
	KindStartDay      StepKind = "start_day"
	KindShift         StepKind = "shift"
	KindBenefits      StepKind = "benefits"
	KindAttributes    StepKind = "attributes"
	KindSalary        StepKind = "salary"
	KindTip           StepKind = "tip"
	KindExperience    StepKind = "experience"
	KindBioGeneration StepKind = "bio_generation"
)

// Allowed values per enum field. Values stay in Turkish on the wire.
var (
	StartDayOptions  = []string{"yarın", "3 gün içinde", "1 hafta içinde"}
	ShiftOptions     = []string{"sabah", "öğle", "akşam"}
	BenefitOptions   = []string{"yemek", "ulaşım", "özel gün izni"}
	AttributeOptions = []string{
		"insan ilişkileri iyi",
		"sorun çözen",
		"konuşkan",
		"titiz",
		"çabuk öğrenen",
		"zamanında işe gelen",
	}
	GenderOptions = []string{"kadın", "erkek", "belirtmek istemiyorum"}
	TipOptions    = []string{"bahşiş çalışana ait", "ortak bahşiş", "bahşiş yok"}
)

// StepConfig describes one step of the fixed wizard sequence. Instruct
// builds the kind-specific template data for the step's prompt, so each
// kind owns its extraction contract instead of sharing one big switch.
type StepConfig struct {
	Field       string
	Label       string
	Kind        StepKind
	PromptKey   string
	VagueHintTR string
	VagueHintEN string
	Allowed     []string
	Instruct    func(in InstructionInput) map[string]string
}

// InstructionInput carries everything a step may need to render its
// instruction template.
type InstructionInput struct {
	StepIndex     int
	Lang          string
	Form          types.FormState
	MinSalary     int
	MaxSalary     int
	VagueHint     string
	Allowed       []string
	EnumsSnippet  string
	SalaryMessage string
}

// Steps is the ordered wizard sequence. Index == step index.
var Steps = []StepConfig{
	{
		Field: "p_name", Label: "name", Kind: KindName, PromptKey: "step-name",
		Instruct: plainInstruction,
	},
	{
		Field: "p_birthday_year", Label: "birth year", Kind: KindBirthYear, PromptKey: "step-birth-year",
		Instruct: plainInstruction,
	},
	{
		Field: "p_gender", Label: "gender", Kind: KindGender, PromptKey: "step-gender",
		Allowed:     GenderOptions,
		VagueHintTR: "Kadın / erkek / belirtmek istemiyorum arasından birini seçmen gerekiyor.",
		VagueHintEN: "You need to choose one of: female / male / prefer not to say.",
		Instruct:    enumInstruction,
	},
	{
		Field: "p_start_day", Label: "start day", Kind: KindStartDay, PromptKey: "step-start-day",
		Allowed:     StartDayOptions,
		VagueHintTR: "Başlangıç için yarın, 3 gün içinde veya 1 hafta içinde gibi net bir zaman söylemen iyi olur.",
		VagueHintEN: "Please choose a clear option like tomorrow, in 3 days or within 1 week.",
		Instruct:    enumInstruction,
	},
	{
		Field: "p_shift_prefs", Label: "shift preferences", Kind: KindShift, PromptKey: "step-shift",
		Allowed:     ShiftOptions,
		VagueHintTR: "Daha fazla vardiya seçmek sana daha çok ilan gösterebilir, ama son karar senin.",
		VagueHintEN: "Choosing more shifts can show you more jobs, but the final decision is yours.",
		Instruct:    enumInstruction,
	},
	{
		Field: "p_benefits", Label: "benefits", Kind: KindBenefits, PromptKey: "step-benefits",
		Allowed:     BenefitOptions,
		VagueHintTR: "Sana gerçekten önemli olan yan hakları seçmen, eşleşmelerin daha doğru olmasını sağlar.",
		VagueHintEN: "Choosing benefits that really matter to you helps with better matches.",
		Instruct:    enumInstruction,
	},
	{
		Field: "p_attributes", Label: "attributes", Kind: KindAttributes, PromptKey: "step-attributes",
		Allowed:     AttributeOptions,
		VagueHintTR: "Seni en iyi anlatan 2-3 özelliği seçmen, işverenin seni daha iyi tanımasına yardım eder.",
		VagueHintEN: "Picking 2-3 traits that describe you best helps employers understand you.",
		Instruct:    enumInstruction,
	},
	{
		Field: "p_salary_min", Label: "salary expectation", Kind: KindSalary, PromptKey: "step-salary",
		VagueHintTR: "Kabaca bir maaş aralığı söylemen, sana uygun ilanları filtrelememiz için önemli.",
		VagueHintEN: "Giving at least an approximate salary range helps us filter better jobs for you.",
		Instruct:    salaryInstruction,
	},
	{
		Field: "p_tip_preference", Label: "tip preference", Kind: KindTip, PromptKey: "step-tip",
		Allowed:     TipOptions,
		VagueHintTR: "Bahşiş konusunda net olman, iş yeri beklentilerinle uyumu artırır.",
		VagueHintEN: "Being clear about tip policy helps align with workplace expectations.",
		Instruct:    enumInstruction,
	},
	{
		Field: "p_experience", Label: "experience", Kind: KindExperience, PromptKey: "step-experience",
		VagueHintTR: "Kısaca nerede, ne kadar süre çalıştığını yazman yeterli, çok uzun olmasına gerek yok.",
		VagueHintEN: "A short summary of where and how long you worked is enough, no need for long stories.",
		Instruct:    enumInstruction,
	},
	{
		Field: "p_bio", Label: "professional biography", Kind: KindBioGeneration, PromptKey: "step-bio-generation",
		VagueHintTR: "Sana profesyonel bir biyografi hazırlamam için onay vermen gerekiyor. Bu metin işverenlere gösterilecek.",
		VagueHintEN: "You need to approve the creation of your professional biography. This text will be shown to employers.",
		Instruct:    bioInstruction,
	},
}

// StepFields is the ordered field list driving step progression.
var StepFields = func() []string {
	fields := make([]string, len(Steps))
	for i, s := range Steps {
		fields[i] = s.Field
	}
	return fields
}()

// RelevantEnums returns only the enum table the given step needs, keeping
// prompt payloads small.
func RelevantEnums(stepIndex int) map[string][]string {
	if stepIndex < 0 || stepIndex >= len(Steps) {
		return map[string][]string{}
	}
	cfg := Steps[stepIndex]
	switch cfg.Kind {
	case KindGender, KindStartDay, KindShift, KindBenefits, KindAttributes, KindTip:
		return map[string][]string{cfg.Field: cfg.Allowed}
	default:
		return map[string][]string{}
	}
}

func enumsSnippet(stepIndex int) string {
	enums := RelevantEnums(stepIndex)
	if len(enums) == 0 {
		return "This step does not use enums."
	}
	data, _ := json.Marshal(enums)
	return "Relevant enums for this step: " + string(data) + "."
}

func plainInstruction(in InstructionInput) map[string]string {
	return map[string]string{
		"StepIndex":    strconv.Itoa(in.StepIndex),
		"EnumsSnippet": in.EnumsSnippet,
	}
}

func enumInstruction(in InstructionInput) map[string]string {
	allowed, _ := json.Marshal(in.Allowed)
	return map[string]string{
		"StepIndex":    strconv.Itoa(in.StepIndex),
		"Allowed":      string(allowed),
		"VagueHint":    in.VagueHint,
		"EnumsSnippet": in.EnumsSnippet,
	}
}

func salaryInstruction(in InstructionInput) map[string]string {
	return map[string]string{
		"StepIndex":     strconv.Itoa(in.StepIndex),
		"MinSalary":     strconv.Itoa(in.MinSalary),
		"MaxSalary":     strconv.Itoa(in.MaxSalary),
		"LanguageName":  languageName(in.Lang),
		"SalaryMessage": in.SalaryMessage,
		"VagueHint":     in.VagueHint,
		"EnumsSnippet":  in.EnumsSnippet,
	}
}

func bioInstruction(in InstructionInput) map[string]string {
	form, _ := json.MarshalIndent(RedactForBio(in.Form), "", "  ")
	return map[string]string{
		"StepIndex": strconv.Itoa(in.StepIndex),
		"FormState": string(form),
	}
}

// BuildStepInstruction renders the kind-specific instruction for a step.
// Out-of-range indices get the no-op instruction.
func BuildStepInstruction(stepIndex int, lang string, form types.FormState, minSalary, maxSalary int) string {
	if stepIndex < 0 || stepIndex >= len(Steps) {
		return prompts.MustGet(prompts.WizardFile, "step-out-of-range")
	}

	cfg := Steps[stepIndex]
	in := InstructionInput{
		StepIndex:     stepIndex,
		Lang:          lang,
		Form:          form,
		MinSalary:     minSalary,
		MaxSalary:     maxSalary,
		VagueHint:     cfg.vagueHint(lang),
		Allowed:       cfg.Allowed,
		EnumsSnippet:  enumsSnippet(stepIndex),
		SalaryMessage: message("salary-fixed", lang),
	}

	template := prompts.MustGet(prompts.WizardFile, cfg.PromptKey)
	return prompts.Format(template, cfg.Instruct(in))
}

// RedactForBio strips the fields the biography must never see.
func RedactForBio(form types.FormState) types.FormState {
	out := form.Clone()
	out.Name = nil
	out.BirthdayYear = nil
	out.Gender = nil
	out.SalaryMin = nil
	out.SalaryMax = nil
	return out
}

func (c StepConfig) vagueHint(lang string) string {
	if lang == "en" {
		return c.VagueHintEN
	}
	return c.VagueHintTR
}

func languageName(lang string) string {
	if lang == "en" {
		return "English"
	}
	return "Turkish"
}

// message fetches a localized fixed message by base key.
func message(base, lang string) string {
	if lang != "en" {
		lang = "tr"
	}
	return prompts.MustGet(prompts.MessagesFile, base+"-"+lang)
}
