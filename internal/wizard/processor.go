package wizard

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/kaptinlin/jsonrepair"
	"go.uber.org/zap"

	"github.com/biisimvar/profile-wizard/internal/bio"
	"github.com/biisimvar/profile-wizard/internal/llm"
	"github.com/biisimvar/profile-wizard/internal/prompts"
	"github.com/biisimvar/profile-wizard/internal/sanitize"
	"github.com/biisimvar/profile-wizard/internal/schemas"
	"github.com/biisimvar/profile-wizard/internal/types"
)

const (
	extractionTemperature = 0.2
	extractionMaxTokens   = 512
	replyPreviewLen       = 180

	bioMinSentences = 3
	bioMaxSentences = 7
)

// stepReply is the JSON contract the extraction model must honor.
type stepReply struct {
	Updates          map[string]any `json:"updates"`
	StepDone         bool           `json:"step_done"`
	AssistantComment string         `json:"assistant_comment"`
}

// Processor runs one wizard step per call: sanitize the answer, ask the
// model to extract fields, merge with guardrails, pick the next step.
type Processor struct {
	client    llm.Client
	logger    *zap.Logger
	minSalary int
	maxSalary int
}

// NewProcessor builds a Processor with the given salary guardrails.
func NewProcessor(client llm.Client, logger *zap.Logger, minSalary, maxSalary int) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{client: client, logger: logger, minSalary: minSalary, maxSalary: maxSalary}
}

// ProcessStep handles one wizard turn. The caller round-trips the form
// state; nothing is persisted here.
func (p *Processor) ProcessStep(ctx context.Context, req types.WizardRequest) (*types.WizardResponse, error) {
	start := time.Now()

	if strings.TrimSpace(req.UserID) == "" {
		return nil, &InputError{Message: "user_id is required"}
	}

	lang := "tr"
	if strings.ToLower(req.LanguageCode) == "en" {
		lang = "en"
	}

	stepIndex := req.StepIndex
	if stepIndex < 0 {
		stepIndex = 0
	}

	isBioStep := stepIndex < len(Steps) && Steps[stepIndex].Kind == KindBioGeneration
	rawInput := strings.TrimSpace(req.UserInputText)
	if !isBioStep && rawInput == "" {
		return nil, &InputError{Message: "user_input_text is required"}
	}

	// Banned terms are masked, never forwarded to the model.
	cleanedInput := sanitize.Clean(rawInput)

	reply, err := p.callExtractor(ctx, stepIndex, lang, cleanedInput, req.FormState)
	if err != nil {
		return nil, err
	}

	newForm := req.FormState.Clone()
	ApplyUpdates(&newForm, reply.Updates)

	// Free-text fields get a final masking pass; the model may echo terms
	// the input never contained.
	if newForm.Experience != nil {
		cleaned := sanitize.Clean(*newForm.Experience)
		newForm.Experience = &cleaned
	}
	if newForm.Bio != nil {
		cleaned := sanitize.Clean(*newForm.Bio)
		newForm.Bio = &cleaned
	}

	stepDone := reply.StepDone
	assistantReply := strings.TrimSpace(reply.AssistantComment)

	// Generated biography must land inside the allowed sentence range. A
	// too-short bio is dropped, so the model's "it is ready" comment must
	// not survive either.
	if isBioStep && newForm.Bio != nil {
		capped := bio.EnforceSentenceCap(*newForm.Bio, bioMaxSentences)
		newForm.Bio = &capped
		if bio.CountSentences(capped) < bioMinSentences {
			newForm.Bio = nil
			stepDone = false
			assistantReply = message("bio-retry", lang)
		}
	}

	// Salary bounds win over whatever the model claimed.
	isSalaryStep := stepIndex < len(Steps) && Steps[stepIndex].Kind == KindSalary
	if isSalaryStep && stepDone && newForm.SalaryMin != nil && newForm.SalaryMax != nil {
		min, max := *newForm.SalaryMin, *newForm.SalaryMax
		if min < p.minSalary || max > p.maxSalary || min > max {
			newForm.SalaryMin = nil
			newForm.SalaryMax = nil
			stepDone = false
			assistantReply = prompts.Format(message("salary-out-of-range", lang), map[string]string{
				"MinSalary": strconv.Itoa(p.minSalary),
				"MaxSalary": strconv.Itoa(p.maxSalary),
			})
		}
	}

	nextStep, isFinished := ComputeNextStep(newForm, p.minSalary, p.maxSalary)

	responseStepIndex := stepIndex
	responseIsFinished := false
	if !stepDone {
		if assistantReply == "" {
			assistantReply = Question(lang, stepIndex)
		}
	} else {
		responseStepIndex = nextStep
		responseIsFinished = isFinished

		tail := Question(lang, nextStep)
		if isFinished {
			tail = message("finish", lang)
		}
		if assistantReply != "" {
			assistantReply += " " + tail
		} else {
			assistantReply = tail
		}
	}

	// Insurance questions get the fixed legal note appended whatever the
	// model said, and the term never lands in p_benefits.
	isBenefitsStep := stepIndex < len(Steps) && Steps[stepIndex].Kind == KindBenefits
	if isBenefitsStep && sanitize.MentionsInsurance(req.UserInputText) {
		assistantReply += message("insurance-note", lang)
	}

	p.logStep(req.UserID, lang, stepIndex, stepDone, responseStepIndex, responseIsFinished, newForm, assistantReply, time.Since(start))

	return &types.WizardResponse{
		AssistantReply: assistantReply,
		IsFinished:     responseIsFinished,
		StepIndex:      responseStepIndex,
		FormState:      newForm,
	}, nil
}

// callExtractor performs the single LLM call for a step and parses its
// JSON reply, with repair and schema validation between the model and the
// rest of the pipeline.
func (p *Processor) callExtractor(ctx context.Context, stepIndex int, lang, answer string, form types.FormState) (*stepReply, error) {
	isBioStep := stepIndex < len(Steps) && Steps[stepIndex].Kind == KindBioGeneration

	var system string
	if isBioStep {
		system = prompts.Format(prompts.MustGet(prompts.WizardFile, "system-bio"), map[string]string{
			"LanguageName": languageName(lang),
		})
	} else {
		currentField := "unknown"
		if stepIndex < len(Steps) {
			currentField = Steps[stepIndex].Field
		}
		enums, _ := json.Marshal(RelevantEnums(stepIndex))
		system = prompts.Format(prompts.MustGet(prompts.WizardFile, "system-parse"), map[string]string{
			"CurrentField": currentField,
			"LanguageName": languageName(lang),
			"Enums":        string(enums),
		})
	}

	promptForm := form
	if isBioStep {
		promptForm = RedactForBio(form)
	}

	instruction := BuildStepInstruction(stepIndex, lang, promptForm, p.minSalary, p.maxSalary)
	payload, err := json.Marshal(map[string]any{
		"language_code":      lang,
		"step_index":         stepIndex,
		"answer":             answer,
		"current_form_state": promptForm,
	})
	if err != nil {
		return nil, err
	}

	text, err := p.client.Chat(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: instruction + "\n\nUSER_ANSWER_PAYLOAD:\n" + string(payload)},
	}, llm.Options{
		Temperature: extractionTemperature,
		MaxTokens:   extractionMaxTokens,
		ForceJSON:   true,
	})
	if err != nil {
		return nil, err
	}

	if reply, ok := p.parseReply(text); ok {
		return reply, nil
	}

	// The one place model misbehavior is absorbed instead of surfaced.
	p.logger.Warn("extractor returned unusable JSON", zap.Int("step_index", stepIndex))
	return &stepReply{
		Updates:          map[string]any{},
		StepDone:         false,
		AssistantComment: message("fallback", lang),
	}, nil
}

func (p *Processor) parseReply(text string) (*stepReply, bool) {
	cleaned := llm.CleanJSONBlock(text)

	candidates := []string{cleaned}
	if repaired, err := jsonrepair.JSONRepair(cleaned); err == nil && repaired != cleaned {
		candidates = append(candidates, repaired)
	}

	for _, candidate := range candidates {
		if err := schemas.ValidateWizardReply(candidate); err != nil {
			continue
		}
		var reply stepReply
		if err := json.Unmarshal([]byte(candidate), &reply); err != nil {
			continue
		}
		if reply.Updates == nil {
			reply.Updates = map[string]any{}
		}
		return &reply, true
	}
	return nil, false
}

func (p *Processor) logStep(userID, lang string, stepIndex int, stepDone bool, nextStep int, isFinished bool, form types.FormState, reply string, duration time.Duration) {
	stepField := ""
	if stepIndex < len(StepFields) {
		stepField = StepFields[stepIndex]
	}
	preview := reply
	if runes := []rune(preview); len(runes) > replyPreviewLen {
		preview = string(runes[:replyPreviewLen])
	}

	p.logger.Info("wizard step",
		zap.String("user_id", userID),
		zap.String("lang", lang),
		zap.Int("step_index", stepIndex),
		zap.String("step_field", stepField),
		zap.Bool("step_done", stepDone),
		zap.Int("next_step", nextStep),
		zap.Bool("is_finished", isFinished),
		zap.Bool("has_experience", form.Experience != nil),
		zap.Bool("has_bio", form.Bio != nil),
		zap.Bool("has_salary", form.SalaryMin != nil && form.SalaryMax != nil),
		zap.String("assistant_reply_preview", preview),
		zap.Duration("duration", duration),
	)
}
