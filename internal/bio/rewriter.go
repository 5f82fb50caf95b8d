package bio

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/biisimvar/profile-wizard/internal/llm"
	"github.com/biisimvar/profile-wizard/internal/prompts"
	"github.com/biisimvar/profile-wizard/internal/sanitize"
)

const (
	maxTokensBase        = 90
	maxTokensPerSentence = 10
	maxTokensCeiling     = 220
)

// rushFallback restates busy-hour experience when the model drops it.
const rushFallback = "Yoğun saatlerde çalışmaya alışığım."

var bioStop = []string{"\n\n", "```", "Biyografi"}

// Rewriter drives the bio elaboration pipeline.
type Rewriter struct {
	client      llm.Client
	logger      *zap.Logger
	sentenceCap int
}

// NewRewriter builds a Rewriter. sentenceCap bounds the output length in
// sentences regardless of what the model produces.
func NewRewriter(client llm.Client, logger *zap.Logger, sentenceCap int) *Rewriter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Rewriter{client: client, logger: logger, sentenceCap: sentenceCap}
}

// Elaborate rewrites one raw biography. Input containing banned terms is
// rejected before any upstream call.
func (r *Rewriter) Elaborate(ctx context.Context, rawBio string) (string, error) {
	start := time.Now()

	raw := StripWrappingQuotes(rawBio)
	if raw == "" {
		return "", &EmptyInputError{}
	}

	if terms := sanitize.Detect(raw); len(terms) > 0 {
		return "", &ProfanityError{Terms: terms}
	}

	corrected := ApplyCorrections(raw)
	sentenceCount := CountSentences(corrected)
	targetMin, targetMax := TargetRange(sentenceCount)
	rush := MentionsRush(corrected)

	system := prompts.Format(prompts.MustGet(prompts.BioFile, "system"), map[string]string{
		"SentenceCount": strconv.Itoa(sentenceCount),
		"TargetMin":     strconv.Itoa(targetMin),
		"TargetMax":     strconv.Itoa(targetMax),
	})
	if rush {
		system += "\n" + prompts.MustGet(prompts.BioFile, "rush-rule")
	}
	user := prompts.Format(prompts.MustGet(prompts.BioFile, "user"), map[string]string{
		"RawBio": corrected,
	})

	maxTokens := maxTokensBase + sentenceCount*maxTokensPerSentence
	if maxTokens > maxTokensCeiling {
		maxTokens = maxTokensCeiling
	}

	reply, err := r.client.Chat(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: user},
	}, llm.Options{
		Temperature: 0,
		MaxTokens:   maxTokens,
		Stop:        bioStop,
	})
	if err != nil {
		return "", err
	}

	improved := StripWrappingQuotes(reply)
	improved = Neutralize(improved)
	improved = MergeRedundantPairs(improved)
	if rush && !MentionsRush(improved) {
		improved = appendSentence(improved, rushFallback)
	}
	improved = EnforceSentenceCap(improved, r.sentenceCap)
	improved = sanitize.Clean(improved)

	r.logger.Info("bio elaborated",
		zap.Int("input_sentences", sentenceCount),
		zap.Int("output_sentences", CountSentences(improved)),
		zap.Bool("rush", rush),
		zap.Duration("duration", time.Since(start)),
	)

	return improved, nil
}

func appendSentence(text, sentence string) string {
	if text == "" {
		return sentence
	}
	switch text[len(text)-1] {
	case '.', '!', '?', ';':
		return text + " " + sentence
	default:
		return text + ". " + sentence
	}
}
