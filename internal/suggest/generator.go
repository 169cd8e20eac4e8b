// Package suggest produces conversation-starter questions for the
// compose screen. A live text-generation model is tried first; when it
// fails or returns unusable text, pre-written questions for the drawn
// topic are served, and a generic triple covers everything else.
package suggest

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/whisperbox/whisperbox/internal/metrics"
)

// Serving tiers, in degradation order.
const (
	TierLive     = "live"
	TierFallback = "topic_fallback"
	TierGeneric  = "generic_fallback"
)

// minQuestionLength filters boilerplate lines out of model output.
// Anything this short is not a real question.
const minQuestionLength = 10

// questionCount is how many questions every response carries.
const questionCount = 3

// Result is a served suggestion set.
type Result struct {
	// Questions holds exactly three questions joined with Delimiter.
	Questions string
	// Topic is the drawn topic, or GenericTopic for the generic tier.
	Topic string
	// Tier records which tier produced the questions.
	Tier string
}

// TextGenerator produces raw text for a prompt. *Client implements it.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Generator draws a topic and serves questions for it.
type Generator struct {
	client  TextGenerator
	logger  *slog.Logger
	metrics metrics.Recorder
	randFn  func(n int) int
}

// NewGenerator creates a Generator. client may be nil, in which case
// the live tier is skipped entirely.
func NewGenerator(client TextGenerator, logger *slog.Logger, recorder metrics.Recorder) *Generator {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &Generator{
		client:  client,
		logger:  logger,
		metrics: recorder,
		randFn:  rand.Intn,
	}
}

// Suggest returns a question set. It never fails: every degradation
// path ends at the generic triple.
func (g *Generator) Suggest(ctx context.Context) Result {
	topic := topics[g.randFn(len(topics))]

	if g.client != nil {
		questions, err := g.generateLive(ctx, topic)
		if err == nil {
			g.metrics.IncSuggestServed(TierLive)
			return Result{Questions: questions, Topic: topic, Tier: TierLive}
		}
		g.logger.Warn("live suggestion failed, degrading",
			slog.String("topic", topic),
			slog.String("error", err.Error()))
	}

	if triple, ok := fallbackQuestions[topic]; ok {
		g.metrics.IncSuggestServed(TierFallback)
		return Result{Questions: joinTriple(triple), Topic: topic, Tier: TierFallback}
	}

	g.metrics.IncSuggestServed(TierGeneric)
	return Result{Questions: joinTriple(genericQuestions), Topic: GenericTopic, Tier: TierGeneric}
}

func (g *Generator) generateLive(ctx context.Context, topic string) (string, error) {
	prompt := fmt.Sprintf("Create a list of three open-ended and engaging questions on %s. "+
		"These questions should be suitable for a diverse audience and encourage friendly interaction. "+
		"Separate each question with a new line.", topic)

	text, err := g.client.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > minQuestionLength {
			lines = append(lines, line)
		}
	}
	if len(lines) < questionCount {
		return "", fmt.Errorf("model returned %d usable lines, need %d", len(lines), questionCount)
	}
	return strings.Join(lines[:questionCount], Delimiter), nil
}

func joinTriple(triple [3]string) string {
	return strings.Join(triple[:], Delimiter)
}
