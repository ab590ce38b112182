package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/theatilgan/courserec-cli/internal/core/domain"
	"github.com/theatilgan/courserec-cli/internal/core/ports/driven"
	"github.com/theatilgan/courserec-cli/internal/core/ports/driving"
	"github.com/theatilgan/courserec-cli/internal/logger"
)

// Ensure KeywordExtractor implements the interface.
var _ driving.KeywordService = (*KeywordExtractor)(nil)

// Default keyword bounds, matching the backend prompt.
const (
	DefaultMinKeywords = 3
	DefaultMaxKeywords = 5
)

// defaultKeywordPrompt is the fallback prompt when no PromptStore is configured.
const defaultKeywordPrompt = `Extract %d to %d keywords from the following student message.
Write only separated by commas. Do not form sentences.

Text: "%s"`

// probePrompt is the fixed message sent by TestConnection.
const probePrompt = "Hello, this is a test message."

// edgePunctuation is stripped from both ends of fallback tokens.
const edgePunctuation = `.,!?;:()[]{}"'-`

// stopWords are dropped by the fallback extractor: articles, pronouns,
// conjunctions and a handful of generic intent verbs that carry no
// topical signal.
var stopWords = map[string]struct{}{
	"and": {}, "or": {}, "with": {}, "for": {}, "this": {}, "a": {},
	"an": {}, "the": {}, "is": {}, "are": {},
	"i": {}, "you": {}, "he": {}, "she": {}, "it": {}, "we": {},
	"they": {}, "what": {}, "how": {}, "where": {}, "which": {}, "who": {},
	"why": {}, "because": {}, "but": {}, "however": {}, "although": {},
	"want": {}, "need": {}, "make": {}, "do": {}, "get": {}, "have": {},
	"give": {}, "take": {},
}

// KeywordExtractor derives a bounded ordered keyword set from free text.
// The primary path asks the language-understanding backend; any failure
// there triggers a deterministic local fallback, so Extract never fails.
type KeywordExtractor struct {
	llm         driven.LLMService
	promptStore driven.PromptStore
	minKeywords int
	maxKeywords int
}

// NewKeywordExtractor creates a keyword extractor. The LLM service is
// optional: with a nil backend every extraction uses the fallback path.
func NewKeywordExtractor(llm driven.LLMService) *KeywordExtractor {
	return &KeywordExtractor{
		llm:         llm,
		minKeywords: DefaultMinKeywords,
		maxKeywords: DefaultMaxKeywords,
	}
}

// SetPromptStore sets the prompt store for loading customisable prompts.
// If not set, the extractor uses the hardcoded default prompt.
func (e *KeywordExtractor) SetPromptStore(store driven.PromptStore) {
	e.promptStore = store
}

// SetBounds overrides the keyword count bounds. Values below 1 are ignored.
func (e *KeywordExtractor) SetBounds(minKeywords, maxKeywords int) {
	if minKeywords >= 1 {
		e.minKeywords = minKeywords
	}
	if maxKeywords >= 1 {
		e.maxKeywords = maxKeywords
	}
}

// Extract returns up to MaxKeywords topical terms for the given text.
// Empty or whitespace-only input yields an empty result without touching
// the backend. Backend failures fall back to local frequency extraction;
// the worst case is an empty slice, never an error.
func (e *KeywordExtractor) Extract(ctx context.Context, text string) []string {
	if strings.TrimSpace(text) == "" {
		logger.Debug("Keyword extraction skipped: empty input")
		return []string{}
	}

	keywords, err := e.extractPrimary(ctx, text)
	if err != nil {
		logger.Warn("Backend keyword extraction failed: %v (using fallback)", err)
		return e.extractFallback(text)
	}

	logger.Info("Extracted %d keywords via backend", len(keywords))
	return keywords
}

// TestConnection sends a fixed probe through the primary path and reports
// whether a well-formed reply was received. It never blocks extraction.
func (e *KeywordExtractor) TestConnection(ctx context.Context) bool {
	if e.llm == nil {
		logger.Debug("Connection test: no backend configured")
		return false
	}

	probe := e.loadPrompt(driven.PromptConnectionProbe, probePrompt)
	reply, err := e.llm.Chat(ctx, []driven.ChatMessage{
		{Role: "user", Content: probe},
	}, driven.ChatOptions{})
	if err != nil {
		logger.Warn("Connection test failed: %v", err)
		return false
	}

	ok := strings.TrimSpace(reply) != ""
	logger.Info("Connection test: reachable=%t model=%s", ok, e.llm.ModelName())
	return ok
}

// extractPrimary asks the backend for a comma-separated keyword list and
// parses the reply. Every failure mode is returned as an error so the
// caller can fall back.
func (e *KeywordExtractor) extractPrimary(ctx context.Context, text string) ([]string, error) {
	if e.llm == nil {
		return nil, domain.ErrLLMUnavailable
	}

	promptTemplate := e.loadPrompt(driven.PromptKeywordExtraction, defaultKeywordPrompt)
	prompt := fmt.Sprintf(promptTemplate, e.minKeywords, e.maxKeywords, text)

	logger.Debug("Requesting keywords from model %s", e.llm.ModelName())
	reply, err := e.llm.Chat(ctx, []driven.ChatMessage{
		{Role: "user", Content: prompt},
	}, driven.ChatOptions{Temperature: 0.1})
	if err != nil {
		return nil, err
	}

	keywords := parseKeywordReply(reply)
	if len(keywords) == 0 {
		return nil, fmt.Errorf("%w: %q", domain.ErrMalformedReply, reply)
	}

	if len(keywords) > e.maxKeywords {
		logger.Debug("Truncating %d keywords to %d", len(keywords), e.maxKeywords)
		keywords = keywords[:e.maxKeywords]
	}
	if len(keywords) < e.minKeywords {
		// Short lists are a quality concern, not a failure: padding with
		// invented terms would fabricate signal.
		logger.Warn("Backend returned only %d keywords (minimum %d)", len(keywords), e.minKeywords)
	}

	return keywords, nil
}

// extractFallback is the deterministic backend-free path: lower-case
// whitespace tokens, edge punctuation stripped, short tokens and stop
// words dropped, most frequent tokens first with ties broken by first
// occurrence. It cannot fail; the worst case is an empty slice.
func (e *KeywordExtractor) extractFallback(text string) []string {
	logger.Info("Using fallback keyword extraction")

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string

	for i, raw := range strings.Fields(strings.ToLower(text)) {
		token := strings.Trim(raw, edgePunctuation)
		if len(token) <= 2 {
			continue
		}
		if _, stop := stopWords[token]; stop {
			continue
		}
		if _, seen := counts[token]; !seen {
			firstSeen[token] = i
			order = append(order, token)
		}
		counts[token]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if len(order) > e.maxKeywords {
		order = order[:e.maxKeywords]
	}

	logger.Debug("Fallback extraction produced %d keywords", len(order))
	if order == nil {
		return []string{}
	}
	return order
}

// parseKeywordReply splits a backend reply on commas, trims whitespace
// and discards empty fragments, preserving reply order.
func parseKeywordReply(reply string) []string {
	var keywords []string
	for _, part := range strings.Split(reply, ",") {
		if term := strings.TrimSpace(part); term != "" {
			keywords = append(keywords, term)
		}
	}
	return keywords
}

// loadPrompt loads a prompt from the store, falling back to the default
// if unavailable.
func (e *KeywordExtractor) loadPrompt(name, fallback string) string {
	if e.promptStore == nil {
		return fallback
	}
	prompt, err := e.promptStore.Load(name)
	if err != nil {
		return fallback
	}
	return prompt
}
