package services

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"parley/internal/models"
	"parley/internal/templates"
	"parley/internal/usagetracker"
	"parley/pkg/categorizer"
)

// DefaultExternalTimeout bounds the single external provider attempt.
const DefaultExternalTimeout = 10 * time.Second

// systemMessages maps categories to the instruction sent alongside the
// prompt when delegating to an external provider.
var systemMessages = map[categorizer.Category]string{
	categorizer.CategorySummarization: "You are a helpful assistant that provides concise summaries.",
	categorizer.CategoryCodeHelp:      "You are a helpful programming assistant that helps debug code and answer technical questions.",
	categorizer.CategoryGrammarCheck:  "You are a helpful grammar and spelling checker that corrects text.",
	categorizer.CategoryGeneral:       "You are a helpful assistant.",
}

// ResponseService produces the response payload for a prompt: external
// provider when requested and available, template library otherwise.
// All fields are read-only after construction, so a single instance
// serves concurrent requests.
type ResponseService struct {
	rules      *categorizer.RuleSet
	library    *templates.Library
	completion CompletionService
	timeout    time.Duration
	usage      usagetracker.Tracker
}

// NewResponseService wires the categorizer, template library and the
// optional completion provider. completion may be nil when no external
// capability exists at all; usage may be nil to skip tracking; a
// non-positive timeout falls back to DefaultExternalTimeout.
func NewResponseService(rules *categorizer.RuleSet, library *templates.Library, completion CompletionService, usage usagetracker.Tracker, timeout time.Duration) *ResponseService {
	if timeout <= 0 {
		timeout = DefaultExternalTimeout
	}
	return &ResponseService{
		rules:      rules,
		library:    library,
		completion: completion,
		timeout:    timeout,
		usage:      usage,
	}
}

// Usage returns a snapshot of the recorded request totals.
func (s *ResponseService) Usage() usagetracker.Totals {
	if s.usage == nil {
		return usagetracker.Totals{}
	}
	return s.usage.Snapshot()
}

// Categorize exposes the rule engine for callers that only need the
// category.
func (s *ResponseService) Categorize(prompt string) categorizer.Category {
	return s.rules.Categorize(prompt)
}

// ExternalAvailable reports whether the external provider is
// configured and ready, without invoking it.
func (s *ResponseService) ExternalAvailable() bool {
	return s.completion != nil && s.completion.Status() == ProviderStatusActive
}

// Provider returns the configured completion service, possibly nil.
func (s *ResponseService) Provider() CompletionService {
	return s.completion
}

// Respond generates the response payload for one prompt. A nil
// category is computed via the rule engine. The external provider is
// tried at most once, under the configured timeout; any failure is
// captured in the result's Err field and the template fallback takes
// over. Respond never fails: every call yields a complete result with
// a non-empty response.
func (s *ResponseService) Respond(ctx context.Context, prompt string, category *categorizer.Category, useExternal bool) *models.ResponseResult {
	var cat categorizer.Category
	if category != nil {
		cat = *category
	} else {
		cat = s.rules.Categorize(prompt)
	}

	result := &models.ResponseResult{
		Prompt:   prompt,
		Category: cat,
	}

	if useExternal {
		if !s.ExternalAvailable() {
			log.Debug("External response requested but no provider is configured, using templates")
			result.Err = models.ErrProviderNotConfigured.Error()
		} else if response, err := s.generateExternal(ctx, prompt, cat); err != nil {
			log.Warnf("External provider %s failed (falling back to templates): %v", s.completion.Name(), err)
			result.Err = err.Error()
		} else {
			result.Response = response
			result.UsedExternal = true
			s.record(result, false)
			return result
		}
	}

	result.Response = s.library.Render(prompt, cat)
	s.record(result, useExternal)
	return result
}

func (s *ResponseService) record(result *models.ResponseResult, fellBack bool) {
	if s.usage == nil {
		return
	}
	s.usage.Record(usagetracker.Event{
		Category:     string(result.Category),
		UsedExternal: result.UsedExternal,
		FellBack:     fellBack,
	})
}

// generateExternal performs the single bounded provider attempt.
func (s *ResponseService) generateExternal(ctx context.Context, prompt string, cat categorizer.Category) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	system, ok := systemMessages[cat]
	if !ok {
		system = systemMessages[categorizer.CategoryGeneral]
	}

	return s.completion.GenerateChatCompletion(ctx, []ChatMessage{
		{Role: ChatMessageRoleSystem, Content: system},
		{Role: ChatMessageRoleUser, Content: prompt},
	})
}
