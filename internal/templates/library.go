package templates

import (
	"errors"
	"strings"

	"github.com/neurosnap/sentences"
	log "github.com/sirupsen/logrus"

	"parley/pkg/categorizer"
)

// Placeholders supported inside a template. Interpolation uses simple
// ReplaceAll substitution; a template with no placeholders is returned
// verbatim.
const (
	PlaceholderPrompt  = "{{PROMPT}}"  // the full original prompt
	PlaceholderExcerpt = "{{EXCERPT}}" // prompt prefix, capped with an ellipsis
	PlaceholderIssue   = "{{ISSUE}}"   // first sentence of the prompt
)

const (
	excerptRunes = 100
	issueRunes   = 100
)

// Library maps categories to ordered response templates. It is
// immutable after construction and safe for concurrent use. Selection
// is deterministic: the first template of a category always wins, so
// response tests stay reproducible.
type Library struct {
	byCategory map[categorizer.Category][]string
	tokenizer  *sentences.DefaultSentenceTokenizer
}

// New builds a Library. The general category is the ultimate default
// for unknown or unconfigured categories, so it must be present and
// non-empty.
func New(byCategory map[categorizer.Category][]string) (*Library, error) {
	copied := make(map[categorizer.Category][]string, len(byCategory))
	for cat, tpls := range byCategory {
		kept := make([]string, 0, len(tpls))
		for _, tpl := range tpls {
			if strings.TrimSpace(tpl) != "" {
				kept = append(kept, tpl)
			}
		}
		if len(kept) > 0 {
			copied[cat] = kept
		}
	}
	if len(copied[categorizer.CategoryGeneral]) == 0 {
		return nil, ErrMissingGeneral
	}
	return &Library{
		byCategory: copied,
		tokenizer:  sentences.NewSentenceTokenizer(nil), // default locale
	}, nil
}

// Default returns a Library with the built-in templates.
func Default() *Library {
	lib, err := New(DefaultTemplates())
	if err != nil {
		// The built-in set always carries a general entry.
		panic(err)
	}
	return lib
}

// ErrMissingGeneral reports a Library built without the required
// general fallback templates.
var ErrMissingGeneral = errors.New("template library requires at least one template for the general category")

// Templates returns the configured templates for a category, or nil.
func (l *Library) Templates(cat categorizer.Category) []string {
	tpls := l.byCategory[cat]
	copied := make([]string, len(tpls))
	copy(copied, tpls)
	return copied
}

// Categories returns the categories with configured templates, in
// taxonomy priority order first, then any extras.
func (l *Library) Categories() []categorizer.Category {
	var cats []categorizer.Category
	seen := make(map[categorizer.Category]bool)
	for _, cat := range categorizer.Categories() {
		if _, ok := l.byCategory[cat]; ok {
			cats = append(cats, cat)
			seen[cat] = true
		}
	}
	for cat := range l.byCategory {
		if !seen[cat] {
			cats = append(cats, cat)
		}
	}
	return cats
}

// Render produces the template response for a prompt and category.
// It cannot fail: a category without templates falls back to the
// general set.
func (l *Library) Render(prompt string, cat categorizer.Category) string {
	tpls, ok := l.byCategory[cat]
	if !ok {
		log.Debugf("No templates configured for category %q, using general", cat)
		tpls = l.byCategory[categorizer.CategoryGeneral]
	}
	return l.interpolate(tpls[0], prompt)
}

func (l *Library) interpolate(tpl, prompt string) string {
	out := strings.ReplaceAll(tpl, PlaceholderPrompt, prompt)
	out = strings.ReplaceAll(out, PlaceholderExcerpt, excerpt(prompt, excerptRunes))
	out = strings.ReplaceAll(out, PlaceholderIssue, l.firstSentence(prompt))
	return out
}

// firstSentence pulls the leading sentence out of a prompt, capped to
// issueRunes. Used by the code-help template to echo the reported
// issue back to the user.
func (l *Library) firstSentence(prompt string) string {
	trimmed := strings.TrimSpace(prompt)
	if trimmed == "" {
		return ""
	}
	if sents := l.tokenizer.Tokenize(trimmed); len(sents) > 0 {
		if first := strings.TrimSpace(sents[0].Text); first != "" {
			return excerpt(first, issueRunes)
		}
	}
	return excerpt(trimmed, issueRunes)
}

// excerpt truncates on rune boundaries and marks the cut with an
// ellipsis.
func excerpt(s string, max int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= max {
		return string(runes)
	}
	return string(runes[:max]) + "..."
}
