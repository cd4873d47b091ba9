package categorizer

import (
	"fmt"
	"strings"
)

// Category is one label from the closed intent taxonomy.
type Category string

const (
	CategorySummarization Category = "summarization"
	CategoryCodeHelp      Category = "code-help"
	CategoryGrammarCheck  Category = "grammar-check"
	CategoryGeneral       Category = "general"
)

// Categories lists the known labels in priority order.
func Categories() []Category {
	return []Category{CategorySummarization, CategoryCodeHelp, CategoryGrammarCheck, CategoryGeneral}
}

// ParseCategory validates a category label coming from user input
// (CLI flags, API payloads). The engine itself never produces an
// unknown category; this guard exists only at the shells.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories() {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// MatchFunc is an extra per-rule test beyond keyword matching. It
// receives the raw prompt and its normalized (lowercased, trimmed)
// form so rules can inspect case-sensitive structure like code fences.
type MatchFunc func(raw, normalized string) bool

// Rule pairs a category with its trigger keywords. Keywords match as
// substrings of the normalized prompt, not whole words: "summary"
// inside "summarize" triggers, but so does "error" inside "terror".
// That imprecision is intentional and kept from the original design.
type Rule struct {
	Category Category
	Keywords []string
	Extra    MatchFunc
}

func (r Rule) matches(raw, normalized string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	if r.Extra != nil {
		return r.Extra(raw, normalized)
	}
	return false
}

// RuleSet is an ordered set of rules evaluated first-match-wins.
// It is immutable after construction and safe for concurrent use.
type RuleSet struct {
	rules []Rule
}

// New builds a RuleSet from rules in priority order. The final
// general fallback is implicit: Categorize always returns
// CategoryGeneral when no rule matches.
func New(rules []Rule) *RuleSet {
	copied := make([]Rule, len(rules))
	copy(copied, rules)
	return &RuleSet{rules: copied}
}

// Default returns a RuleSet with the built-in rules.
func Default() *RuleSet {
	return New(DefaultRules())
}

// Extend returns a new RuleSet with extra keywords appended to the
// rules of matching categories. Priority order never changes; extra
// keywords for a category without a rule are ignored.
func (rs *RuleSet) Extend(extra map[Category][]string) *RuleSet {
	if len(extra) == 0 {
		return rs
	}
	rules := rs.Rules()
	for i, rule := range rules {
		if more, ok := extra[rule.Category]; ok {
			merged := make([]string, 0, len(rule.Keywords)+len(more))
			merged = append(merged, rule.Keywords...)
			for _, kw := range more {
				kw = strings.ToLower(strings.TrimSpace(kw))
				if kw != "" {
					merged = append(merged, kw)
				}
			}
			rules[i].Keywords = merged
		}
	}
	return New(rules)
}

// Rules returns a copy of the ordered rules, for display.
func (rs *RuleSet) Rules() []Rule {
	copied := make([]Rule, len(rs.rules))
	copy(copied, rs.rules)
	return copied
}

// Categorize maps a prompt to exactly one category. It is a pure
// function: no I/O, deterministic for a given RuleSet, and total —
// every prompt resolves, defaulting to CategoryGeneral. Priority is
// the rule order, not keyword position: a prompt holding triggers for
// two categories resolves to the earlier rule regardless of where its
// keyword sits in the text.
func (rs *RuleSet) Categorize(prompt string) Category {
	normalized := strings.ToLower(strings.TrimSpace(prompt))
	for _, rule := range rs.rules {
		if rule.matches(prompt, normalized) {
			return rule.Category
		}
	}
	return CategoryGeneral
}

// DefaultRules returns the built-in rules in priority order:
// summarization, then code-help, then grammar-check.
func DefaultRules() []Rule {
	return []Rule{
		{
			Category: CategorySummarization,
			Keywords: []string{
				"summarize", "summary", "tl;dr", "tldr", "brief", "overview",
				"condense", "in short", "recap", "key points",
			},
		},
		{
			Category: CategoryCodeHelp,
			Keywords: []string{
				"error", "bug", "code", "function", "debug", "how to", "implement",
				"syntax", "programming", "python", "javascript", "java", "c++",
				"algorithm", "script", "compile", "exception",
			},
			Extra: hasCodeBlock,
		},
		{
			Category: CategoryGrammarCheck,
			Keywords: []string{
				"grammar", "spell", "spelling", "proofread", "correct this",
				"punctuation", "fix grammar", "grammatical", "check grammar",
				"check spelling",
			},
		},
	}
}

// hasCodeBlock detects a markdown fence or indented block, the extra
// trigger for code-help prompts that carry code without naming it.
func hasCodeBlock(raw, _ string) bool {
	return strings.Contains(raw, "```") ||
		strings.Contains(raw, "\n    ") ||
		strings.Contains(raw, "\n\t")
}
