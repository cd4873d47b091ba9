package templates

import (
	"parley/pkg/categorizer"
)

// DefaultTemplates returns the built-in template set. Each category
// keeps a single template; additional ones can be layered in from
// config, but only the first is ever selected.
func DefaultTemplates() map[categorizer.Category][]string {
	return map[categorizer.Category][]string{
		categorizer.CategorySummarization: {
			"I would summarize your request as follows:\n\n" +
				"Your prompt asks about: {{EXCERPT}}\n\n" +
				"Key points to consider:\n" +
				"- Main topic identified\n" +
				"- Context analyzed\n" +
				"- Summary approach determined\n\n" +
				"(Note: This is a simulated response. For real summarization, configure an external provider API key.)",
		},
		categorizer.CategoryCodeHelp: {
			"Based on your code-related query:\n\n" +
				"Issue detected: {{ISSUE}}\n\n" +
				"Suggested approach:\n" +
				"1. Review the error message or requirements\n" +
				"2. Check syntax and logic\n" +
				"3. Test with simple inputs\n" +
				"4. Debug step by step\n\n" +
				"(Note: This is a simulated response. For detailed code help, configure an external provider API key.)",
		},
		categorizer.CategoryGrammarCheck: {
			"Grammar analysis of your text:\n\n" +
				"Original text reviewed: {{EXCERPT}}\n\n" +
				"Suggestions:\n" +
				"- Check subject-verb agreement\n" +
				"- Review punctuation usage\n" +
				"- Verify spelling of key terms\n\n" +
				"(Note: This is a simulated response. For real grammar checking, configure an external provider API key.)",
		},
		categorizer.CategoryGeneral: {
			"I understand you're asking: {{EXCERPT}}\n\n" +
				"This is a general inquiry. I'm here to help! " +
				"For more detailed and accurate responses, configure an external provider API key.\n\n" +
				"Is there anything specific you'd like to know more about?",
		},
	}
}
