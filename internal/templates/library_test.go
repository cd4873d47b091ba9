package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parley/pkg/categorizer"
)

func TestRender_AllCategoriesNonEmpty(t *testing.T) {
	lib := Default()

	for _, cat := range categorizer.Categories() {
		t.Run(string(cat), func(t *testing.T) {
			out := lib.Render("What is the capital of France?", cat)
			assert.NotEmpty(t, out)
			assert.NotContains(t, out, "{{", "placeholders must be fully interpolated")
		})
	}
}

func TestRender_UnknownCategoryFallsBackToGeneral(t *testing.T) {
	lib := Default()

	general := lib.Render("hello", categorizer.CategoryGeneral)
	unknown := lib.Render("hello", categorizer.Category("poetry"))
	assert.Equal(t, general, unknown)
}

func TestRender_InterpolatesExcerpt(t *testing.T) {
	lib := Default()

	out := lib.Render("Summarize the history of AI", categorizer.CategorySummarization)
	assert.Contains(t, out, "Summarize the history of AI")

	// Long prompts get truncated with an ellipsis.
	long := strings.Repeat("a", 300)
	out = lib.Render(long, categorizer.CategorySummarization)
	assert.Contains(t, out, strings.Repeat("a", 100)+"...")
	assert.NotContains(t, out, strings.Repeat("a", 101))
}

func TestRender_CodeHelpExtractsFirstSentence(t *testing.T) {
	lib := Default()

	prompt := "My script crashes on startup. It worked yesterday. I changed nothing."
	out := lib.Render(prompt, categorizer.CategoryCodeHelp)
	assert.Contains(t, out, "Issue detected: My script crashes on startup.")
	assert.NotContains(t, out, "It worked yesterday")
}

func TestRender_FirstTemplateWins(t *testing.T) {
	lib, err := New(map[categorizer.Category][]string{
		categorizer.CategoryGeneral: {"first: {{PROMPT}}", "second: {{PROMPT}}"},
	})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.Equal(t, "first: hi", lib.Render("hi", categorizer.CategoryGeneral))
	}
}

func TestNew_RequiresGeneral(t *testing.T) {
	_, err := New(map[categorizer.Category][]string{
		categorizer.CategoryCodeHelp: {"only code"},
	})
	require.ErrorIs(t, err, ErrMissingGeneral)

	// Blank templates do not count.
	_, err = New(map[categorizer.Category][]string{
		categorizer.CategoryGeneral: {"   "},
	})
	require.ErrorIs(t, err, ErrMissingGeneral)
}

func TestCategories_PriorityOrderFirst(t *testing.T) {
	lib := Default()
	cats := lib.Categories()
	require.Len(t, cats, 4)
	assert.Equal(t, categorizer.CategorySummarization, cats[0])
	assert.Equal(t, categorizer.CategoryGeneral, cats[3])
}
