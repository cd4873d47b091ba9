package cmd

import (
	"strings"

	"parley/internal/inputprocessor"
)

// resolvePromptArgs joins the positional args into a prompt. A single
// argument goes through the input resolver so '-' (stdin) and '@path'
// (file) forms work; multiple words are taken literally.
func resolvePromptArgs(args []string) (string, error) {
	if len(args) == 1 {
		return inputprocessor.New().Resolve(args[0])
	}
	return strings.Join(args, " "), nil
}
