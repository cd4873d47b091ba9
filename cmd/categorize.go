package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// categorizeCmd maps a prompt to its intent category without
// generating a response.
var categorizeCmd = &cobra.Command{
	Use:   "categorize [prompt]",
	Short: "Categorize a prompt into an intent category",
	Long: `Runs only the rule-based categorization step and prints the resolved
category label. The prompt may be given as one quoted argument or as
multiple words; use '-' to read it from stdin or '@path' to read a file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		prompt, err := resolvePromptArgs(args)
		if err != nil {
			return err
		}
		fmt.Println(appInstance.ResponseService.Categorize(prompt))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categorizeCmd)
}
