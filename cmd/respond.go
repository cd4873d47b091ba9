package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"parley/internal/clix"
)

// respondCmd generates a full response for a single prompt.
var respondCmd = &cobra.Command{
	Use:   "respond [prompt]",
	Short: "Generate a response for a prompt",
	Long: `Categorizes the prompt and generates a response. With --external the
configured provider is tried first, falling back to the template library
on any failure; without it the template library answers directly. Use '-'
to read the prompt from stdin or '@path' to read it from a file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		params, err := clix.ParseRespondFlags(cmd.Flags())
		if err != nil {
			return err
		}

		prompt, err := resolvePromptArgs(args)
		if err != nil {
			return err
		}
		result := appInstance.ResponseService.Respond(cmd.Context(), prompt, params.Category, params.UseExternal)

		if params.AsJSON {
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode result: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Printf("Category: %s\n", color.CyanString(string(result.Category)))
		source := "templates"
		if result.UsedExternal {
			source = appInstance.CompletionService.Name()
		}
		fmt.Printf("Source:   %s\n", source)
		if result.Err != "" {
			fmt.Printf("Note:     %s\n", color.YellowString("external call failed: %s", result.Err))
		}
		fmt.Printf("\n%s\n", result.Response)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(respondCmd)

	respondCmd.Flags().Bool("external", false, "Try the configured external provider before the template fallback")
	respondCmd.Flags().String("category", "", "Skip categorization and use this category label")
	respondCmd.Flags().Bool("json", false, "Print the full result as JSON")
}
