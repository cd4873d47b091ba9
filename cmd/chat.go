package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"parley/internal/util"
)

var chatExternal bool

// chatCmd runs the interactive prompt/response loop.
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive prompt session",
	Long: `Reads prompts from stdin in a loop and prints the categorized response
for each one. Type 'quit' or 'exit' to end the session. Each prompt is
handled independently; no conversation state is kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		if chatExternal && !appInstance.ResponseService.ExternalAvailable() {
			fmt.Println(color.YellowString("No external provider credential configured; responses will use templates."))
		}

		fmt.Println("Parley interactive session. Type 'quit' or 'exit' to leave.")
		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("\nYou: ")
			if !scanner.Scan() {
				break // EOF
			}
			line, err := util.CleanPromptContent(scanner.Bytes(), "chat input")
			if err != nil {
				fmt.Println(color.YellowString("Could not read that input: %v", err))
				continue
			}
			prompt := strings.TrimSpace(line)
			if prompt == "" {
				fmt.Println("Please enter a prompt.")
				continue
			}
			switch strings.ToLower(prompt) {
			case "quit", "exit", "bye", "goodbye":
				fmt.Println("Goodbye!")
				return nil
			}

			result := appInstance.ResponseService.Respond(cmd.Context(), prompt, nil, chatExternal)
			fmt.Printf("\n[%s]", color.CyanString(string(result.Category)))
			if result.UsedExternal {
				fmt.Printf(" (%s)", appInstance.CompletionService.Name())
			}
			if result.Err != "" {
				fmt.Printf(" %s", color.YellowString("(fell back to templates)"))
			}
			fmt.Printf("\n%s\n", result.Response)
		}
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().BoolVar(&chatExternal, "external", false, "Try the configured external provider for each prompt")
}
