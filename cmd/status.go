package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// statusCmd reports external provider availability. The check is
// configuration-only; no network call is made.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show external provider availability",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		svc := appInstance.ResponseService
		if svc.ExternalAvailable() {
			provider := svc.Provider()
			fmt.Printf("External provider: %s (%s, model %s)\n",
				color.GreenString("available"), provider.Name(), provider.ModelName())
		} else {
			fmt.Printf("External provider: %s\n", color.RedString("not configured"))
			fmt.Println("Responses will use the template library. Set OPENAI_API_KEY or GEMINI_API_KEY to enable delegation.")
		}

		totals := svc.Usage()
		if totals.Requests > 0 {
			fmt.Printf("Requests this session: %d (external %d, fallbacks %d, template-only %d)\n",
				totals.Requests, totals.ExternalOK, totals.Fallbacks, totals.TemplateOnly)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
