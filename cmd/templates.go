package cmd

import (
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// templatesCmd displays the configured response templates.
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the response templates per category",
	Long: `Displays the template library. The first template of a category is the
one selected; additional templates are configured spares.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Category", "Templates", "Preview"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for _, cat := range appInstance.Templates.Categories() {
			tpls := appInstance.Templates.Templates(cat)
			preview := tpls[0]
			if len(preview) > 60 {
				preview = preview[:60] + "..."
			}
			table.Append([]string{string(cat), strconv.Itoa(len(tpls)), preview})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
