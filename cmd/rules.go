package cmd

import (
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// rulesCmd displays the active categorization rule set.
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the categorization rules in priority order",
	Long: `Displays each category with its trigger keywords, in the order rules are
evaluated. The first matching rule wins; 'general' is the terminal default
and always matches.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Priority", "Category", "Keywords"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for i, rule := range appInstance.Rules.Rules() {
			keywords := strings.Join(rule.Keywords, ", ")
			if rule.Extra != nil {
				keywords += " (+ code block detection)"
			}
			table.Append([]string{
				strconv.Itoa(i + 1),
				string(rule.Category),
				keywords,
			})
		}
		table.Append([]string{strconv.Itoa(len(appInstance.Rules.Rules()) + 1), "general", "(default, always matches)"})
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
