package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var askPlain bool

var askCmd = &cobra.Command{
	Use:   "ask [repo] [question]",
	Short: "Ask a question about an indexed repository",
	Long: `Retrieves the most relevant code and documentation chunks for the
question and answers it with a single model call, citing the source files
that were used.`,
	Args: cobra.ExactArgs(2),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askPlain, "plain", false, "print raw markdown without terminal styling")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if askService == nil {
		return errors.New("ask service not configured")
	}

	repoID, question := args[0], args[1]
	answer, citedPaths, err := askService.Ask(cmd.Context(), repoID, question, nil)
	if err != nil {
		return err
	}

	cmd.Println(renderMarkdown(answer, askPlain))
	if len(citedPaths) > 0 {
		cmd.Println("Sources:")
		for _, path := range citedPaths {
			cmd.Printf("  - %s\n", path)
		}
	}
	return nil
}
