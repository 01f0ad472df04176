package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var (
	researchIterations int
	researchFull       bool
	researchPlain      bool
)

var researchCmd = &cobra.Command{
	Use:   "research [repo] [question]",
	Short: "Run multi-turn deep research over an indexed repository",
	Long: `Investigates the question over several model iterations: a research
plan, intermediate updates and a final conclusion. Each iteration sees the
full transcript of the previous ones.`,
	Args: cobra.ExactArgs(2),
	RunE: runResearch,
}

func init() {
	researchCmd.Flags().IntVarP(&researchIterations, "iterations", "n", 3,
		"number of research iterations (clamped to 1-5)")
	researchCmd.Flags().BoolVar(&researchFull, "full", false, "print the full transcript, not only the conclusion")
	researchCmd.Flags().BoolVar(&researchPlain, "plain", false, "print raw markdown without terminal styling")
	rootCmd.AddCommand(researchCmd)
}

func runResearch(cmd *cobra.Command, args []string) error {
	if researchService == nil {
		return errors.New("research service not configured")
	}

	repoID, question := args[0], args[1]
	result, err := researchService.Run(cmd.Context(), repoID, question, researchIterations)
	if err != nil {
		return err
	}

	if researchFull {
		for _, iteration := range result.Iterations {
			cmd.Println(renderMarkdown(iteration.Label+"\n\n"+iteration.Content, researchPlain))
			cmd.Println()
		}
		return nil
	}

	cmd.Println(renderMarkdown(result.FinalAnswer, researchPlain))
	cmd.Printf("(%d iteration(s); rerun with --full for the transcript)\n", len(result.Iterations))
	return nil
}
