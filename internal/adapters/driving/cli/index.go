package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/orion-labs/orionwiki/internal/repofs"
)

var indexRepoName string

var indexCmd = &cobra.Command{
	Use:   "index [repo-path]",
	Short: "Build the retrieval index for a repository",
	Long: `Chunks every eligible source and documentation file under the given
path, embeds the chunks and persists the vector index. Each run is a full
rebuild.`,
	Args: cobra.ExactArgs(1),
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().StringVar(&indexRepoName, "name", "", "repository identifier (default: derived from the path)")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	repoPath := args[0]
	repoID := indexRepoName
	if repoID == "" {
		repoID = repofs.NormalizeRepoID(repoPath)
	}

	if err := indexService.BuildIndex(cmd.Context(), repoID, repoPath); err != nil {
		return err
	}
	cmd.Printf("Indexed %s as %q\n", repoPath, repoID)
	return nil
}
