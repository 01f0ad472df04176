package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/orion-labs/orionwiki/internal/core/domain"
	"github.com/orion-labs/orionwiki/internal/repofs"
	"github.com/orion-labs/orionwiki/internal/wikihtml"
)

var (
	wikiRepoName  string
	wikiEphemeral bool
	wikiBuildHTML string
	wikiExportOut string
	wikiPlain     bool
)

var wikiCmd = &cobra.Command{
	Use:   "wiki",
	Short: "Generate and browse repository wikis",
}

var wikiBuildCmd = &cobra.Command{
	Use:   "build [repo-path]",
	Short: "Index a repository and generate its full wiki",
	Long: `Builds the retrieval index, designs a section outline and generates
every page. Pages already cached from a previous run are reused without
model calls. With --ephemeral nothing is written to disk.`,
	Args: cobra.ExactArgs(1),
	RunE: runWikiBuild,
}

var wikiOutlineCmd = &cobra.Command{
	Use:   "outline [repo]",
	Short: "Show the generated outline of a repository wiki",
	Args:  cobra.ExactArgs(1),
	RunE:  runWikiOutline,
}

var wikiShowCmd = &cobra.Command{
	Use:   "show [repo] [section-id]",
	Short: "Show one wiki page, generating it if needed",
	Args:  cobra.ExactArgs(2),
	RunE:  runWikiShow,
}

var wikiExportCmd = &cobra.Command{
	Use:   "export [repo]",
	Short: "Export the wiki as a single HTML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runWikiExport,
}

func init() {
	wikiBuildCmd.Flags().StringVar(&wikiRepoName, "name", "", "repository identifier (default: derived from the path)")
	wikiBuildCmd.Flags().BoolVar(&wikiEphemeral, "ephemeral", false, "keep everything in memory, write nothing to disk")
	wikiBuildCmd.Flags().StringVar(&wikiBuildHTML, "html", "", "also export the result to this HTML file")
	wikiShowCmd.Flags().BoolVar(&wikiPlain, "plain", false, "print raw markdown without terminal styling")
	wikiExportCmd.Flags().StringVarP(&wikiExportOut, "out", "o", "wiki.html", "output HTML file")

	wikiCmd.AddCommand(wikiBuildCmd)
	wikiCmd.AddCommand(wikiOutlineCmd)
	wikiCmd.AddCommand(wikiShowCmd)
	wikiCmd.AddCommand(wikiExportCmd)
	rootCmd.AddCommand(wikiCmd)
}

func runWikiBuild(cmd *cobra.Command, args []string) error {
	if wikiService == nil {
		return errors.New("wiki service not configured")
	}

	repoPath := args[0]
	repoID := wikiRepoName
	if repoID == "" {
		repoID = repofs.NormalizeRepoID(repoPath)
	}

	var (
		outline domain.Outline
		pages   []domain.WikiPage
		err     error
	)
	if wikiEphemeral {
		outline, pages, err = wikiService.BuildWikiEphemeral(cmd.Context(), repoID, repoPath)
	} else {
		outline, pages, err = wikiService.BuildWiki(cmd.Context(), repoID, repoPath)
	}
	if err != nil {
		return err
	}

	cmd.Printf("Generated %d pages for %q:\n", len(pages), repoID)
	for _, section := range outline {
		cmd.Printf("  %s  %s\n", section.ID, section.Title)
	}

	if wikiBuildHTML != "" {
		if err := wikihtml.WriteSite(wikiBuildHTML, repoID, pages); err != nil {
			return err
		}
		cmd.Printf("Exported HTML to %s\n", wikiBuildHTML)
	}
	return nil
}

func runWikiOutline(cmd *cobra.Command, args []string) error {
	if wikiService == nil {
		return errors.New("wiki service not configured")
	}

	outline, err := wikiService.Outline(args[0])
	if err != nil {
		return err
	}
	for _, section := range outline {
		cmd.Printf("%s\n  %s\n", section.ID, section.Description)
	}
	return nil
}

func runWikiShow(cmd *cobra.Command, args []string) error {
	if wikiService == nil {
		return errors.New("wiki service not configured")
	}

	page, err := wikiService.PageForSectionID(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}
	cmd.Println(renderMarkdown(page.Markdown, wikiPlain))
	return nil
}

func runWikiExport(cmd *cobra.Command, args []string) error {
	if wikiService == nil {
		return errors.New("wiki service not configured")
	}

	repoID := args[0]
	outline, err := wikiService.Outline(repoID)
	if err != nil {
		return err
	}

	pages := make([]domain.WikiPage, 0, len(outline))
	for _, section := range outline {
		page, err := wikiService.GeneratePage(cmd.Context(), repoID, section)
		if err != nil {
			return err
		}
		pages = append(pages, page)
	}

	if err := wikihtml.WriteSite(wikiExportOut, repoID, pages); err != nil {
		return err
	}
	cmd.Printf("Exported %d pages to %s\n", len(pages), wikiExportOut)
	return nil
}
