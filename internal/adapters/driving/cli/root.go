// Package cli provides the command-line interface. Commands depend on
// the driving ports only; concrete services are injected at startup.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/orion-labs/orionwiki/internal/core/ports/driving"
	"github.com/orion-labs/orionwiki/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Injected services. Commands check for nil and fail cleanly when a
// service was not configured.
var (
	indexService    driving.IndexService
	askService      driving.AskService
	researchService driving.ResearchService
	wikiService     driving.WikiService
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "orionwiki",
	Short: "Generate a documentation wiki for any Git repository",
	Long: `OrionWiki indexes a repository with embeddings and uses an LLM to
generate a browsable documentation wiki, answer questions about the code
and run multi-turn deep research over it.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Services bundles everything the commands need.
type Services struct {
	Index    driving.IndexService
	Ask      driving.AskService
	Research driving.ResearchService
	Wiki     driving.WikiService
}

// SetServices injects the service implementations. Must be called before
// Execute.
func SetServices(s Services) {
	indexService = s.Index
	askService = s.Ask
	researchService = s.Research
	wikiService = s.Wiki
}

// SetVersion overrides the reported version string.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
