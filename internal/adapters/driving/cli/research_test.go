package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orion-labs/orionwiki/internal/core/domain"
)

func TestResearchCmd_Use(t *testing.T) {
	assert.Equal(t, "research [repo] [question]", researchCmd.Use)
}

func TestResearchCmd_IterationsFlagDefault(t *testing.T) {
	flag := researchCmd.Flags().Lookup("iterations")
	require.NotNil(t, flag, "iterations flag should exist")
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "3", flag.DefValue)
}

func TestResearchCmd_PrintsConclusion(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	mock := researchService.(*mockResearchService)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"research", "--plain", "demo-repo", "how does retrieval work?"})
	defer func() {
		rootCmd.SetArgs(nil)
		researchPlain = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, 3, mock.iterations)
	assert.Contains(t, buf.String(), "mock conclusion")
	assert.Contains(t, buf.String(), "--full")
}

func TestResearchCmd_IterationsFlagForwarded(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	mock := researchService.(*mockResearchService)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"research", "--plain", "-n", "5", "demo-repo", "q"})
	defer func() {
		rootCmd.SetArgs(nil)
		researchIterations = 3
		researchPlain = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, 5, mock.iterations)
}

func TestResearchCmd_FullPrintsTranscript(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	researchService.(*mockResearchService).result = domain.ResearchResult{
		FinalAnswer: "final text",
		Iterations: []domain.ResearchIteration{
			{Stage: domain.StageFirst, Label: "## Research Plan (iteration 1)", Content: "plan text"},
			{Stage: domain.StageFinal, Label: "## Final Conclusion (iteration 2)", Content: "final text"},
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"research", "--plain", "--full", "demo-repo", "q"})
	defer func() {
		rootCmd.SetArgs(nil)
		researchFull = false
		researchPlain = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Research Plan (iteration 1)")
	assert.Contains(t, buf.String(), "plan text")
	assert.Contains(t, buf.String(), "Final Conclusion (iteration 2)")
}

func TestResearchCmd_ErrorsWithoutService(t *testing.T) {
	oldResearch := researchService
	researchService = nil
	defer func() {
		researchService = oldResearch
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"research", "demo-repo", "q"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
