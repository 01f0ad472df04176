package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/orion-labs/orionwiki/internal/core/domain"
	"github.com/orion-labs/orionwiki/internal/core/ports/driven"
	"github.com/orion-labs/orionwiki/internal/core/ports/driving"
	"github.com/orion-labs/orionwiki/internal/logger"
	"github.com/orion-labs/orionwiki/internal/vectorindex"
)

// Ensure ResearchService implements the interface.
var _ driving.ResearchService = (*ResearchService)(nil)

// ResearchService runs the bounded deep-research state machine:
// first -> intermediate* -> final. Each iteration re-retrieves context
// for the original question, feeds the growing transcript back to the
// model and appends the completion to the transcript. Iterations are
// strictly sequential; later iterations depend on earlier transcript
// content.
type ResearchService struct {
	indexes   *IndexService
	retriever *Retriever
	chat      driven.ChatService
	prompts   driven.PromptStore
}

// NewResearchService creates a research service.
func NewResearchService(indexes *IndexService, retriever *Retriever, chat driven.ChatService, prompts driven.PromptStore) *ResearchService {
	return &ResearchService{
		indexes:   indexes,
		retriever: retriever,
		chat:      chat,
		prompts:   prompts,
	}
}

// Run executes the research process against the repository's persisted
// index. The requested iteration count is clamped to [1,5]. Any chat or
// embedding failure aborts the entire run; no partial transcript is
// returned.
func (s *ResearchService) Run(ctx context.Context, repoID, question string, maxIterations int) (domain.ResearchResult, error) {
	ix, err := s.indexes.LoadIndex(repoID)
	if err != nil {
		return domain.ResearchResult{}, err
	}
	return s.run(ctx, ix, question, maxIterations)
}

// run drives the state machine over an explicit index. The wiki manager
// uses this for the architecture page.
func (s *ResearchService) run(ctx context.Context, ix *vectorindex.Index, question string, maxIterations int) (domain.ResearchResult, error) {
	maxIterations = domain.ClampIterations(maxIterations)

	logger.Section("Deep Research")
	logger.Info("running %d iteration(s) for question of %d chars", maxIterations, len(question))

	var (
		transcript  []domain.ResearchIteration
		finalAnswer string
	)

	for i := 1; i <= maxIterations; i++ {
		stage := domain.StageForIteration(i, maxIterations)
		label := domain.IterationLabel(stage, i)

		// Retrieval is re-run for the original question every iteration.
		// The deepening comes from the evolving transcript fed to the
		// model, not from re-targeted retrieval.
		records, err := s.retriever.Retrieve(ctx, ix, question, researchTopK)
		if err != nil {
			return domain.ResearchResult{}, err
		}

		messages, err := s.buildMessages(stage, i, question, AssembleContext(records), RenderTranscript(transcript))
		if err != nil {
			return domain.ResearchResult{}, err
		}

		content, err := s.chat.Chat(ctx, messages)
		if err != nil {
			return domain.ResearchResult{}, fmt.Errorf("%w: iteration %d: %v", domain.ErrChatFailure, i, err)
		}

		transcript = append(transcript, domain.ResearchIteration{
			Stage:   stage,
			Label:   label,
			Content: content,
		})
		logger.Debug("iteration %d (%s) produced %d chars", i, stage, len(content))

		if stage == domain.StageFinal {
			finalAnswer = content
		}
	}

	// Guarded fallback; the clamp means a final stage always ran.
	if finalAnswer == "" && len(transcript) > 0 {
		finalAnswer = transcript[len(transcript)-1].Content
	}

	return domain.ResearchResult{
		FinalAnswer: finalAnswer,
		Iterations:  transcript,
	}, nil
}

// buildMessages assembles the chat messages for one iteration: a
// stage-dependent system framing and a user message concatenating the
// original question, the prior transcript and the fresh context.
func (s *ResearchService) buildMessages(stage domain.ResearchStage, iteration int, question, contexts, transcript string) ([]driven.ChatMessage, error) {
	var promptName string
	switch stage {
	case domain.StageFirst:
		promptName = driven.PromptResearchFirst
	case domain.StageFinal:
		promptName = driven.PromptResearchFinal
	default:
		promptName = driven.PromptResearchIntermediate
	}

	systemText, err := s.prompts.Load(promptName)
	if err != nil {
		return nil, err
	}
	if stage == domain.StageIntermediate {
		// Named-token substitution keeps user-edited prompt files safe:
		// a stray percent sign or a missing token never corrupts the
		// rendered message.
		systemText = strings.ReplaceAll(systemText, "{iteration}", strconv.Itoa(iteration))
	}

	parts := []string{"User question:\n" + question + "\n"}
	if transcript != "" {
		parts = append(parts, "Previous research iterations:\n", transcript)
	}
	if contexts != "" {
		parts = append(parts, "\nRelevant repository contexts:\n", contexts)
	}

	return []driven.ChatMessage{
		{Role: "system", Content: systemText},
		{Role: "user", Content: strings.Join(parts, "\n")},
	}, nil
}
