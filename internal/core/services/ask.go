package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/orion-labs/orionwiki/internal/core/domain"
	"github.com/orion-labs/orionwiki/internal/core/ports/driven"
	"github.com/orion-labs/orionwiki/internal/core/ports/driving"
	"github.com/orion-labs/orionwiki/internal/logger"
)

// Ensure AskService implements the interface.
var _ driving.AskService = (*AskService)(nil)

// AskService answers a single question over an indexed repository with
// one retrieval pass and one chat call.
type AskService struct {
	indexes   *IndexService
	retriever *Retriever
	chat      driven.ChatService
	prompts   driven.PromptStore
}

// NewAskService creates an ask service.
func NewAskService(indexes *IndexService, retriever *Retriever, chat driven.ChatService, prompts driven.PromptStore) *AskService {
	return &AskService{
		indexes:   indexes,
		retriever: retriever,
		chat:      chat,
		prompts:   prompts,
	}
}

// Ask answers the question using the repository's persisted index.
// History turns, when present, are rendered into the prompt as
// "ROLE: content" lines.
func (s *AskService) Ask(ctx context.Context, repoID, question string, history []domain.ChatTurn) (string, []string, error) {
	logger.Section("Ask")
	logger.Debug("repo=%s question=%q", repoID, question)

	ix, err := s.indexes.LoadIndex(repoID)
	if err != nil {
		return "", nil, err
	}

	records, err := s.retriever.Retrieve(ctx, ix, question, askTopK)
	if err != nil {
		return "", nil, err
	}

	systemPrompt, err := s.prompts.Load(driven.PromptRAGSystem)
	if err != nil {
		return "", nil, err
	}
	userTemplate, err := s.prompts.Load(driven.PromptRAGUser)
	if err != nil {
		return "", nil, err
	}

	var historyText strings.Builder
	for _, turn := range history {
		role := turn.Role
		if role == "" {
			role = "user"
		}
		historyText.WriteString(strings.ToUpper(role) + ": " + turn.Content + "\n")
	}

	userPrompt := fmt.Sprintf(userTemplate,
		systemPrompt, AssembleContext(records), historyText.String(), question)

	answer, err := s.chat.Chat(ctx, []driven.ChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPrompt},
	})
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", domain.ErrChatFailure, err)
	}

	return answer, CitedPaths(records), nil
}
