package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orion-labs/orionwiki/internal/core/domain"
)

func TestAskService_Ask(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()
	require.NoError(t, h.indexes.BuildIndex(ctx, "demo", h.repoDir))
	h.chat.responses = []string{"the answer"}

	answer, cited, err := h.ask.Ask(ctx, "demo", "how is data stored?", nil)
	require.NoError(t, err)
	assert.Equal(t, "the answer", answer)
	assert.ElementsMatch(t, []string{"README.md", "main.go"}, cited)

	require.Equal(t, 1, h.chat.callCount())
	messages := h.chat.calls[0]
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].Role)
	assert.Equal(t, "user", messages[1].Role)
	assert.Contains(t, messages[1].Content, "question: how is data stored?")
	assert.Contains(t, messages[1].Content, "File: README.md")
}

func TestAskService_Ask_HistoryRendered(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()
	require.NoError(t, h.indexes.BuildIndex(ctx, "demo", h.repoDir))

	history := []domain.ChatTurn{
		{Role: "user", Content: "first question"},
		{Role: "assistant", Content: "first answer"},
		{Role: "", Content: "untagged turn"},
	}
	_, _, err := h.ask.Ask(ctx, "demo", "follow-up", history)
	require.NoError(t, err)

	user := h.chat.calls[0][1].Content
	assert.Contains(t, user, "USER: first question\n")
	assert.Contains(t, user, "ASSISTANT: first answer\n")
	assert.Contains(t, user, "USER: untagged turn\n", "empty role defaults to user")
}

func TestAskService_Ask_NoIndex(t *testing.T) {
	h := newTestHarness(t)

	_, _, err := h.ask.Ask(context.Background(), "demo", "anything", nil)
	assert.ErrorIs(t, err, domain.ErrIndexNotFound)
	assert.Zero(t, h.chat.callCount())
}

func TestAskService_Ask_ChatFailure(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()
	require.NoError(t, h.indexes.BuildIndex(ctx, "demo", h.repoDir))
	h.chat.err = assert.AnError

	_, _, err := h.ask.Ask(ctx, "demo", "anything", nil)
	assert.ErrorIs(t, err, domain.ErrChatFailure)
}
