package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/orion-labs/orionwiki/internal/adapters/driven/config/file"
	"github.com/orion-labs/orionwiki/internal/adapters/driven/openai"
	"github.com/orion-labs/orionwiki/internal/adapters/driven/storage/wikifs"
	"github.com/orion-labs/orionwiki/internal/adapters/driving/cli"
	"github.com/orion-labs/orionwiki/internal/chunker"
	"github.com/orion-labs/orionwiki/internal/core/services"
	"github.com/orion-labs/orionwiki/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	configDir, err := file.DefaultConfigDir()
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	if err := file.WriteDefaultConfig(configDir); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}

	cfg, err := file.LoadConfig(configDir)
	if err != nil {
		return err
	}

	chat, err := openai.NewChatService(openai.ChatConfig{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.ChatModel,
	})
	if err != nil {
		return fmt.Errorf("chat service: %w", err)
	}
	defer chat.Close()

	embed, err := openai.NewEmbeddingService(openai.EmbedConfig{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.EmbedModel,
	})
	if err != nil {
		return fmt.Errorf("embedding service: %w", err)
	}
	defer embed.Close()

	store, err := wikifs.NewStore(cfg.Storage.DataDir)
	if err != nil {
		return fmt.Errorf("wiki store: %w", err)
	}

	prompts, err := file.NewPromptStore(filepath.Join(configDir, "prompts"))
	if err != nil {
		return fmt.Errorf("prompt store: %w", err)
	}
	stopWatch, err := prompts.WatchForChanges()
	if err != nil {
		logger.Warn("prompt watcher unavailable: %v", err)
	} else {
		defer stopWatch()
	}

	splitter := chunker.FromConfig(cfg.Indexing)
	batcher := services.NewEmbeddingBatcher(embed, cfg.Indexing.EmbedBatchSize)
	indexes := services.NewIndexService(splitter, batcher, store)
	retriever := services.NewRetriever(batcher)
	research := services.NewResearchService(indexes, retriever, chat, prompts)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Index:    indexes,
		Ask:      services.NewAskService(indexes, retriever, chat, prompts),
		Research: research,
		Wiki:     services.NewWikiService(indexes, retriever, research, chat, prompts, store),
	})
	return cli.Execute()
}
