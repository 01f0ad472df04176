package domain

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Defaults for the indexing pipeline. These mirror the values the rest of
// the system was tuned against; they can be overridden via the config file.
const (
	DefaultChunkSize      = 800
	DefaultChunkOverlap   = 200
	DefaultEmbedBatchSize = 64
	DefaultStoredTextCap  = 5000
)

// IndexingConfig groups the knobs of the chunking and embedding pipeline.
// It is passed explicitly into the chunker, the embedding batcher and the
// persistence layer at construction time; there is no ambient state.
type IndexingConfig struct {
	// ChunkSize is the chunk window in characters.
	ChunkSize int `toml:"chunk_size"`

	// ChunkOverlap is the number of characters consecutive chunks share.
	// Must be smaller than ChunkSize.
	ChunkOverlap int `toml:"chunk_overlap"`

	// EmbedBatchSize caps how many texts are sent per embedding request,
	// keeping each request under the provider's token limit.
	EmbedBatchSize int `toml:"embed_batch_size"`

	// StoredTextCap caps the chunk text stored in index metadata.
	StoredTextCap int `toml:"stored_text_cap"`
}

// Validate checks the indexing knobs for consistency.
func (c IndexingConfig) Validate() error {
	if err := validation.ValidateStruct(&c,
		validation.Field(&c.ChunkSize, validation.Required, validation.Min(1)),
		validation.Field(&c.ChunkOverlap, validation.Min(0)),
		validation.Field(&c.EmbedBatchSize, validation.Required, validation.Min(1)),
		validation.Field(&c.StoredTextCap, validation.Required, validation.Min(1)),
	); err != nil {
		return err
	}
	if c.ChunkOverlap >= c.ChunkSize {
		return ErrInvalidInput
	}
	return nil
}

// LLMConfig describes the single OpenAI-compatible model endpoint used for
// both chat and embeddings. Other providers are an explicit non-goal.
type LLMConfig struct {
	// BaseURL is the API base URL. Empty means the default OpenAI URL.
	BaseURL string `toml:"base_url"`

	// APIKey authenticates requests. Usually supplied via environment.
	APIKey string `toml:"api_key"`

	// ChatModel is the chat completion model name.
	ChatModel string `toml:"chat_model"`

	// EmbedModel is the embedding model name.
	EmbedModel string `toml:"embed_model"`
}

// Validate checks that the endpoint is usable.
func (c LLMConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.APIKey, validation.Required),
		validation.Field(&c.ChatModel, validation.Required),
		validation.Field(&c.EmbedModel, validation.Required),
	)
}

// StorageConfig names the on-disk layout for durable artifacts.
type StorageConfig struct {
	// DataDir is the root directory; index and wiki artifacts live in
	// subdirectories beneath it.
	DataDir string `toml:"data_dir"`
}

// Validate checks the storage layout.
func (c StorageConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.DataDir, validation.Required),
	)
}

// Config is the explicit process configuration value object. It is
// assembled once at startup and handed to components at construction.
type Config struct {
	Indexing IndexingConfig `toml:"indexing"`
	LLM      LLMConfig      `toml:"llm"`
	Storage  StorageConfig  `toml:"storage"`
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Indexing.Validate(); err != nil {
		return err
	}
	if err := c.LLM.Validate(); err != nil {
		return err
	}
	return c.Storage.Validate()
}

// DefaultConfig returns a config with the tuned pipeline defaults and
// empty endpoint/storage settings that callers must fill in.
func DefaultConfig() Config {
	return Config{
		Indexing: IndexingConfig{
			ChunkSize:      DefaultChunkSize,
			ChunkOverlap:   DefaultChunkOverlap,
			EmbedBatchSize: DefaultEmbedBatchSize,
			StoredTextCap:  DefaultStoredTextCap,
		},
	}
}
