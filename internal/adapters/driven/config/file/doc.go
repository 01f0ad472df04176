// Package file provides file-based implementations of driven port interfaces.
// These adapters read process configuration and prompt templates from the
// local filesystem.
//
// Adapters:
//   - Config loading: TOML-based process configuration with env overrides
//   - PromptStore: user-editable prompt files with embedded defaults
package file
