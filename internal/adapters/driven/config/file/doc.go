// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem under ~/.textdesk.
//
// Adapters:
//   - ConfigStore: TOML-based settings storage
//   - PromptStore: user-editable LLM rewrite prompts
package file
