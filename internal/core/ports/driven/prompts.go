package driven

// Prompt names understood by a PromptStore.
const (
	// PromptRewrite is the template for LLM rewrites. It takes the style,
	// the intensity and the text, in that order, as %s placeholders.
	PromptRewrite = "rewrite"

	// PromptRewriteSystem is the system prompt sent with every rewrite.
	PromptRewriteSystem = "rewrite_system"
)

// PromptStore supplies LLM prompt templates.
type PromptStore interface {
	// Load returns the template for name.
	Load(name string) (string, error)
}
