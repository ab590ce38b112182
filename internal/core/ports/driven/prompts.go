package driven

// PromptStore provides access to LLM prompt templates.
// Implementations may load prompts from files, embed them in the binary,
// or fetch them from a remote configuration service.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	Reload()
}

// Well-known prompt names used throughout the application.
const (
	// PromptKeywordExtraction instructs the backend to return a bounded,
	// comma-separated keyword list. The template expects %d (min), %d
	// (max) and %s (text) placeholders.
	PromptKeywordExtraction = "keyword_extraction"

	// PromptConnectionProbe is the fixed probe sent by connection tests.
	// It has no format placeholders.
	PromptConnectionProbe = "connection_probe"
)
