package driven

// PromptStore provides access to LLM prompt templates.
// Implementations may load prompts from files, embed them in the binary,
// or fetch them from a remote configuration service.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	// This is useful when prompts may have been edited on disk.
	Reload()
}

// Well-known prompt names used throughout the application.
// These constants define the contract between prompt consumers and providers.
const (
	// PromptRAGSystem frames single-turn repository question answering.
	PromptRAGSystem = "rag_system"

	// PromptRAGUser is the user-message template for single-turn answers.
	// Placeholders: %s system prompt, %s contexts, %s history, %s question.
	PromptRAGUser = "rag_user"

	// PromptOutlineSystem instructs the model to design a wiki outline as
	// a strict JSON array of section objects.
	PromptOutlineSystem = "outline_system"

	// PromptOutlineUser is the outline user-message template.
	// Placeholders: %s repository name, %s description, %s file tree.
	PromptOutlineUser = "outline_user"

	// PromptPageSystem frames single wiki page generation, including the
	// mermaid diagram constraints.
	PromptPageSystem = "page_system"

	// PromptPageUser is the page user-message template.
	// Placeholders: %s section JSON, %s contexts.
	PromptPageUser = "page_user"

	// PromptResearchFirst frames the opening deep-research iteration.
	PromptResearchFirst = "research_first"

	// PromptResearchIntermediate frames middle iterations. The literal
	// token {iteration} is replaced with the iteration number.
	PromptResearchIntermediate = "research_intermediate"

	// PromptResearchFinal frames the closing iteration.
	PromptResearchFinal = "research_final"
)
