package domain

// ChatTurn is one prior turn of a question-answer conversation carried
// into a follow-up ask request.
type ChatTurn struct {
	// Role is one of "user" or "assistant".
	Role string `json:"role"`

	// Content is the turn text.
	Content string `json:"content"`
}
