package models

// Known values of [LLMConfig.LLMProvider].
const (
	ProviderGemini   = "gemini"
	ProviderDeepSeek = "deepseek"
)

// ModelOption is one entry of the model picker offered to the user.
type ModelOption struct {
	// Value is the model name sent to the agent (e.g. "gemini-2.5-pro").
	Value string `json:"value"`
	// Label is the human-readable role of the model, e.g. "Answer Gen (Gemini)".
	Label string `json:"label"`
}

// ModelChoices is the model picker derived from an [LLMConfig].
type ModelChoices struct {
	// Provider is the active provider the options belong to.
	Provider string `json:"provider"`
	// Options is the ordered list of selectable models. It is empty for
	// providers without a known model set.
	Options []ModelOption `json:"options"`
	// Default is the value of the first option, or "" if there is none.
	Default string `json:"default"`
}
