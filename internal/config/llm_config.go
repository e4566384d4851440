package config

// LLMConfig holds the settings for the generative AI provider. The default
// base URL points at Gemini's OpenAI-compatible endpoint.
type LLMConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

func NewLLMConfig() *LLMConfig {
	return &LLMConfig{
		APIKey:  getEnv("GEMINI_API_KEY", ""),
		BaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai/"),
		Model:   getEnv("GEMINI_MODEL", "gemini-2.0-flash-exp"),
	}
}
