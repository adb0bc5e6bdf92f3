package factory

import (
	"fmt"
	"time"

	"ai-tutoring-be/pkg/llm"
	"ai-tutoring-be/pkg/llm/huggingface"
	"ai-tutoring-be/pkg/llm/ollama"
)

// NewLLMProvider builds a provider from config values. A missing API key for
// the huggingface provider is not an error here; callers that can run without
// inference should check the key themselves and pass a nil provider around.
func NewLLMProvider(providerType, modelName, baseURL, apiKey string, timeout time.Duration) (llm.LLMProvider, error) {
	switch providerType {
	case "huggingface":
		return huggingface.NewHuggingFaceProvider(apiKey, baseURL, modelName, timeout), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
