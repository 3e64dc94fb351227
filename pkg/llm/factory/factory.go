package factory

import (
	"fmt"

	"fin-jurist-be/pkg/llm"
	"fin-jurist-be/pkg/llm/ollama"
	"fin-jurist-be/pkg/llm/openai"
)

func NewLLMProvider(providerType, baseURL, apiKey, modelName string) (llm.LLMProvider, error) {
	switch providerType {
	case "openai":
		return openai.NewOpenAIProvider(baseURL, apiKey, modelName), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
