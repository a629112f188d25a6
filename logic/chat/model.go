package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ollama"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"

	"mapca-proposal/vars"
)

// Config selects and configures the chat model behind both prompt profiles.
type Config struct {
	Provider string
	Model    string
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
}

// ConfigFromEnv reads the LLM_* / OLLAMA_* / OPENAI_* settings.
func ConfigFromEnv() Config {
	cfg := Config{
		Provider: vars.LLM_PROVIDER,
		Model:    vars.LLM_MODEL,
		Timeout:  vars.LLM_TIMEOUT,
	}
	switch cfg.Provider {
	case vars.OPENAI:
		cfg.BaseURL = vars.OPENAI_BASE_URL
		cfg.APIKey = vars.OPENAI_API_KEY
	default:
		cfg.BaseURL = vars.OLLAMA_PATH
	}
	return cfg
}

// NewChatModel builds the configured provider's chat model.
func NewChatModel(ctx context.Context, cfg Config) (model.ToolCallingChatModel, error) {
	switch cfg.Provider {
	case vars.OLLAMA, "":
		return CreateOllamaChatModel(ctx, cfg.BaseURL, cfg.Model, cfg.Timeout)
	case vars.OPENAI:
		return CreateOpenAIChatModel(ctx, cfg)
	default:
		return nil, fmt.Errorf("llm provider %q not supported", cfg.Provider)
	}
}

func CreateOllamaChatModel(ctx context.Context, url string, modelName string, timeout time.Duration) (model.ToolCallingChatModel, error) {
	chatModel, err := ollama.NewChatModel(ctx, &ollama.ChatModelConfig{
		BaseURL: url,       // ollama address
		Model:   modelName, // e.g. qwen2.5:7b
		Timeout: timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("create ollama chat model failed: %w", err)
	}
	return chatModel, nil
}

// CreateOpenAIChatModel also serves any OpenAI-compatible gateway through BaseURL.
func CreateOpenAIChatModel(ctx context.Context, cfg Config) (model.ToolCallingChatModel, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai api key missing; set OPENAI_API_KEY")
	}
	modelName := cfg.Model
	if modelName == "" || modelName == vars.QWEN7B {
		modelName = vars.GPT4O
	}
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   modelName,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("create openai chat model failed: %w", err)
	}
	return chatModel, nil
}
