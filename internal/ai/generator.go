package ai

import (
	"context"
	"fmt"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/bedrock"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"

	"podcaster/internal/config"
	"podcaster/internal/domain"
)

// Generator produces text from a single prompt with one model configured per process.
type Generator struct {
	llm       llms.Model
	modelName string
}

func NewGenerator(ctx context.Context, cfg config.GenerationConfig) (*Generator, error) {
	var model llms.Model
	var err error

	switch cfg.Provider {
	case config.ProviderAnthropic:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("anthropic API key required")
		}
		model, err = anthropic.New(
			anthropic.WithToken(cfg.APIKey),
			anthropic.WithModel(cfg.Model),
		)
		if err != nil {
			return nil, fmt.Errorf("create anthropic model: %w", err)
		}

	case config.ProviderOpenAI:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("openai API key required")
		}
		opts := []openai.Option{
			openai.WithToken(cfg.APIKey),
			openai.WithModel(cfg.Model),
		}
		if cfg.ServerURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.ServerURL))
		}
		model, err = openai.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("create openai model: %w", err)
		}

	case config.ProviderOllama:
		model, err = ollama.New(
			ollama.WithModel(cfg.Model),
			ollama.WithServerURL(cfg.ServerURL),
		)
		if err != nil {
			return nil, fmt.Errorf("create ollama model: %w", err)
		}

	case config.ProviderBedrock:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		model, err = bedrock.New(
			bedrock.WithClient(bedrockruntime.NewFromConfig(awsCfg)),
			bedrock.WithModel(cfg.Model),
		)
		if err != nil {
			return nil, fmt.Errorf("create bedrock model: %w", err)
		}

	default:
		return nil, fmt.Errorf("unsupported generation provider: %s", cfg.Provider)
	}

	return NewGeneratorFromModel(model, cfg.Model), nil
}

// NewGeneratorFromModel wraps an already constructed model.
func NewGeneratorFromModel(model llms.Model, name string) *Generator {
	return &Generator{llm: model, modelName: name}
}

// Generate returns the completion for prompt, limited to maxTokens output tokens.
func (g *Generator) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	response, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt, llms.WithMaxTokens(maxTokens))
	if err != nil {
		return "", domain.Wrap(domain.ErrUpstreamUnavailable, "generate with "+g.modelName, err)
	}
	if strings.TrimSpace(response) == "" {
		return "", domain.Wrap(domain.ErrMalformedResponse, "generate with "+g.modelName, fmt.Errorf("empty completion"))
	}
	return response, nil
}

// Model returns the configured model name.
func (g *Generator) Model() string {
	return g.modelName
}
