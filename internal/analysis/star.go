package analysis

import (
	"context"

	"go.uber.org/zap"

	"interview-analyzer/internal/api"
	"interview-analyzer/internal/config"
)

// STARAnalyzer раскладывает ответ кандидата по методике STAR.
// Тот же конвейер и та же гарантия, что у ContentEvaluator:
// наружу всегда выходит корректный результат, при сбое — четыре пустых списка.
type STARAnalyzer struct {
	client  ModelClient
	prompts *PromptBuilder
	parser  *Parser
	openai  *config.OpenAIConfig
	logger  *zap.Logger
}

// NewSTARAnalyzer создает STAR анализатор
func NewSTARAnalyzer(client ModelClient, prompts *PromptBuilder, parser *Parser,
	openai *config.OpenAIConfig, logger *zap.Logger) *STARAnalyzer {
	return &STARAnalyzer{
		client:  client,
		prompts: prompts,
		parser:  parser,
		openai:  openai,
		logger:  logger,
	}
}

// Analyze разбирает транскрипт по STAR и никогда не возвращает ошибку
func (a *STARAnalyzer) Analyze(ctx context.Context, transcript string) *STARResult {
	prompt := a.prompts.BuildStarPrompt(transcript)

	rawText, err := a.client.Call(ctx, prompt, api.CallOptions{
		Temperature: a.openai.StarTemperature,
		MaxTokens:   a.openai.StarMaxTokens,
		Timeout:     a.openai.RequestTimeout,
	})
	if err != nil {
		a.logger.Warn("STAR разбор недоступен, возвращаю fallback", zap.Error(err))
		return a.fallbackResult()
	}

	result, err := a.parser.ParseStarResponse(rawText)
	if err != nil {
		a.logger.Warn("не удалось разобрать STAR ответ, возвращаю fallback", zap.Error(err))
		return a.fallbackResult()
	}

	return result
}

func (a *STARAnalyzer) fallbackResult() *STARResult {
	result := EmptySTARResult()
	result.Degraded = true
	return result
}
