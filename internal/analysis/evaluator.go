package analysis

import (
	"context"

	"go.uber.org/zap"

	"interview-analyzer/internal/api"
	"interview-analyzer/internal/config"
)

// ModelClient абстрагирует обращение к языковой модели.
// В продакшене это *api.OpenAIClient, в тестах — заглушка.
type ModelClient interface {
	Call(ctx context.Context, prompt string, opts api.CallOptions) (string, error)
	Model() string
}

// ContentEvaluator оценивает содержание ответа кандидата.
// Конвейер: промпт -> вызов модели -> разбор ответа; любой сбой на пути
// переводит оценку в fallback, наружу ошибка не выходит никогда.
type ContentEvaluator struct {
	client   ModelClient
	prompts  *PromptBuilder
	parser   *Parser
	openai   *config.OpenAIConfig
	analysis *config.AnalysisConfig
	logger   *zap.Logger
}

// NewContentEvaluator создает оценщик содержания
func NewContentEvaluator(client ModelClient, prompts *PromptBuilder, parser *Parser,
	openai *config.OpenAIConfig, analysis *config.AnalysisConfig, logger *zap.Logger) *ContentEvaluator {
	return &ContentEvaluator{
		client:   client,
		prompts:  prompts,
		parser:   parser,
		openai:   openai,
		analysis: analysis,
		logger:   logger,
	}
}

// Evaluate оценивает транскрипт и никогда не возвращает ошибку
func (e *ContentEvaluator) Evaluate(ctx context.Context, transcript string) *EvaluationResult {
	prompt := e.prompts.BuildContentPrompt(transcript)

	rawText, err := e.client.Call(ctx, prompt, api.CallOptions{
		Temperature: e.openai.ScoreTemperature,
		MaxTokens:   e.openai.ScoreMaxTokens,
		Timeout:     e.openai.RequestTimeout,
	})
	if err != nil {
		e.logger.Warn("оценка содержания недоступна, возвращаю fallback", zap.Error(err))
		return e.fallbackResult()
	}

	result, err := e.parser.ParseContentResponse(rawText)
	if err != nil {
		e.logger.Warn("не удалось разобрать оценку содержания, возвращаю fallback", zap.Error(err))
		return e.fallbackResult()
	}

	return result
}

// fallbackResult возвращает документированное значение по умолчанию:
// нейтральная оценка и общие советы из конфигурации анализа
func (e *ContentEvaluator) fallbackResult() *EvaluationResult {
	return &EvaluationResult{
		ContentScore: e.analysis.GetFallbackScore(),
		Tips: Tips{
			Content: e.analysis.Fallbacks.ContentTip,
			Voice:   e.analysis.Fallbacks.VoiceTip,
			Face:    e.analysis.Fallbacks.FaceTip,
		},
		Degraded: true,
	}
}
