package analysis

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"interview-analyzer/internal/metrics"
)

// Длина эха транскрипта в поле transcript_debug
const transcriptDebugLimit = 200

// Orchestrator объединяет два независимых анализа в один ответ.
// Общего изменяемого состояния между запросами нет: каждый запрос
// собирает свой результат из локальных переменных.
type Orchestrator struct {
	evaluator *ContentEvaluator
	star      *STARAnalyzer
	counters  *metrics.Metrics
	logger    *zap.Logger
}

// NewOrchestrator создает оркестратор анализа
func NewOrchestrator(evaluator *ContentEvaluator, star *STARAnalyzer,
	counters *metrics.Metrics, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		evaluator: evaluator,
		star:      star,
		counters:  counters,
		logger:    logger,
	}
}

// ScoreOnly выполняет только оценку содержания и объединяет ее с метриками клиента
func (o *Orchestrator) ScoreOnly(ctx context.Context, transcript string, sessionMetrics SessionMetrics) *ScoreResponse {
	requestID := uuid.New().String()
	started := time.Now()

	o.counters.IncrementScoreRequests()

	evaluation := o.evaluator.Evaluate(ctx, transcript)
	if evaluation.Degraded {
		o.counters.IncrementFallbacksUsed()
	}

	o.logger.Info("оценка сессии завершена",
		zap.String("request_id", requestID),
		zap.Float64("content_score", evaluation.ContentScore),
		zap.Bool("degraded", evaluation.Degraded),
		zap.Duration("elapsed", time.Since(started)),
	)

	return &ScoreResponse{
		ContentScore:    evaluation.ContentScore,
		Tips:            evaluation.Tips,
		VoiceScore:      sessionMetrics.VoiceScore,
		FaceScore:       sessionMetrics.FaceScore,
		TranscriptDebug: truncateTranscript(transcript),
		Degraded:        evaluation.Degraded,
	}
}

// StarOnly выполняет только STAR разбор
func (o *Orchestrator) StarOnly(ctx context.Context, transcript string) *STARResult {
	requestID := uuid.New().String()
	started := time.Now()

	o.counters.IncrementStarRequests()

	result := o.star.Analyze(ctx, transcript)
	if result.Degraded {
		o.counters.IncrementFallbacksUsed()
	}

	o.logger.Info("STAR разбор завершен",
		zap.String("request_id", requestID),
		zap.Bool("degraded", result.Degraded),
		zap.Duration("elapsed", time.Since(started)),
	)

	return result
}

// Comprehensive запускает оба анализа конкурентно и ждет обоих.
// Анализы независимы: сбой одного не мешает другому, каждый деградирует
// к своему fallback. Общее время ограничено максимумом из двух вызовов,
// а не их суммой.
func (o *Orchestrator) Comprehensive(ctx context.Context, transcript string, sessionMetrics SessionMetrics) *ComprehensiveResponse {
	requestID := uuid.New().String()
	started := time.Now()

	o.counters.IncrementComprehensiveRequests()

	var (
		evaluation *EvaluationResult
		starResult *STARResult
	)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		evaluation = o.evaluator.Evaluate(ctx, transcript)
	}()

	go func() {
		defer wg.Done()
		starResult = o.star.Analyze(ctx, transcript)
	}()

	wg.Wait()

	if evaluation.Degraded {
		o.counters.IncrementFallbacksUsed()
	}
	if starResult.Degraded {
		o.counters.IncrementFallbacksUsed()
	}

	o.logger.Info("комплексный анализ завершен",
		zap.String("request_id", requestID),
		zap.Float64("content_score", evaluation.ContentScore),
		zap.Bool("score_degraded", evaluation.Degraded),
		zap.Bool("star_degraded", starResult.Degraded),
		zap.Duration("elapsed", time.Since(started)),
	)

	return &ComprehensiveResponse{
		ContentScore:    evaluation.ContentScore,
		Tips:            evaluation.Tips,
		VoiceScore:      sessionMetrics.VoiceScore,
		FaceScore:       sessionMetrics.FaceScore,
		TranscriptDebug: truncateTranscript(transcript),
		Degraded:        evaluation.Degraded || starResult.Degraded,
		StarAnalysis:    starResult,
	}
}

func truncateTranscript(transcript string) string {
	runes := []rune(transcript)
	if len(runes) <= transcriptDebugLimit {
		return transcript
	}
	return string(runes[:transcriptDebugLimit]) + "..."
}
