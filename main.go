package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"interview-analyzer/internal/analysis"
	"interview-analyzer/internal/api"
	"interview-analyzer/internal/config"
	"interview-analyzer/internal/logger"
	"interview-analyzer/internal/metrics"
	"interview-analyzer/internal/schema"
	"interview-analyzer/internal/server"
)

func main() {
	// Загружаем переменные окружения; отсутствие .env не ошибка,
	// в продакшене переменные приходят из окружения напрямую
	if err := godotenv.Load(); err != nil {
		log.Println("файл .env не найден, использую переменные окружения")
	}

	appConfig := config.LoadAppConfig()

	// Отсутствие API ключа — единственная фатальная ошибка конфигурации,
	// и проверяется она один раз на старте процесса
	if err := appConfig.OpenAI.ValidateConfig(); err != nil {
		log.Fatalf("ошибка конфигурации OpenAI: %v", err)
	}

	zapLogger, err := logger.New(appConfig.Server.LogJSON, appConfig.Server.Debug)
	if err != nil {
		log.Fatalf("ошибка создания логгера: %v", err)
	}
	defer zapLogger.Sync()

	// Конфигурация анализа: YAML файл рядом с бинарником,
	// при его отсутствии — встроенные значения
	analysisConfig, err := config.Load("config/analysis.yaml")
	if err != nil {
		zapLogger.Warn("конфигурация анализа не загружена, использую встроенную", zap.Error(err))
		analysisConfig = config.Default()
	}

	dictionary := loadDictionary(zapLogger)

	zapLogger.Info("сервис анализа интервью запускается",
		zap.Any("model_info", appConfig.OpenAI.GetModelInfo()),
		zap.Int("criteria", len(analysisConfig.Criteria)),
	)

	// Собираем конвейер анализа
	client := api.NewOpenAIClient(&appConfig.OpenAI, zapLogger)
	prompts := analysis.NewPromptBuilder(analysisConfig, dictionary)
	parser := analysis.NewParser(analysisConfig)
	counters := metrics.NewMetrics()

	evaluator := analysis.NewContentEvaluator(client, prompts, parser, &appConfig.OpenAI, analysisConfig, zapLogger)
	starAnalyzer := analysis.NewSTARAnalyzer(client, prompts, parser, &appConfig.OpenAI, zapLogger)
	orchestrator := analysis.NewOrchestrator(evaluator, starAnalyzer, counters, zapLogger)

	srv := server.New(orchestrator, counters, appConfig, zapLogger)

	// Останавливаемся по сигналу, дожидаясь активных запросов
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		zapLogger.Info("получен сигнал остановки")

		ctx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			zapLogger.Error("ошибка остановки сервера", zap.Error(err))
		}
	}()

	if err := srv.Run(); err != nil {
		zapLogger.Fatal("сервер завершился с ошибкой", zap.Error(err))
	}

	zapLogger.Info("сервис остановлен")
}

// loadDictionary загружает словарь категорий советов из config/dictionary.yaml,
// при любой ошибке откатываясь на встроенный словарь
func loadDictionary(zapLogger *zap.Logger) map[string]schema.TipField {
	yamlContent, err := os.ReadFile("config/dictionary.yaml")
	if err != nil {
		zapLogger.Warn("словарь советов не найден, использую встроенный", zap.Error(err))
		return schema.DefaultDictionary()
	}

	dictionary, err := schema.ParseYAMLDictionary(yamlContent)
	if err != nil {
		zapLogger.Warn("словарь советов не разобран, использую встроенный", zap.Error(err))
		return schema.DefaultDictionary()
	}

	return dictionary
}
