package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load загружает конфигурацию анализа из YAML файла
func Load(filename string) (*AnalysisConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла %s: %w", filename, err)
	}

	var config AnalysisConfig
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга YAML: %w", err)
	}

	// Валидация конфигурации
	err = validateConfig(&config)
	if err != nil {
		return nil, fmt.Errorf("ошибка валидации конфигурации: %w", err)
	}

	return &config, nil
}

// Default возвращает встроенную конфигурацию анализа.
// Используется когда config/analysis.yaml отсутствует рядом с бинарником.
func Default() *AnalysisConfig {
	return &AnalysisConfig{
		Scoring: ScoringConfig{
			MinScore:      1.0,
			MaxScore:      5.0,
			FallbackScore: 3.0,
		},
		Criteria: []Criterion{
			{Name: "clarity", Title: "Ясность и структура", Description: "насколько логично и последовательно построен ответ"},
			{Name: "specificity", Title: "Конкретность", Description: "есть ли конкретные примеры, цифры и детали"},
			{Name: "professionalism", Title: "Профессионализм", Description: "уместность лексики и делового тона"},
			{Name: "relevance", Title: "Релевантность", Description: "отвечает ли кандидат на поставленный вопрос"},
			{Name: "impact", Title: "Значимость результата", Description: "виден ли вклад кандидата и результат его действий"},
		},
		Fallbacks: Fallbacks{
			ContentTip: "Анализ содержания временно недоступен. Попробуйте повторить запрос позже.",
			VoiceTip:   "Следите за темпом речи и делайте паузы между смысловыми блоками.",
			FaceTip:    "Поддерживайте зрительный контакт с камерой во время ответа.",
		},
	}
}

// validateConfig проверяет корректность конфигурации анализа
func validateConfig(config *AnalysisConfig) error {
	if config.Scoring.MinScore >= config.Scoring.MaxScore {
		return fmt.Errorf("min_score (%.1f) должен быть меньше max_score (%.1f)",
			config.Scoring.MinScore, config.Scoring.MaxScore)
	}

	if config.Scoring.FallbackScore < config.Scoring.MinScore || config.Scoring.FallbackScore > config.Scoring.MaxScore {
		return fmt.Errorf("fallback_score (%.1f) вне диапазона [%.1f, %.1f]",
			config.Scoring.FallbackScore, config.Scoring.MinScore, config.Scoring.MaxScore)
	}

	if len(config.Criteria) == 0 {
		return fmt.Errorf("должен быть задан хотя бы один критерий оценки")
	}

	for i, criterion := range config.Criteria {
		if criterion.Name == "" {
			return fmt.Errorf("критерий %d должен иметь name", i)
		}

		if criterion.Title == "" {
			return fmt.Errorf("критерий %q должен иметь title", criterion.Name)
		}

		if criterion.Description == "" {
			return fmt.Errorf("критерий %q должен иметь description", criterion.Name)
		}
	}

	if config.Fallbacks.ContentTip == "" {
		return fmt.Errorf("fallbacks.content_tip не может быть пустым")
	}

	return nil
}
