package config

import (
	"fmt"
	"time"
)

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string

	// Температуры подобраны отдельно под каждый тип анализа:
	// низкие значения дают стабильный, а не креативный вывод
	ScoreTemperature float64
	StarTemperature  float64

	ScoreMaxTokens int
	StarMaxTokens  int

	RequestTimeout time.Duration
}

// LoadOpenAIConfig загружает конфигурацию OpenAI из переменных окружения
func LoadOpenAIConfig() *OpenAIConfig {
	return &OpenAIConfig{
		APIKey:           getEnv("OPENAI_API_KEY", ""),
		BaseURL:          getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1/chat/completions"),
		Model:            getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		ScoreTemperature: getEnvAsFloat("OPENAI_SCORE_TEMPERATURE", 0.2),
		StarTemperature:  getEnvAsFloat("OPENAI_STAR_TEMPERATURE", 0.3),
		ScoreMaxTokens:   getEnvAsInt("OPENAI_SCORE_MAX_TOKENS", 300),
		StarMaxTokens:    getEnvAsInt("OPENAI_STAR_MAX_TOKENS", 250),
		RequestTimeout:   getEnvAsDuration("OPENAI_REQUEST_TIMEOUT", 12*time.Second),
	}
}

// ValidateConfig проверяет корректность конфигурации.
// Отсутствующий API ключ — единственная фатальная ошибка всего сервиса,
// и проверяется она ровно один раз на старте.
func (c *OpenAIConfig) ValidateConfig() error {
	if c.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}

	if c.BaseURL == "" {
		return fmt.Errorf("OPENAI_BASE_URL must not be empty")
	}

	if c.ScoreTemperature < 0 || c.ScoreTemperature > 2 {
		return fmt.Errorf("OPENAI_SCORE_TEMPERATURE must be between 0 and 2")
	}

	if c.StarTemperature < 0 || c.StarTemperature > 2 {
		return fmt.Errorf("OPENAI_STAR_TEMPERATURE must be between 0 and 2")
	}

	if c.ScoreMaxTokens <= 0 || c.StarMaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive")
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("OPENAI_REQUEST_TIMEOUT must be positive")
	}

	return nil
}

// GetModelInfo возвращает информацию об используемой модели
func (c *OpenAIConfig) GetModelInfo() map[string]interface{} {
	return map[string]interface{}{
		"model":            c.Model,
		"score_max_tokens": c.ScoreMaxTokens,
		"star_max_tokens":  c.StarMaxTokens,
		"timeout":          c.RequestTimeout.String(),
		"provider":         "OpenAI",
	}
}
